package utils

import "time"

const DateLayout = "2006-01-02"

// ParseDate interpreta datas no formato AAAA-MM-DD. String vazia retorna nil.
func ParseDate(dateStr string) (*time.Time, error) {
	if dateStr == "" {
		return nil, nil
	}

	date, err := time.Parse(DateLayout, dateStr)
	if err != nil {
		return nil, err
	}

	return &date, nil
}
