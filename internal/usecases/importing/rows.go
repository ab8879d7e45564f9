package importing

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/vfg2006/orders-backoffice-api/internal/domain"
)

// firstDataRow é o número da primeira linha após o cabeçalho
const firstDataRow = 2

type rowError struct {
	row     int
	message string
}

// parseRows converte as linhas de dados (sem o cabeçalho) em SiteImportRow.
// Apenas as duas primeiras colunas são lidas.
func parseRows(rows [][]string) []domain.SiteImportRow {
	parsed := make([]domain.SiteImportRow, 0, len(rows))

	for i, row := range rows {
		parsed = append(parsed, domain.SiteImportRow{
			RowNumber: i + firstDataRow,
			Name:      cell(row, 0),
			AdminFee:  cell(row, 1),
		})
	}

	return parsed
}

// buildUpserts valida as linhas e devolve, na ordem do arquivo, as gravações
// a executar e os erros das linhas rejeitadas
func buildUpserts(rows []domain.SiteImportRow) ([]domain.SiteUpsert, []rowError) {
	var (
		upserts []domain.SiteUpsert
		errs    []rowError
	)

	for _, row := range rows {
		if row.IsBlank() {
			continue
		}

		if row.Name == "" {
			errs = append(errs, rowError{row.RowNumber, fmt.Sprintf("Row %d: Site name is required", row.RowNumber)})
			continue
		}

		if row.AdminFee == "" {
			errs = append(errs, rowError{row.RowNumber, fmt.Sprintf("Row %d: Admin fee is required", row.RowNumber)})
			continue
		}

		fee, err := decimal.NewFromString(row.AdminFee)
		if err != nil {
			errs = append(errs, rowError{row.RowNumber, fmt.Sprintf("Row %d: Admin fee must be a number", row.RowNumber)})
			continue
		}

		upserts = append(upserts, domain.SiteUpsert{
			RowNumber: row.RowNumber,
			Name:      row.Name,
			Fields: domain.SiteFields{
				URL:      siteURL(row.Name),
				AdminFee: fee.Round(2),
				IsActive: true,
			},
		})
	}

	return upserts, errs
}

// siteURL mantém URLs absolutas e trata o resto como domínio
func siteURL(name string) string {
	if u, err := url.Parse(name); err == nil && u.Scheme != "" && u.Host != "" {
		return name
	}
	return "https://" + name
}

func cell(row []string, index int) string {
	if index >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[index])
}
