package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	date, err := ParseDate("2025-01-31")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 1, 31, 0, 0, 0, 0, time.UTC), *date)

	date, err = ParseDate("")
	require.NoError(t, err)
	assert.Nil(t, date)

	_, err = ParseDate("31/01/2025")
	assert.Error(t, err)
}

func TestGenerateID(t *testing.T) {
	id, err := GenerateID(12)
	require.NoError(t, err)
	assert.Len(t, id, 12)
	assert.Regexp(t, "^[A-Za-z0-9]+$", id)
}

func TestPrettyJson(t *testing.T) {
	out, err := PrettyJson(map[string]int{"imported_count": 3})
	require.NoError(t, err)
	assert.Equal(t, "{\n\t\"imported_count\": 3\n}", out)

	out, err = PrettyJson([]byte(`{"a":1}`))
	require.NoError(t, err)
	assert.Equal(t, "{\n\t\"a\": 1\n}", out)

	_, err = PrettyJson([]byte(`{`))
	assert.Error(t, err)
}
