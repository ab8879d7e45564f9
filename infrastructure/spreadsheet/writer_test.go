package spreadsheet

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestWriteXLSX(t *testing.T) {
	var buf bytes.Buffer

	err := WriteXLSX(&buf, "Orders", []string{"ID", "Client Price"}, [][]any{
		{int64(1), 150.25},
		{int64(2), 99.0},
	})
	require.NoError(t, err)

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{"Orders"}, f.GetSheetList())

	rows, err := f.GetRows("Orders")
	require.NoError(t, err)
	assert.Equal(t, [][]string{
		{"ID", "Client Price"},
		{"1", "150.25"},
		{"2", "99"},
	}, rows)

	cellType, err := f.GetCellType("Orders", "B2")
	require.NoError(t, err)
	assert.NotEqual(t, excelize.CellTypeSharedString, cellType)
}
