//go:generate mockgen -source=reader.go -destination=mocks/reader.go -package=mocks

// Package spreadsheet lê e grava planilhas nos formatos aceitos pela aplicação
package spreadsheet

import (
	"bytes"
	"context"
	"encoding/csv"
	"io"
	"path/filepath"
	"strings"

	"github.com/extrame/xls"
	"github.com/pkg/errors"
	"github.com/xuri/excelize/v2"
)

var (
	ErrUnsupportedFormat = errors.New("unsupported spreadsheet format")
	ErrUnreadable        = errors.New("spreadsheet could not be read")
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// Reader devolve as linhas da primeira planilha do arquivo, incluindo o cabeçalho
type Reader interface {
	Read(ctx context.Context, name string, src io.ReadSeeker) ([][]string, error)
}

type FileReader struct{}

func NewFileReader() *FileReader {
	return &FileReader{}
}

// Read escolhe o formato pela extensão do nome do arquivo
func (r *FileReader) Read(ctx context.Context, name string, src io.ReadSeeker) ([][]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	switch strings.ToLower(filepath.Ext(name)) {
	case ".csv":
		return readCSV(src)
	case ".xlsx":
		return readXLSX(src)
	case ".xls":
		return readXLS(src)
	}

	return nil, errors.Wrap(ErrUnsupportedFormat, filepath.Ext(name))
}

func readCSV(src io.Reader) ([][]string, error) {
	content, err := io.ReadAll(src)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read csv")
	}
	content = bytes.TrimPrefix(content, utf8BOM)

	reader := csv.NewReader(bytes.NewReader(content))
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	var (
		rows   [][]string
		offset int64
	)
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, errors.Wrap(ErrUnreadable, err.Error())
		}

		// o leitor de csv descarta linhas vazias; elas são mantidas como
		// linhas sem células para preservar a numeração do arquivo
		next := reader.InputOffset()
		blank := leadingBlankLines(content[offset:next])
		for i := 0; i < blank; i++ {
			rows = append(rows, nil)
		}
		offset = next

		rows = append(rows, record)
	}

	return rows, nil
}

func leadingBlankLines(chunk []byte) int {
	count := 0
	for _, b := range chunk {
		switch b {
		case '\n':
			count++
		case '\r':
		default:
			return count
		}
	}
	return count
}

func readXLSX(src io.Reader) ([][]string, error) {
	f, err := excelize.OpenReader(src)
	if err != nil {
		return nil, errors.Wrap(ErrUnreadable, err.Error())
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, nil
	}

	rows, err := f.GetRows(sheets[0], excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, errors.Wrap(ErrUnreadable, err.Error())
	}

	return rows, nil
}

func readXLS(src io.ReadSeeker) (rows [][]string, err error) {
	// a biblioteca entra em pânico com alguns arquivos corrompidos
	defer func() {
		if r := recover(); r != nil {
			rows = nil
			err = errors.Wrapf(ErrUnreadable, "%v", r)
		}
	}()

	workbook, err := xls.OpenReader(src, "utf-8")
	if err != nil {
		return nil, errors.Wrap(ErrUnreadable, err.Error())
	}

	sheet := workbook.GetSheet(0)
	if sheet == nil {
		return nil, nil
	}

	for i := 0; i <= int(sheet.MaxRow); i++ {
		row := sheet.Row(i)
		if row == nil {
			rows = append(rows, nil)
			continue
		}

		// nem todo gerador grava Lcol como última coluna + 1, então a coluna
		// seguinte também é lida e as células vazias do fim são descartadas
		cells := make([]string, 0, row.LastCol()+1)
		for j := 0; j <= row.LastCol(); j++ {
			cells = append(cells, row.Col(j))
		}
		rows = append(rows, trimTrailingCells(cells))
	}

	return trimTrailingEmpty(rows), nil
}

// trimTrailingEmpty descarta as linhas vazias no fim da planilha
func trimTrailingEmpty(rows [][]string) [][]string {
	for len(rows) > 0 && isEmptyRow(rows[len(rows)-1]) {
		rows = rows[:len(rows)-1]
	}
	return rows
}

func trimTrailingCells(cells []string) []string {
	for len(cells) > 0 && cells[len(cells)-1] == "" {
		cells = cells[:len(cells)-1]
	}
	return cells
}

func isEmptyRow(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}
