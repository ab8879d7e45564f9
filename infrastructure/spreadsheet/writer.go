package spreadsheet

import (
	"io"

	"github.com/pkg/errors"
	"github.com/xuri/excelize/v2"
)

const defaultSheet = "Sheet1"

// WriteXLSX grava header e rows em uma única planilha. Os valores são
// gravados com o tipo recebido, então números continuam numéricos.
func WriteXLSX(w io.Writer, sheet string, header []string, rows [][]any) error {
	f := excelize.NewFile()
	defer f.Close()

	if sheet != "" && sheet != defaultSheet {
		if err := f.SetSheetName(defaultSheet, sheet); err != nil {
			return errors.Wrap(err, "failed to rename sheet")
		}
	} else {
		sheet = defaultSheet
	}

	headerCells := make([]any, len(header))
	for i, title := range header {
		headerCells[i] = title
	}

	if err := setRow(f, sheet, 1, headerCells); err != nil {
		return err
	}

	for i, row := range rows {
		if err := setRow(f, sheet, i+2, row); err != nil {
			return err
		}
	}

	if _, err := f.WriteTo(w); err != nil {
		return errors.Wrap(err, "failed to write xlsx")
	}

	return nil
}

func setRow(f *excelize.File, sheet string, row int, values []any) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return errors.Wrap(err, "invalid cell coordinates")
	}

	if err := f.SetSheetRow(sheet, cell, &values); err != nil {
		return errors.Wrapf(err, "failed to write row %d", row)
	}

	return nil
}
