package fileio

import (
	"bytes"
	"fmt"
	"io"

	excelize "github.com/xuri/excelize/v2"
)

func openXLSX(r io.Reader) (*excelize.File, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return excelize.OpenReader(bytes.NewReader(b))
}

func listXLSXSheets(r io.Reader) ([]string, error) {
	f, err := openXLSX(r)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return f.GetSheetList(), nil
}

func readXLSXGrid(r io.Reader, sheet string) ([][]string, error) {
	f, err := openXLSX(r)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	if sheet == "" {
		sheet = f.GetSheetName(0)
	} else if idx, err := f.GetSheetIndex(sheet); err != nil || idx < 0 {
		return nil, fmt.Errorf("sheet %q not found", sheet)
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, err
	}
	return normalizeGrid(rows), nil
}
