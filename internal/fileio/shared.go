package fileio

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"
)

// CSVSheetName — синтетическое имя единственного «листа» CSV-файла.
const CSVSheetName = "Sheet1"

// ReadAnyGrid — выберет парсер по расширению и вернёт выбранный лист как
// матрицу ячеек. Конвейер сам ищет шапку, поэтому никакой интерпретации
// заголовков здесь нет. sheet == "" означает первый лист книги.
func ReadAnyGrid(r io.Reader, filename, sheet string) ([][]string, error) {
	switch ext(filename) {
	case ".xlsx":
		return readXLSXGrid(r, sheet)
	case ".xls":
		return readXLSGrid(r, sheet)
	case ".csv":
		return readCSVGrid(r)
	default:
		return nil, fmt.Errorf("unsupported file: %s", filename)
	}
}

// ListSheets — имена листов книги. CSV считается книгой из одного листа.
func ListSheets(r io.Reader, filename string) ([]string, error) {
	switch ext(filename) {
	case ".xlsx":
		return listXLSXSheets(r)
	case ".xls":
		return listXLSSheets(r)
	case ".csv":
		return []string{CSVSheetName}, nil
	default:
		return nil, fmt.Errorf("unsupported file: %s", filename)
	}
}

func ext(filename string) string {
	return strings.ToLower(filepath.Ext(filename))
}

var cellCleaner = strings.NewReplacer("\u00A0", " ", "\u202F", " ", "\u2009", " ")

// normalizeCell приводит значение ячейки к пригодному тексту:
// неразрывные/узкие пробелы — в обычные, края обрезаны.
func normalizeCell(s string) string {
	return strings.TrimSpace(cellCleaner.Replace(s))
}

func normalizeGrid(rows [][]string) [][]string {
	for _, row := range rows {
		for i, c := range row {
			row[i] = normalizeCell(c)
		}
	}
	return rows
}
