package service

import (
	"strings"
	"time"

	"tea-import-service/internal/importer/model"
)

// Run выполняет полный разбор одного листа: разметка → роли колонок →
// сборка строк → поставщики. Состояния между запусками нет — один и тот же
// конвейер можно параллельно гонять по разным листам.
//
// now — момент импорта; только от него зависит факт/план у расхода.
// Ошибка — всегда *model.ImportError: либо в листе нет данных вовсе, либо
// после шапки не выжило ни одной строки. Частичные проблемы (пропущенные
// строки, неопознанные склады) в Diagnostics и ошибкой не являются.
func Run(grid [][]string, now time.Time) (*model.Result, error) {
	if gridEmpty(grid) {
		return nil, &model.ImportError{Reason: model.FailNoData}
	}

	layout := DetectLayout(grid)
	headers := grid[layout.HeaderRow]

	roles, unresolved := ClassifyColumns(headers, layout.MonthRow, now)

	items, skipped := AssembleRows(grid, layout.HeaderRow, roles)
	if len(items) == 0 {
		return nil, &model.ImportError{
			Reason:  model.FailNoRowsAfterHeader,
			Headers: visibleHeaders(headers),
		}
	}

	return &model.Result{
		Items:     items,
		Suppliers: ExtractSuppliers(grid, layout.HeaderRow, roles),
		Diagnostics: model.Diagnostics{
			SkippedRowCount:            skipped,
			UnresolvedWarehouseHeaders: unresolved,
			HeaderRowIndex:             layout.HeaderRow,
			UsedDefaultHeaderRow:       layout.UsedDefault,
		},
	}, nil
}

func gridEmpty(grid [][]string) bool {
	for _, row := range grid {
		if !rowEmpty(row) {
			return false
		}
	}
	return true
}

func visibleHeaders(headers []string) []string {
	out := make([]string, 0, len(headers))
	for _, h := range headers {
		if v := strings.TrimSpace(h); v != "" {
			out = append(out, v)
		}
	}
	return out
}
