package service

import "strings"

// маркеры строки заголовков: артикул/код/наименование/SKU
var headerKeywords = []string{
	"артикул",
	"номенклатур",
	"назва",
	"наимен",
	"код",
	"sku",
}

const headerScanLimit = 10

// Layout — найденная разметка листа.
type Layout struct {
	HeaderRow   int
	MonthRow    []string // строка над заголовком (месяцы для «старых» колонок), nil если её нет
	UsedDefault bool     // ни одна из первых строк не похожа на шапку, взяли 0
}

// DetectLayout ищет строку заголовков в первых строках листа. Никогда не
// ошибается: если шапку не нашли, деградируем к строке 0 с флагом для UI.
func DetectLayout(grid [][]string) Layout {
	limit := len(grid)
	if limit > headerScanLimit {
		limit = headerScanLimit
	}
	for r := 0; r < limit; r++ {
		for _, cell := range grid[r] {
			c := strings.ToLower(strings.TrimSpace(cell))
			if c == "" {
				continue
			}
			for _, kw := range headerKeywords {
				if strings.Contains(c, kw) {
					l := Layout{HeaderRow: r}
					if r > 0 {
						l.MonthRow = grid[r-1]
					}
					return l
				}
			}
		}
	}
	return Layout{HeaderRow: 0, UsedDefault: true}
}
