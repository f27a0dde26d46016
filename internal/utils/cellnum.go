package utils

import (
	"strconv"
	"strings"
)

// убрать неразрывные/узкие пробелы, табы и обычные пробелы (разделители тысяч)
var spaceStripper = strings.NewReplacer("\u00A0", "", "\u202F", "", "\u2009", "", " ", "", "\t", "")

// ParseCell парсит значение ячейки с учётом локали: "1 234,50", "2.124.770",
// "1,5" и т.п. Второй результат false означает «значения нет» — это не ноль.
//
// integerCount — позиция считается штучной (этикетки, наклейки): точка в
// таких количествах всегда разделитель тысяч. Для остальных категорий точка
// трактуется как тысячный разделитель только когда есть запятая или точек
// больше одной; одиночная точка остаётся десятичной.
func ParseCell(raw string, integerCount bool) (float64, bool) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return 0, false
	}
	if s == "-" {
		// прочерк в ведомостях = ноль, а не «нет данных»
		return 0, true
	}

	s = spaceStripper.Replace(s)

	switch {
	case integerCount:
		s = strings.ReplaceAll(s, ".", "")
		s = strings.ReplaceAll(s, ",", ".")
	case strings.Contains(s, ","):
		s = strings.ReplaceAll(s, ".", "")
		s = strings.ReplaceAll(s, ",", ".")
	case strings.Count(s, ".") > 1:
		s = strings.ReplaceAll(s, ".", "")
	}

	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return f, true
}
