package service

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Названия месяцев как данные, а не условия: новые локали/синонимы
// добавляются строкой в таблицу. Формы именительного и родительного падежей,
// укр и рус. Нарочно без коротких префиксов — «трав»/«лип» ловили бы
// травяной чай и липу в названиях позиций.
var monthNames = []struct {
	name  string
	month time.Month
}{
	{"січень", time.January}, {"січня", time.January},
	{"январь", time.January}, {"января", time.January},
	{"лютий", time.February}, {"лютого", time.February},
	{"февраль", time.February}, {"февраля", time.February},
	{"березень", time.March}, {"березня", time.March},
	{"март", time.March}, {"марта", time.March},
	{"квітень", time.April}, {"квітня", time.April},
	{"апрель", time.April}, {"апреля", time.April},
	{"травень", time.May}, {"травня", time.May},
	{"май", time.May}, {"мая", time.May},
	{"червень", time.June}, {"червня", time.June},
	{"июнь", time.June}, {"июня", time.June},
	{"липень", time.July}, {"липня", time.July},
	{"июль", time.July}, {"июля", time.July},
	{"серпень", time.August}, {"серпня", time.August},
	{"август", time.August}, {"августа", time.August},
	{"вересень", time.September}, {"вересня", time.September},
	{"сентябрь", time.September}, {"сентября", time.September},
	{"жовтень", time.October}, {"жовтня", time.October},
	{"октябрь", time.October}, {"октября", time.October},
	{"листопад", time.November}, {"листопада", time.November},
	{"ноябрь", time.November}, {"ноября", time.November},
	{"грудень", time.December}, {"грудня", time.December},
	{"декабрь", time.December}, {"декабря", time.December},
}

var (
	rxYear     = regexp.MustCompile(`\b(20\d{2})\b`)
	rxFullDate = regexp.MustCompile(`\b(\d{1,2})[./-](\d{1,2})[./-](20\d{2})\b`)
	rxDayMonth = regexp.MustCompile(`(\d{1,2})\s*[./-]\s*(\d{1,2})`)
)

// findMonth ищет в тексте название месяца (укр/рус, им./род. падеж).
func findMonth(text string) (time.Month, bool) {
	for _, m := range monthNames {
		if strings.Contains(text, m.name) {
			return m.month, true
		}
	}
	return 0, false
}

// findYear достаёт 4-значный год, иначе год импорта.
func findYear(text string, now time.Time) int {
	if m := rxYear.FindStringSubmatch(text); m != nil {
		y, _ := strconv.Atoi(m[1])
		return y
	}
	return now.Year()
}

// yearMonth — каноничная форма "YYYY-MM".
func yearMonth(year int, month time.Month) string {
	return fmt.Sprintf("%04d-%02d", year, int(month))
}

// isActualMonth: строго раньше месяца импорта — факт, текущий и будущие — план.
// Считается один раз при классификации колонок и дальше не пересчитывается.
func isActualMonth(ym string, now time.Time) bool {
	return ym < yearMonth(now.Year(), now.Month())
}
