package service

import (
	"strings"
	"unicode"
)

// CategoryOther — категория по умолчанию, когда нечего наследовать.
const CategoryOther = "other"

const (
	CategoryFlavor      = "flavor"
	CategoryLabel       = "label"
	CategorySticker     = "sticker"
	CategoryCardboard   = "packaging_cardboard"
	CategoryEnvelope    = "envelope"
	CategoryCrate       = "crate"
	CategorySoft        = "packaging_soft"
	CategoryConsumables = "packaging_consumables"
	CategoryTeaBulk     = "tea_bulk"
)

type categoryRule struct {
	keywords []string // подстроки в тексте группы
	excludes []string // при совпадении любой — правило не срабатывает
	code     string
}

func (r categoryRule) matches(text string) bool {
	hit := false
	for _, kw := range r.keywords {
		if strings.Contains(text, kw) {
			hit = true
			break
		}
	}
	if !hit {
		return false
	}
	for _, ex := range r.excludes {
		if strings.Contains(text, ex) {
			return false
		}
	}
	return true
}

// Порядок правил несёт смысл: картон проверяется раньше конвертов и общей
// упаковки, чтобы картонные коробки не уезжали в конверты; общая упаковка
// (плёнка/пакет/нитки/бумага) отступает перед картоном, ящиками и мягкой.
var categoryRules = []categoryRule{
	{keywords: []string{"аромат"}, code: CategoryFlavor},
	{keywords: []string{"етикет", "этикет"}, code: CategoryLabel},
	{keywords: []string{"наклейк", "наліпк", "стікер", "стикер"}, code: CategorySticker},
	{keywords: []string{"картон", "коробк"}, code: CategoryCardboard},
	{keywords: []string{"конверт"}, code: CategoryEnvelope},
	{keywords: []string{"гофро", "ящик"}, code: CategoryCrate},
	{keywords: []string{"м'яка упаков", "мяка упаков", "мягкая упаков"}, code: CategorySoft},
	{
		keywords: []string{"плівка", "пленка", "пакет", "нитка", "нитки", "папір", "бумага", "упаков"},
		excludes: []string{"картон", "гофро", "ящик", "м'як", "мяк", "мягк"},
		code:     CategoryConsumables,
	},
	{keywords: []string{"чай", "трав"}, code: CategoryTeaBulk},
}

// фолбэк по наименованию позиции — узкий набор семейств
var nameFallbackRules = []categoryRule{
	{keywords: []string{"етикет", "этикет"}, code: CategoryLabel},
	{keywords: []string{"наклейк", "наліпк", "стікер", "стикер"}, code: CategorySticker},
	{keywords: []string{"аромат"}, code: CategoryFlavor},
	{keywords: []string{"конверт"}, code: CategoryEnvelope},
}

// ClassifyCategory — категория строки. group — сырой текст группы (может быть
// пустым), name — уже извлечённое наименование, prev — категория предыдущей
// строки (перенос вниз по листу, состояние протягивает сборщик строк).
func ClassifyCategory(group, name, prev string) string {
	g := normCategoryText(group)
	if g == "" {
		if prev != "" {
			return prev
		}
		return CategoryOther
	}

	for _, r := range categoryRules {
		if r.matches(g) {
			return r.code
		}
	}

	n := normCategoryText(name)
	for _, r := range nameFallbackRules {
		if r.matches(n) {
			return r.code
		}
	}

	// неизвестная группа становится собственной динамической категорией,
	// чтобы разные нераспознанные группы не слипались в other
	if slug := dynamicSlug(g); slug != "" {
		return slug
	}
	return CategoryOther
}

// нижний регистр, ё→е — иначе «плёнка» из русских листов мимо правил
func normCategoryText(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	return strings.ReplaceAll(s, "ё", "е")
}

const slugMaxLen = 50

// dynamicSlug: нижний регистр, [a-z0-9_] плюс кириллица, остальное — '_',
// повторы схлопываются, не длиннее slugMaxLen рун.
func dynamicSlug(s string) string {
	var b strings.Builder
	lastUnderscore := true // срезает ведущие '_'
	n := 0
	for _, r := range s {
		ok := (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || unicode.Is(unicode.Cyrillic, r)
		if ok {
			b.WriteRune(r)
			lastUnderscore = false
			n++
		} else if !lastUnderscore {
			b.WriteRune('_')
			lastUnderscore = true
			n++
		}
		if n >= slugMaxLen {
			break
		}
	}
	return strings.Trim(b.String(), "_")
}

// IsCountCategory: штучные позиции (этикетки, наклейки) — для них точка в
// числе всегда разделитель тысяч, см. utils.ParseCell.
func IsCountCategory(category, name string) bool {
	if category == CategoryLabel || category == CategorySticker {
		return true
	}
	n := strings.ToLower(name)
	for _, kw := range []string{"етикет", "этикет", "наклейк", "наліпк", "стікер", "стикер"} {
		if strings.Contains(n, kw) {
			return true
		}
	}
	return false
}
