package service

import (
	"strconv"
	"strings"
	"time"
	"unicode"

	"tea-import-service/internal/importer/model"
)

// Ключевые слова ролей — данные, не условия. Порядок скалярных наборов
// фиксирован: норма раньше единицы измерения, иначе «норма на базову
// одиницю» уехала бы в единицы.
var scalarRoles = []struct {
	keys []string
	kind model.RoleKind
}{
	{[]string{"артикул", "код", "sku"}, model.RoleIdentifier},
	{[]string{"назва", "наимен", "номенклатур"}, model.RoleName},
	{[]string{"норма", "норматив"}, model.RoleBaseNorm},
	{[]string{"од.вим", "од. вим", "одиниц", "ед.изм", "ед. изм", "единиц"}, model.RoleUnit},
	{[]string{"груп", "категор"}, model.RoleCategoryLabel},
	{[]string{"місце збер", "место хран", "комірка", "ячейка", "стелаж", "стеллаж"}, model.RoleStorageLocation},
}

var (
	stockKeys    = []string{"залиш", "остат"}
	planKeys     = []string{"план", "витрат", "расход"}
	supplierKeys = []string{"постачальник", "поставщик"}
)

var headerCleaner = strings.NewReplacer("\u00A0", " ", "\u202F", " ", "ё", "е")

func normHeader(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	s = headerCleaner.Replace(s)
	return strings.Join(strings.Fields(s), " ")
}

func containsAny(s string, keys []string) bool {
	for _, k := range keys {
		if strings.Contains(s, k) {
			return true
		}
	}
	return false
}

// ClassifyColumns назначает роль каждой колонке. Выполняется один раз на
// лист; построчной переклассификации заголовков нет. Второй результат —
// заголовки остатков с нераспознанным складом (колонка выброшена, диагностика).
func ClassifyColumns(headers []string, monthRow []string, now time.Time) ([]model.ColumnRole, []string) {
	roles := make([]model.ColumnRole, len(headers))
	var unresolved []string
	for i, hdr := range headers {
		role, badHeader := classifyColumn(hdr, monthRowCell(monthRow, i), now)
		roles[i] = role
		if badHeader != "" {
			unresolved = append(unresolved, badHeader)
		}
	}
	return roles, unresolved
}

// monthRowCell — ячейка строки месяцев над колонкой col; при пустой берём
// ближайшую непустую слева: так через GetRows всплывают объединённые ячейки.
func monthRowCell(monthRow []string, col int) string {
	if col >= len(monthRow) {
		col = len(monthRow) - 1
	}
	for i := col; i >= 0; i-- {
		if v := strings.TrimSpace(monthRow[i]); v != "" {
			return v
		}
	}
	return ""
}

func classifyColumn(header, monthCell string, now time.Time) (model.ColumnRole, string) {
	h := normHeader(header)
	if h == "" {
		return model.ColumnRole{Kind: model.RoleUnknown}, ""
	}

	// 1) скалярные роли
	for _, sr := range scalarRoles {
		if containsAny(h, sr.keys) {
			return model.ColumnRole{Kind: sr.kind}, ""
		}
	}

	// плановые ключи сильнее «залишків»: колонка планового расхода нередко
	// содержит и слово «залишок», и не должна стать снимком склада
	hasPlan := containsAny(h, planKeys)

	// 2) остатки: "<залишки> [на] <день>.<місяць> <склад>"
	if containsAny(h, stockKeys) && !hasPlan {
		if role, bad, ok := classifyStock(h, monthCell, header); ok {
			return role, bad
		}
	}

	// 3) явная дата DD.MM.YYYY в заголовке
	if m := rxFullDate.FindStringSubmatch(h); m != nil {
		month, _ := strconv.Atoi(m[2])
		year, _ := strconv.Atoi(m[3])
		if month >= 1 && month <= 12 {
			return consumptionRole(yearMonth(year, time.Month(month)), now), ""
		}
	}

	// 4) голое название месяца, опционально с годом
	if month, ok := findMonth(h); ok {
		return consumptionRole(yearMonth(findYear(h, now), month), now), ""
	}

	// 5) плановые витрати + месяц из строки над шапкой
	if hasPlan {
		if mc := strings.ToLower(monthCell); mc != "" {
			if month, ok := findMonth(mc); ok {
				return consumptionRole(yearMonth(findYear(mc, now), month), now), ""
			}
		}
	}

	// 6) поставщик
	if containsAny(h, supplierKeys) {
		return model.ColumnRole{Kind: model.RoleSupplier}, ""
	}

	return model.ColumnRole{Kind: model.RoleUnknown}, ""
}

// classifyStock разбирает заголовок остатков. ok=false — формат не опознан,
// классификация продолжается по следующим правилам. Непустой bad — склад не
// распознан: колонка выбывает, заголовок уходит в диагностику.
func classifyStock(h, monthCell, rawHeader string) (role model.ColumnRole, bad string, ok bool) {
	unknown := model.ColumnRole{Kind: model.RoleUnknown}

	if loc := rxDayMonth.FindStringSubmatchIndex(h); loc != nil {
		day, _ := strconv.Atoi(h[loc[2]:loc[3]])
		month, _ := strconv.Atoi(h[loc[4]:loc[5]])
		if month >= 1 && month <= 12 && day >= 1 && day <= 31 {
			frag := strings.Trim(h[loc[1]:], " ,.-")
			if id, found := ResolveWarehouse(frag, day, month); found {
				return model.ColumnRole{
					Kind:        model.RoleStockSnapshot,
					WarehouseID: id,
					DateScore:   month*32 + day,
				}, "", true
			}
			return unknown, rawHeader, true
		}
	}

	// старый формат «залишки станом на 1, <склад>»: месяца в заголовке нет,
	// его даёт строка месяцев над шапкой
	if month, found := findMonth(strings.ToLower(monthCell)); found {
		frag := legacyStockFragment(h)
		if id, resolved := ResolveWarehouse(frag, 1, int(month)); resolved {
			return model.ColumnRole{
				Kind:        model.RoleStockSnapshot,
				WarehouseID: id,
				DateScore:   int(month)*32 + 1,
			}, "", true
		}
		return unknown, rawHeader, true
	}

	return unknown, "", false
}

// legacyStockFragment вырезает фрагмент склада из заголовка старого формата:
// всё после последней цифры, либо после ключевого слова остатков.
func legacyStockFragment(h string) string {
	if i := strings.LastIndexFunc(h, unicode.IsDigit); i >= 0 {
		return strings.Trim(h[i+1:], " ,.-е")
	}
	for _, kw := range stockKeys {
		if i := strings.Index(h, kw); i >= 0 {
			frag := strings.TrimSpace(h[i+len(kw):])
			// срезать хвост самого слова («-ки», «-ок») и служебные «станом на»
			if j := strings.Index(frag, " "); j >= 0 {
				next := strings.TrimSpace(frag[j:])
				frag = next
			}
			frag = strings.TrimPrefix(frag, "станом")
			frag = strings.TrimSpace(frag)
			frag = strings.TrimPrefix(frag, "на ")
			return strings.Trim(frag, " ,.-")
		}
	}
	return ""
}

func consumptionRole(ym string, now time.Time) model.ColumnRole {
	return model.ColumnRole{
		Kind:      model.RoleConsumption,
		YearMonth: ym,
		IsActual:  isActualMonth(ym, now),
	}
}
