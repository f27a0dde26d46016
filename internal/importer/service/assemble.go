package service

import (
	"sort"
	"strings"

	"tea-import-service/internal/importer/model"
	"tea-import-service/internal/utils"
)

// DefaultUnit — единица по умолчанию, когда колонки единиц нет или ячейка пуста.
const DefaultUnit = "шт"

// синонимы штучной единицы сводим к одному символу
var pieceUnits = map[string]struct{}{
	"шт": {}, "шт.": {}, "штук": {}, "штука": {}, "штуки": {},
	"pcs": {}, "pc": {}, "pieces": {},
}

func normalizeUnit(u string) string {
	u = strings.TrimSpace(u)
	if u == "" {
		return DefaultUnit
	}
	if _, ok := pieceUnits[strings.ToLower(u)]; ok {
		return DefaultUnit
	}
	return u
}

// AssembleRows собирает позиции из строк данных после шапки. skipped — число
// отбракованных строк (пустое наименование, заглушка "0", пустой код);
// полностью пустые строки пропускаются молча и не считаются.
func AssembleRows(grid [][]string, headerRow int, roles []model.ColumnRole) (items []model.ParsedItem, skipped int) {
	prevCategory := "" // перенос категории вниз по листу
	for r := headerRow + 1; r < len(grid); r++ {
		row := grid[r]
		if rowEmpty(row) {
			continue
		}
		item, ok := assembleRow(row, roles, &prevCategory)
		if !ok {
			skipped++
			continue
		}
		items = append(items, item)
	}
	return items, skipped
}

func rowEmpty(row []string) bool {
	for _, c := range row {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}

func cellAt(row []string, i int) string {
	if i < len(row) {
		return strings.TrimSpace(row[i])
	}
	return ""
}

// firstCell — значение первой колонки с данной ролью.
func firstCell(row []string, roles []model.ColumnRole, kind model.RoleKind) string {
	for i, role := range roles {
		if role.Kind == kind {
			return cellAt(row, i)
		}
	}
	return ""
}

func assembleRow(row []string, roles []model.ColumnRole, prevCategory *string) (model.ParsedItem, bool) {
	code := firstCell(row, roles, model.RoleIdentifier)
	name := firstCell(row, roles, model.RoleName)
	if code == "" || name == "" || name == "0" {
		return model.ParsedItem{}, false
	}

	category := ClassifyCategory(firstCell(row, roles, model.RoleCategoryLabel), name, *prevCategory)
	*prevCategory = category

	item := model.ParsedItem{
		Code:            code,
		Name:            name,
		Unit:            normalizeUnit(firstCell(row, roles, model.RoleUnit)),
		Category:        category,
		WarehouseStocks: map[string]float64{},
		StorageLocation: firstCell(row, roles, model.RoleStorageLocation),
	}

	if raw := firstCell(row, roles, model.RoleBaseNorm); raw != "" {
		if v, ok := utils.ParseCell(raw, false); ok {
			item.BaseNorm = &v
		}
	}

	countItem := IsCountCategory(category, name)

	// свежесть снимка по складам: больший dateScore всегда перекрывает,
	// равный тоже (побеждает более правая колонка), меньший игнорируется;
	// нечитаемая ячейка никогда не затирает уже записанное значение
	bestScore := map[string]int{}
	consumptionAt := map[string]int{} // yearMonth -> индекс в item.Consumption

	for i, role := range roles {
		cell := cellAt(row, i)
		switch role.Kind {
		case model.RoleStockSnapshot:
			v, ok := utils.ParseCell(cell, countItem)
			if !ok {
				continue
			}
			if prev, seen := bestScore[role.WarehouseID]; !seen || role.DateScore >= prev {
				item.WarehouseStocks[role.WarehouseID] = v
				bestScore[role.WarehouseID] = role.DateScore
			}
		case model.RoleConsumption:
			v, ok := utils.ParseCell(cell, false)
			if !ok || v <= 0 {
				continue
			}
			entry := model.ConsumptionEntry{YearMonth: role.YearMonth, Quantity: v, IsActual: role.IsActual}
			if at, seen := consumptionAt[role.YearMonth]; seen {
				// тот же месяц из двух колонок: более правая замещает, не суммируется
				item.Consumption[at] = entry
			} else {
				consumptionAt[role.YearMonth] = len(item.Consumption)
				item.Consumption = append(item.Consumption, entry)
			}
		}
	}

	if v, ok := item.WarehouseStocks[MainWarehouseID]; ok {
		item.MainStock = v
		delete(item.WarehouseStocks, MainWarehouseID)
	}

	sort.Slice(item.Consumption, func(a, b int) bool {
		return item.Consumption[a].YearMonth < item.Consumption[b].YearMonth
	})

	return item, true
}
