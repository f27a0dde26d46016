package service

import "strings"

// MainWarehouseID — базовый склад: его остаток уходит в mainStock позиции.
const MainWarehouseID = "base"

type warehouseAlias struct {
	fragment string // подстрока в заголовке колонки остатков
	id       string
}

// порядок важен: специфичные фрагменты выше, иначе короткий алиас
// («база») перехватит длинную фразу, которая его содержит
var warehouseAliases = []warehouseAlias{
	{"склад готової продукції", "finished"},
	{"готової продукції", "finished"},
	{"готовой продукции", "finished"},
	{"основний склад виробництва", "production"},
	{"виробництво", "production"},
	{"производство", "production"},
	{"фасування", "packing"},
	{"фасовка", "packing"},
	{"логістичний центр", "logistics"},
	{"логістика", "logistics"},
	{"логистика", "logistics"},
	{"сировин", "raw"},
	{"сырь", "raw"},
	{"база", MainWarehouseID},
	{"основний", MainWarehouseID},
	{"основной", MainWarehouseID},
}

// Подрядчик по розливу сменился в середине истории данных: те же колонки
// «розлив» до 15.06 включительно относятся к старому складу, после — к новому.
const (
	bottlingFragment    = "розлив"
	bottlingBeforeID    = "bottling_fw"
	bottlingAfterID     = "bottling_tp"
	bottlingCutoffMonth = 6
	bottlingCutoffDay   = 15
)

// ResolveWarehouse сопоставляет свободный текст из заголовка колонки остатков
// каноничному складу. day/month — уже разобранная дата из того же заголовка
// (нужна временно́му алиасу). false — фрагмент неизвестен, колонка выбывает.
func ResolveWarehouse(fragment string, day, month int) (string, bool) {
	f := strings.ToLower(strings.TrimSpace(fragment))
	if f == "" {
		return "", false
	}

	if strings.Contains(f, bottlingFragment) {
		if month < bottlingCutoffMonth ||
			(month == bottlingCutoffMonth && day <= bottlingCutoffDay) {
			return bottlingBeforeID, true
		}
		return bottlingAfterID, true
	}

	for _, a := range warehouseAliases {
		if strings.Contains(f, a.fragment) {
			return a.id, true
		}
	}
	return "", false
}
