package model

import "fmt"

// RoleKind — семантическая роль колонки листа.
type RoleKind int

const (
	RoleUnknown RoleKind = iota
	RoleIdentifier
	RoleName
	RoleUnit
	RoleCategoryLabel
	RoleStorageLocation
	RoleBaseNorm
	RoleStockSnapshot
	RoleConsumption
	RoleSupplier
)

// ColumnRole — роль колонки i, вычисляется один раз на лист и дальше
// только читается.
type ColumnRole struct {
	Kind RoleKind

	// для RoleStockSnapshot
	WarehouseID string
	DateScore   int // month*32 + day, сравнимая «свежесть» остатка

	// для RoleConsumption
	YearMonth string // "YYYY-MM"
	IsActual  bool   // факт (месяц строго раньше месяца импорта) или план
}

// ConsumptionEntry — расход/план за один календарный месяц.
type ConsumptionEntry struct {
	YearMonth string  `json:"yearMonth"`
	Quantity  float64 `json:"quantity"`
	IsActual  bool    `json:"isActual"`
}

// ParsedItem — одна нормализованная позиция номенклатуры.
type ParsedItem struct {
	Code            string             `json:"code"`
	Name            string             `json:"name"`
	Unit            string             `json:"unit"`
	Category        string             `json:"category"`
	MainStock       float64            `json:"mainStock"`
	WarehouseStocks map[string]float64 `json:"warehouseStocks"`
	StorageLocation string             `json:"storageLocation,omitempty"`
	BaseNorm        *float64           `json:"baseNorm,omitempty"`
	Consumption     []ConsumptionEntry `json:"consumption"`
}

// ParsedSupplier — поставщик из листа, дедуплицирован без учёта регистра.
type ParsedSupplier struct {
	Name string `json:"name"`
}

type Diagnostics struct {
	SkippedRowCount            int      `json:"skippedRowCount"`
	UnresolvedWarehouseHeaders []string `json:"unresolvedWarehouseHeaders"`
	HeaderRowIndex             int      `json:"headerRowIndex"`
	UsedDefaultHeaderRow       bool     `json:"usedDefaultHeaderRow"`
}

// Result — итог разбора одного листа.
type Result struct {
	Items       []ParsedItem     `json:"items"`
	Suppliers   []ParsedSupplier `json:"suppliers"`
	Diagnostics Diagnostics      `json:"diagnostics"`
}

// Причины структурного отказа: лист нечитаем целиком. Построчные и
// поколоночные отбраковки сюда не попадают — они копятся в Diagnostics.
const (
	FailNoData            = "no-data"
	FailNoRowsAfterHeader = "no-rows-after-header"
)

// ImportError — структурный отказ импорта с перечнем найденных
// заголовков (чтобы UI мог объяснить, почему ничего не вышло).
type ImportError struct {
	Reason  string   `json:"error"`
	Headers []string `json:"headers"`
}

func (e *ImportError) Error() string {
	return fmt.Sprintf("import failed: %s (headers: %d)", e.Reason, len(e.Headers))
}
