package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"tea-import-service/internal/importer/model"
)

// импорт «происходит» 10 декабря 2024
var testNow = time.Date(2024, time.December, 10, 12, 0, 0, 0, time.UTC)

func classifyOne(t *testing.T, header, monthCell string) model.ColumnRole {
	t.Helper()
	role, _ := classifyColumn(header, monthCell, testNow)
	return role
}

func TestClassifyColumn_ScalarRoles(t *testing.T) {
	tests := []struct {
		header string
		want   model.RoleKind
	}{
		{"Код", model.RoleIdentifier},
		{"Артикул", model.RoleIdentifier},
		{"SKU", model.RoleIdentifier},
		{"Назва", model.RoleName},
		{"Наименование", model.RoleName},
		{"Од.вим.", model.RoleUnit},
		{"Единица измерения", model.RoleUnit},
		{"Група", model.RoleCategoryLabel},
		{"Місце зберігання", model.RoleStorageLocation},
		{"Норма на базову одиницю", model.RoleBaseNorm},
		{"Примітки", model.RoleUnknown},
		{"", model.RoleUnknown},
	}
	for _, tt := range tests {
		require.Equal(t, tt.want, classifyOne(t, tt.header, "").Kind, tt.header)
	}
}

func TestClassifyColumn_StockSnapshot(t *testing.T) {
	role := classifyOne(t, "залишки на 30.11 база", "")
	require.Equal(t, model.RoleStockSnapshot, role.Kind)
	require.Equal(t, "base", role.WarehouseID)
	require.Equal(t, 11*32+30, role.DateScore)

	role = classifyOne(t, "Остатки на 05.03 производство", "")
	require.Equal(t, model.RoleStockSnapshot, role.Kind)
	require.Equal(t, "production", role.WarehouseID)
	require.Equal(t, 3*32+5, role.DateScore)
}

// старый формат: «залишки станом на 1», месяц — из строки над шапкой
func TestClassifyColumn_LegacyStockUsesMonthRow(t *testing.T) {
	role := classifyOne(t, "Залишки станом на 1, ПП Розлив", "листопад 2024")
	require.Equal(t, model.RoleStockSnapshot, role.Kind)
	require.Equal(t, "bottling_tp", role.WarehouseID) // ноябрь — после переименования
	require.Equal(t, 11*32+1, role.DateScore)
}

func TestClassifyColumn_UnresolvedWarehouseDropsColumn(t *testing.T) {
	role, bad := classifyColumn("залишки на 05.03 склад марс", "", testNow)
	require.Equal(t, model.RoleUnknown, role.Kind)
	require.Equal(t, "залишки на 05.03 склад марс", bad)
}

func TestClassifyColumn_ConsumptionExplicitDate(t *testing.T) {
	role := classifyOne(t, "витрати 15.11.2024", "")
	require.Equal(t, model.RoleConsumption, role.Kind)
	require.Equal(t, "2024-11", role.YearMonth)
	require.True(t, role.IsActual)
}

func TestClassifyColumn_ConsumptionBareMonth(t *testing.T) {
	role := classifyOne(t, "жовтень 2024", "")
	require.Equal(t, model.RoleConsumption, role.Kind)
	require.Equal(t, "2024-10", role.YearMonth)
	require.True(t, role.IsActual)

	// без года — год импорта
	role = classifyOne(t, "липень", "")
	require.Equal(t, "2024-07", role.YearMonth)
	require.True(t, role.IsActual)

	// текущий месяц — уже план, не факт
	role = classifyOne(t, "грудень 2024", "")
	require.Equal(t, "2024-12", role.YearMonth)
	require.False(t, role.IsActual)

	// будущий год — план
	role = classifyOne(t, "січень 2025", "")
	require.Equal(t, "2025-01", role.YearMonth)
	require.False(t, role.IsActual)
}

func TestClassifyColumn_PlannedSpendFromMonthRow(t *testing.T) {
	role := classifyOne(t, "Планові витрати", "січень 2025")
	require.Equal(t, model.RoleConsumption, role.Kind)
	require.Equal(t, "2025-01", role.YearMonth)
	require.False(t, role.IsActual)
}

// плановые ключи сильнее «залишків»: колонка с обоими словами — расход, не снимок
func TestClassifyColumn_PlanBeatsStock(t *testing.T) {
	role := classifyOne(t, "Плановий залишок витрат", "жовтень 2024")
	require.Equal(t, model.RoleConsumption, role.Kind)
	require.Equal(t, "2024-10", role.YearMonth)
}

func TestClassifyColumn_Supplier(t *testing.T) {
	require.Equal(t, model.RoleSupplier, classifyOne(t, "Постачальник", "").Kind)
	require.Equal(t, model.RoleSupplier, classifyOne(t, "Поставщик", "").Kind)
}

func TestClassifyColumns_MonthRowMergedCells(t *testing.T) {
	headers := []string{"Код", "Назва", "Планові витрати", "Планові витрати"}
	// месяц проставлен только в первой ячейке объединённого диапазона
	monthRow := []string{"", "", "жовтень 2024", ""}

	roles, unresolved := ClassifyColumns(headers, monthRow, testNow)
	require.Empty(t, unresolved)
	require.Equal(t, model.RoleConsumption, roles[2].Kind)
	require.Equal(t, model.RoleConsumption, roles[3].Kind)
	require.Equal(t, "2024-10", roles[3].YearMonth)
}

func TestClassifyColumns_CollectsUnresolvedHeaders(t *testing.T) {
	headers := []string{"Код", "залишки на 01.02 склад нептун"}
	roles, unresolved := ClassifyColumns(headers, nil, testNow)
	require.Equal(t, model.RoleUnknown, roles[1].Kind)
	require.Equal(t, []string{"залишки на 01.02 склад нептун"}, unresolved)
}
