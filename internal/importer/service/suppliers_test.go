package service

import (
	"testing"

	"github.com/stretchr/testify/require"

	"tea-import-service/internal/importer/model"
)

func TestExtractSuppliers_DedupCaseInsensitive(t *testing.T) {
	roles := []model.ColumnRole{
		scalar(model.RoleIdentifier),
		scalar(model.RoleSupplier),
	}
	grid := [][]string{
		{"Код", "Постачальник"},
		{"A-1", "ТОВ Чайка"},
		{"A-2", "тов чайка"},
		{"A-3", "0"},
		{"A-4", ""},
		{"A-5", "ФОП Петренко"},
	}

	got := ExtractSuppliers(grid, 0, roles)
	require.Equal(t, []model.ParsedSupplier{
		{Name: "ТОВ Чайка"}, // первое встреченное написание
		{Name: "ФОП Петренко"},
	}, got)
}

func TestExtractSuppliers_NoSupplierColumn(t *testing.T) {
	roles := []model.ColumnRole{scalar(model.RoleIdentifier)}
	grid := [][]string{{"Код"}, {"A-1"}}
	require.Nil(t, ExtractSuppliers(grid, 0, roles))
}
