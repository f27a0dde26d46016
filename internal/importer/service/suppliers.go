package service

import (
	"strings"

	"tea-import-service/internal/importer/model"
)

// ExtractSuppliers — независимый проход по тем же строкам: колонка
// поставщика, без пустых и заглушек "0", дедупликация без учёта регистра
// с сохранением первого написания.
func ExtractSuppliers(grid [][]string, headerRow int, roles []model.ColumnRole) []model.ParsedSupplier {
	col := -1
	for i, role := range roles {
		if role.Kind == model.RoleSupplier {
			col = i
			break
		}
	}
	if col < 0 {
		return nil
	}

	seen := map[string]struct{}{}
	var out []model.ParsedSupplier
	for r := headerRow + 1; r < len(grid); r++ {
		name := cellAt(grid[r], col)
		if name == "" || name == "0" {
			continue
		}
		key := strings.ToLower(name)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, model.ParsedSupplier{Name: name})
	}
	return out
}
