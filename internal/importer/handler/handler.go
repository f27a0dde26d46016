package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"tea-import-service/internal/config"
	"tea-import-service/internal/fileio"
	"tea-import-service/internal/importer/model"
	impSvc "tea-import-service/internal/importer/service"
)

// Sheets возвращает список листов загруженной книги, чтобы UI дал
// пользователю выбрать вкладку перед разбором.
func Sheets(cfg config.Config, logger zerolog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := reqLogger(logger, r)

		file, header, ok := formFile(w, r, cfg)
		if !ok {
			return
		}
		defer file.Close()

		sheets, err := fileio.ListSheets(file, header.Filename)
		if err != nil {
			http.Error(w, "failed to read workbook: "+err.Error(), http.StatusBadRequest)
			return
		}

		writeJSON(w, log, map[string]any{"sheets": sheets})
	}
}

// Preview запускает конвейер импорта по одному выбранному листу и отдаёт
// превью: позиции, поставщики, диагностика. Ничего не сохраняет — решение
// о коммите принимает вызывающая сторона.
func Preview(cfg config.Config, logger zerolog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		log := reqLogger(logger, r)

		file, header, ok := formFile(w, r, cfg)
		if !ok {
			return
		}
		defer file.Close()

		sheet := r.FormValue("sheet")
		grid, err := fileio.ReadAnyGrid(file, header.Filename, sheet)
		if err != nil {
			http.Error(w, "failed to read workbook: "+err.Error(), http.StatusBadRequest)
			return
		}

		res, err := impSvc.Run(grid, time.Now())
		if err != nil {
			var ie *model.ImportError
			if errors.As(err, &ie) {
				// структурный отказ: лист нечитаем целиком, UI покажет
				// найденные заголовки
				log.Warn().
					Str("file", header.Filename).
					Str("sheet", sheet).
					Str("reason", ie.Reason).
					Msg("import rejected")
				w.Header().Set("Content-Type", "application/json; charset=utf-8")
				w.WriteHeader(http.StatusUnprocessableEntity)
				writeBody(w, log, ie)
				return
			}
			http.Error(w, "import failed", http.StatusInternalServerError)
			return
		}

		writeJSON(w, log, res)

		log.Info().
			Str("file", header.Filename).
			Str("sheet", sheet).
			Int("items", len(res.Items)).
			Int("suppliers", len(res.Suppliers)).
			Int("skipped", res.Diagnostics.SkippedRowCount).
			Dur("elapsed", time.Since(start)).
			Msg("import preview done")
	}
}
