package handler

import (
	"encoding/json"
	"mime/multipart"
	"net/http"

	"github.com/rs/zerolog"

	"tea-import-service/internal/config"
)

// привязываем req_id из заголовка, если middleware его проставил
func reqLogger(logger zerolog.Logger, r *http.Request) zerolog.Logger {
	if reqID := r.Header.Get("X-Request-ID"); reqID != "" {
		return logger.With().Str("req_id", reqID).Logger()
	}
	return logger
}

// formFile достаёт загруженную книгу из multipart-формы. При ошибке ответ
// уже записан, вызывающему остаётся выйти.
func formFile(w http.ResponseWriter, r *http.Request, cfg config.Config) (multipart.File, *multipart.FileHeader, bool) {
	if err := r.ParseMultipartForm(int64(cfg.MaxUploadMB) << 20); err != nil {
		http.Error(w, "bad multipart form: "+err.Error(), http.StatusBadRequest)
		return nil, nil, false
	}
	file, header, err := r.FormFile("file")
	if err != nil {
		http.Error(w, "missing file: "+err.Error(), http.StatusBadRequest)
		return nil, nil, false
	}
	return file, header, true
}

func writeJSON(w http.ResponseWriter, log zerolog.Logger, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	writeBody(w, log, v)
}

func writeBody(w http.ResponseWriter, log zerolog.Logger, v any) {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		log.Error().Err(err).Msg("write json")
	}
}
