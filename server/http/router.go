package serverhttp

import (
	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"tea-import-service/internal/config"
	impHnd "tea-import-service/internal/importer/handler"
	"tea-import-service/internal/middleware"
	"tea-import-service/server/http/handlers"
)

func NewRouter(cfg config.Config, logger zerolog.Logger) *chi.Mux {
	r := chi.NewRouter()

	// порядок важен: recover -> requestID -> logging -> cors -> limit
	r.Use(middleware.Recover(logger))
	r.Use(middleware.RequestID())
	r.Use(middleware.Logging(logger))
	r.Use(middleware.CORS(cfg.AllowOrigins))
	r.Use(middleware.LimitBytes(int64(cfg.MaxUploadMB) * 1024 * 1024))

	// health-check
	r.Get("/health", handlers.Health)

	// импорт: список листов книги и превью разбора выбранного листа
	r.Post("/import/sheets", impHnd.Sheets(cfg, logger))
	r.Post("/import/preview", impHnd.Preview(cfg, logger))

	return r
}
