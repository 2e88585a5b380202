package api

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/rs/zerolog"
	"sendqr/internal/api/handlers"
	"sendqr/internal/api/middleware"
	"sendqr/internal/pkg/errors"
)

type Dependencies struct {
	PageHandler    *handlers.PageHandler
	LinkHandler    *handlers.LinkHandler
	QRHandler      *handlers.QRHandler
	OpenHandler    *handlers.OpenHandler
	HealthHandler  *handlers.HealthHandler
	MetricsHandler *handlers.MetricsHandler
	RateLimiter    *middleware.RateLimiter
	Logger         zerolog.Logger
}

func NewRouter(deps *Dependencies) http.Handler {
	router := httprouter.New()
	limit := deps.RateLimiter.Limit

	// Page
	router.GET("/", chain(deps.PageHandler.Render, limit(middleware.LimitPage)))
	router.POST("/", chain(deps.PageHandler.Render, limit(middleware.LimitPage)))

	// Invocation
	router.GET("/open", chain(deps.OpenHandler.Open, limit(middleware.LimitAPI)))

	// API
	router.GET("/api/v1/links/preview", chain(deps.LinkHandler.Preview, limit(middleware.LimitAPI)))
	router.POST("/api/v1/links/preview", chain(deps.LinkHandler.Preview, limit(middleware.LimitAPI)))
	router.GET("/api/v1/link.txt", chain(deps.LinkHandler.Text, limit(middleware.LimitAPI)))
	router.GET("/api/v1/qr", chain(deps.QRHandler.Get, limit(middleware.LimitQR)))

	// Operations
	router.GET("/health", wrap(deps.HealthHandler.Check))
	router.GET("/metrics", wrap(deps.MetricsHandler.Export))

	router.NotFound = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		errors.WriteError(w, http.StatusNotFound, errors.ErrCodeNotFound, "Not found", nil)
	})

	router.PanicHandler = func(w http.ResponseWriter, r *http.Request, v interface{}) {
		zerolog.Ctx(r.Context()).Error().Interface("panic", v).Str("path", r.URL.Path).Msg("recovered from panic")
		errors.WriteError(w, http.StatusInternalServerError, errors.ErrCodeInternal, "Internal server error", nil)
	}

	requestLogger := middleware.NewRequestLogger(deps.Logger)
	return requestLogger.Handle(middleware.NoStore(router))
}

// Helper function to chain middlewares
func chain(handler http.HandlerFunc, middlewares ...func(http.HandlerFunc) http.HandlerFunc) httprouter.Handle {
	for i := len(middlewares) - 1; i >= 0; i-- {
		handler = middlewares[i](handler)
	}
	return wrap(handler)
}

// Convert http.HandlerFunc to httprouter.Handle
func wrap(handler http.HandlerFunc) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
		handler(w, r)
	}
}
