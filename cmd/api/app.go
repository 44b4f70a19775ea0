package main

import (
	"log/slog"
	"net/http"

	"quanta/internal/convert"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humago"
	"github.com/google/uuid"
)

// App encapsulates application dependencies
type App struct {
	mux       *http.ServeMux
	api       huma.API
	logger    *slog.Logger
	converter convert.Service
}

// NewApp creates a new application with injected dependencies
func NewApp(logger *slog.Logger) *App {
	// Create standard library HTTP mux
	mux := http.NewServeMux()

	// Create Huma API with standard library adapter
	config := huma.DefaultConfig("Quanta API", "1.0.0")
	config.Info.Description = "Unit-of-measurement conversion API"
	config.Servers = []*huma.Server{
		{URL: "http://localhost:8080", Description: "Development server"},
	}

	api := humago.New(mux, config)

	app := &App{
		mux:       mux,
		api:       api,
		logger:    logger,
		converter: convert.NewService(logger),
	}

	// Tag each request with an ID for log correlation
	api.UseMiddleware(app.requestID)

	logger.Info("application initialized")

	// Register routes
	app.registerRoutes()

	return app
}

// requestID assigns every request a UUID, echoes it in the response, and
// logs the request with it.
func (app *App) requestID(ctx huma.Context, next func(huma.Context)) {
	id := uuid.NewString()
	ctx.SetHeader("X-Request-Id", id)
	app.logger.Debug("request",
		"id", id,
		"method", ctx.Method(),
		"path", ctx.URL().Path,
	)
	next(ctx)
}

// Run starts the HTTP server
func (app *App) Run(addr string) error {
	return http.ListenAndServe(addr, app.mux)
}
