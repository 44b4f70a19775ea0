package main

import (
	"github.com/danielgtaylor/huma/v2"
)

// registerRoutes sets up all API endpoints
func (app *App) registerRoutes() {
	// Health check endpoint
	huma.Register(app.api, huma.Operation{
		OperationID: "ping",
		Method:      "GET",
		Path:        "/ping",
		Summary:     "Ping health check",
		Description: "Check if the API is running",
		Tags:        []string{"health"},
	}, app.handlePing)

	// Conversion endpoint
	huma.Register(app.api, huma.Operation{
		OperationID: "convert",
		Method:      "GET",
		Path:        "/convert",
		Summary:     "Convert between units",
		Description: "Convert a value between two named units of the same quantity",
		Tags:        []string{"convert"},
	}, app.handleConvert)

	// Discovery endpoints
	huma.Register(app.api, huma.Operation{
		OperationID: "list-quantities",
		Method:      "GET",
		Path:        "/quantities",
		Summary:     "List quantities",
		Description: "List every supported quantity with its units",
		Tags:        []string{"discovery"},
	}, app.handleListQuantities)

	huma.Register(app.api, huma.Operation{
		OperationID: "list-units",
		Method:      "GET",
		Path:        "/quantities/{quantity}/units",
		Summary:     "List units of a quantity",
		Description: "List the named units of one quantity",
		Tags:        []string{"discovery"},
	}, app.handleListUnits)
}
