package main

import (
	"encoding/json"
	"log/slog"
	"math"
	"net/http"
	"testing"

	"quanta/internal/convert"

	"github.com/danielgtaylor/huma/v2/humatest"
)

func newTestApp(t *testing.T) (*App, humatest.TestAPI) {
	t.Helper()

	_, api := humatest.New(t)
	app := &App{
		api:       api,
		logger:    slog.Default(),
		converter: convert.NewService(slog.Default()),
	}
	app.registerRoutes()
	return app, api
}

func TestHandlePing(t *testing.T) {
	_, api := newTestApp(t)

	resp := api.Get("/ping")
	if resp.Code != http.StatusOK {
		t.Fatalf("GET /ping status = %d, want %d", resp.Code, http.StatusOK)
	}

	var body struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(resp.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if body.Message != "pong" {
		t.Errorf("message = %q, want %q", body.Message, "pong")
	}
}

func TestHandleConvert(t *testing.T) {
	_, api := newTestApp(t)

	tests := []struct {
		name     string
		url      string
		expected float64
		display  string
	}{
		{
			name:     "kilometers to meters",
			url:      "/convert?quantity=length&value=5.5&from=km&to=m",
			expected: 5500,
			display:  "5500 m",
		},
		{
			name:     "celsius to fahrenheit",
			url:      "/convert?quantity=temperature&value=100&from=celsius&to=fahrenheit",
			expected: 212,
			display:  "212 °F",
		},
		{
			name:     "kilograms to pounds",
			url:      "/convert?quantity=mass&value=20&from=kg&to=lb",
			expected: 44.092452436975,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := api.Get(tt.url)
			if resp.Code != http.StatusOK {
				t.Fatalf("status = %d, want %d (body: %s)", resp.Code, http.StatusOK, resp.Body.String())
			}

			var result convert.Result
			if err := json.Unmarshal(resp.Body.Bytes(), &result); err != nil {
				t.Fatalf("failed to decode response: %v", err)
			}

			if math.Abs(result.Result-tt.expected) > 1e-6 {
				t.Errorf("result = %v, want %v", result.Result, tt.expected)
			}
			if tt.display != "" && result.Display != tt.display {
				t.Errorf("display = %q, want %q", result.Display, tt.display)
			}
		})
	}
}

func TestHandleConvertBadRequest(t *testing.T) {
	_, api := newTestApp(t)

	tests := []struct {
		name string
		url  string
	}{
		{
			name: "unknown quantity",
			url:  "/convert?quantity=flavor&value=1&from=m&to=km",
		},
		{
			name: "unknown unit",
			url:  "/convert?quantity=length&value=1&from=parsec&to=km",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := api.Get(tt.url)
			if resp.Code != http.StatusBadRequest {
				t.Errorf("status = %d, want %d", resp.Code, http.StatusBadRequest)
			}
		})
	}
}

func TestHandleListQuantities(t *testing.T) {
	_, api := newTestApp(t)

	resp := api.Get("/quantities")
	if resp.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", resp.Code, http.StatusOK)
	}

	var body struct {
		Quantities []convert.QuantityInfo `json:"quantities"`
	}
	if err := json.Unmarshal(resp.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(body.Quantities) != 22 {
		t.Errorf("got %d quantities, want 22", len(body.Quantities))
	}
}

func TestHandleListUnits(t *testing.T) {
	_, api := newTestApp(t)

	resp := api.Get("/quantities/temperature/units")
	if resp.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", resp.Code, http.StatusOK)
	}

	var body struct {
		Quantity string             `json:"quantity"`
		Units    []convert.UnitInfo `json:"units"`
	}
	if err := json.Unmarshal(resp.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(body.Units) != 3 {
		t.Errorf("temperature has %d units, want 3", len(body.Units))
	}

	if resp := api.Get("/quantities/flavor/units"); resp.Code != http.StatusNotFound {
		t.Errorf("unknown quantity status = %d, want %d", resp.Code, http.StatusNotFound)
	}
}
