package main

import (
	"context"
	"errors"

	"quanta/internal/catalog"
	"quanta/internal/convert"

	"github.com/danielgtaylor/huma/v2"
)

// ConvertInput defines the query parameters for the convert endpoint
type ConvertInput struct {
	Quantity string  `query:"quantity" required:"true" example:"length" doc:"Quantity name, e.g. length or temperature"`
	Value    float64 `query:"value" required:"true" example:"5" doc:"Value expressed in the source unit"`
	From     string  `query:"from" required:"true" example:"km" doc:"Source unit name, symbol, or alias"`
	To       string  `query:"to" required:"true" example:"m" doc:"Target unit name, symbol, or alias"`
}

// ConvertOutput wraps a single conversion result
type ConvertOutput struct {
	Body convert.Result
}

// handleConvert converts a value between two named units
func (app *App) handleConvert(ctx context.Context, input *ConvertInput) (*ConvertOutput, error) {
	result, err := app.converter.Convert(input.Quantity, input.Value, input.From, input.To)
	if err != nil {
		// Unknown names are client errors
		if errors.Is(err, catalog.ErrUnknownQuantity) || errors.Is(err, catalog.ErrUnknownUnit) {
			return nil, huma.Error400BadRequest(err.Error())
		}

		app.logger.Error("conversion failed",
			"quantity", input.Quantity,
			"from", input.From,
			"to", input.To,
			"error", err,
		)
		return nil, huma.Error500InternalServerError("failed to convert")
	}

	return &ConvertOutput{Body: *result}, nil
}

// ListQuantitiesOutput lists every supported quantity
type ListQuantitiesOutput struct {
	Body struct {
		Quantities []convert.QuantityInfo `json:"quantities"`
	}
}

// handleListQuantities lists every supported quantity with its units
func (app *App) handleListQuantities(ctx context.Context, input *struct{}) (*ListQuantitiesOutput, error) {
	resp := &ListQuantitiesOutput{}
	resp.Body.Quantities = app.converter.Quantities()
	return resp, nil
}

// ListUnitsInput identifies the quantity whose units to list
type ListUnitsInput struct {
	Quantity string `path:"quantity" example:"length" doc:"Quantity name"`
}

// ListUnitsOutput lists the units of one quantity
type ListUnitsOutput struct {
	Body struct {
		Quantity string             `json:"quantity"`
		Units    []convert.UnitInfo `json:"units"`
	}
}

// handleListUnits lists the named units of one quantity
func (app *App) handleListUnits(ctx context.Context, input *ListUnitsInput) (*ListUnitsOutput, error) {
	units, err := app.converter.Units(input.Quantity)
	if err != nil {
		if errors.Is(err, catalog.ErrUnknownQuantity) {
			return nil, huma.Error404NotFound(err.Error())
		}

		app.logger.Error("failed to list units", "quantity", input.Quantity, "error", err)
		return nil, huma.Error500InternalServerError("failed to list units")
	}

	resp := &ListUnitsOutput{}
	resp.Body.Quantity = input.Quantity
	resp.Body.Units = units
	return resp, nil
}
