package convert

import (
	"fmt"
	"log/slog"

	"quanta/internal/catalog"
	"quanta/internal/measure"
)

// Service performs named unit conversions for the API layer
type Service interface {
	// Convert converts a value between two named units of a quantity
	Convert(quantity string, value float64, from, to string) (*Result, error)

	// Quantities lists every supported quantity with its units
	Quantities() []QuantityInfo

	// Units lists the units of a single quantity
	Units(quantity string) ([]UnitInfo, error)
}

// Result is one completed conversion
type Result struct {
	Quantity string  `json:"quantity"`
	Value    float64 `json:"value"`
	From     string  `json:"from"`
	To       string  `json:"to"`
	Result   float64 `json:"result"`
	Display  string  `json:"display" example:"5.5 km" doc:"Result formatted as value and unit symbol"`
}

// QuantityInfo describes one quantity for discovery endpoints
type QuantityInfo struct {
	Name     string     `json:"name" example:"length"`
	BaseUnit string     `json:"baseUnit" example:"m"`
	Units    []UnitInfo `json:"units"`
}

// UnitInfo describes one named unit
type UnitInfo struct {
	Name    string   `json:"name" example:"kilometers"`
	Symbol  string   `json:"symbol" example:"km"`
	Aliases []string `json:"aliases,omitempty"`
}

// converterService implements the Service interface
type converterService struct {
	logger *slog.Logger
}

// NewService creates a conversion service backed by the static unit catalog
func NewService(logger *slog.Logger) Service {
	return &converterService{logger: logger}
}

// Convert resolves both unit names and applies the conversion. Only name
// resolution can fail; the arithmetic itself follows IEEE-754 and never
// errors, so non-finite inputs produce non-finite outputs.
func (s *converterService) Convert(quantity string, value float64, from, to string) (*Result, error) {
	q, err := catalog.Get(quantity)
	if err != nil {
		return nil, err
	}

	src, err := q.Lookup(from)
	if err != nil {
		return nil, err
	}
	dst, err := q.Lookup(to)
	if err != nil {
		return nil, fmt.Errorf("target unit: %w", err)
	}

	converted := dst.Conversion().FromBase(src.Conversion().ToBase(value))

	s.logger.Debug("converted",
		"quantity", q.Name,
		"value", value,
		"from", src.Name,
		"to", dst.Name,
		"result", converted,
	)

	return &Result{
		Quantity: q.Name,
		Value:    value,
		From:     src.Symbol,
		To:       dst.Symbol,
		Result:   converted,
		Display:  measure.Format(converted, dst.Symbol),
	}, nil
}

// Quantities lists every registered quantity
func (s *converterService) Quantities() []QuantityInfo {
	names := catalog.Quantities()
	out := make([]QuantityInfo, 0, len(names))
	for _, name := range names {
		q, err := catalog.Get(name)
		if err != nil {
			// registry names come from the registry itself
			continue
		}
		out = append(out, quantityInfo(q))
	}
	return out
}

// Units lists the units of one quantity
func (s *converterService) Units(quantity string) ([]UnitInfo, error) {
	q, err := catalog.Get(quantity)
	if err != nil {
		return nil, err
	}
	return quantityInfo(q).Units, nil
}

func quantityInfo(q *catalog.Quantity) QuantityInfo {
	info := QuantityInfo{
		Name:     q.Name,
		BaseUnit: q.BaseUnit().Symbol,
	}
	for _, u := range q.Units() {
		info.Units = append(info.Units, UnitInfo{
			Name:    u.Name,
			Symbol:  u.Symbol,
			Aliases: u.Aliases,
		})
	}
	return info
}
