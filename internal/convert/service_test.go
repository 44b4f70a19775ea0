package convert

import (
	"errors"
	"log/slog"
	"math"
	"testing"

	"quanta/internal/catalog"
)

func newTestService() Service {
	return NewService(slog.Default())
}

func TestServiceConvert(t *testing.T) {
	svc := newTestService()

	tests := []struct {
		name     string
		quantity string
		value    float64
		from     string
		to       string
		expected float64
		display  string
	}{
		{
			name:     "length km to m",
			quantity: "length",
			value:    5.5,
			from:     "km",
			to:       "m",
			expected: 5500,
			display:  "5500 m",
		},
		{
			name:     "temperature celsius to fahrenheit",
			quantity: "temperature",
			value:    -40,
			from:     "celsius",
			to:       "fahrenheit",
			expected: -40,
			display:  "-40 °F",
		},
		{
			name:     "identity conversion",
			quantity: "mass",
			value:    12,
			from:     "kg",
			to:       "kg",
			expected: 12,
			display:  "12 kg",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := svc.Convert(tt.quantity, tt.value, tt.from, tt.to)
			if err != nil {
				t.Fatalf("Convert() error = %v", err)
			}
			if math.Abs(res.Result-tt.expected) > 1e-9 {
				t.Errorf("Result = %v, want %v", res.Result, tt.expected)
			}
			if res.Display != tt.display {
				t.Errorf("Display = %q, want %q", res.Display, tt.display)
			}
		})
	}
}

func TestServiceConvertErrors(t *testing.T) {
	svc := newTestService()

	if _, err := svc.Convert("flavor", 1, "m", "km"); !errors.Is(err, catalog.ErrUnknownQuantity) {
		t.Errorf("Convert with unknown quantity error = %v, want ErrUnknownQuantity", err)
	}

	if _, err := svc.Convert("length", 1, "parsec", "km"); !errors.Is(err, catalog.ErrUnknownUnit) {
		t.Errorf("Convert with unknown unit error = %v, want ErrUnknownUnit", err)
	}
}

func TestServiceConvertNonFinite(t *testing.T) {
	svc := newTestService()

	// no validation: non-finite values pass straight through
	res, err := svc.Convert("length", math.Inf(1), "km", "m")
	if err != nil {
		t.Fatalf("Convert(Inf) error = %v", err)
	}
	if !math.IsInf(res.Result, 1) {
		t.Errorf("Convert(Inf) result = %v, want +Inf", res.Result)
	}
}

func TestServiceQuantities(t *testing.T) {
	svc := newTestService()

	infos := svc.Quantities()
	if len(infos) != 22 {
		t.Fatalf("Quantities() returned %d entries, want 22", len(infos))
	}

	for _, info := range infos {
		if info.BaseUnit == "" {
			t.Errorf("quantity %q has no base unit", info.Name)
		}
		if len(info.Units) == 0 {
			t.Errorf("quantity %q has no units", info.Name)
		}
	}
}

func TestServiceUnits(t *testing.T) {
	svc := newTestService()

	infos, err := svc.Units("temperature")
	if err != nil {
		t.Fatalf("Units() error = %v", err)
	}
	if len(infos) != 3 {
		t.Errorf("temperature has %d units, want 3", len(infos))
	}

	if _, err := svc.Units("flavor"); !errors.Is(err, catalog.ErrUnknownQuantity) {
		t.Errorf("Units(unknown) error = %v, want ErrUnknownQuantity", err)
	}
}
