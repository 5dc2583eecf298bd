package route

import (
	"errors"
	"testing"
)

func TestFormatDistanceKilometers(t *testing.T) {
	got := FormatDistance(1000.0, Kilometers)
	if got != "Distance Travelled: 1.00 kilometers" {
		t.Fatalf("unexpected display: %q", got)
	}
}

func TestFormatDistanceMiles(t *testing.T) {
	got := FormatDistance(1609.34, Miles)
	if got != "Distance Travelled: 1.00 miles" {
		t.Fatalf("unexpected display: %q", got)
	}
}

func TestFormatDistanceZero(t *testing.T) {
	if got := FormatDistance(0, Miles); got != "Distance Travelled: 0.00 miles" {
		t.Fatalf("unexpected display: %q", got)
	}
}

func TestParseUnit(t *testing.T) {
	cases := map[string]Unit{
		"Miles":      Miles,
		"miles":      Miles,
		"KILOMETERS": Kilometers,
		"Kilometers": Kilometers,
	}
	for raw, want := range cases {
		got, err := ParseUnit(raw)
		if err != nil || got != want {
			t.Fatalf("parse %q: got %v, %v", raw, got, err)
		}
	}

	if _, err := ParseUnit("furlongs"); !errors.Is(err, ErrUnknownUnit) {
		t.Fatalf("expected unknown unit error, got %v", err)
	}
}

func TestUnitFactor(t *testing.T) {
	if Miles.Factor() != 0.0006213712 {
		t.Fatalf("unexpected miles factor")
	}
	if Kilometers.Factor() != 0.001 {
		t.Fatalf("unexpected kilometers factor")
	}
}
