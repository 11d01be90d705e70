package core

import (
	"math"
	"testing"
)

func TestClamp(t *testing.T) {
	tests := []struct {
		name     string
		value    float64
		min      float64
		max      float64
		expected float64
	}{
		{name: "inside", value: 0.5, min: 0, max: 1, expected: 0.5},
		{name: "below", value: -1, min: 0, max: 1, expected: 0},
		{name: "above", value: 2, min: 0, max: 1, expected: 1},
		{name: "swapped", value: 2, min: 1, max: 0, expected: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Clamp(tt.value, tt.min, tt.max)
			if got != tt.expected {
				t.Fatalf("Clamp() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestMachineEpsilon(t *testing.T) {
	if 1+MachineEpsilon == 1 {
		t.Fatal("1+eps must differ from 1")
	}
	if 1+MachineEpsilon/2 != 1 {
		t.Fatal("1+eps/2 must round to 1")
	}
}

func TestFirstNonFinite(t *testing.T) {
	tests := []struct {
		name string
		data []float64
		want int
	}{
		{name: "empty", data: nil, want: -1},
		{name: "finite", data: []float64{1, -2, 0}, want: -1},
		{name: "nan", data: []float64{1, math.NaN(), 3}, want: 1},
		{name: "inf", data: []float64{math.Inf(-1)}, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FirstNonFinite(tt.data); got != tt.want {
				t.Fatalf("FirstNonFinite() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestLinearPowerToDB(t *testing.T) {
	if db := LinearPowerToDB(100); math.Abs(db-20) > 1e-12 {
		t.Fatalf("LinearPowerToDB(100) = %v, want 20", db)
	}
	if !math.IsInf(LinearPowerToDB(0), -1) {
		t.Fatal("expected -Inf for zero power")
	}
	if !math.IsNaN(LinearPowerToDB(-1)) {
		t.Fatal("expected NaN for negative power")
	}
}
