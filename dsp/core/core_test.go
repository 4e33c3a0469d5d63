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

func TestNearlyEqual(t *testing.T) {
	if !NearlyEqual(1.0, 1.0+1e-13, 1e-12) {
		t.Fatal("expected values to be nearly equal")
	}

	if NearlyEqual(1.0, 1.1, 1e-3) {
		t.Fatal("expected values to differ")
	}
}

func TestIsFinite(t *testing.T) {
	if !IsFinite(1) || IsFinite(math.NaN()) || IsFinite(math.Inf(1)) {
		t.Fatal("IsFinite misclassified a value")
	}
}

func TestDBConversions(t *testing.T) {
	db := LinearToDB(DBToLinear(-6))
	if !NearlyEqual(db, -6, 1e-10) {
		t.Fatalf("LinearToDB(DBToLinear(-6)) = %v, want -6", db)
	}

	if DBToLinear(math.Inf(-1)) != 0 {
		t.Fatal("expected silence for -Inf dB")
	}

	if !math.IsInf(LinearToDB(0), -1) {
		t.Fatal("expected -Inf for zero")
	}

	if !math.IsNaN(LinearToDB(-1)) {
		t.Fatal("expected NaN for negative amplitude")
	}
}

func TestClampedDecibels(t *testing.T) {
	if got := DBToLinearClamped(-100, -90); got != 0 {
		t.Fatalf("DBToLinearClamped below floor = %v, want 0", got)
	}

	if got := DBToLinearClamped(0, -90); got != 1 {
		t.Fatalf("DBToLinearClamped(0) = %v, want 1", got)
	}

	if got := LinearToDBClamped(1e-9, 1e-6); !math.IsInf(got, -1) {
		t.Fatalf("LinearToDBClamped below floor = %v, want -Inf", got)
	}

	if got := LinearToDBClamped(10, 1e-6); !NearlyEqual(got, 20, 1e-12) {
		t.Fatalf("LinearToDBClamped(10) = %v, want 20", got)
	}
}

func TestVolumeMapping(t *testing.T) {
	if got := VolumeToLinearClamped(0.5, 1e-6); got != 0.25 {
		t.Fatalf("VolumeToLinearClamped(0.5) = %v, want 0.25", got)
	}

	if got := VolumeToLinearClamped(1e-4, 1e-6); got != 0 {
		t.Fatalf("VolumeToLinearClamped(1e-4) = %v, want 0", got)
	}

	if got := LinearToVolumeClamped(0.25, 1e-6); got != 0.5 {
		t.Fatalf("LinearToVolumeClamped(0.25) = %v, want 0.5", got)
	}
}

func TestApplyProcessorOptions(t *testing.T) {
	cfg := ApplyProcessorOptions(WithSampleRate(96000), WithBlockSize(2048))
	if cfg.SampleRate != 96000 || cfg.BlockSize != 2048 {
		t.Fatalf("cfg = %+v", cfg)
	}

	if got := ApplyProcessorOptions(WithSampleRate(0), WithBlockSize(-1), nil); got != DefaultProcessorConfig() {
		t.Fatalf("invalid options changed config: %+v", got)
	}
}
