package testutil

import (
	"math"
	"testing"
)

// RequireNear fails t when got is not within eps of want.
func RequireNear(t *testing.T, got, want, eps float64, what string) {
	t.Helper()

	if diff := math.Abs(got - want); diff > eps {
		t.Fatalf("%s: got %v, want %v (diff %v > eps %v)", what, got, want, diff, eps)
	}
}

// RequireSameSurface fails t unless the two surfaces are bit-identical.
func RequireSameSurface(t *testing.T, got, want [][]float64) {
	t.Helper()

	if len(got) != len(want) {
		t.Fatalf("row count mismatch: got %d, want %d", len(got), len(want))
	}

	for ki := range got {
		if len(got[ki]) != len(want[ki]) {
			t.Fatalf("row %d length mismatch: got %d, want %d", ki, len(got[ki]), len(want[ki]))
		}

		for di := range got[ki] {
			if got[ki][di] != want[ki][di] {
				t.Fatalf("cell (%d,%d): %v != %v", ki, di, got[ki][di], want[ki][di])
			}
		}
	}
}

// RequireFiniteSurface fails t when any cell is NaN or Inf.
func RequireFiniteSurface(t *testing.T, values [][]float64) {
	t.Helper()

	for ki, row := range values {
		for di, v := range row {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				t.Fatalf("cell (%d,%d): non-finite value %v", ki, di, v)
			}
		}
	}
}
