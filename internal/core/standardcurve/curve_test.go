package standardcurve

import (
	"math"
	"testing"

	"copyquant/internal/core/dilution"
	perr "copyquant/internal/platform/errors"
	"copyquant/internal/platform/testkit"
)

// ladder builds the canonical 5-point 10-fold series from 1e10 copies
// with exactly linear Cts: slope -3, intercept 40
func ladder(t *testing.T) []dilution.Point {
	t.Helper()
	points, err := dilution.Build(1e10, []dilution.Entry{
		{Label: "std-1", Ct: 10},
		{Label: "std-2", Ct: 13},
		{Label: "std-3", Ct: 16},
		{Label: "std-4", Ct: 19},
		{Label: "std-5", Ct: 22},
	})
	if err != nil {
		t.Fatalf("build ladder: %v", err)
	}
	return points
}

func TestFit_ExactLine(t *testing.T) {
	curve, err := Fit(ladder(t))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	testkit.InDelta(t, -3, curve.Slope, 1e-9)
	testkit.InDelta(t, 40, curve.Intercept, 1e-9)
	if curve.RSquared != 1 {
		t.Fatalf("r_squared = %v, want exactly 1", curve.RSquared)
	}
	testkit.InDelta(t, 1e6, curve.LimitOfDetection, 1e-3)
	if len(curve.Residuals) != 5 {
		t.Fatalf("got %d residuals", len(curve.Residuals))
	}
	for _, r := range curve.Residuals {
		testkit.InDelta(t, 0, r, 1e-9)
	}
}

func TestFit_NearLinearNoise(t *testing.T) {
	points := ladder(t)
	// nudge Cts slightly off the line
	points[1].Ct += 0.05
	points[3].Ct -= 0.05

	curve, err := Fit(points)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if curve.RSquared <= 0.99 {
		t.Fatalf("r_squared = %v, want > 0.99 for near-linear data", curve.RSquared)
	}
	if curve.RSquared > 1 {
		t.Fatalf("r_squared = %v exceeds 1", curve.RSquared)
	}
}

func TestFit_HorizontalLadder(t *testing.T) {
	// distinct copies with identical Cts is valid input: the fit is an
	// exact horizontal line, not a regression failure
	points := []dilution.Point{
		{Copies: 1e8, Ct: 20},
		{Copies: 1e6, Ct: 20},
		{Copies: 1e4, Ct: 20},
	}

	curve, err := Fit(points)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	testkit.InDelta(t, 0, curve.Slope, 1e-12)
	testkit.InDelta(t, 20, curve.Intercept, 1e-12)
	if curve.RSquared != 1 {
		t.Fatalf("r_squared = %v, want exactly 1 for an exact horizontal fit", curve.RSquared)
	}
	for _, r := range curve.Residuals {
		testkit.InDelta(t, 0, r, 1e-12)
	}
}

func TestFit_Degenerate(t *testing.T) {
	cases := []struct {
		name   string
		points []dilution.Point
	}{
		{"no points", nil},
		{"one point", []dilution.Point{{Copies: 1e10, Ct: 10}}},
		{"identical copies", []dilution.Point{
			{Copies: 1e8, Ct: 10},
			{Copies: 1e8, Ct: 13},
			{Copies: 1e8, Ct: 16},
		}},
		{"non-positive copies", []dilution.Point{
			{Copies: 1e8, Ct: 10},
			{Copies: 0, Ct: 13},
		}},
		{"negative copies", []dilution.Point{
			{Copies: 1e8, Ct: 10},
			{Copies: -1e4, Ct: 13},
		}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := Fit(tc.points); !perr.IsFit(err) {
				t.Fatalf("expected fit error, got %v", err)
			}
		})
	}
}

func TestEfficiency(t *testing.T) {
	curve := Curve{Slope: -3}
	eff, err := curve.Efficiency()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// (10^(1/3) - 1) * 100
	testkit.InDelta(t, (math.Pow(10, 1.0/3)-1)*100, eff, 1e-9)

	// the textbook perfect assay: slope -3.3219 gives ~100%
	perfect := Curve{Slope: -1 / math.Log10(2)}
	eff, err = perfect.Efficiency()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	testkit.InDelta(t, 100, eff, 1e-9)

	if _, err := (Curve{Slope: 0}).Efficiency(); !perr.IsFit(err) {
		t.Fatalf("expected fit error for zero slope, got %v", err)
	}
}

func TestEstimateUnknown_RoundTrip(t *testing.T) {
	curve, err := Fit(ladder(t))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// a Ct on the line maps straight back to that dilution's copies
	copies, err := EstimateUnknown(curve, 16, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	testkit.InRelative(t, 1e8, copies, 1e-9)

	// the dilution factor scales back to the undiluted sample
	copies, err = EstimateUnknown(curve, 16, 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	testkit.InRelative(t, 1e9, copies, 1e-9)
}

func TestEstimateUnknown_Errors(t *testing.T) {
	curve := Curve{Slope: -3, Intercept: 40}

	if _, err := EstimateUnknown(curve, 16, 0); !perr.IsValidation(err) {
		t.Fatalf("expected validation error for zero dilution factor, got %v", err)
	}
	if _, err := EstimateUnknown(curve, 16, -2); !perr.IsValidation(err) {
		t.Fatalf("expected validation error for negative dilution factor, got %v", err)
	}
	flat := Curve{Slope: 0, Intercept: 20}
	if _, err := EstimateUnknown(flat, 16, 1); !perr.IsFit(err) {
		t.Fatalf("expected fit error for zero slope, got %v", err)
	}
}
