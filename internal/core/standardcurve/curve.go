// Package standardcurve fits the qPCR standard curve (Ct against
// log10 copy number) and inverts it to quantify unknown samples
package standardcurve

import (
	"math"

	"github.com/gonum/stat"

	"copyquant/internal/core/dilution"
	perr "copyquant/internal/platform/errors"
)

// Curve is an immutable ordinary least squares fit of Ct on log10(copies)
type Curve struct {
	Slope     float64
	Intercept float64
	RSquared  float64

	// Residuals holds observed minus fitted Ct per input point, in order
	Residuals []float64

	// LimitOfDetection is the smallest copy number among the fit points
	LimitOfDetection float64
}

// Fit performs OLS regression of Ct on log10(copy number) over the given
// dilution points. It needs at least two points with distinct log10 copies
// and strictly positive copy numbers; anything else is a FitError
func Fit(points []dilution.Point) (Curve, error) {
	x, y, err := axes(points)
	if err != nil {
		return Curve{}, err
	}

	intercept, slope := stat.LinearRegression(x, y, nil, false)
	if !finite(slope) || !finite(intercept) {
		return Curve{}, perr.Fitf("insufficient or degenerate data for regression")
	}

	r2 := stat.RSquared(x, y, nil, intercept, slope)
	// a horizontal ladder (all Cts equal) has zero total sum of squares, so
	// RSquared divides 0/0; the fit is exact there, report 1
	if math.IsNaN(r2) {
		r2 = 1
	}
	// exactly collinear data can produce 1 + epsilon noise; clamp to [0, 1]
	r2 = math.Max(0, math.Min(1, r2))

	resid := make([]float64, len(x))
	lod := math.Inf(1)
	for i := range x {
		resid[i] = y[i] - (slope*x[i] + intercept)
		lod = math.Min(lod, points[i].Copies)
	}

	return Curve{
		Slope:            slope,
		Intercept:        intercept,
		RSquared:         r2,
		Residuals:        resid,
		LimitOfDetection: lod,
	}, nil
}

// Efficiency returns the amplification efficiency in percent,
// (10^(-1/slope) - 1) * 100. A perfect assay doubles per cycle
// (slope ~ -3.32, efficiency ~ 100%). Undefined for a zero slope
func (c Curve) Efficiency() (float64, error) {
	if c.Slope == 0 {
		return 0, perr.Fitf("efficiency undefined for zero slope")
	}
	return (math.Pow(10, -1/c.Slope) - 1) * 100, nil
}

// EstimateUnknown inverts the curve for one unknown sample: the measured Ct
// maps to copies at the measured dilution, then the dilution factor scales
// back to the undiluted sample
func EstimateUnknown(c Curve, ct, dilutionFactor float64) (float64, error) {
	if dilutionFactor <= 0 {
		return 0, perr.Validationf("dilution factor must be positive, got %g", dilutionFactor)
	}
	// a horizontal fit can emerge from valid input (all Cts equal), so the
	// zero slope precondition is re-checked at inversion time
	if c.Slope == 0 {
		return 0, perr.Fitf("cannot invert standard curve with zero slope")
	}
	logCopies := (ct - c.Intercept) / c.Slope
	return math.Pow(10, logCopies) * dilutionFactor, nil
}

// axes projects dilution points onto regression axes, rejecting inputs the
// regression cannot support
func axes(points []dilution.Point) (x, y []float64, err error) {
	if len(points) < 2 {
		return nil, nil, perr.Fitf("insufficient or degenerate data for regression: need at least 2 points, got %d", len(points))
	}
	x = make([]float64, len(points))
	y = make([]float64, len(points))
	distinct := false
	for i, p := range points {
		if p.Copies <= 0 {
			return nil, nil, perr.Fitf("copy number must be positive to take log10, got %g at index %d", p.Copies, i)
		}
		x[i] = math.Log10(p.Copies)
		y[i] = p.Ct
		if i > 0 && x[i] != x[0] {
			distinct = true
		}
	}
	if !distinct {
		return nil, nil, perr.Fitf("insufficient or degenerate data for regression: all log10(copies) identical")
	}
	return x, y, nil
}

func finite(f float64) bool { return !math.IsNaN(f) && !math.IsInf(f, 0) }
