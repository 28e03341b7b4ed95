package standardcurve

import (
	"math/rand"

	"github.com/gonum/stat"
	mstats "github.com/montanaflynn/stats"

	"copyquant/internal/core/dilution"
	perr "copyquant/internal/platform/errors"
)

// DefaultBootstrapSamples is the resample count used when the caller does
// not choose one; matches the interactive tool this service grew out of
const DefaultBootstrapSamples = 200

// DefaultBootstrapSeed keeps repeated runs over identical inputs bit-identical
const DefaultBootstrapSeed = 1

// ConfidenceIntervals are percentile bootstrap 95% bounds for the fit
type ConfidenceIntervals struct {
	SlopeLow      float64
	SlopeHigh     float64
	InterceptLow  float64
	InterceptHigh float64

	// Samples is the number of resamples that produced a usable fit
	Samples int
}

// Bootstrap estimates 95% confidence intervals for slope and intercept by
// resampling points with replacement and refitting. Resamples that collapse
// to fewer than two distinct log10(copies) are skipped. The seed makes the
// procedure deterministic; iters <= 0 selects DefaultBootstrapSamples
func Bootstrap(points []dilution.Point, iters int, seed int64) (ConfidenceIntervals, error) {
	// validate the full set up front so errors are not silently skipped
	if _, _, err := axes(points); err != nil {
		return ConfidenceIntervals{}, err
	}
	if iters <= 0 {
		iters = DefaultBootstrapSamples
	}

	rng := rand.New(rand.NewSource(seed))
	slopes := make([]float64, 0, iters)
	intercepts := make([]float64, 0, iters)
	sample := make([]dilution.Point, len(points))

	for it := 0; it < iters; it++ {
		for i := range sample {
			sample[i] = points[rng.Intn(len(points))]
		}
		x, y, err := axes(sample)
		if err != nil {
			continue
		}
		intercept, slope := stat.LinearRegression(x, y, nil, false)
		if !finite(slope) || !finite(intercept) {
			continue
		}
		slopes = append(slopes, slope)
		intercepts = append(intercepts, intercept)
	}

	if len(slopes) == 0 {
		return ConfidenceIntervals{}, perr.Fitf("insufficient data for bootstrap confidence intervals")
	}

	sLo, err := mstats.Percentile(slopes, 2.5)
	if err != nil {
		return ConfidenceIntervals{}, perr.Wrap(err, perr.ErrorCodeFit, "bootstrap percentile")
	}
	sHi, err := mstats.Percentile(slopes, 97.5)
	if err != nil {
		return ConfidenceIntervals{}, perr.Wrap(err, perr.ErrorCodeFit, "bootstrap percentile")
	}
	iLo, err := mstats.Percentile(intercepts, 2.5)
	if err != nil {
		return ConfidenceIntervals{}, perr.Wrap(err, perr.ErrorCodeFit, "bootstrap percentile")
	}
	iHi, err := mstats.Percentile(intercepts, 97.5)
	if err != nil {
		return ConfidenceIntervals{}, perr.Wrap(err, perr.ErrorCodeFit, "bootstrap percentile")
	}

	return ConfidenceIntervals{
		SlopeLow:      sLo,
		SlopeHigh:     sHi,
		InterceptLow:  iLo,
		InterceptHigh: iHi,
		Samples:       len(slopes),
	}, nil
}
