// Package dilution derives serial dilution series from a stock copy number
package dilution

import (
	"math"

	perr "copyquant/internal/platform/errors"
)

// DefaultFold is the classic 10-fold serial dilution factor
const DefaultFold = 10.0

// Entry is one user-supplied standard: a label and its measured Ct
type Entry struct {
	Label string
	Ct    float64
}

// Point is one derived dilution point. Index is 0-based and contiguous;
// Copies is strictly decreasing with Index
type Point struct {
	Label  string
	Index  int
	Copies float64
	Ct     float64
}

// Build derives a 10-fold dilution series from stockCopies.
// Entry order is preserved; entry i sits at dilution index i with
// copies = stockCopies / 10^i
func Build(stockCopies float64, entries []Entry) ([]Point, error) {
	return BuildFold(stockCopies, DefaultFold, entries)
}

// BuildFold is Build with a configurable fold factor (> 1).
// Ct values pass through untouched: assay noise may legitimately produce
// non-monotonic or duplicate Cts, so no ordering is enforced here
func BuildFold(stockCopies, fold float64, entries []Entry) ([]Point, error) {
	if stockCopies <= 0 {
		return nil, perr.Validationf("stock copy number must be positive, got %g", stockCopies)
	}
	if fold <= 1 {
		return nil, perr.Validationf("dilution fold must be greater than 1, got %g", fold)
	}
	if len(entries) == 0 {
		return nil, perr.Validationf("dilution series needs at least one entry")
	}

	out := make([]Point, 0, len(entries))
	for i, e := range entries {
		out = append(out, Point{
			Label:  e.Label,
			Index:  i,
			Copies: stockCopies / math.Pow(fold, float64(i)),
			Ct:     e.Ct,
		})
	}
	return out, nil
}
