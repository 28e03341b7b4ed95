// Package service contains the quantification workflows
package service

import (
	"context"

	"copyquant/internal/core/dilution"
	"copyquant/internal/core/quant"
	"copyquant/internal/core/seq"
	"copyquant/internal/core/standardcurve"
	perr "copyquant/internal/platform/errors"
	"copyquant/internal/services/api/quant/domain"
)

// Service defines the quant service contract
type Service interface {
	domain.ServicePort
}

// Svc implements the quant service over the pure core packages
// it holds no state so the zero value is usable, New exists for symmetry
type Svc struct{}

// New constructs a quant service
func New() *Svc { return &Svc{} }

// MolWeight computes the single strand RNA molecular weight of a sequence
func (s *Svc) MolWeight(_ context.Context, in domain.MolWeightInput) (domain.MolWeightResult, error) {
	normalized, err := seq.Validate(in.Sequence)
	if err != nil {
		return domain.MolWeightResult{}, err
	}
	mw, err := seq.MolecularWeight(normalized)
	if err != nil {
		return domain.MolWeightResult{}, err
	}
	return domain.MolWeightResult{
		Length:          len(normalized),
		MolecularWeight: mw,
	}, nil
}

// CopiesFromLength converts concentration to copies using template length
func (s *Svc) CopiesFromLength(_ context.Context, in domain.CopiesFromLengthInput) (domain.CopiesResult, error) {
	copies, err := quant.FromLength(in.ConcentrationNgPerUL, in.LengthBP)
	if err != nil {
		return domain.CopiesResult{}, err
	}
	return domain.CopiesResult{Copies: copies}, nil
}

// CopiesFromSequence converts concentration to copies using the exact weight
func (s *Svc) CopiesFromSequence(_ context.Context, in domain.CopiesFromSequenceInput) (domain.CopiesResult, error) {
	copies, mw, err := quant.FromSequence(in.ConcentrationNgPerUL, in.Sequence)
	if err != nil {
		return domain.CopiesResult{}, err
	}
	return domain.CopiesResult{Copies: copies, MolecularWeight: mw}, nil
}

// Series assigns copy numbers to a serial dilution of the stock
func (s *Svc) Series(_ context.Context, in domain.SeriesInput) ([]domain.Point, error) {
	points, err := buildSeries(in.StockCopies, in.Fold, in.Standards)
	if err != nil {
		return nil, err
	}
	return toPointDTOs(points), nil
}

// Curve fits the standard curve over explicit (copies, ct) points
func (s *Svc) Curve(_ context.Context, in domain.CurveInput) (domain.CurveResult, error) {
	points := make([]dilution.Point, len(in.Points))
	for i, p := range in.Points {
		points[i] = dilution.Point{Label: p.Label, Index: i, Copies: p.Copies, Ct: p.Ct}
	}
	return fitCurve(points, in.Bootstrap, in.BootstrapSamples, in.Seed)
}

// Unknowns quantifies samples against a caller supplied curve
func (s *Svc) Unknowns(_ context.Context, in domain.UnknownsInput) ([]domain.UnknownResult, error) {
	curve := standardcurve.Curve{Slope: in.Curve.Slope, Intercept: in.Curve.Intercept}
	return estimateUnknowns(curve, in.Samples)
}

// Analysis runs the whole pipeline: stock conversion, dilution ladder,
// curve fit and unknown quantification in one deterministic pass
func (s *Svc) Analysis(_ context.Context, in domain.AnalysisInput) (domain.AnalysisResult, error) {
	stock, err := resolveStock(in.Stock)
	if err != nil {
		return domain.AnalysisResult{}, err
	}

	points, err := buildSeries(stock.Copies, in.Fold, in.Standards)
	if err != nil {
		return domain.AnalysisResult{}, err
	}

	curveOut, err := fitCurve(points, in.Bootstrap, in.BootstrapSamples, in.Seed)
	if err != nil {
		return domain.AnalysisResult{}, err
	}

	out := domain.AnalysisResult{
		Stock:  stock,
		Points: toPointDTOs(points),
		Curve:  curveOut,
	}

	if len(in.Unknowns) > 0 {
		curve := standardcurve.Curve{Slope: curveOut.Slope, Intercept: curveOut.Intercept}
		unknowns, err := estimateUnknowns(curve, in.Unknowns)
		if err != nil {
			return domain.AnalysisResult{}, err
		}
		out.Unknowns = unknowns
	}

	return out, nil
}

// resolveStock turns the stock definition into copies per microliter
// exactly one of length or sequence selects the conversion path
func resolveStock(in domain.StockInput) (domain.StockResult, error) {
	hasLength := in.LengthBP > 0
	hasSequence := in.Sequence != ""
	switch {
	case hasLength && hasSequence:
		return domain.StockResult{}, perr.Validationf("stock needs length_bp or sequence, not both")
	case hasLength:
		copies, err := quant.FromLength(in.ConcentrationNgPerUL, in.LengthBP)
		if err != nil {
			return domain.StockResult{}, err
		}
		return domain.StockResult{Copies: copies}, nil
	case hasSequence:
		copies, mw, err := quant.FromSequence(in.ConcentrationNgPerUL, in.Sequence)
		if err != nil {
			return domain.StockResult{}, err
		}
		return domain.StockResult{Copies: copies, MolecularWeight: mw}, nil
	default:
		return domain.StockResult{}, perr.Validationf("stock needs length_bp or sequence")
	}
}

func buildSeries(stockCopies, fold float64, standards []domain.StandardInput) ([]dilution.Point, error) {
	entries := make([]dilution.Entry, len(standards))
	for i, s := range standards {
		entries[i] = dilution.Entry{Label: s.Label, Ct: s.Ct}
	}
	if fold == 0 {
		return dilution.Build(stockCopies, entries)
	}
	return dilution.BuildFold(stockCopies, fold, entries)
}

func fitCurve(points []dilution.Point, bootstrap bool, samples int, seed int64) (domain.CurveResult, error) {
	curve, err := standardcurve.Fit(points)
	if err != nil {
		return domain.CurveResult{}, err
	}

	out := domain.CurveResult{
		Slope:            curve.Slope,
		Intercept:        curve.Intercept,
		RSquared:         curve.RSquared,
		LimitOfDetection: curve.LimitOfDetection,
		Residuals:        curve.Residuals,
	}

	// a flat curve fits but has no defined efficiency, report it as absent
	if eff, err := curve.Efficiency(); err == nil {
		out.EfficiencyPct = &eff
	}

	if bootstrap {
		if seed == 0 {
			seed = standardcurve.DefaultBootstrapSeed
		}
		ci, err := standardcurve.Bootstrap(points, samples, seed)
		if err != nil {
			return domain.CurveResult{}, err
		}
		out.Confidence = &domain.Confidence{
			SlopeLow:      ci.SlopeLow,
			SlopeHigh:     ci.SlopeHigh,
			InterceptLow:  ci.InterceptLow,
			InterceptHigh: ci.InterceptHigh,
			Samples:       ci.Samples,
		}
	}

	return out, nil
}

func estimateUnknowns(curve standardcurve.Curve, samples []domain.UnknownSampleInput) ([]domain.UnknownResult, error) {
	out := make([]domain.UnknownResult, 0, len(samples))
	for _, u := range samples {
		df := u.DilutionFactor
		if df == 0 {
			df = 1
		}
		copies, err := standardcurve.EstimateUnknown(curve, u.Ct, df)
		if err != nil {
			return nil, err
		}
		out = append(out, domain.UnknownResult{
			Label:          u.Label,
			Ct:             u.Ct,
			DilutionFactor: df,
			Copies:         copies,
		})
	}
	return out, nil
}

func toPointDTOs(points []dilution.Point) []domain.Point {
	out := make([]domain.Point, len(points))
	for i, p := range points {
		out[i] = domain.Point{Label: p.Label, Index: p.Index, Copies: p.Copies, Ct: p.Ct}
	}
	return out
}
