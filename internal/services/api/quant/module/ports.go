package module

import (
	"context"

	"copyquant/internal/services/api/quant/domain"
	quantsvc "copyquant/internal/services/api/quant/service"
)

// Ports returns the module ports
func (m *Module) Ports() any { return m.ports }

type adaptQuantPort struct{ svc quantsvc.Service }

// MolWeight computes the molecular weight of a template sequence
func (a adaptQuantPort) MolWeight(ctx context.Context, in domain.MolWeightInput) (domain.MolWeightResult, error) {
	return a.svc.MolWeight(ctx, in)
}

// CopiesFromLength converts concentration to copies using template length
func (a adaptQuantPort) CopiesFromLength(
	ctx context.Context,
	in domain.CopiesFromLengthInput,
) (domain.CopiesResult, error) {
	return a.svc.CopiesFromLength(ctx, in)
}

// CopiesFromSequence converts concentration to copies using the exact weight
func (a adaptQuantPort) CopiesFromSequence(
	ctx context.Context,
	in domain.CopiesFromSequenceInput,
) (domain.CopiesResult, error) {
	return a.svc.CopiesFromSequence(ctx, in)
}

// Series assigns copy numbers to a serial dilution of the stock
func (a adaptQuantPort) Series(ctx context.Context, in domain.SeriesInput) ([]domain.Point, error) {
	return a.svc.Series(ctx, in)
}

// Curve fits the standard curve over explicit points
func (a adaptQuantPort) Curve(ctx context.Context, in domain.CurveInput) (domain.CurveResult, error) {
	return a.svc.Curve(ctx, in)
}

// Unknowns quantifies samples against a caller supplied curve
func (a adaptQuantPort) Unknowns(ctx context.Context, in domain.UnknownsInput) ([]domain.UnknownResult, error) {
	return a.svc.Unknowns(ctx, in)
}

// Analysis runs the whole quantification pipeline
func (a adaptQuantPort) Analysis(ctx context.Context, in domain.AnalysisInput) (domain.AnalysisResult, error) {
	return a.svc.Analysis(ctx, in)
}
