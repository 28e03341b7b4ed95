package domain

import "context"

// ServicePort is consumed by handlers and other modules
type ServicePort interface {
	MolWeight(ctx context.Context, in MolWeightInput) (MolWeightResult, error)
	CopiesFromLength(ctx context.Context, in CopiesFromLengthInput) (CopiesResult, error)
	CopiesFromSequence(ctx context.Context, in CopiesFromSequenceInput) (CopiesResult, error)
	Series(ctx context.Context, in SeriesInput) ([]Point, error)
	Curve(ctx context.Context, in CurveInput) (CurveResult, error)
	Unknowns(ctx context.Context, in UnknownsInput) ([]UnknownResult, error)
	Analysis(ctx context.Context, in AnalysisInput) (AnalysisResult, error)
}
