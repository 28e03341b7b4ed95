// Package domain holds DTOs for quant http and service contracts
package domain

// Inputs are JSON bodies validated by the platform binder
// concentrations are ng/uL, weights are g/mol, copies are copies/uL

// MolWeightInput asks for the molecular weight of a template sequence
type MolWeightInput struct {
	Sequence string `json:"sequence" validate:"required,nucleotide" example:"ACGUACGUACGU"`
}

// MolWeightResult reports the single strand RNA weight of the sequence
type MolWeightResult struct {
	Length          int     `json:"length" example:"12"`
	MolecularWeight float64 `json:"molecular_weight" example:"3823.3"`
}

// CopiesFromLengthInput converts a measured concentration using template length
type CopiesFromLengthInput struct {
	ConcentrationNgPerUL float64 `json:"concentration_ng_per_ul" validate:"required,gt=0" example:"10"`
	LengthBP             int     `json:"length_bp" validate:"required,gt=0" example:"500"`
}

// CopiesFromSequenceInput converts a measured concentration using the sequence itself
type CopiesFromSequenceInput struct {
	ConcentrationNgPerUL float64 `json:"concentration_ng_per_ul" validate:"required,gt=0" example:"10"`
	Sequence             string  `json:"sequence" validate:"required,nucleotide" example:"ACGUACGUACGU"`
}

// CopiesResult is the computed copies per microliter
// MolecularWeight is present only for the sequence variant
type CopiesResult struct {
	Copies          float64 `json:"copies" example:"1.8529e10"`
	MolecularWeight float64 `json:"molecular_weight,omitempty" example:"3823.3"`
}

// StandardInput is one measured point of the dilution ladder
type StandardInput struct {
	Label string  `json:"label,omitempty" validate:"omitempty,max=100" example:"std-1"`
	Ct    float64 `json:"ct" example:"13.1"`
}

// SeriesInput builds a serial dilution from a stock copy number
// Fold defaults to 10 when omitted and must exceed 1 when given
type SeriesInput struct {
	StockCopies float64         `json:"stock_copies" validate:"required,gt=0" example:"1e10"`
	Fold        float64         `json:"fold,omitempty" validate:"omitempty,gt=1" example:"10"`
	Standards   []StandardInput `json:"standards" validate:"required,min=1,dive"`
}

// Point is one dilution step with its assigned copy number
type Point struct {
	Label  string  `json:"label,omitempty" example:"std-1"`
	Index  int     `json:"index" example:"0"`
	Copies float64 `json:"copies" example:"1e10"`
	Ct     float64 `json:"ct" example:"13.1"`
}

// CurvePointInput is one (copies, ct) observation for regression
type CurvePointInput struct {
	Label  string  `json:"label,omitempty" example:"std-1"`
	Copies float64 `json:"copies" example:"1e10"`
	Ct     float64 `json:"ct" example:"13.1"`
}

// CurveInput fits the standard curve over explicit points
// Bootstrap turns on percentile confidence intervals for the fit
type CurveInput struct {
	Points           []CurvePointInput `json:"points" validate:"required,min=2,dive"`
	Bootstrap        bool              `json:"bootstrap,omitempty" example:"true"`
	BootstrapSamples int               `json:"bootstrap_samples,omitempty" validate:"omitempty,min=10,max=10000" example:"200"`
	Seed             int64             `json:"seed,omitempty" example:"1"`
}

// Confidence carries bootstrap 95% bounds for slope and intercept
type Confidence struct {
	SlopeLow      float64 `json:"slope_low" example:"-3.45"`
	SlopeHigh     float64 `json:"slope_high" example:"-3.21"`
	InterceptLow  float64 `json:"intercept_low" example:"41.8"`
	InterceptHigh float64 `json:"intercept_high" example:"43.6"`
	Samples       int     `json:"samples" example:"200"`
}

// CurveResult is the fitted standard curve with derived assay metrics
// EfficiencyPct is omitted when the slope is zero and the value is undefined
type CurveResult struct {
	Slope            float64     `json:"slope" example:"-3.32"`
	Intercept        float64     `json:"intercept" example:"42.6"`
	RSquared         float64     `json:"r_squared" example:"0.999"`
	EfficiencyPct    *float64    `json:"efficiency_pct,omitempty" example:"100.1"`
	LimitOfDetection float64     `json:"limit_of_detection" example:"1e6"`
	Residuals        []float64   `json:"residuals"`
	Confidence       *Confidence `json:"confidence,omitempty"`
}

// CurveSpec is a previously fitted curve supplied by the caller
type CurveSpec struct {
	Slope     float64 `json:"slope" example:"-3.32"`
	Intercept float64 `json:"intercept" example:"42.6"`
}

// UnknownSampleInput is one unknown to quantify against the curve
// DilutionFactor defaults to 1 (undiluted) when omitted
type UnknownSampleInput struct {
	Label          string  `json:"label,omitempty" validate:"omitempty,max=100" example:"sample-A"`
	Ct             float64 `json:"ct" example:"24.7"`
	DilutionFactor float64 `json:"dilution_factor,omitempty" validate:"omitempty,gt=0" example:"10"`
}

// UnknownsInput quantifies samples against a supplied curve
type UnknownsInput struct {
	Curve   CurveSpec            `json:"curve" validate:"required"`
	Samples []UnknownSampleInput `json:"samples" validate:"required,min=1,dive"`
}

// UnknownResult is the back calculated copy number for one sample
type UnknownResult struct {
	Label          string  `json:"label,omitempty" example:"sample-A"`
	Ct             float64 `json:"ct" example:"24.7"`
	DilutionFactor float64 `json:"dilution_factor" example:"10"`
	Copies         float64 `json:"copies" example:"2.4e5"`
}

// StockInput defines the undiluted standard
// exactly one of LengthBP or Sequence must be set
type StockInput struct {
	ConcentrationNgPerUL float64 `json:"concentration_ng_per_ul" validate:"required,gt=0" example:"10"`
	LengthBP             int     `json:"length_bp,omitempty" validate:"omitempty,gt=0" example:"500"`
	Sequence             string  `json:"sequence,omitempty" validate:"omitempty,nucleotide" example:"ACGUACGUACGU"`
}

// StockResult is the stock converted to copies per microliter
type StockResult struct {
	Copies          float64 `json:"copies" example:"1.8529e10"`
	MolecularWeight float64 `json:"molecular_weight,omitempty" example:"3823.3"`
}

// AnalysisInput runs the whole pipeline in one call:
// stock conversion, dilution ladder, curve fit, unknown quantification
type AnalysisInput struct {
	Stock            StockInput           `json:"stock" validate:"required"`
	Fold             float64              `json:"fold,omitempty" validate:"omitempty,gt=1" example:"10"`
	Standards        []StandardInput      `json:"standards" validate:"required,min=2,dive"`
	Unknowns         []UnknownSampleInput `json:"unknowns,omitempty" validate:"omitempty,dive"`
	Bootstrap        bool                 `json:"bootstrap,omitempty" example:"false"`
	BootstrapSamples int                  `json:"bootstrap_samples,omitempty" validate:"omitempty,min=10,max=10000" example:"200"`
	Seed             int64                `json:"seed,omitempty" example:"1"`
}

// AnalysisResult is the full pipeline output
type AnalysisResult struct {
	Stock    StockResult     `json:"stock"`
	Points   []Point         `json:"points"`
	Curve    CurveResult     `json:"curve"`
	Unknowns []UnknownResult `json:"unknowns,omitempty"`
}
