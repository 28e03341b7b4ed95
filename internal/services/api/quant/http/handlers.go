// Package http provides http transport for quant
package http

import (
	stdhttp "net/http"

	"copyquant/internal/modkit/httpkit"
	"copyquant/internal/services/api/quant/domain"
	svc "copyquant/internal/services/api/quant/service"
)

// Register mounts quant endpoints on the given router
func Register(r httpkit.Router, s svc.Service) {
	h := &handlers{svc: s}

	// template weight and copy number conversion
	httpkit.PostJSON[domain.MolWeightInput](r, "/molweight", h.molWeight)
	httpkit.PostJSON[domain.CopiesFromLengthInput](r, "/copies/length", h.copiesFromLength)
	httpkit.PostJSON[domain.CopiesFromSequenceInput](r, "/copies/sequence", h.copiesFromSequence)

	// dilution ladder and regression
	httpkit.PostJSON[domain.SeriesInput](r, "/series", h.series)
	httpkit.PostJSON[domain.CurveInput](r, "/curve", h.curve)

	// quantification of unknowns and the one shot pipeline
	httpkit.PostJSON[domain.UnknownsInput](r, "/unknowns", h.unknowns)
	httpkit.PostJSON[domain.AnalysisInput](r, "/analysis", h.analysis)
}

type handlers struct{ svc svc.Service }

// swagger:route POST /quant/molweight Quant quantMolWeight
// @Summary Molecular weight of a template sequence
// @Tags Quant
// @Accept json
// @Produce json
// @Param payload body domain.MolWeightInput true "Sequence"
// @Success 200 {object} domain.MolWeightResult "ok"
// @Router /quant/molweight [post]
func (h *handlers) molWeight(r *stdhttp.Request, in domain.MolWeightInput) (any, error) {
	return h.svc.MolWeight(r.Context(), in)
}

// swagger:route POST /quant/copies/length Quant quantCopiesFromLength
// @Summary Copy number from concentration and template length
// @Tags Quant
// @Accept json
// @Produce json
// @Param payload body domain.CopiesFromLengthInput true "Concentration and length"
// @Success 200 {object} domain.CopiesResult "ok"
// @Router /quant/copies/length [post]
func (h *handlers) copiesFromLength(r *stdhttp.Request, in domain.CopiesFromLengthInput) (any, error) {
	return h.svc.CopiesFromLength(r.Context(), in)
}

// swagger:route POST /quant/copies/sequence Quant quantCopiesFromSequence
// @Summary Copy number from concentration and exact sequence weight
// @Tags Quant
// @Accept json
// @Produce json
// @Param payload body domain.CopiesFromSequenceInput true "Concentration and sequence"
// @Success 200 {object} domain.CopiesResult "ok"
// @Router /quant/copies/sequence [post]
func (h *handlers) copiesFromSequence(r *stdhttp.Request, in domain.CopiesFromSequenceInput) (any, error) {
	return h.svc.CopiesFromSequence(r.Context(), in)
}

// swagger:route POST /quant/series Quant quantSeries
// @Summary Serial dilution ladder with assigned copy numbers
// @Tags Quant
// @Accept json
// @Produce json
// @Param payload body domain.SeriesInput true "Stock and standards"
// @Success 200 {array} domain.Point "ok"
// @Router /quant/series [post]
func (h *handlers) series(r *stdhttp.Request, in domain.SeriesInput) (any, error) {
	return h.svc.Series(r.Context(), in)
}

// swagger:route POST /quant/curve Quant quantCurve
// @Summary Fit the standard curve over explicit points
// @Tags Quant
// @Accept json
// @Produce json
// @Param payload body domain.CurveInput true "Points and bootstrap options"
// @Success 200 {object} domain.CurveResult "ok"
// @Router /quant/curve [post]
func (h *handlers) curve(r *stdhttp.Request, in domain.CurveInput) (any, error) {
	return h.svc.Curve(r.Context(), in)
}

// swagger:route POST /quant/unknowns Quant quantUnknowns
// @Summary Quantify unknown samples against a fitted curve
// @Tags Quant
// @Accept json
// @Produce json
// @Param payload body domain.UnknownsInput true "Curve and samples"
// @Success 200 {array} domain.UnknownResult "ok"
// @Router /quant/unknowns [post]
func (h *handlers) unknowns(r *stdhttp.Request, in domain.UnknownsInput) (any, error) {
	return h.svc.Unknowns(r.Context(), in)
}

// swagger:route POST /quant/analysis Quant quantAnalysis
// @Summary Run the full quantification pipeline in one call
// @Tags Quant
// @Accept json
// @Produce json
// @Param payload body domain.AnalysisInput true "Stock, standards and unknowns"
// @Success 200 {object} domain.AnalysisResult "ok"
// @Router /quant/analysis [post]
func (h *handlers) analysis(r *stdhttp.Request, in domain.AnalysisInput) (any, error) {
	return h.svc.Analysis(r.Context(), in)
}
