// Package quant converts nucleic-acid stock concentrations into absolute
// copy numbers (copies per microliter of undiluted stock)
package quant

import (
	perr "copyquant/internal/platform/errors"

	"copyquant/internal/core/seq"
)

const (
	// Avogadro is the number of molecules per mole
	Avogadro = 6.02214076e23

	// MeanBasePairWeight is the average mass of one base pair in g/mol
	MeanBasePairWeight = 650.0

	// nanogramsPerGram converts ng to g
	nanogramsPerGram = 1e-9
)

// FromLength converts concentration (ng/uL) and sequence length (bp) into
// copies per microliter of stock
func FromLength(concNgPerUL float64, lengthBP int) (float64, error) {
	if concNgPerUL <= 0 {
		return 0, perr.Validationf("concentration must be positive, got %g", concNgPerUL)
	}
	if lengthBP <= 0 {
		return 0, perr.Validationf("sequence length must be positive, got %d", lengthBP)
	}
	grams := concNgPerUL * nanogramsPerGram
	moles := grams / (float64(lengthBP) * MeanBasePairWeight)
	return moles * Avogadro, nil
}

// FromMolecularWeight converts concentration (ng/uL) and molecular weight
// (g/mol) into copies per microliter of stock
func FromMolecularWeight(concNgPerUL, molecularWeight float64) (float64, error) {
	if concNgPerUL <= 0 {
		return 0, perr.Validationf("concentration must be positive, got %g", concNgPerUL)
	}
	if molecularWeight <= 0 {
		return 0, perr.Validationf("molecular weight must be positive, got %g", molecularWeight)
	}
	grams := concNgPerUL * nanogramsPerGram
	return grams / molecularWeight * Avogadro, nil
}

// FromSequence estimates the molecular weight of sequence as an RNA
// transcript and converts concentration into copies per microliter.
// Returns both the copy number and the estimated molecular weight
func FromSequence(concNgPerUL float64, sequence string) (copies, molecularWeight float64, err error) {
	mw, err := seq.MolecularWeight(sequence)
	if err != nil {
		return 0, 0, err
	}
	copies, err = FromMolecularWeight(concNgPerUL, mw)
	if err != nil {
		return 0, 0, err
	}
	return copies, mw, nil
}
