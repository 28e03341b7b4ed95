// Package seq provides nucleotide sequence normalization, validation and
// single-strand RNA molecular weight estimation.
// Pipeline order
// 1 UTF-8 repair drop invalid bytes
// 2 Unicode NFKC normalization
// 3 Remove zero-width and format characters
// 4 Width fold fullwidth to ASCII
// 5 Drop whitespace and uppercase
package seq

import (
	"strings"
	"sync"
	"unicode"

	perr "copyquant/internal/platform/errors"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
	"golang.org/x/text/width"
)

// iupac maps each accepted IUPAC nucleotide code to its base set.
// T is the DNA convention for U; both are accepted on input
var iupac = map[rune]string{
	'A': "A",
	'C': "C",
	'G': "G",
	'T': "T",
	'U': "U",
	'R': "AG",
	'Y': "CT",
	'S': "CG",
	'W': "AT",
	'K': "GT",
	'M': "AC",
	'B': "CGT",
	'D': "AGT",
	'H': "ACT",
	'V': "ACG",
	'N': "ACGT",
}

// pool of fresh transformer chains
var chainPool = sync.Pool{
	New: func() any {
		// order matters and mirrors the documented pipeline
		return transform.Chain(
			norm.NFKC,
			runes.Remove(runes.In(unicode.Cf)), // strip format chars ZWJ ZWNJ FEFF etc
			width.Fold,                         // map fullwidth forms to ASCII
		)
	},
}

// Normalize returns the cleaned, uppercased form of a pasted sequence.
// It does not validate the alphabet; see Validate
func Normalize(s string) string {
	if s == "" {
		return ""
	}

	s = strings.ToValidUTF8(s, "")

	tr := chainPool.Get().(transform.Transformer)
	ns, _, _ := transform.String(tr, s)
	tr.Reset()
	chainPool.Put(tr)

	var b strings.Builder
	b.Grow(len(ns))
	for _, r := range ns {
		if unicode.IsSpace(r) {
			continue
		}
		b.WriteRune(unicode.ToUpper(r))
	}
	return b.String()
}

// Validate normalizes raw and checks every symbol against the IUPAC alphabet.
// Returns the normalized sequence or a ValidationError
func Validate(raw string) (string, error) {
	s := Normalize(raw)
	if s == "" {
		return "", perr.Validationf("empty sequence")
	}
	for i, r := range s {
		if _, ok := iupac[r]; !ok {
			return "", perr.Validationf("invalid base %q at position %d; allowed: A C G T U R Y S W K M B D H V N", r, i+1)
		}
	}
	return s, nil
}

// Transcribe replaces thymine with uracil, modeling the RNA transcript of a
// DNA sequence. Sequences already in RNA form pass through unchanged
func Transcribe(s string) string {
	return strings.Map(func(r rune) rune {
		if r == 'T' {
			return 'U'
		}
		return r
	}, s)
}

// Average ribonucleotide monophosphate residue masses in g/mol
var rnaResidueWeight = map[rune]float64{
	'A': 347.2212,
	'C': 323.1965,
	'G': 363.2206,
	'U': 324.1813,
}

// waterWeight is the average mass of H2O lost per phosphodiester bond
const waterWeight = 18.0153

// MolecularWeight estimates the single-strand RNA molecular weight of the
// given sequence in g/mol: the sum of ribonucleotide monophosphate residue
// masses minus one water per bond. T is transcribed to U before weighing.
// Ambiguity codes weigh as the mean of their base set
func MolecularWeight(raw string) (float64, error) {
	s, err := Validate(raw)
	if err != nil {
		return 0, err
	}
	s = Transcribe(s)

	total := 0.0
	for _, r := range s {
		if w, ok := rnaResidueWeight[r]; ok {
			total += w
			continue
		}
		// ambiguity code: average over its base set, in RNA space
		set := Transcribe(iupac[r])
		sum := 0.0
		for _, b := range set {
			sum += rnaResidueWeight[b]
		}
		total += sum / float64(len(set))
	}
	total -= float64(len(s)-1) * waterWeight
	return total, nil
}
