// Command copyquant-batch runs one quantification pipeline pass over JSON.
// It reads the same analysis request the API accepts from a file or stdin
// and writes the result JSON to a file or stdout
package main

import (
	"bytes"
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/google/uuid"

	"copyquant/internal/platform/logger"
	"copyquant/internal/services/api/quant/domain"
	quantsvc "copyquant/internal/services/api/quant/service"
)

func must(err error) {
	if err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func readInput(path string) ([]byte, error) {
	if path == "-" {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(path)
}

func writeOutput(path string, b []byte) error {
	if path == "-" {
		if _, err := os.Stdout.Write(b); err != nil {
			return err
		}
		_, err := os.Stdout.WriteString("\n")
		return err
	}
	return os.WriteFile(path, b, 0o644)
}

func main() {
	var (
		in     = flag.String("in", "-", "analysis request JSON path or '-' for stdin")
		out    = flag.String("out", "-", "result path or '-' for stdout")
		pretty = flag.Bool("pretty", true, "pretty-print JSON")
	)
	flag.Parse()

	// every batch pass gets its own run id so log lines correlate
	runID := uuid.NewString()
	ctx := logger.WithRequest(context.Background(), "", runID)
	log := logger.C(ctx)

	raw, err := readInput(strings.TrimSpace(*in))
	must(err)

	var req domain.AnalysisInput
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil {
		must(fmt.Errorf("decode analysis request: %w", err))
	}

	log.Info().
		Int("standards", len(req.Standards)).
		Int("unknowns", len(req.Unknowns)).
		Bool("bootstrap", req.Bootstrap).
		Msg("running analysis")

	result, err := quantsvc.New().Analysis(ctx, req)
	if err != nil {
		log.Error().Err(err).Msg("analysis failed")
		must(err)
	}

	var enc []byte
	if *pretty {
		enc, err = json.MarshalIndent(result, "", "  ")
	} else {
		enc, err = json.Marshal(result)
	}
	must(err)

	must(writeOutput(strings.TrimSpace(*out), enc))

	log.Info().
		Float64("stock_copies", result.Stock.Copies).
		Float64("slope", result.Curve.Slope).
		Float64("r_squared", result.Curve.RSquared).
		Msg("analysis complete")
}
