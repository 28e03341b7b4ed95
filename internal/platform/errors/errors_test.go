package errors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
)

func TestHTTPStatusCode(t *testing.T) {
	cases := []struct {
		code ErrorCode
		want int
	}{
		{ErrorCodeUnknown, http.StatusInternalServerError},
		{ErrorCodePanic, http.StatusInternalServerError},
		{ErrorCodeUnavailable, http.StatusServiceUnavailable},
		{ErrorCodeConflict, http.StatusConflict},
		{ErrorCodeInvalidArgument, http.StatusUnprocessableEntity},
		{ErrorCodeValidation, http.StatusBadRequest},
		{ErrorCodeJSON, http.StatusBadRequest},
		{ErrorCodeNotFound, http.StatusNotFound},
		{ErrorCodeFit, http.StatusUnprocessableEntity},
	}
	for _, tc := range cases {
		if got := HTTPStatusCode(tc.code); got != tc.want {
			t.Fatalf("HTTPStatusCode(%d) = %d, want %d", tc.code, got, tc.want)
		}
	}
}

func TestWrapPreservesRoot(t *testing.T) {
	root := errors.New("boom")
	err := Wrap(root, ErrorCodeFit, "fit failed")

	if CodeOf(err) != ErrorCodeFit {
		t.Fatalf("code = %d", CodeOf(err))
	}
	if !errors.Is(err, root) {
		t.Fatalf("wrapped error lost its root")
	}
	if Root(err) != root {
		t.Fatalf("Root should unwrap to the original error")
	}
}

func TestSugarConstructors(t *testing.T) {
	if !IsValidation(Validationf("bad input %d", 7)) {
		t.Fatalf("Validationf should carry the validation code")
	}
	if !IsFit(Fitf("flat line")) {
		t.Fatalf("Fitf should carry the fit code")
	}
	if CodeOf(NotFoundf("missing")) != ErrorCodeNotFound {
		t.Fatalf("NotFoundf code mismatch")
	}
	if CodeOf(JSONErrf("bad json")) != ErrorCodeJSON {
		t.Fatalf("JSONErrf code mismatch")
	}
}

func TestIsValidationCoversArgumentCodes(t *testing.T) {
	for _, err := range []error{
		Validationf("v"),
		InvalidArgf("a"),
		JSONErrf("j"),
	} {
		if !IsValidation(err) {
			t.Fatalf("expected %v to count as validation", err)
		}
	}
	if IsValidation(Fitf("f")) {
		t.Fatalf("fit errors are not validation errors")
	}
}

func TestWithFieldAndOp(t *testing.T) {
	err := WithOp(WithField(Validationf("must be positive"), "stock_copies"), "series")
	pe, ok := As(err)
	if !ok {
		t.Fatalf("expected a project error")
	}
	if pe.Field() != "stock_copies" {
		t.Fatalf("field = %q", pe.Field())
	}
	if pe.Op() != "series" {
		t.Fatalf("op = %q", pe.Op())
	}
}

func TestWireFrom(t *testing.T) {
	w := WireFrom(Fitf("degenerate"))
	if w.Code != ErrorCodeFit || w.Message != "degenerate" {
		t.Fatalf("wire = %+v", w)
	}

	plain := fmt.Errorf("opaque")
	w = WireFrom(plain)
	if w.Code != ErrorCodeUnknown {
		t.Fatalf("plain errors default to unknown, got %+v", w)
	}
}

func TestCodeOfNil(t *testing.T) {
	if CodeOf(nil) != ErrorCodeUnknown {
		t.Fatalf("nil should map to unknown")
	}
}
