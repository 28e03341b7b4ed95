// Package testkit provides testing helpers
package testkit

import (
	"math"
	"strings"
	"testing"
)

// MustPanic asserts that fn panics
func MustPanic(t *testing.T, fn func()) {
	t.Helper()
	defer func() {
		if r := recover(); r == nil {
			t.Fatalf("expected panic, got none")
		}
	}()
	fn()
}

// MustNotPanic asserts that fn does not panic
func MustNotPanic(t *testing.T, fn func()) {
	t.Helper()
	defer func() {
		if r := recover(); r != nil {
			t.Fatalf("unexpected panic: %v", r)
		}
	}()
	fn()
}

// MustContain asserts that haystack contains needle
func MustContain(t *testing.T, haystack, needle string) {
	t.Helper()
	if !strings.Contains(haystack, needle) {
		t.Fatalf("expected output to contain %q, got:\n%s", needle, haystack)
	}
}

// InDelta asserts that got is within tol of want
func InDelta(t *testing.T, want, got, tol float64) {
	t.Helper()
	if math.IsNaN(got) || math.Abs(got-want) > tol {
		t.Fatalf("got %v, want %v (±%v)", got, want, tol)
	}
}

// InRelative asserts that got is within rel (fractional) of want
func InRelative(t *testing.T, want, got, rel float64) {
	t.Helper()
	if want == 0 {
		InDelta(t, want, got, rel)
		return
	}
	if math.IsNaN(got) || math.Abs(got-want)/math.Abs(want) > rel {
		t.Fatalf("got %v, want %v (rel ±%v)", got, want, rel)
	}
}
