package config

import (
	"testing"
	"time"

	"copyquant/internal/platform/testkit"
)

func TestPrefixComposes(t *testing.T) {
	testkit.Serial(t)
	t.Setenv("CORE_API_PORT", "8080")

	c := New().Prefix("CORE_").Prefix("API_")
	if got := c.MustString("PORT"); got != "8080" {
		t.Fatalf("MustString = %q", got)
	}
}

func TestMustString_PanicsWhenMissing(t *testing.T) {
	testkit.Serial(t)
	c := New().Prefix("CQTEST_")
	testkit.MustPanic(t, func() { _ = c.MustString("NOPE") })
}

func TestMustPort(t *testing.T) {
	testkit.Serial(t)
	t.Setenv("CQTEST_PORT", "9090")
	c := New().Prefix("CQTEST_")
	if got := c.MustPort("PORT"); got != ":9090" {
		t.Fatalf("MustPort = %q", got)
	}

	t.Setenv("CQTEST_PORT", "70000")
	testkit.MustPanic(t, func() { _ = c.MustPort("PORT") })
}

func TestMayAccessorsDefaults(t *testing.T) {
	testkit.Serial(t)
	c := New().Prefix("CQTEST_MAY_")

	if got := c.MayString("S", "fallback"); got != "fallback" {
		t.Fatalf("MayString = %q", got)
	}
	if got := c.MayInt("I", 42); got != 42 {
		t.Fatalf("MayInt = %d", got)
	}
	if got := c.MayBool("B", true); !got {
		t.Fatalf("MayBool = %v", got)
	}
	if got := c.MayDuration("D", 5*time.Second); got != 5*time.Second {
		t.Fatalf("MayDuration = %v", got)
	}
}

func TestMayAccessorsParse(t *testing.T) {
	testkit.Serial(t)
	t.Setenv("CQTEST_P_I", "7")
	t.Setenv("CQTEST_P_B", "false")
	t.Setenv("CQTEST_P_D", "250ms")
	t.Setenv("CQTEST_P_BAD", "not-a-number")

	c := New().Prefix("CQTEST_P_")
	if got := c.MayInt("I", 0); got != 7 {
		t.Fatalf("MayInt = %d", got)
	}
	if got := c.MayBool("B", true); got {
		t.Fatalf("MayBool = %v", got)
	}
	if got := c.MayDuration("D", time.Second); got != 250*time.Millisecond {
		t.Fatalf("MayDuration = %v", got)
	}
	// invalid values fall back to the default
	if got := c.MayInt("BAD", 3); got != 3 {
		t.Fatalf("MayInt on junk = %d", got)
	}
}

func TestMayCSV(t *testing.T) {
	testkit.Serial(t)
	t.Setenv("CQTEST_CSV_ORIGINS", " a.example , b.example ,, ")

	c := New().Prefix("CQTEST_CSV_")
	got := c.MayCSV("ORIGINS", nil)
	if len(got) != 2 || got[0] != "a.example" || got[1] != "b.example" {
		t.Fatalf("MayCSV = %v", got)
	}
	if def := c.MayCSV("MISSING", []string{"*"}); len(def) != 1 || def[0] != "*" {
		t.Fatalf("MayCSV default = %v", def)
	}
}
