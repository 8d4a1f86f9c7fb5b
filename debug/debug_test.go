package debug

import (
	"bytes"
	"strings"
	"testing"
)

func TestLogfRedirect(t *testing.T) {
	var buf bytes.Buffer
	prev := SetOutput(&buf)
	defer SetOutput(prev)

	Logf("units %d %v\n", 3, []string{"e|", "B|"})
	got := buf.String()
	if !strings.HasPrefix(got, "units 3 [") {
		t.Fatalf("unexpected prefix: %q", got)
	}
	if !strings.Contains(got, `"e|"`) {
		t.Errorf("expected json rendering of slice, got %q", got)
	}
}

func TestLogAny(t *testing.T) {
	var buf bytes.Buffer
	prev := SetOutput(&buf)
	defer SetOutput(prev)

	LogAny(map[string]int{"lanes": 6})
	if got, want := buf.String(), "{\"lanes\":6}\n"; got != want {
		t.Errorf("got %q want %q", got, want)
	}
}

func TestBoolEnv(t *testing.T) {
	t.Setenv("TABFLOW_DEBUG_TEST_X", "true")
	if !boolEnv("TABFLOW_DEBUG_TEST_X") {
		t.Error("expected true")
	}
	t.Setenv("TABFLOW_DEBUG_TEST_X", "nope")
	if boolEnv("TABFLOW_DEBUG_TEST_X") {
		t.Error("expected false for unparsable value")
	}
	if boolEnv("TABFLOW_DEBUG_TEST_UNSET") {
		t.Error("expected false for unset value")
	}
}
