package httpx_test

import (
	"slices"
	"testing"

	"github.com/Gunvolt24/catalog_site/pkg/httpx"
)

func TestClampInt(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		v, min, max int
		want        int
	}{
		{"below_min", 0, 1, 10, 1},
		{"above_max", 11, 1, 10, 10},
		{"inside", 5, 1, 10, 5},
		{"equal_min", 1, 1, 10, 1},
		{"equal_max", 10, 1, 10, 10},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := httpx.ClampInt(tt.v, tt.min, tt.max); got != tt.want {
				t.Fatalf("ClampInt(%d,%d,%d) = %d, want %d", tt.v, tt.min, tt.max, got, tt.want)
			}
		})
	}
}

func TestParseIntValue(t *testing.T) {
	t.Parallel()

	if v, ok := httpx.ParseIntValue(" 2024 "); !ok || v != 2024 {
		t.Fatalf("ParseIntValue(2024) = %d,%v", v, ok)
	}
	for _, raw := range []string{"abc", "-1", "", "12.5"} {
		if _, ok := httpx.ParseIntValue(raw); ok {
			t.Fatalf("ParseIntValue(%q) must be rejected", raw)
		}
	}
}

func TestSplitCSV(t *testing.T) {
	t.Parallel()

	if got := httpx.SplitCSV("A, B,,C "); !slices.Equal(got, []string{"A", "B", "C"}) {
		t.Fatalf("SplitCSV: got %v", got)
	}
	if got := httpx.SplitCSV("  "); got != nil {
		t.Fatalf("SplitCSV(blank): want nil, got %v", got)
	}
}
