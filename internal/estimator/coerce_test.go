package estimator

import "testing"

func TestCoerceInt(t *testing.T) {
	tests := map[string]int{
		"":           0,
		"   ":        0,
		"abc":        0,
		"12":         12,
		" 12 ":       12,
		"12abc":      12,
		"3.7":        3,
		"-5":         0,
		"+4":         4,
		"15000000":   15_000_000,
		"15.000.000": 15,
	}
	for in, want := range tests {
		if got := CoerceInt(in); got != want {
			t.Errorf("CoerceInt(%q) = %d, want %d", in, got, want)
		}
	}
}

func TestCoerceFloat(t *testing.T) {
	tests := map[string]float64{
		"":          0,
		"x":         0,
		"3":         3,
		"2.5":       2.5,
		"2.5 bulan": 2.5,
		".5":        0.5,
		"1e1":       10,
		"-1.5":      0,
		"1e999":     0,
	}
	for in, want := range tests {
		if got := CoerceFloat(in); got != want {
			t.Errorf("CoerceFloat(%q) = %v, want %v", in, got, want)
		}
	}
}
