package utils

import "testing"

func TestToFloat(t *testing.T) {
	tests := []struct {
		in   string
		def  float64
		want float64
	}{
		{"12.5", 0, 12.5},
		{"12,5", 0, 12.5}, // koma desimal dari form
		{" 60 ", 0, 60},
		{"", 1.5, 1.5},
		{"abc", 2, 2},
	}
	for _, tt := range tests {
		if got := ToFloat(tt.in, tt.def); got != tt.want {
			t.Errorf("ToFloat(%q, %v) = %v, want %v", tt.in, tt.def, got, tt.want)
		}
	}
}

func TestToInt(t *testing.T) {
	tests := []struct {
		in   string
		def  int
		want int
	}{
		{"42", 0, 42},
		{" 7 ", 0, 7},
		{"", 5, 5},
		{"x", -1, -1},
	}
	for _, tt := range tests {
		if got := ToInt(tt.in, tt.def); got != tt.want {
			t.Errorf("ToInt(%q, %v) = %v, want %v", tt.in, tt.def, got, tt.want)
		}
	}
}
