package utils

import (
	"strconv"
	"strings"
)

// ToFloat memarsing input angka dari form/JSON yang sering pakai koma
// desimal ("12,5"). String kosong atau tidak valid jatuh ke default.
func ToFloat(s string, def float64) float64 {
	s = strings.TrimSpace(strings.ReplaceAll(s, ",", "."))
	if s == "" {
		return def
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return def
	}
	return v
}

func ToInt(s string, def int) int {
	s = strings.TrimSpace(s)
	if s == "" {
		return def
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return v
}
