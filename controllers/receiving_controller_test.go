package controllers

import (
	"strings"
	"testing"
)

func partaiIn(no int, timbangan ...float64) ReceivingPartaiInput {
	return ReceivingPartaiInput{PartaiNo: no, Timbangan: timbangan}
}

func TestValidatePartaiBatch(t *testing.T) {
	tests := []struct {
		name    string
		partai  []ReceivingPartaiInput
		wantErr string // substring, kosong = harus lolos
	}{
		{
			"batch valid",
			[]ReceivingPartaiInput{partaiIn(1, 58.0, 59.5, 60.0), partaiIn(2, 40.25)},
			"",
		},
		{
			"satu bacaan 61 kg di partai ketiga menolak seluruh batch",
			[]ReceivingPartaiInput{partaiIn(1, 50), partaiIn(2, 55), partaiIn(3, 30, 61)},
			"partai 3",
		},
		{
			"partai_no dobel ditolak",
			[]ReceivingPartaiInput{partaiIn(1, 50), partaiIn(1, 40)},
			"dobel",
		},
		{
			"batch kosong lolos",
			nil,
			"",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validatePartaiBatch(tt.partai)
			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("validatePartaiBatch() = %v, want nil", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("validatePartaiBatch() = %v, want error mengandung %q", err, tt.wantErr)
			}
		})
	}
}

func TestValidTanggal(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"2026-08-30", true},
		{"2026-2-3", false},
		{"30-08-2026", false},
		{"", false},
		{"bukan tanggal", false},
	}
	for _, tt := range tests {
		if got := validTanggal(tt.in); got != tt.want {
			t.Errorf("validTanggal(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestHitungDueDate(t *testing.T) {
	if got := hitungDueDate("2026-08-30", 14); got != "2026-09-13" {
		t.Errorf("hitungDueDate = %q, want 2026-09-13", got)
	}
	if got := hitungDueDate("2026-08-30", 0); got != "" {
		t.Errorf("tempo 0 harusnya tanpa due date, dapat %q", got)
	}
}
