package service

import "testing"

func TestInterpolasiHarga(t *testing.T) {
	points := map[int]float64{40: 65000, 50: 60000, 60: 55000}

	tests := []struct {
		name   string
		size   int
		points map[int]float64
		want   float64
		wantOk bool
	}{
		{"tepat di bucket", 50, points, 60000, true},
		{"interpolasi 54", 54, points, 58000, true}, // step 500/unit: 60000 - 500*4
		{"interpolasi 44", 44, points, 63000, true}, // step 500/unit: 65000 - 500*4
		{"tepat di bucket bawah", 40, points, 65000, true},
		{"ujung atas kosong", 64, points, 0, false},
		{"ujung bawah kosong", 34, points, 0, false},
		{"tabel satu titik", 54, map[int]float64{50: 60000}, 0, false},
		{"tabel kosong", 54, map[int]float64{}, 0, false},
		{"hasil dibulatkan ke rupiah", 53, map[int]float64{50: 100, 60: 95}, 99, true}, // 100 - 0.5*3 = 98.5 -> 99
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := InterpolasiHarga(tt.size, tt.points)
			if ok != tt.wantOk || got != tt.want {
				t.Errorf("InterpolasiHarga(%d) = (%v, %v), want (%v, %v)", tt.size, got, ok, tt.want, tt.wantOk)
			}
		})
	}
}

func TestInterpolasiHargaDeterministik(t *testing.T) {
	points := map[int]float64{40: 65000, 50: 60000}
	a, _ := InterpolasiHarga(47, points)
	b, _ := InterpolasiHarga(47, points)
	if a != b {
		t.Errorf("hasil tidak deterministik: %v vs %v", a, b)
	}
}
