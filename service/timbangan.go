package service

import (
	"fmt"
	"math"
)

// MaxKapasitasKeranjang = batas berat satu keranjang timbang (kg).
// Bacaan di atas ini pasti salah input dan ditolak di boundary.
const MaxKapasitasKeranjang = 60.0

type PartaiInput struct {
	Pcs              int
	KgSample         float64
	TaraPerKeranjang float64
	Timbangan        []float64
}

type PartaiDerived struct {
	Timbangan []float64 // hanya bacaan valid (> 0), urutan asli dipertahankan
	Keranjang int
	Bruto     float64
	TotalTara float64
	Netto     float64
	Size      *float64
	RoundSize *int
}

// ValidateTimbangan menolak bacaan timbangan yang melebihi kapasitas
// keranjang. Dipanggil sebelum transaksi dimulai supaya satu bacaan
// salah membatalkan seluruh batch tanpa ada baris yang tertulis.
func ValidateTimbangan(readings []float64) error {
	for i, w := range readings {
		if w > MaxKapasitasKeranjang {
			return fmt.Errorf("timbangan ke-%d (%.2f kg) melebihi kapasitas keranjang %.0f kg", i+1, w, MaxKapasitasKeranjang)
		}
	}
	return nil
}

// HitungPartai menghitung semua kolom turunan satu partai dari input
// mentahnya. Murni dan idempoten: input sama selalu menghasilkan nilai
// sama, dan netto tidak tergantung urutan bacaan.
//
// Netto sengaja TIDAK di-floor ke 0: netto = round2(bruto - total_tara)
// di semua jalur, supaya identitas aritmetikanya terjaga dan tara yang
// salah input langsung kelihatan sebagai netto negatif.
func HitungPartai(in PartaiInput) PartaiDerived {
	valid := make([]float64, 0, len(in.Timbangan))
	sum := 0.0
	for _, w := range in.Timbangan {
		if w > 0 {
			valid = append(valid, w)
			sum += w
		}
	}

	d := PartaiDerived{
		Timbangan: valid,
		Keranjang: len(valid),
		Bruto:     round2(sum),
	}
	d.TotalTara = round2(float64(d.Keranjang) * in.TaraPerKeranjang)
	d.Netto = round2(d.Bruto - d.TotalTara)

	if in.Pcs > 0 && in.KgSample > 0 {
		raw := float64(in.Pcs) / in.KgSample
		size := round1(raw)
		rounded := int(math.Round(raw)) // half away from zero
		d.Size = &size
		d.RoundSize = &rounded
	}
	return d
}

func round2(v float64) float64 { return math.Round(v*100) / 100 }
func round1(v float64) float64 { return math.Round(v*10) / 10 }
