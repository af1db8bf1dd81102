package service

import "math"

// InterpolasiHarga mencari harga per kg untuk satu round_size dari
// tabel harga yang sparse (key kelipatan 10, contoh 40/50/60/70).
//
//   - size persis ada di tabel -> harga tabel apa adanya
//   - size di antara dua bucket yang sama-sama terisi -> interpolasi
//     linier, dibulatkan ke rupiah terdekat
//   - salah satu ujung bucket kosong -> (0, false); pemanggil
//     memperlakukannya sebagai baris harga nol tapi beratnya tetap
//     dihitung
//
// Murni dan deterministik, aman di-memo per invoice.
func InterpolasiHarga(size int, points map[int]float64) (float64, bool) {
	if p, ok := points[size]; ok {
		return p, true
	}

	lo := (size / 10) * 10
	hi := lo + 10

	pLo, okLo := points[lo]
	pHi, okHi := points[hi]
	if !okLo || !okHi {
		return 0, false
	}

	step := (pLo - pHi) / 10.0
	return math.Round(pLo - step*float64(size-lo)), true
}
