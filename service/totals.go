package service

import "github.com/wilhan1771-lgtm/belajar/models"

type TotalsConfig struct {
	PPHRate         float64 // pecahan desimal, bukan persen
	PaymentType     models.PaymentType
	CashDeductPerKg float64
	RejectKg        float64
	RejectPrice     float64
}

type InvoiceTotals struct {
	TotalKg         float64
	Subtotal        float64
	PPH             float64
	CashDeductTotal float64
	RejectTotal     float64
	Total           float64
}

// HitungTotals menghitung ulang semua agregat header invoice dari nol
// berdasarkan baris detail saat ini. Selalu full recompute, tidak pernah
// patch incremental -- patch parsial adalah sumber utama selisih antara
// header dan detail.
func HitungTotals(details []models.InvoiceDetail, cfg TotalsConfig) InvoiceTotals {
	var t InvoiceTotals
	for _, d := range details {
		t.TotalKg += d.BeratNetto
		t.Subtotal += d.BeratNetto * d.Harga
	}

	// subtotal 0 -> PPH dipaksa 0 apa pun rate-nya, supaya noise float
	// tidak menghasilkan total negatif
	if t.Subtotal != 0 {
		t.PPH = t.Subtotal * cfg.PPHRate
	}

	if cfg.PaymentType == models.PaymentCash {
		t.CashDeductTotal = cfg.CashDeductPerKg * t.TotalKg
	}

	if cfg.RejectKg > 0 && cfg.RejectPrice > 0 {
		t.RejectTotal = cfg.RejectKg * cfg.RejectPrice
	}

	t.Total = t.Subtotal - t.PPH - t.CashDeductTotal - t.RejectTotal
	return t
}

type RingkasanInvoice struct {
	Jumlah  int64   `json:"jumlah"`
	TotalKg float64 `json:"total_kg"`
	Total   float64 `json:"total"`
}

// HitungRingkasan menjumlahkan invoice untuk ringkasan listing.
// Invoice VOID tidak pernah ikut agregat mana pun.
func HitungRingkasan(rows []models.InvoiceHeader) RingkasanInvoice {
	var r RingkasanInvoice
	for _, inv := range rows {
		if inv.Status == models.InvoiceVoid {
			continue
		}
		r.Jumlah++
		r.TotalKg += inv.TotalKg
		r.Total += inv.Total
	}
	return r
}
