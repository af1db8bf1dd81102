package service

import (
	"math"
	"testing"

	"github.com/wilhan1771-lgtm/belajar/models"
)

func detail(partaiNo int, netto, harga float64) models.InvoiceDetail {
	return models.InvoiceDetail{
		PartaiNo:   partaiNo,
		BeratNetto: netto,
		Harga:      harga,
		TotalHarga: netto * harga,
	}
}

func TestHitungTotalsSkenarioPenuh(t *testing.T) {
	// satu partai 171.5 kg dengan harga interpolasi 58000
	details := []models.InvoiceDetail{detail(1, 171.5, 58000)}
	got := HitungTotals(details, TotalsConfig{PPHRate: 0})

	if got.Subtotal != 9947000 {
		t.Errorf("Subtotal = %v, want 9947000", got.Subtotal)
	}
	if got.TotalKg != 171.5 {
		t.Errorf("TotalKg = %v, want 171.5", got.TotalKg)
	}
	if got.Total != 9947000 {
		t.Errorf("Total = %v, want 9947000", got.Total)
	}
}

func TestHitungTotalsPPH(t *testing.T) {
	details := []models.InvoiceDetail{detail(1, 100, 50000)}

	got := HitungTotals(details, TotalsConfig{PPHRate: 0.0025})

	subtotal := 100.0 * 50000
	wantPPH := subtotal * 0.0025
	if got.PPH != wantPPH {
		t.Errorf("PPH = %v, want %v", got.PPH, wantPPH)
	}
	if got.Total != subtotal-wantPPH {
		t.Errorf("Total = %v, want %v", got.Total, subtotal-wantPPH)
	}
}

func TestHitungTotalsPPHNolSaatSubtotalNol(t *testing.T) {
	// rate terpasang tapi semua baris harga 0: PPH wajib 0, bukan noise negatif
	details := []models.InvoiceDetail{detail(1, 100, 0), detail(2, 50, 0)}
	got := HitungTotals(details, TotalsConfig{PPHRate: 0.0025})

	if got.PPH != 0 {
		t.Errorf("PPH = %v, want 0 saat subtotal 0", got.PPH)
	}
	if got.TotalKg != 150 {
		t.Errorf("TotalKg = %v, want 150 (berat tetap dihitung)", got.TotalKg)
	}
	if got.Total != 0 {
		t.Errorf("Total = %v, want 0", got.Total)
	}
}

func TestHitungTotalsCashDeduct(t *testing.T) {
	details := []models.InvoiceDetail{detail(1, 200, 40000)}

	cash := HitungTotals(details, TotalsConfig{PaymentType: models.PaymentCash, CashDeductPerKg: 500})
	if cash.CashDeductTotal != 100000 {
		t.Errorf("CashDeductTotal = %v, want 100000", cash.CashDeductTotal)
	}

	transfer := HitungTotals(details, TotalsConfig{PaymentType: models.PaymentTransfer, CashDeductPerKg: 500})
	if transfer.CashDeductTotal != 0 {
		t.Errorf("CashDeductTotal = %v, want 0 untuk TRANSFER", transfer.CashDeductTotal)
	}
}

func TestHitungTotalsReject(t *testing.T) {
	details := []models.InvoiceDetail{detail(1, 100, 40000)}

	tests := []struct {
		name  string
		kg    float64
		harga float64
		want  float64
	}{
		{"dua-duanya positif", 5, 20000, 100000},
		{"kg nol", 0, 20000, 0},
		{"harga nol", 5, 0, 0},
		{"kg negatif", -5, 20000, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := HitungTotals(details, TotalsConfig{RejectKg: tt.kg, RejectPrice: tt.harga})
			if got.RejectTotal != tt.want {
				t.Errorf("RejectTotal = %v, want %v", got.RejectTotal, tt.want)
			}
		})
	}
}

func TestHitungTotalsSemuaPotongan(t *testing.T) {
	details := []models.InvoiceDetail{
		detail(1, 171.5, 58000),
		detail(2, 120.0, 60000),
	}
	cfg := TotalsConfig{
		PPHRate:         0.0025,
		PaymentType:     models.PaymentCash,
		CashDeductPerKg: 500,
		RejectKg:        3,
		RejectPrice:     25000,
	}
	got := HitungTotals(details, cfg)

	subtotal := 171.5*58000 + 120.0*60000
	pph := subtotal * 0.0025
	cash := 500 * (171.5 + 120.0)
	reject := 3.0 * 25000

	if got.Total != subtotal-pph-cash-reject {
		t.Errorf("Total = %v, want %v", got.Total, subtotal-pph-cash-reject)
	}
}

func TestHitungRingkasanTanpaVoid(t *testing.T) {
	rows := []models.InvoiceHeader{
		{Status: models.InvoiceDraft, TotalKg: 171.5, Total: 9947000},
		{Status: models.InvoiceFinal, TotalKg: 120.0, Total: 7200000},
		{Status: models.InvoiceVoid, TotalKg: 999.0, Total: 99999999},
	}

	got := HitungRingkasan(rows)

	if got.Jumlah != 2 {
		t.Errorf("Jumlah = %d, want 2 (VOID tidak dihitung)", got.Jumlah)
	}
	if got.TotalKg != 171.5+120.0 {
		t.Errorf("TotalKg = %v, want %v", got.TotalKg, 171.5+120.0)
	}
	if got.Total != 9947000+7200000 {
		t.Errorf("Total = %v, want %v", got.Total, 9947000+7200000)
	}
}

func TestHitungRingkasanSemuaVoid(t *testing.T) {
	rows := []models.InvoiceHeader{
		{Status: models.InvoiceVoid, TotalKg: 50, Total: 1000000},
		{Status: models.InvoiceVoid, TotalKg: 30, Total: 500000},
	}
	got := HitungRingkasan(rows)
	if got.Jumlah != 0 || got.TotalKg != 0 || got.Total != 0 {
		t.Errorf("ringkasan semua VOID = %+v, want serba nol", got)
	}
}

func TestHitungTotalsSelisihHeaderDetail(t *testing.T) {
	// invariant: subtotal header == jumlah total_harga detail
	details := []models.InvoiceDetail{
		detail(1, 171.5, 58000),
		detail(2, 89.25, 61750),
		detail(3, 0, 57000), // partai yang sudah dihapus, baris di-nol-kan
	}
	got := HitungTotals(details, TotalsConfig{PPHRate: 0.0025})

	sum := 0.0
	for _, d := range details {
		sum += d.TotalHarga
	}
	if math.Abs(got.Subtotal-sum) >= 1e-6 {
		t.Errorf("selisih subtotal vs detail = %v", math.Abs(got.Subtotal-sum))
	}
}
