package service

import (
	"math"
	"reflect"
	"testing"

	"github.com/wilhan1771-lgtm/belajar/models"
)

func partai(no int, netto float64, roundSize int) models.ReceivingPartai {
	rs := roundSize
	return models.ReceivingPartai{PartaiNo: no, Netto: netto, RoundSize: &rs}
}

func TestTimpaDetailDariPartai(t *testing.T) {
	details := []models.InvoiceDetail{
		{ID: 1, PartaiNo: 1, BeratNetto: 100, Harga: 58000, TotalHarga: 5800000},
		{ID: 2, PartaiNo: 2, BeratNetto: 50, Harga: 61000, TotalHarga: 3050000},
	}
	parts := map[int]models.ReceivingPartai{
		1: partai(1, 171.5, 54),
		2: partai(2, 49.75, 61),
	}

	got := timpaDetailDariPartai(details, parts)

	if got[0].BeratNetto != 171.5 {
		t.Errorf("berat baris 1 = %v, want 171.5", got[0].BeratNetto)
	}
	if got[0].Harga != 58000 {
		t.Errorf("harga baris 1 berubah jadi %v, harga user harus dipertahankan", got[0].Harga)
	}
	if got[0].TotalHarga != 171.5*58000 {
		t.Errorf("total baris 1 = %v, want %v", got[0].TotalHarga, 171.5*58000)
	}
	if got[0].RoundSize == nil || *got[0].RoundSize != 54 {
		t.Errorf("round_size baris 1 = %v, want 54", got[0].RoundSize)
	}
	if got[1].BeratNetto != 49.75 || got[1].TotalHarga != 49.75*61000 {
		t.Errorf("baris 2 = %+v", got[1])
	}
}

func TestTimpaDetailPartaiHilang(t *testing.T) {
	// partai 2 sudah dihapus dari receiving: barisnya tetap ada tapi 0 kg
	details := []models.InvoiceDetail{
		{ID: 1, PartaiNo: 1, BeratNetto: 100, Harga: 58000},
		{ID: 2, PartaiNo: 2, BeratNetto: 50, Harga: 61000},
	}
	parts := map[int]models.ReceivingPartai{
		1: partai(1, 100, 54),
	}

	got := timpaDetailDariPartai(details, parts)

	if len(got) != 2 {
		t.Fatalf("jumlah baris = %d, baris yatim tidak boleh dihapus", len(got))
	}
	if got[1].BeratNetto != 0 || got[1].TotalHarga != 0 {
		t.Errorf("baris yatim = %+v, want berat dan total 0", got[1])
	}
	if got[1].RoundSize != nil {
		t.Errorf("round_size baris yatim = %v, want nil", *got[1].RoundSize)
	}
	if got[1].Harga != 61000 {
		t.Errorf("harga baris yatim = %v, harga tetap tersimpan untuk audit", got[1].Harga)
	}
}

func TestTimpaDetailIdempoten(t *testing.T) {
	details := []models.InvoiceDetail{
		{ID: 1, PartaiNo: 1, BeratNetto: 100, Harga: 58000},
		{ID: 2, PartaiNo: 3, BeratNetto: 80, Harga: 55000},
	}
	parts := map[int]models.ReceivingPartai{
		1: partai(1, 171.5, 54),
	}

	once := timpaDetailDariPartai(details, parts)
	twice := timpaDetailDariPartai(once, parts)

	if !reflect.DeepEqual(once, twice) {
		t.Errorf("sync dua kali beda hasil:\n1x: %+v\n2x: %+v", once, twice)
	}
}

func TestTimpaDetailPerbaikiBeratBasi(t *testing.T) {
	// detail menyimpan berat lama (100) padahal partai sudah ditimbang
	// ulang jadi 171.5: sync harus menarik ulang berat dari partai
	// sehingga jumlah berat detail == jumlah netto partai
	details := []models.InvoiceDetail{
		{ID: 1, PartaiNo: 1, BeratNetto: 100, Harga: 58000, TotalHarga: 5800000},
	}
	parts := map[int]models.ReceivingPartai{
		1: partai(1, 171.5, 54),
	}

	updated := timpaDetailDariPartai(details, parts)
	totals := HitungTotals(updated, TotalsConfig{})

	if updated[0].BeratNetto != 171.5 {
		t.Fatalf("berat detail = %v, berat basi tidak tertimpa", updated[0].BeratNetto)
	}
	if updated[0].TotalHarga != 171.5*58000 {
		t.Errorf("total baris = %v, want %v", updated[0].TotalHarga, 171.5*58000)
	}
	if totals.TotalKg != 171.5 {
		t.Errorf("total_kg header = %v, want 171.5", totals.TotalKg)
	}
	if totals.Subtotal != 171.5*58000 {
		t.Errorf("subtotal header = %v, want %v", totals.Subtotal, 171.5*58000)
	}
}

func TestTimpaDetailLaluTotalsKonsisten(t *testing.T) {
	// alur sync penuh di sisi murni: timpa detail lalu hitung header,
	// invariant subtotal == jumlah total_harga harus selalu kepegang
	details := []models.InvoiceDetail{
		{ID: 1, PartaiNo: 1, BeratNetto: 10, Harga: 58000},
		{ID: 2, PartaiNo: 2, BeratNetto: 20, Harga: 60000},
		{ID: 3, PartaiNo: 3, BeratNetto: 30, Harga: 0},
	}
	parts := map[int]models.ReceivingPartai{
		1: partai(1, 171.5, 54),
		3: partai(3, 95.25, 48),
	}

	updated := timpaDetailDariPartai(details, parts)
	totals := HitungTotals(updated, TotalsConfig{PPHRate: 0.0025})

	sumDetail := 0.0
	sumBerat := 0.0
	for _, d := range updated {
		sumDetail += d.TotalHarga
		sumBerat += d.BeratNetto
	}
	if math.Abs(totals.Subtotal-sumDetail) >= 1e-6 {
		t.Errorf("subtotal %v != jumlah detail %v", totals.Subtotal, sumDetail)
	}
	if totals.TotalKg != sumBerat {
		t.Errorf("total_kg %v != jumlah berat %v", totals.TotalKg, sumBerat)
	}
}
