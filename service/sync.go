package service

import (
	"errors"

	"github.com/wilhan1771-lgtm/belajar/models"

	"gorm.io/gorm"
)

// RecalcReceiving menghitung ulang kolom turunan semua partai milik satu
// header plus agregat fiber header, dari input mentah yang tersimpan.
// Harus dipanggil di dalam transaksi pemanggil supaya satu paket dengan
// sync invoice.
func RecalcReceiving(tx *gorm.DB, headerID uint) error {
	var parts []models.ReceivingPartai
	if err := tx.Where("header_id = ?", headerID).Order("partai_no ASC").Find(&parts).Error; err != nil {
		return err
	}

	totalFiber := 0.0
	for _, p := range parts {
		d := HitungPartai(PartaiInput{
			Pcs:              p.Pcs,
			KgSample:         p.KgSample,
			TaraPerKeranjang: p.TaraPerKeranjang,
			Timbangan:        p.Timbangan,
		})

		if err := tx.Model(&models.ReceivingPartai{}).
			Where("id = ?", p.ID).
			Updates(map[string]any{
				"keranjang":  d.Keranjang,
				"bruto":      d.Bruto,
				"total_tara": d.TotalTara,
				"netto":      d.Netto,
				"size":       d.Size,
				"round_size": d.RoundSize,
			}).Error; err != nil {
			return err
		}

		totalFiber += p.Fiber
	}

	// overwrite utuh, bukan akumulasi
	return tx.Model(&models.ReceivingHeader{}).
		Where("id = ?", headerID).
		Update("fiber", totalFiber).Error
}

// SyncInvoiceFromReceiving menyamakan kembali invoice dengan data
// receiving setelah timbangan diedit:
//
//   - cari satu-satunya invoice non-VOID milik receiving; tidak ada,
//     atau statusnya bukan DRAFT -> no-op (FINAL/VOID beku)
//   - tiap detail dicocokkan ke partai lewat partai_no: ketemu ->
//     berat_netto + round_size ditimpa nilai baru, harga user tidak
//     disentuh; partai sudah dihapus -> berat_netto di-nol-kan tapi
//     barisnya dipertahankan sebagai jejak audit
//   - agregat header dihitung ulang penuh lewat HitungTotals
//
// Seluruhnya berjalan di transaksi pemanggil: recompute partai, tulis
// ulang detail, dan tulis ulang header commit atau rollback bersama.
func SyncInvoiceFromReceiving(tx *gorm.DB, receivingID uint) error {
	var inv models.InvoiceHeader
	err := tx.Where("receiving_id = ? AND status != ?", receivingID, models.InvoiceVoid).
		Order("id DESC").
		First(&inv).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil
	}
	if err != nil {
		return err
	}
	if inv.Status != models.InvoiceDraft {
		return nil
	}

	var details []models.InvoiceDetail
	if err := tx.Where("invoice_id = ?", inv.ID).Order("partai_no ASC").Find(&details).Error; err != nil {
		return err
	}

	var parts []models.ReceivingPartai
	if err := tx.Where("header_id = ?", receivingID).Find(&parts).Error; err != nil {
		return err
	}
	partMap := make(map[int]models.ReceivingPartai, len(parts))
	for _, p := range parts {
		partMap[p.PartaiNo] = p
	}

	details = timpaDetailDariPartai(details, partMap)

	for _, d := range details {
		if err := tx.Model(&models.InvoiceDetail{}).
			Where("id = ? AND invoice_id = ?", d.ID, inv.ID).
			Updates(map[string]any{
				"round_size":  d.RoundSize,
				"berat_netto": d.BeratNetto,
				"total_harga": d.TotalHarga,
			}).Error; err != nil {
			return err
		}
	}

	t := HitungTotals(details, TotalsConfig{
		PPHRate:         inv.PPHRate,
		PaymentType:     inv.PaymentType,
		CashDeductPerKg: inv.CashDeductPerKg,
		RejectKg:        inv.RejectKg,
		RejectPrice:     inv.RejectPrice,
	})

	return tx.Model(&models.InvoiceHeader{}).
		Where("id = ?", inv.ID).
		Updates(map[string]any{
			"subtotal":          t.Subtotal,
			"pph":               t.PPH,
			"total_kg":          t.TotalKg,
			"cash_deduct_total": t.CashDeductTotal,
			"reject_total":      t.RejectTotal,
			"total":             t.Total,
		}).Error
}

// timpaDetailDariPartai menulis ulang berat dan size tiap detail dari
// partai pasangannya, dengan harga tidak diubah. Partai yang hilang
// membuat detailnya jadi 0 kg, barisnya tetap ada.
func timpaDetailDariPartai(details []models.InvoiceDetail, partMap map[int]models.ReceivingPartai) []models.InvoiceDetail {
	out := make([]models.InvoiceDetail, len(details))
	for i, d := range details {
		p, ok := partMap[d.PartaiNo]
		if ok {
			d.RoundSize = p.RoundSize
			d.BeratNetto = p.Netto
		} else {
			d.RoundSize = nil
			d.BeratNetto = 0
		}
		d.TotalHarga = d.BeratNetto * d.Harga
		out[i] = d
	}
	return out
}
