package service

import (
	"errors"

	"github.com/wilhan1771-lgtm/belajar/models"

	"gorm.io/gorm"
)

var (
	// ErrReceivingTerkunci = receiving punya invoice non-DRAFT, data
	// timbangan tidak boleh diubah lagi.
	ErrReceivingTerkunci = errors.New("receiving terkunci oleh invoice yang sudah FINAL")

	// ErrInvoiceBeku = invoice bukan DRAFT, baris dan harga tidak boleh
	// diubah lagi.
	ErrInvoiceBeku = errors.New("invoice sudah tidak berstatus DRAFT")

	// ErrTransisiTidakValid = perpindahan status yang diminta tidak ada
	// di tabel transisi.
	ErrTransisiTidakValid = errors.New("transisi status invoice tidak valid")
)

// CanTransition: DRAFT -> FINAL, DRAFT -> VOID, FINAL -> VOID.
// VOID terminal, tidak bisa keluar lagi.
func CanTransition(from, to models.InvoiceStatus) bool {
	switch from {
	case models.InvoiceDraft:
		return to == models.InvoiceFinal || to == models.InvoiceVoid
	case models.InvoiceFinal:
		return to == models.InvoiceVoid
	default:
		return false
	}
}

// GuardEditReceiving menolak edit receiving yang invoicenya sudah bukan
// DRAFT. Receiving tanpa invoice, atau dengan invoice DRAFT / VOID,
// bebas diedit.
func GuardEditReceiving(tx *gorm.DB, receivingID uint) error {
	var inv models.InvoiceHeader
	err := tx.Select("id", "status").
		Where("receiving_id = ? AND status != ?", receivingID, models.InvoiceVoid).
		Order("id DESC").
		First(&inv).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil
	}
	if err != nil {
		return err
	}
	if inv.Status != models.InvoiceDraft {
		return ErrReceivingTerkunci
	}
	return nil
}
