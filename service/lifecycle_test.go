package service

import (
	"testing"

	"github.com/wilhan1771-lgtm/belajar/models"
)

func TestCanTransition(t *testing.T) {
	tests := []struct {
		from models.InvoiceStatus
		to   models.InvoiceStatus
		want bool
	}{
		{models.InvoiceDraft, models.InvoiceFinal, true},
		{models.InvoiceDraft, models.InvoiceVoid, true},
		{models.InvoiceFinal, models.InvoiceVoid, true},
		{models.InvoiceFinal, models.InvoiceDraft, false},
		{models.InvoiceVoid, models.InvoiceDraft, false},
		{models.InvoiceVoid, models.InvoiceFinal, false},
		{models.InvoiceVoid, models.InvoiceVoid, false}, // VOID terminal
		{models.InvoiceDraft, models.InvoiceDraft, false},
	}

	for _, tt := range tests {
		if got := CanTransition(tt.from, tt.to); got != tt.want {
			t.Errorf("CanTransition(%s, %s) = %v, want %v", tt.from, tt.to, got, tt.want)
		}
	}
}
