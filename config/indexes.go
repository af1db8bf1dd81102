package config

import "log"

// EnsureIndexes membuat index yang tidak bisa dinyatakan lewat tag gorm.
// Partial unique index: satu receiving maksimal punya satu invoice yang
// belum VOID. Invoice VOID boleh menumpuk sebagai riwayat.
func EnsureIndexes() {
	stmts := []string{
		`CREATE UNIQUE INDEX IF NOT EXISTS ux_invoice_receiving_id
		 ON invoice_headers (receiving_id)
		 WHERE status != 'VOID'`,
	}
	for _, s := range stmts {
		if err := DB.Exec(s).Error; err != nil {
			log.Fatalf("❌ Gagal membuat index: %v", err)
		}
	}
}
