package models

import "time"

type InvoiceStatus string

const (
	InvoiceDraft InvoiceStatus = "DRAFT"
	InvoiceFinal InvoiceStatus = "FINAL"
	InvoiceVoid  InvoiceStatus = "VOID"
)

type PaymentType string

const (
	PaymentTransfer PaymentType = "TRANSFER"
	PaymentCash     PaymentType = "CASH"
)

// InvoiceHeader = tagihan supplier untuk satu nota terima.
// Maksimal satu invoice non-VOID per receiving (partial unique index
// ux_invoice_receiving_id, dibuat di config.EnsureIndexes).
type InvoiceHeader struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	ReceivingID uint   `gorm:"not null;index" json:"receiving_id"`
	Tanggal     string `gorm:"size:20;not null" json:"tanggal"`
	Supplier    string `gorm:"size:180;not null" json:"supplier"`

	PPHRate float64 `gorm:"not null;default:0" json:"pph_rate"` // pecahan desimal, 0.0025 = 0.25%

	Subtotal        float64 `gorm:"not null;default:0" json:"subtotal"`
	PPH             float64 `gorm:"not null;default:0" json:"pph"`
	TotalKg         float64 `gorm:"not null;default:0" json:"total_kg"`
	CashDeductPerKg float64 `gorm:"not null;default:0" json:"cash_deduct_per_kg"`
	CashDeductTotal float64 `gorm:"not null;default:0" json:"cash_deduct_total"`
	RejectKg        float64 `gorm:"not null;default:0" json:"reject_kg"`
	RejectPrice     float64 `gorm:"not null;default:0" json:"reject_price"`
	RejectTotal     float64 `gorm:"not null;default:0" json:"reject_total"`
	Total           float64 `gorm:"not null;default:0" json:"total"`

	PaymentType PaymentType   `gorm:"size:20;not null;default:'TRANSFER'" json:"payment_type"`
	TempoHari   int           `gorm:"not null;default:0" json:"tempo_hari"`
	DueDate     string        `gorm:"size:20" json:"due_date"`
	Status      InvoiceStatus `gorm:"size:10;not null;default:'DRAFT'" json:"status"`

	Details []InvoiceDetail `gorm:"foreignKey:InvoiceID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"details"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// InvoiceDetail = satu baris invoice, 1:1 dengan partai receiving
// lewat partai_no. Harga diisi user dan dipertahankan saat berat
// di-sync ulang dari receiving.
type InvoiceDetail struct {
	ID        uint `gorm:"primaryKey" json:"id"`
	InvoiceID uint `gorm:"not null;index" json:"invoice_id"`

	PartaiNo   int     `gorm:"not null" json:"partai_no"`
	RoundSize  *int    `json:"round_size"`
	BeratNetto float64 `gorm:"not null;default:0" json:"berat_netto"`
	Harga      float64 `gorm:"not null;default:0" json:"harga"`
	TotalHarga float64 `gorm:"not null;default:0" json:"total_harga"`
}
