package models

import (
	"time"

	"github.com/lib/pq"
)

// ReceivingHeader = satu nota terima bahan baku dari supplier.
// Fiber di header adalah agregat dari fiber semua partai dan selalu
// ditulis ulang utuh saat recompute, tidak pernah ditambah incremental.
type ReceivingHeader struct {
	ID       uint    `gorm:"primaryKey" json:"id"`
	Tanggal  string  `gorm:"size:20;not null" json:"tanggal"` // YYYY-MM-DD
	Supplier string  `gorm:"size:180;not null" json:"supplier"`
	Jenis    string  `gorm:"size:120" json:"jenis"`
	Fiber    float64 `gorm:"not null;default:0" json:"fiber"`

	Partai []ReceivingPartai `gorm:"foreignKey:HeaderID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"partai"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ReceivingPartai = satu partai timbangan dalam satu nota terima.
// Kolom keranjang/bruto/total_tara/netto/size/round_size adalah hasil
// hitungan murni dari input mentah (timbangan, tara, pcs, kg_sample);
// recompute dari input yang sama harus menghasilkan nilai yang sama.
type ReceivingPartai struct {
	ID       uint `gorm:"primaryKey" json:"id"`
	HeaderID uint `gorm:"not null;uniqueIndex:ux_partai_header_no,priority:1" json:"header_id"`
	PartaiNo int  `gorm:"not null;uniqueIndex:ux_partai_header_no,priority:2" json:"partai_no"`

	// input mentah
	Pcs              int             `json:"pcs"`
	KgSample         float64         `json:"kg_sample"`
	TaraPerKeranjang float64         `json:"tara_per_keranjang"`
	Timbangan        pq.Float64Array `gorm:"type:float8[]" json:"timbangan"` // urutan baca timbangan dipertahankan
	Note             string          `gorm:"size:255" json:"note"`
	KategoriKupasan  string          `gorm:"size:120" json:"kategori_kupasan"`
	Fiber            float64         `gorm:"not null;default:0" json:"fiber"`

	// hasil hitungan
	Keranjang int      `gorm:"not null;default:0" json:"keranjang"`
	Bruto     float64  `gorm:"not null;default:0" json:"bruto"`
	TotalTara float64  `gorm:"not null;default:0" json:"total_tara"`
	Netto     float64  `gorm:"not null;default:0" json:"netto"`
	Size      *float64 `json:"size"`
	RoundSize *int     `json:"round_size"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
