package controllers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/wilhan1771-lgtm/belajar/config"
	"github.com/wilhan1771-lgtm/belajar/models"
	"github.com/wilhan1771-lgtm/belajar/service"
	"github.com/wilhan1771-lgtm/belajar/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type ReceivingPartaiInput struct {
	PartaiNo         int       `json:"partai_no" binding:"required,gt=0"`
	Pcs              int       `json:"pcs"`
	KgSample         float64   `json:"kg_sample"`
	TaraPerKeranjang float64   `json:"tara_per_keranjang"`
	Timbangan        []float64 `json:"timbangan" binding:"required,min=1"`
	Note             string    `json:"note"`
	KategoriKupasan  string    `json:"kategori_kupasan"`
	Fiber            float64   `json:"fiber"`
}

type ReceivingCreateInput struct {
	Tanggal  string                 `json:"tanggal" binding:"required"`
	Supplier string                 `json:"supplier" binding:"required"`
	Jenis    string                 `json:"jenis"`
	Partai   []ReceivingPartaiInput `json:"partai" binding:"required,min=1,dive"`
}

// tanggal dipakai menghitung due date invoice, formatnya dikunci di sini
func validTanggal(s string) bool {
	_, err := time.Parse("2006-01-02", s)
	return err == nil
}

// validasi timbangan seluruh batch SEBELUM transaksi dibuka: satu bacaan
// di atas kapasitas membatalkan semuanya, nol baris tertulis.
func validatePartaiBatch(partai []ReceivingPartaiInput) error {
	seen := map[int]bool{}
	for _, p := range partai {
		if seen[p.PartaiNo] {
			return fmt.Errorf("partai_no %d dobel dalam satu nota", p.PartaiNo)
		}
		seen[p.PartaiNo] = true
		if err := service.ValidateTimbangan(p.Timbangan); err != nil {
			return fmt.Errorf("partai %d: %w", p.PartaiNo, err)
		}
	}
	return nil
}

func buildPartaiRow(headerID uint, in ReceivingPartaiInput) models.ReceivingPartai {
	d := service.HitungPartai(service.PartaiInput{
		Pcs:              in.Pcs,
		KgSample:         in.KgSample,
		TaraPerKeranjang: in.TaraPerKeranjang,
		Timbangan:        in.Timbangan,
	})
	return models.ReceivingPartai{
		HeaderID:         headerID,
		PartaiNo:         in.PartaiNo,
		Pcs:              in.Pcs,
		KgSample:         in.KgSample,
		TaraPerKeranjang: in.TaraPerKeranjang,
		Timbangan:        d.Timbangan,
		Note:             in.Note,
		KategoriKupasan:  in.KategoriKupasan,
		Fiber:            in.Fiber,
		Keranjang:        d.Keranjang,
		Bruto:            d.Bruto,
		TotalTara:        d.TotalTara,
		Netto:            d.Netto,
		Size:             d.Size,
		RoundSize:        d.RoundSize,
	}
}

func ReceivingCreate(c *gin.Context) {
	var in ReceivingCreateInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Payload tidak valid", "error": err.Error()})
		return
	}
	if !validTanggal(in.Tanggal) {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Tanggal harus berformat YYYY-MM-DD"})
		return
	}
	if err := validatePartaiBatch(in.Partai); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Data timbangan tidak valid", "error": err.Error()})
		return
	}

	header := models.ReceivingHeader{
		Tanggal:  in.Tanggal,
		Supplier: in.Supplier,
		Jenis:    in.Jenis,
	}

	err := config.DB.Transaction(func(tx *gorm.DB) error {
		totalFiber := 0.0
		partai := make([]models.ReceivingPartai, 0, len(in.Partai))
		for _, p := range in.Partai {
			partai = append(partai, buildPartaiRow(0, p))
			totalFiber += p.Fiber
		}
		header.Fiber = totalFiber
		header.Partai = partai
		return tx.Create(&header).Error
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Gagal menyimpan receiving", "error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Receiving tersimpan", "data": header})
}

func ReceivingList(c *gin.Context) {
	var rows []models.ReceivingHeader
	q := config.DB.Preload("Partai", func(db *gorm.DB) *gorm.DB {
		return db.Order("partai_no ASC")
	}).Order("id DESC")

	if s := c.Query("supplier"); s != "" {
		q = q.Where("supplier ILIKE ?", "%"+s+"%")
	}
	if t := c.Query("tanggal"); t != "" {
		q = q.Where("tanggal = ?", t)
	}

	if err := q.Find(&rows).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Gagal mengambil data", "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": rows})
}

func ReceivingDetail(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "ID tidak valid"})
		return
	}

	var header models.ReceivingHeader
	if err := config.DB.Preload("Partai", func(db *gorm.DB) *gorm.DB {
		return db.Order("partai_no ASC")
	}).First(&header, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.NotFound(c, "Receiving tidak ditemukan")
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Gagal mengambil data", "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": header})
}

type ReceivingUpdateInput struct {
	Tanggal     *string                `json:"tanggal"`
	Supplier    *string                `json:"supplier"`
	Jenis       *string                `json:"jenis"`
	Partai      []ReceivingPartaiInput `json:"partai" binding:"dive"`
	HapusPartai []int                  `json:"hapus_partai"` // daftar partai_no yang dibuang
}

// ReceivingUpdate mengedit data timbangan SETELAH invoice mungkin sudah
// terbit. Urutan wajib satu transaksi: guard status invoice -> tulis
// input mentah -> recompute turunan -> sync invoice. Tidak boleh ada
// kondisi di mana partai sudah berubah tapi invoicenya belum.
func ReceivingUpdate(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "ID tidak valid"})
		return
	}

	var in ReceivingUpdateInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Payload tidak valid", "error": err.Error()})
		return
	}
	if in.Tanggal != nil && !validTanggal(*in.Tanggal) {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Tanggal harus berformat YYYY-MM-DD"})
		return
	}
	if err := validatePartaiBatch(in.Partai); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Data timbangan tidak valid", "error": err.Error()})
		return
	}

	err = config.DB.Transaction(func(tx *gorm.DB) error {
		var header models.ReceivingHeader
		if err := tx.First(&header, id).Error; err != nil {
			return err
		}

		if err := service.GuardEditReceiving(tx, header.ID); err != nil {
			return err
		}

		updates := map[string]any{}
		if in.Tanggal != nil {
			updates["tanggal"] = *in.Tanggal
		}
		if in.Supplier != nil {
			updates["supplier"] = *in.Supplier
		}
		if in.Jenis != nil {
			updates["jenis"] = *in.Jenis
		}
		if len(updates) > 0 {
			if err := tx.Model(&header).Updates(updates).Error; err != nil {
				return err
			}
		}

		for _, no := range in.HapusPartai {
			if err := tx.Where("header_id = ? AND partai_no = ?", header.ID, no).
				Delete(&models.ReceivingPartai{}).Error; err != nil {
				return err
			}
		}

		for _, p := range in.Partai {
			row := buildPartaiRow(header.ID, p)

			var existing models.ReceivingPartai
			err := tx.Where("header_id = ? AND partai_no = ?", header.ID, p.PartaiNo).
				First(&existing).Error
			if errors.Is(err, gorm.ErrRecordNotFound) {
				if err := tx.Create(&row).Error; err != nil {
					return err
				}
				continue
			}
			if err != nil {
				return err
			}

			if err := tx.Model(&models.ReceivingPartai{}).
				Where("id = ?", existing.ID).
				Updates(map[string]any{
					"pcs":                p.Pcs,
					"kg_sample":          p.KgSample,
					"tara_per_keranjang": p.TaraPerKeranjang,
					"timbangan":          row.Timbangan,
					"note":               p.Note,
					"kategori_kupasan":   p.KategoriKupasan,
					"fiber":              p.Fiber,
					"keranjang":          row.Keranjang,
					"bruto":              row.Bruto,
					"total_tara":         row.TotalTara,
					"netto":              row.Netto,
					"size":               row.Size,
					"round_size":         row.RoundSize,
				}).Error; err != nil {
				return err
			}
		}

		if err := service.RecalcReceiving(tx, header.ID); err != nil {
			return err
		}
		return service.SyncInvoiceFromReceiving(tx, header.ID)
	})

	if err != nil {
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			utils.NotFound(c, "Receiving tidak ditemukan")
		case errors.Is(err, service.ErrReceivingTerkunci):
			c.JSON(http.StatusConflict, gin.H{"message": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Gagal update receiving", "error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Receiving terupdate, invoice ikut tersinkron"})
}

// ReceivingDelete menghapus satu nota beserta seluruh turunannya:
// partai, invoice, dan detail invoice. Eksplisit dan cascading.
func ReceivingDelete(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "ID tidak valid"})
		return
	}

	err = config.DB.Transaction(func(tx *gorm.DB) error {
		var header models.ReceivingHeader
		if err := tx.First(&header, id).Error; err != nil {
			return err
		}

		var invoiceIDs []uint
		if err := tx.Model(&models.InvoiceHeader{}).
			Where("receiving_id = ?", header.ID).
			Pluck("id", &invoiceIDs).Error; err != nil {
			return err
		}
		if len(invoiceIDs) > 0 {
			if err := tx.Where("invoice_id IN ?", invoiceIDs).
				Delete(&models.InvoiceDetail{}).Error; err != nil {
				return err
			}
			if err := tx.Where("id IN ?", invoiceIDs).
				Delete(&models.InvoiceHeader{}).Error; err != nil {
				return err
			}
		}

		if err := tx.Where("header_id = ?", header.ID).
			Delete(&models.ReceivingPartai{}).Error; err != nil {
			return err
		}
		return tx.Delete(&header).Error
	})

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.NotFound(c, "Receiving tidak ditemukan")
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Gagal hapus receiving", "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Receiving beserta invoice-nya terhapus"})
}
