package controllers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/wilhan1771-lgtm/belajar/config"
	"github.com/wilhan1771-lgtm/belajar/models"
	"github.com/wilhan1771-lgtm/belajar/service"
	"github.com/wilhan1771-lgtm/belajar/utils"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type InvoiceGenerateInput struct {
	HargaPoints     map[int]*float64 `json:"harga_points" binding:"required"` // size kelipatan 10 -> harga, null diabaikan
	PPHPersen       float64          `json:"pph_persen"`
	PaymentType     string           `json:"payment_type" binding:"required"` // TRANSFER | CASH
	TempoHari       int              `json:"tempo_hari"`
	CashDeductPerKg float64          `json:"cash_deduct_per_kg"`
	RejectKg        float64          `json:"reject_kg"`
	RejectPrice     float64          `json:"reject_price"`
}

func parsePaymentType(s string) (models.PaymentType, bool) {
	switch models.PaymentType(s) {
	case models.PaymentTransfer, models.PaymentCash:
		return models.PaymentType(s), true
	}
	return "", false
}

// entry kosong/null dibuang, sisanya jadi tabel harga sparse
func cleanHargaPoints(in map[int]*float64) map[int]float64 {
	out := make(map[int]float64, len(in))
	for size, harga := range in {
		if harga == nil {
			continue
		}
		out[size] = *harga
	}
	return out
}

func hitungDueDate(tanggal string, tempoHari int) string {
	if tempoHari <= 0 {
		return ""
	}
	t, err := time.Parse("2006-01-02", tanggal)
	if err != nil {
		return ""
	}
	return t.AddDate(0, 0, tempoHari).Format("2006-01-02")
}

// InvoiceGenerate membuat invoice DRAFT untuk satu receiving. Idempoten:
// kalau sudah ada invoice non-VOID, yang lama dikembalikan apa adanya --
// baik lewat pengecekan awal maupun lewat unique index saat dua request
// balapan.
func InvoiceGenerate(c *gin.Context) {
	receivingID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "ID tidak valid"})
		return
	}

	var in InvoiceGenerateInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Payload tidak valid", "error": err.Error()})
		return
	}
	payment, ok := parsePaymentType(in.PaymentType)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"message": "payment_type tidak valid (TRANSFER/CASH)"})
		return
	}

	var receiving models.ReceivingHeader
	if err := config.DB.Preload("Partai", func(db *gorm.DB) *gorm.DB {
		return db.Order("partai_no ASC")
	}).First(&receiving, receivingID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.NotFound(c, "Receiving tidak ditemukan")
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Gagal mengambil receiving", "error": err.Error()})
		return
	}

	if existing, err := findInvoiceByReceiving(config.DB, receiving.ID); err == nil {
		c.JSON(http.StatusOK, gin.H{"message": "Invoice sudah ada", "data": existing})
		return
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Gagal cek invoice", "error": err.Error()})
		return
	}

	points := cleanHargaPoints(in.HargaPoints)
	details := make([]models.InvoiceDetail, 0, len(receiving.Partai))
	for _, p := range receiving.Partai {
		d := models.InvoiceDetail{
			PartaiNo:   p.PartaiNo,
			RoundSize:  p.RoundSize,
			BeratNetto: p.Netto,
		}
		if p.RoundSize != nil {
			// harga tak terdefinisi -> baris harga 0, beratnya tetap ikut
			if harga, ok := service.InterpolasiHarga(*p.RoundSize, points); ok {
				d.Harga = harga
			}
		}
		d.TotalHarga = d.BeratNetto * d.Harga
		details = append(details, d)
	}

	cfg := service.TotalsConfig{
		PPHRate:         in.PPHPersen / 100,
		PaymentType:     payment,
		CashDeductPerKg: in.CashDeductPerKg,
		RejectKg:        in.RejectKg,
		RejectPrice:     in.RejectPrice,
	}
	t := service.HitungTotals(details, cfg)

	inv := models.InvoiceHeader{
		ReceivingID:     receiving.ID,
		Tanggal:         receiving.Tanggal,
		Supplier:        receiving.Supplier,
		PPHRate:         cfg.PPHRate,
		Subtotal:        t.Subtotal,
		PPH:             t.PPH,
		TotalKg:         t.TotalKg,
		CashDeductPerKg: in.CashDeductPerKg,
		CashDeductTotal: t.CashDeductTotal,
		RejectKg:        in.RejectKg,
		RejectPrice:     in.RejectPrice,
		RejectTotal:     t.RejectTotal,
		Total:           t.Total,
		PaymentType:     payment,
		TempoHari:       in.TempoHari,
		DueDate:         hitungDueDate(receiving.Tanggal, in.TempoHari),
		Status:          models.InvoiceDraft,
		Details:         details,
	}

	err = config.DB.Transaction(func(tx *gorm.DB) error {
		return tx.Create(&inv).Error
	})
	if err != nil {
		// kalah balapan dengan request lain: ux_invoice_receiving_id
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			if existing, ferr := findInvoiceByReceiving(config.DB, receiving.ID); ferr == nil {
				c.JSON(http.StatusOK, gin.H{"message": "Invoice sudah ada", "data": existing})
				return
			}
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Gagal membuat invoice", "error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Invoice dibuat (DRAFT)", "data": inv})
}

func findInvoiceByReceiving(db *gorm.DB, receivingID uint) (models.InvoiceHeader, error) {
	var inv models.InvoiceHeader
	err := db.Preload("Details", func(d *gorm.DB) *gorm.DB {
		return d.Order("partai_no ASC")
	}).
		Where("receiving_id = ? AND status != ?", receivingID, models.InvoiceVoid).
		Order("id DESC").
		First(&inv).Error
	return inv, err
}

func InvoiceList(c *gin.Context) {
	var rows []models.InvoiceHeader
	q := config.DB.Order("id DESC")
	if status := c.Query("status"); status != "" {
		q = q.Where("status = ?", status)
	}
	if v := c.Query("min_total"); v != "" {
		q = q.Where("total >= ?", utils.ToFloat(v, 0))
	}
	if limit := utils.ToInt(c.Query("limit"), 0); limit > 0 {
		q = q.Limit(limit)
	}
	if err := q.Find(&rows).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Gagal mengambil data", "error": err.Error()})
		return
	}

	// ringkasan selalu tanpa VOID, apa pun filternya
	var semua []models.InvoiceHeader
	if err := config.DB.Find(&semua).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Gagal menghitung ringkasan", "error": err.Error()})
		return
	}
	ringkasan := service.HitungRingkasan(semua)

	c.JSON(http.StatusOK, gin.H{"data": rows, "ringkasan": ringkasan})
}

func InvoiceDetail(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "ID tidak valid"})
		return
	}

	var inv models.InvoiceHeader
	if err := config.DB.Preload("Details", func(d *gorm.DB) *gorm.DB {
		return d.Order("partai_no ASC")
	}).First(&inv, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.NotFound(c, "Invoice tidak ditemukan")
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Gagal mengambil data", "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": inv})
}

type InvoiceUpdateInput struct {
	Harga           map[int]float64 `json:"harga"` // partai_no -> harga per kg
	PaymentType     *string         `json:"payment_type"`
	PPHPersen       *float64        `json:"pph_persen"`
	TempoHari       *int            `json:"tempo_hari"`
	CashDeductPerKg *float64        `json:"cash_deduct_per_kg"`
	RejectKg        *float64        `json:"reject_kg"`
	RejectPrice     *float64        `json:"reject_price"`
}

// InvoiceUpdate mengubah harga per partai dan syarat pembayaran. Hanya
// DRAFT. Agregat header selalu dihitung ulang penuh dari detail.
func InvoiceUpdate(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "ID tidak valid"})
		return
	}

	var in InvoiceUpdateInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Payload tidak valid", "error": err.Error()})
		return
	}
	if in.PaymentType != nil {
		if _, ok := parsePaymentType(*in.PaymentType); !ok {
			c.JSON(http.StatusBadRequest, gin.H{"message": "payment_type tidak valid (TRANSFER/CASH)"})
			return
		}
	}

	err = config.DB.Transaction(func(tx *gorm.DB) error {
		var inv models.InvoiceHeader
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&inv, id).Error; err != nil {
			return err
		}
		if inv.Status != models.InvoiceDraft {
			return service.ErrInvoiceBeku
		}

		for partaiNo, harga := range in.Harga {
			if err := tx.Model(&models.InvoiceDetail{}).
				Where("invoice_id = ? AND partai_no = ?", inv.ID, partaiNo).
				Updates(map[string]any{
					"harga":       harga,
					"total_harga": gorm.Expr("berat_netto * ?", harga),
				}).Error; err != nil {
				return err
			}
		}

		if in.PaymentType != nil {
			inv.PaymentType = models.PaymentType(*in.PaymentType)
		}
		if in.PPHPersen != nil {
			inv.PPHRate = *in.PPHPersen / 100
		}
		if in.TempoHari != nil {
			inv.TempoHari = *in.TempoHari
			inv.DueDate = hitungDueDate(inv.Tanggal, *in.TempoHari)
		}
		if in.CashDeductPerKg != nil {
			inv.CashDeductPerKg = *in.CashDeductPerKg
		}
		if in.RejectKg != nil {
			inv.RejectKg = *in.RejectKg
		}
		if in.RejectPrice != nil {
			inv.RejectPrice = *in.RejectPrice
		}

		if err := tx.Model(&models.InvoiceHeader{}).
			Where("id = ?", inv.ID).
			Updates(map[string]any{
				"payment_type":       inv.PaymentType,
				"pph_rate":           inv.PPHRate,
				"tempo_hari":         inv.TempoHari,
				"due_date":           inv.DueDate,
				"cash_deduct_per_kg": inv.CashDeductPerKg,
				"reject_kg":          inv.RejectKg,
				"reject_price":       inv.RejectPrice,
			}).Error; err != nil {
			return err
		}

		// edit invoice wajib diikuti sinkronisasi penuh dari receiving:
		// berat ditarik ulang dari partai (selisih lama ikut terperbaiki),
		// harga user dipertahankan, agregat header ditulis ulang dari nol
		return service.SyncInvoiceFromReceiving(tx, inv.ReceivingID)
	})

	if err != nil {
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			utils.NotFound(c, "Invoice tidak ditemukan")
		case errors.Is(err, service.ErrInvoiceBeku):
			c.JSON(http.StatusConflict, gin.H{"message": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Gagal update invoice", "error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Invoice terupdate"})
}

// InvoiceFinalize: DRAFT -> FINAL. Setelah ini harga beku dan sync dari
// receiving jadi no-op untuk invoice ini.
func InvoiceFinalize(c *gin.Context) {
	gantiStatusInvoice(c, models.InvoiceFinal, "Invoice difinalkan")
}

// InvoiceVoid: batalkan invoice dari status mana pun yang belum
// terminal. Detail tidak dihapus, VOID hanya disaring dari listing.
func InvoiceVoid(c *gin.Context) {
	gantiStatusInvoice(c, models.InvoiceVoid, "Invoice dibatalkan (VOID)")
}

func gantiStatusInvoice(c *gin.Context, target models.InvoiceStatus, okMsg string) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "ID tidak valid"})
		return
	}

	err = config.DB.Transaction(func(tx *gorm.DB) error {
		var inv models.InvoiceHeader
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&inv, id).Error; err != nil {
			return err
		}
		if !service.CanTransition(inv.Status, target) {
			return service.ErrTransisiTidakValid
		}
		return tx.Model(&inv).Update("status", target).Error
	})

	if err != nil {
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			utils.NotFound(c, "Invoice tidak ditemukan")
		case errors.Is(err, service.ErrTransisiTidakValid):
			c.JSON(http.StatusConflict, gin.H{"message": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Gagal mengubah status", "error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": okMsg})
}

// InvoiceRebuild membuang semua detail lalu membangun ulang dari partai
// receiving dengan harga 0. Untuk memperbaiki invoice DRAFT yang
// detailnya kadung rusak.
func InvoiceRebuild(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "ID tidak valid"})
		return
	}

	err = config.DB.Transaction(func(tx *gorm.DB) error {
		var inv models.InvoiceHeader
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&inv, id).Error; err != nil {
			return err
		}
		if inv.Status != models.InvoiceDraft {
			return service.ErrInvoiceBeku
		}

		if err := tx.Where("invoice_id = ?", inv.ID).
			Delete(&models.InvoiceDetail{}).Error; err != nil {
			return err
		}

		var parts []models.ReceivingPartai
		if err := tx.Where("header_id = ?", inv.ReceivingID).
			Order("partai_no ASC").Find(&parts).Error; err != nil {
			return err
		}

		details := make([]models.InvoiceDetail, 0, len(parts))
		for _, p := range parts {
			details = append(details, models.InvoiceDetail{
				InvoiceID:  inv.ID,
				PartaiNo:   p.PartaiNo,
				RoundSize:  p.RoundSize,
				BeratNetto: p.Netto,
			})
		}
		if len(details) > 0 {
			if err := tx.Create(&details).Error; err != nil {
				return err
			}
		}

		t := service.HitungTotals(details, service.TotalsConfig{
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
	})

	if err != nil {
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			utils.NotFound(c, "Invoice tidak ditemukan")
		case errors.Is(err, service.ErrInvoiceBeku):
			c.JSON(http.StatusConflict, gin.H{"message": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Gagal rebuild detail", "error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Detail invoice dibangun ulang dari receiving"})
}
