package controllers

import (
	"net/http"
	"strconv"

	"github.com/wilhan1771-lgtm/belajar/config"
	"github.com/wilhan1771-lgtm/belajar/models"
	"github.com/wilhan1771-lgtm/belajar/utils"

	"github.com/gin-gonic/gin"
)

func CreateSupplier(c *gin.Context) {
	var input struct {
		Nama  string `json:"nama" binding:"required"`
		Aktif *bool  `json:"aktif"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Data tidak valid"})
		return
	}

	supplier := models.Supplier{Nama: input.Nama, Aktif: true}
	if input.Aktif != nil {
		supplier.Aktif = *input.Aktif
	}

	if err := config.DB.Create(&supplier).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	utils.Success(c, "Supplier berhasil ditambahkan", supplier)
}

func GetAllSupplier(c *gin.Context) {
	var rows []models.Supplier
	q := config.DB.Order("nama ASC")
	if c.Query("aktif") == "1" {
		q = q.Where("aktif = true")
	}
	if err := q.Find(&rows).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": rows})
}

func GetSupplierByID(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "ID tidak valid"})
		return
	}

	var supplier models.Supplier
	if err := config.DB.First(&supplier, id).Error; err != nil {
		utils.NotFound(c, "Supplier tidak ditemukan")
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": supplier})
}

func UpdateSupplier(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "ID tidak valid"})
		return
	}

	var supplier models.Supplier
	if err := config.DB.First(&supplier, id).Error; err != nil {
		utils.NotFound(c, "Supplier tidak ditemukan")
		return
	}

	var input struct {
		Nama  *string `json:"nama"`
		Aktif *bool   `json:"aktif"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Data tidak valid"})
		return
	}

	updates := map[string]any{}
	if input.Nama != nil {
		updates["nama"] = *input.Nama
	}
	if input.Aktif != nil {
		updates["aktif"] = *input.Aktif
	}

	if err := config.DB.Model(&supplier).Updates(updates).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	utils.Success(c, "Supplier berhasil diupdate", supplier)
}

func DeleteSupplier(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "ID tidak valid"})
		return
	}

	var supplier models.Supplier
	if err := config.DB.First(&supplier, id).Error; err != nil {
		utils.NotFound(c, "Supplier tidak ditemukan")
		return
	}

	if err := config.DB.Delete(&supplier).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Gagal hapus supplier"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Supplier berhasil dihapus"})
}
