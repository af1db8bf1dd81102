package controllers

import (
	"net/http"
	"strconv"

	"github.com/wilhan1771-lgtm/belajar/config"
	"github.com/wilhan1771-lgtm/belajar/models"
	"github.com/wilhan1771-lgtm/belajar/utils"

	"github.com/gin-gonic/gin"
)

func CreateJenis(c *gin.Context) {
	var input struct {
		Nama string `json:"nama" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Data tidak valid"})
		return
	}

	jenis := models.UdangJenis{Nama: input.Nama, Aktif: true}
	if err := config.DB.Create(&jenis).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	utils.Success(c, "Jenis berhasil ditambahkan", jenis)
}

func GetAllJenis(c *gin.Context) {
	var rows []models.UdangJenis
	if err := config.DB.Where("aktif = true").Order("nama ASC").Find(&rows).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": rows})
}

func UpdateJenis(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "ID tidak valid"})
		return
	}

	var jenis models.UdangJenis
	if err := config.DB.First(&jenis, id).Error; err != nil {
		utils.NotFound(c, "Jenis tidak ditemukan")
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

	if err := config.DB.Model(&jenis).Updates(updates).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	utils.Success(c, "Jenis berhasil diupdate", jenis)
}

func DeleteJenis(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "ID tidak valid"})
		return
	}

	var jenis models.UdangJenis
	if err := config.DB.First(&jenis, id).Error; err != nil {
		utils.NotFound(c, "Jenis tidak ditemukan")
		return
	}

	if err := config.DB.Delete(&jenis).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Gagal hapus jenis"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Jenis berhasil dihapus"})
}
