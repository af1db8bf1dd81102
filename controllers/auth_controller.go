package controllers

import (
	"net/http"
	"time"

	"github.com/wilhan1771-lgtm/belajar/config"
	"github.com/wilhan1771-lgtm/belajar/models"
	"github.com/wilhan1771-lgtm/belajar/utils"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
)

type LoginInput struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func Login(c *gin.Context) {
	var in LoginInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var user models.User
	if err := config.DB.Where("username = ? AND is_active = true", in.Username).First(&user).Error; err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User tidak ditemukan"})
		return
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)) != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Password salah"})
		return
	}

	now := time.Now().UTC()
	config.DB.Model(&user).Update("last_login_at", now)

	token, _ := utils.GenerateToken(user.ID, user.Username, 24*time.Hour)

	c.JSON(http.StatusOK, gin.H{
		"message": "Login sukses",
		"token":   token,
	})
}
