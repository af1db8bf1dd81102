package config

import (
	"log"
	"os"

	"github.com/wilhan1771-lgtm/belajar/models"

	"golang.org/x/crypto/bcrypt"
)

// SeedJenis mengisi master jenis udang kalau masih kosong.
func SeedJenis() {
	names := []string{"Vaname", "Windu", "Flower"}
	for _, n := range names {
		var cnt int64
		DB.Model(&models.UdangJenis{}).Where("nama = ?", n).Count(&cnt)
		if cnt == 0 {
			DB.Create(&models.UdangJenis{Nama: n, Aktif: true})
		}
	}
}

// SeedAdminUser membuat user admin pertama kalau tabel user kosong.
// Password diambil dari env ADMIN_PASSWORD, default "1234" untuk lokal.
func SeedAdminUser() {
	var cnt int64
	DB.Model(&models.User{}).Count(&cnt)
	if cnt > 0 {
		return
	}

	pass := os.Getenv("ADMIN_PASSWORD")
	if pass == "" {
		pass = "1234"
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(pass), bcrypt.DefaultCost)
	if err != nil {
		log.Printf("⚠️  Gagal hash password admin: %v", err)
		return
	}

	DB.Create(&models.User{
		Username:     "admin",
		FullName:     "Administrator",
		PasswordHash: string(hashed),
		IsActive:     true,
	})
}
