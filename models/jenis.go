package models

import "gorm.io/gorm"

// UdangJenis = master jenis udang (vaname, windu, dst)
type UdangJenis struct {
	gorm.Model
	Nama  string `json:"nama" gorm:"size:120;not null;uniqueIndex"`
	Aktif bool   `json:"aktif" gorm:"not null;default:true"`
}
