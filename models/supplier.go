package models

import "gorm.io/gorm"

type Supplier struct {
	gorm.Model
	Nama  string `json:"nama" gorm:"size:180;not null;uniqueIndex"`
	Aktif bool   `json:"aktif" gorm:"not null;default:true"`
}
