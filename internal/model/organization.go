package model

import "gorm.io/gorm"

type Company struct {
	gorm.Model
	Name       string `json:"name" gorm:"unique;not null"`
	AdminEmail string `json:"admin_email"`

	Brands []Brand `json:"brands"`
}

type Brand struct {
	gorm.Model
	CompanyID uint   `json:"company_id"`
	Name      string `json:"name"`

	Stores []Store `json:"stores"`
}

type Store struct {
	gorm.Model
	CompanyID uint   `json:"company_id"`
	BrandID   uint   `json:"brand_id"`
	Name      string `json:"name"`
	Address   string `json:"address"`
	IsActive  bool   `json:"is_active" gorm:"default:true"`
}

type Role struct {
	gorm.Model
	Name  string  `json:"name" gorm:"unique;not null"`
	Staff []Staff `json:"staff"`
}

// Nama role standar (di-seed lewat cmd/seeder)
const (
	RoleAdmin   = "Admin"
	RoleManager = "Manager"
	RoleStaff   = "Staff"
)
