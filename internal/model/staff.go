package model

import "gorm.io/gorm"

type Staff struct {
	gorm.Model
	ManagerID *uint `json:"manager_id"` // Self-reference (atasan langsung)
	CompanyID uint  `json:"company_id"`
	BrandID   uint  `json:"brand_id"`
	StoreID   uint  `json:"store_id"`
	RoleID    uint  `json:"role_id"`

	Name       string `json:"name"`
	EmployeeNo string `json:"employee_no" gorm:"column:employee_no;unique;not null"`
	Password   string `json:"-"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
	Position   string `json:"position"`
	IsActive   bool   `json:"is_active" gorm:"default:true"`

	// Relasi
	Manager      *Staff   `json:"manager" gorm:"foreignKey:ManagerID"`
	Subordinates []Staff  `json:"subordinates" gorm:"foreignKey:ManagerID"`
	Devices      []Device `json:"devices"`
	Role         Role     `gorm:"foreignKey:RoleID"`
	Company      Company  `gorm:"foreignKey:CompanyID"`
	Store        Store    `gorm:"foreignKey:StoreID"`
}

type Device struct {
	gorm.Model
	StaffID       uint   `json:"staff_id"`
	UUID          string `json:"uuid" gorm:"unique"`
	Brand         string `json:"brand"`
	Series        string `json:"series"`
	FirebaseToken string `json:"firebase_token"`
}
