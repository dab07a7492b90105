package database

import (
	"log"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"workforce-backend/internal/model"
)

func SeedAll(db *gorm.DB) {
	// 1. Seed Company -> Brand -> Store
	company := model.Company{Name: "PT Maju Bersama Retail", AdminEmail: "admin@majubersama.co.id"}
	db.FirstOrCreate(&company, model.Company{Name: company.Name})

	brand := model.Brand{CompanyID: company.ID, Name: "Kopi Senja"}
	db.FirstOrCreate(&brand, model.Brand{CompanyID: company.ID, Name: brand.Name})

	store := model.Store{
		CompanyID: company.ID,
		BrandID:   brand.ID,
		Name:      "Kopi Senja - Kemang",
		Address:   "Jl. Kemang Raya No. 12, Jakarta Selatan",
	}
	db.FirstOrCreate(&store, model.Store{Name: store.Name})

	// 2. Seed Roles
	roles := []model.Role{
		{Name: model.RoleAdmin},
		{Name: model.RoleManager},
		{Name: model.RoleStaff},
	}
	for _, r := range roles {
		db.FirstOrCreate(&r, model.Role{Name: r.Name})
	}

	var adminRole, managerRole, staffRole model.Role
	db.Where("name = ?", model.RoleAdmin).First(&adminRole)
	db.Where("name = ?", model.RoleManager).First(&managerRole)
	db.Where("name = ?", model.RoleStaff).First(&staffRole)

	// 3. Seed akun admin pertama
	hashedPassword, _ := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.DefaultCost)
	admin := model.Staff{
		CompanyID:  company.ID,
		BrandID:    brand.ID,
		StoreID:    store.ID,
		RoleID:     adminRole.ID,
		Name:       "Administrator",
		EmployeeNo: "ADM001",
		Password:   string(hashedPassword),
		Email:      "admin@majubersama.co.id",
		Position:   "System Admin",
		IsActive:   true,
	}
	db.FirstOrCreate(&admin, model.Staff{EmployeeNo: admin.EmployeeNo})

	// 4. Seed manager store
	manager := model.Staff{
		CompanyID:  company.ID,
		BrandID:    brand.ID,
		StoreID:    store.ID,
		RoleID:     managerRole.ID,
		Name:       "Rina Wijaya",
		EmployeeNo: "MGR001",
		Password:   string(hashedPassword),
		Email:      "rina@majubersama.co.id",
		Position:   "Store Manager",
		IsActive:   true,
	}
	db.FirstOrCreate(&manager, model.Staff{EmployeeNo: manager.EmployeeNo})

	// 5. Seed satu pegawai contoh + kontrak aktif Senin-Jumat 09:00-18:00
	barista := model.Staff{
		ManagerID:  &manager.ID,
		CompanyID:  company.ID,
		BrandID:    brand.ID,
		StoreID:    store.ID,
		RoleID:     staffRole.ID,
		Name:       "Dimas Pratama",
		EmployeeNo: "EMP001",
		Password:   string(hashedPassword),
		Email:      "dimas@majubersama.co.id",
		Position:   "Barista",
		IsActive:   true,
	}
	db.FirstOrCreate(&barista, model.Staff{EmployeeNo: barista.EmployeeNo})

	contract := model.Contract{
		StaffID:   barista.ID,
		CompanyID: company.ID,
		BrandID:   brand.ID,
		StoreID:   store.ID,
		Position:  "Barista",
		StartDate: "2026-01-01",
		EndDate:   "2026-12-31",
		Status:    model.ContractStatusSigned,
		WorkSchedules: datatypes.JSON(
			`[{"days_of_week":[1,2,3,4,5],"start_time":"09:00","end_time":"18:00","break_minutes":60}]`,
		),
	}
	var existing model.Contract
	if err := db.Where("staff_id = ? AND start_date = ?", barista.ID, contract.StartDate).First(&existing).Error; err != nil {
		if err := db.Create(&contract).Error; err != nil {
			log.Printf("Gagal seed kontrak: %v", err)
		}
	}

	log.Println("Seeding selesai: login ADM001 / MGR001 / EMP001, password admin123")
}
