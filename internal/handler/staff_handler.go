package handler

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"workforce-backend/config"
	"workforce-backend/internal/model"
	"workforce-backend/internal/repository"
)

type StaffHandler struct {
	repo repository.StaffRepository
}

func NewStaffHandler(repo repository.StaffRepository) *StaffHandler {
	return &StaffHandler{repo: repo}
}

type LoginRequest struct {
	EmployeeNo    string `json:"employee_no"`
	Password      string `json:"password"`
	DeviceID      string `json:"device_id"`      // UUID unik perangkat
	Brand         string `json:"brand"`          // Merk HP
	Series        string `json:"series"`         // Tipe HP
	FirebaseToken string `json:"firebase_token"` // Untuk push notification
}

func (h *StaffHandler) Login(c *fiber.Ctx) error {
	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Format data salah"})
	}

	// 1. Cari staff by nomor pegawai
	staff, err := h.repo.FindByEmployeeNo(req.EmployeeNo)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Nomor pegawai atau password salah"})
	}
	if !staff.IsActive {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "Akun Anda sudah dinonaktifkan"})
	}

	// 2. Cek password
	if err := bcrypt.CompareHashAndPassword([]byte(staff.Password), []byte(req.Password)); err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Nomor pegawai atau password salah"})
	}

	// 3. Device binding: satu akun terkunci ke perangkat pertamanya
	if req.DeviceID != "" {
		if len(staff.Devices) > 0 {
			isRegistered := false
			for _, d := range staff.Devices {
				if d.UUID == req.DeviceID {
					isRegistered = true
					break
				}
			}
			if !isRegistered {
				return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
					"error": "Akun ini terkunci pada perangkat lain. Hubungi admin untuk reset.",
				})
			}
		} else {
			newDevice := model.Device{
				StaffID:       staff.ID,
				UUID:          req.DeviceID,
				Brand:         req.Brand,
				Series:        req.Series,
				FirebaseToken: req.FirebaseToken,
			}
			if err := h.repo.AddDevice(&newDevice); err != nil {
				// Kemungkinan error: UUID sudah dipakai akun lain (unique)
				return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
					"error": "Perangkat ini sudah digunakan oleh akun lain.",
				})
			}
		}
	}

	// 4. Generate token JWT
	token, err := generateToken(staff)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal membuat token"})
	}

	return c.JSON(fiber.Map{
		"message": "Login berhasil",
		"token":   token,
		"data": fiber.Map{
			"employee_no": staff.EmployeeNo,
			"name":        staff.Name,
			"role":        staff.Role.Name,
			"position":    staff.Position,
			"company":     staff.Company.Name,
			"store":       staff.Store.Name,
		},
	})
}

func (h *StaffHandler) GetProfile(c *fiber.Ctx) error {
	staffID := localUint(c, "user_id")

	staff, err := h.repo.FindByID(staffID)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "User tidak ditemukan"})
	}

	return c.JSON(fiber.Map{
		"message": "Berhasil mengambil profil",
		"data":    staff,
	})
}

type UpdateProfileRequest struct {
	Email string `json:"email"`
	Phone string `json:"phone"`
}

func (h *StaffHandler) UpdateProfile(c *fiber.Ctx) error {
	staffID := localUint(c, "user_id")

	var req UpdateProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Data tidak valid"})
	}

	staff, err := h.repo.FindByID(staffID)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "User tidak ditemukan"})
	}

	// Update field yang diizinkan
	if req.Email != "" {
		staff.Email = req.Email
	}
	if req.Phone != "" {
		staff.Phone = req.Phone
	}

	if err := h.repo.Update(staff); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal update profil"})
	}

	return c.JSON(fiber.Map{
		"message": "Profil berhasil diperbarui",
		"data":    staff,
	})
}

type ChangePasswordRequest struct {
	OldPassword string `json:"old_password"`
	NewPassword string `json:"new_password"`
}

func (h *StaffHandler) ChangePassword(c *fiber.Ctx) error {
	staffID := localUint(c, "user_id")

	var req ChangePasswordRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Data tidak valid"})
	}

	staff, err := h.repo.FindByID(staffID)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "User tidak ditemukan"})
	}

	if err := bcrypt.CompareHashAndPassword([]byte(staff.Password), []byte(req.OldPassword)); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Password lama salah"})
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal mengenkripsi password"})
	}

	staff.Password = string(hashedPassword)
	if err := h.repo.Update(staff); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal update password"})
	}

	return c.JSON(fiber.Map{"message": "Password berhasil diubah"})
}

// GetByStore: daftar pegawai satu store (untuk manager pilih lawan tukar shift dll).
func (h *StaffHandler) GetByStore(c *fiber.Ctx) error {
	storeID := uint(c.QueryInt("store_id", int(localUint(c, "store_id"))))

	staff, err := h.repo.GetByStore(storeID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal mengambil data pegawai"})
	}
	return c.JSON(fiber.Map{
		"message": "Berhasil mengambil data pegawai",
		"data":    staff,
	})
}

// Helper untuk membuat JWT
func generateToken(staff *model.Staff) (string, error) {
	claims := jwt.MapClaims{
		"user_id":     staff.ID,
		"employee_no": staff.EmployeeNo,
		"role":        staff.Role.Name,
		"company_id":  staff.CompanyID,
		"store_id":    staff.StoreID,
		"exp":         time.Now().Add(time.Hour * 24).Unix(), // Token berlaku 24 jam
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(config.JWTSecret())
}
