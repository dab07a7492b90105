package handler

import (
	"encoding/json"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"workforce-backend/internal/model"
	"workforce-backend/internal/repository"
	"workforce-backend/internal/usecase"
)

type ContractHandler struct {
	repo         repository.ContractRepository
	staffRepo    repository.StaffRepository
	materializer *usecase.Materializer
	validate     *validator.Validate
}

func NewContractHandler(repo repository.ContractRepository, staffRepo repository.StaffRepository, materializer *usecase.Materializer) *ContractHandler {
	return &ContractHandler{
		repo:         repo,
		staffRepo:    staffRepo,
		materializer: materializer,
		validate:     validator.New(),
	}
}

type CreateContractRequest struct {
	StaffID       uint                     `json:"staff_id" validate:"required"`
	Position      string                   `json:"position"`
	StartDate     string                   `json:"start_date" validate:"required,datetime=2006-01-02"`
	EndDate       string                   `json:"end_date" validate:"omitempty,datetime=2006-01-02"`
	WorkSchedules []model.WorkPatternEntry `json:"work_schedules" validate:"required,min=1,dive"`
	Signed        bool                     `json:"signed"` // true = langsung aktif + generate jadwal
}

// Create: buat kontrak baru. Kalau langsung ditandatangani, jadwal
// dimaterialisasi sekarang juga; hasil generate ikut di response dan
// kegagalan parsial TIDAK menggagalkan pembuatan kontraknya.
func (h *ContractHandler) Create(c *fiber.Ctx) error {
	var req CreateContractRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Format data salah"})
	}
	if err := h.validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Data kontrak tidak valid: " + err.Error()})
	}

	staff, err := h.staffRepo.FindByID(req.StaffID)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Data staff tidak ditemukan"})
	}

	raw, err := json.Marshal(req.WorkSchedules)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Pola kerja tidak valid"})
	}

	contract := model.Contract{
		StaffID:       staff.ID,
		CompanyID:     staff.CompanyID,
		BrandID:       staff.BrandID,
		StoreID:       staff.StoreID,
		Position:      req.Position,
		StartDate:     req.StartDate,
		EndDate:       req.EndDate,
		Status:        model.ContractStatusDraft,
		WorkSchedules: raw,
	}
	if req.Signed {
		contract.Status = model.ContractStatusSigned
	}

	if err := h.repo.Create(&contract); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal menyimpan kontrak"})
	}

	response := fiber.Map{
		"message": "Kontrak berhasil dibuat",
		"data":    contract,
	}
	if contract.Status == model.ContractStatusSigned {
		response["schedule_generation"] = h.materializer.Generate(&contract)
	}
	return c.Status(fiber.StatusCreated).JSON(response)
}

// Sign: aktifkan kontrak DRAFT lalu materialisasi jadwalnya.
func (h *ContractHandler) Sign(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "ID kontrak tidak valid"})
	}

	contract, err := h.repo.GetByID(uint(id))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Kontrak tidak ditemukan"})
	}
	if contract.Status == model.ContractStatusSigned {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "Kontrak sudah ditandatangani"})
	}
	if contract.Status == model.ContractStatusTerminated {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "Kontrak sudah diakhiri"})
	}

	contract.Status = model.ContractStatusSigned
	if err := h.repo.Update(contract); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal update kontrak"})
	}

	return c.JSON(fiber.Map{
		"message":             "Kontrak ditandatangani",
		"data":                contract,
		"schedule_generation": h.materializer.Generate(contract),
	})
}

// Regenerate: jalankan ulang materialisasi untuk kontrak aktif.
// Idempotent: entry yang sudah ada di-upsert, bukan diduplikasi.
func (h *ContractHandler) Regenerate(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "ID kontrak tidak valid"})
	}

	contract, err := h.repo.GetByID(uint(id))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Kontrak tidak ditemukan"})
	}
	if contract.Status != model.ContractStatusSigned {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "Hanya kontrak aktif yang bisa digenerate ulang"})
	}

	return c.JSON(fiber.Map{
		"message":             "Materialisasi ulang selesai",
		"schedule_generation": h.materializer.Generate(contract),
	})
}

func (h *ContractHandler) GetMine(c *fiber.Ctx) error {
	staffID := localUint(c, "user_id")

	contracts, err := h.repo.GetByStaff(staffID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal mengambil kontrak"})
	}
	return c.JSON(fiber.Map{
		"message": "Berhasil mengambil kontrak",
		"data":    contracts,
	})
}

func (h *ContractHandler) GetDetail(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "ID kontrak tidak valid"})
	}

	contract, err := h.repo.GetByID(uint(id))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Kontrak tidak ditemukan"})
	}
	return c.JSON(fiber.Map{
		"message": "Berhasil mengambil kontrak",
		"data":    contract,
	})
}
