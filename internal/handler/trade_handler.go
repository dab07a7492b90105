package handler

import (
	"github.com/gofiber/fiber/v2"

	"workforce-backend/internal/repository"
	"workforce-backend/internal/usecase"
)

type TradeHandler struct {
	svc  *usecase.TradeService
	repo repository.TradeRepository
}

func NewTradeHandler(svc *usecase.TradeService, repo repository.TradeRepository) *TradeHandler {
	return &TradeHandler{svc: svc, repo: repo}
}

type CreateTradeRequest struct {
	SourceScheduleID uint   `json:"source_schedule_id"`
	TargetScheduleID uint   `json:"target_schedule_id"`
	Reason           string `json:"reason"`
}

func (h *TradeHandler) Create(c *fiber.Ctx) error {
	staffID := localUint(c, "user_id")

	var req CreateTradeRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Format data salah"})
	}

	trade, err := h.svc.Create(staffID, req.SourceScheduleID, req.TargetScheduleID, req.Reason)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Pengajuan tukar shift terkirim",
		"data":    trade,
	})
}

type TradeActionRequest struct {
	Action  string `json:"action"` // ACCEPT / REJECT
	Comment string `json:"comment"`
}

// Respond: jawaban pegawai target (terima/tolak).
func (h *TradeHandler) Respond(c *fiber.Ctx) error {
	staffID := localUint(c, "user_id")
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "ID tidak valid"})
	}

	var req TradeActionRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Format data salah"})
	}

	trade, err := h.svc.Respond(uint(id), staffID, req.Action, req.Comment)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{
		"message": "Respons tersimpan",
		"data":    trade,
	})
}

// Approve: keputusan manager untuk trade AWAITING_APPROVAL.
func (h *TradeHandler) Approve(c *fiber.Ctx) error {
	managerID := localUint(c, "user_id")
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "ID tidak valid"})
	}

	var req TradeActionRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Format data salah"})
	}

	trade, err := h.svc.Approve(uint(id), managerID, req.Action, req.Comment)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{
		"message": "Keputusan tersimpan",
		"data":    trade,
	})
}

func (h *TradeHandler) GetMine(c *fiber.Ctx) error {
	staffID := localUint(c, "user_id")

	trades, err := h.repo.GetByStaff(staffID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal mengambil data tukar shift"})
	}
	return c.JSON(fiber.Map{
		"message": "Berhasil mengambil data tukar shift",
		"data":    trades,
	})
}

// GetAwaiting: daftar trade yang menunggu keputusan manager.
func (h *TradeHandler) GetAwaiting(c *fiber.Ctx) error {
	companyID := localUint(c, "company_id")

	trades, err := h.repo.GetAwaitingApprovalByCompany(companyID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal mengambil data tukar shift"})
	}
	return c.JSON(fiber.Map{
		"message": "Berhasil mengambil antrian persetujuan",
		"data":    trades,
	})
}
