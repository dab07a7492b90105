package usecase

import (
	"fmt"
	"log"
	"time"

	"workforce-backend/internal/apperr"
	"workforce-backend/internal/model"
	"workforce-backend/internal/notification"
	"workforce-backend/internal/repository"
)

const (
	TradeActionAccept = "ACCEPT"
	TradeActionReject = "REJECT"
)

// TradeService: state machine tukar shift tiga pihak
// (pengaju -> pegawai target -> manager).
//
//	PENDING -> REJECTED | AWAITING_APPROVAL | APPROVED
//	AWAITING_APPROVAL -> APPROVED | MANAGER_REJECTED
//
// Semua transisi lewat transition() di bawah: satu chokepoint dengan guard
// optimistik, bukan guard yang diduplikasi di tiap entry point.
type TradeService struct {
	tradeRepo    repository.TradeRepository
	scheduleRepo repository.ScheduleRepository
	staffRepo    repository.StaffRepository
	notifier     notification.Gateway

	// Kebijakan default: trade butuh persetujuan manager (trade lintas store
	// SELALU butuh, apapun settingnya).
	requireManagerApproval bool
}

func NewTradeService(
	tradeRepo repository.TradeRepository,
	scheduleRepo repository.ScheduleRepository,
	staffRepo repository.StaffRepository,
	notifier notification.Gateway,
	requireManagerApproval bool,
) *TradeService {
	return &TradeService{
		tradeRepo:              tradeRepo,
		scheduleRepo:           scheduleRepo,
		staffRepo:              staffRepo,
		notifier:               notifier,
		requireManagerApproval: requireManagerApproval,
	}
}

func (s *TradeService) Create(requesterID, sourceScheduleID, targetScheduleID uint, reason string) (*model.ShiftTradeRequest, error) {
	if sourceScheduleID == 0 || targetScheduleID == 0 {
		return nil, apperr.Validation("ID jadwal wajib diisi")
	}
	if sourceScheduleID == targetScheduleID {
		return nil, apperr.Validation("Jadwal sumber dan target tidak boleh sama")
	}

	source, err := s.scheduleRepo.GetByID(sourceScheduleID)
	if err != nil {
		return nil, apperr.NotFound("Jadwal sumber tidak ditemukan")
	}
	if source.StaffID != requesterID {
		return nil, apperr.Validation("Anda bukan pemilik jadwal sumber")
	}

	target, err := s.scheduleRepo.GetByID(targetScheduleID)
	if err != nil {
		return nil, apperr.NotFound("Jadwal target tidak ditemukan")
	}
	if target.StaffID == requesterID {
		return nil, apperr.Validation("Tidak bisa tukar shift dengan diri sendiri")
	}

	exists, err := s.tradeRepo.ExistsOpenBySchedule(sourceScheduleID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, apperr.Conflict("Masih ada pengajuan tukar shift aktif untuk jadwal ini")
	}

	trade := model.ShiftTradeRequest{
		RequesterID:             requesterID,
		RequesterScheduleID:     sourceScheduleID,
		TargetID:                target.StaffID,
		TargetScheduleID:        targetScheduleID,
		Reason:                  reason,
		Status:                  model.TradeStatusPending,
		RequiresManagerApproval: s.requireManagerApproval || source.StoreID != target.StoreID,
	}
	if err := s.tradeRepo.Create(&trade); err != nil {
		return nil, err
	}

	s.notifier.Send(target.StaffID, notification.Intent{
		Title:    "Permintaan tukar shift",
		Body:     fmt.Sprintf("Ada permintaan tukar shift untuk tanggal %s. Terima atau tolak?", target.WorkDate),
		Category: model.NotificationCategoryTrade,
		DeepLink: fmt.Sprintf("/trades/%d", trade.ID),
		Actions:  []string{TradeActionAccept, TradeActionReject},
	})
	return &trade, nil
}

// Respond: jawaban pegawai target. Hanya valid dari status PENDING.
func (s *TradeService) Respond(tradeID, userID uint, action, comment string) (*model.ShiftTradeRequest, error) {
	if action != TradeActionAccept && action != TradeActionReject {
		return nil, apperr.Validation("Aksi harus ACCEPT atau REJECT")
	}

	trade, err := s.tradeRepo.GetByID(tradeID)
	if err != nil {
		return nil, apperr.NotFound("Pengajuan tukar shift tidak ditemukan")
	}
	if trade.TargetID != userID {
		return nil, apperr.Conflict("Hanya pegawai target yang bisa merespons pengajuan ini")
	}

	var nextStatus string
	switch {
	case action == TradeActionReject:
		nextStatus = model.TradeStatusRejected
	case trade.RequiresManagerApproval:
		nextStatus = model.TradeStatusAwaitingApproval
	default:
		nextStatus = model.TradeStatusApproved
	}

	if err := s.transition(trade, model.TradeStatusPending, nextStatus, map[string]interface{}{
		"response_comment": comment,
	}); err != nil {
		return nil, err
	}

	switch nextStatus {
	case model.TradeStatusRejected:
		s.notifier.Send(trade.RequesterID, notification.Intent{
			Title:    "Tukar shift ditolak",
			Body:     "Permintaan tukar shift Anda ditolak oleh rekan kerja.",
			Category: model.NotificationCategoryTrade,
			DeepLink: fmt.Sprintf("/trades/%d", trade.ID),
		})
	case model.TradeStatusAwaitingApproval:
		s.notifyManagers(trade)
	case model.TradeStatusApproved:
		s.executeTrade(trade)
	}
	return s.tradeRepo.GetByID(tradeID)
}

// Approve: keputusan manager. Hanya valid dari status AWAITING_APPROVAL.
func (s *TradeService) Approve(tradeID, managerID uint, action, comment string) (*model.ShiftTradeRequest, error) {
	if action != TradeActionAccept && action != TradeActionReject {
		return nil, apperr.Validation("Aksi harus ACCEPT atau REJECT")
	}

	trade, err := s.tradeRepo.GetByID(tradeID)
	if err != nil {
		return nil, apperr.NotFound("Pengajuan tukar shift tidak ditemukan")
	}

	nextStatus := model.TradeStatusApproved
	if action == TradeActionReject {
		nextStatus = model.TradeStatusManagerRejected
	}

	if err := s.transition(trade, model.TradeStatusAwaitingApproval, nextStatus, map[string]interface{}{
		"manager_id":      managerID,
		"manager_comment": comment,
	}); err != nil {
		return nil, err
	}

	if nextStatus == model.TradeStatusApproved {
		s.executeTrade(trade)
	} else {
		s.notifier.Send(trade.RequesterID, notification.Intent{
			Title:    "Tukar shift ditolak manager",
			Body:     "Permintaan tukar shift Anda ditolak oleh manager.",
			Category: model.NotificationCategoryTrade,
			DeepLink: fmt.Sprintf("/trades/%d", trade.ID),
		})
	}
	return s.tradeRepo.GetByID(tradeID)
}

// transition: satu-satunya jalan mengubah status trade. Update kondisional
// WHERE status = expected; dua writer yang balapan (misal target accept vs
// aksi manager yang datang duluan): yang kalah dapat Conflict, trade tidak
// pernah dieksekusi dua kali.
func (s *TradeService) transition(trade *model.ShiftTradeRequest, expected, next string, extra map[string]interface{}) error {
	if trade.Status != expected {
		return apperr.Conflict(fmt.Sprintf("Pengajuan sudah berstatus %s, tidak bisa diproses", trade.Status))
	}
	updates := map[string]interface{}{"status": next, "updated_at": time.Now()}
	for k, v := range extra {
		updates[k] = v
	}
	ok, err := s.tradeRepo.UpdateStatusIf(trade.ID, expected, updates)
	if err != nil {
		return err
	}
	if !ok {
		return apperr.Conflict("Pengajuan sudah diproses pihak lain")
	}
	trade.Status = next
	return nil
}

// executeTrade: tukar kepemilikan kedua ScheduleEntry + catat lineage dua arah.
// Dipanggil HANYA setelah transisi ke APPROVED berhasil diklaim, jadi tidak
// mungkin jalan dua kali untuk satu trade.
func (s *TradeService) executeTrade(trade *model.ShiftTradeRequest) {
	source, errSource := s.scheduleRepo.GetByID(trade.RequesterScheduleID)
	target, errTarget := s.scheduleRepo.GetByID(trade.TargetScheduleID)
	if errSource != nil || errTarget != nil {
		// Status sudah APPROVED tapi swap gagal: biarkan ketahuan di log,
		// jangan rollback approval (resolusi lewat admin).
		log.Printf("[TRADE] gagal ambil jadwal untuk trade %d", trade.ID)
		return
	}

	sourceOwner := source.StaffID
	targetOwner := target.StaffID
	sourceID := source.ID
	targetID := target.ID

	source.StaffID = targetOwner
	source.TradedFromID = &targetID
	source.OriginalStaffID = &sourceOwner

	target.StaffID = sourceOwner
	target.TradedFromID = &sourceID
	target.OriginalStaffID = &targetOwner

	if err := s.scheduleRepo.Update(source); err != nil {
		log.Printf("[TRADE] gagal update jadwal sumber trade %d: %v", trade.ID, err)
	}
	if err := s.scheduleRepo.Update(target); err != nil {
		log.Printf("[TRADE] gagal update jadwal target trade %d: %v", trade.ID, err)
	}

	for _, staffID := range []uint{trade.RequesterID, trade.TargetID} {
		s.notifier.Send(staffID, notification.Intent{
			Title:    "Tukar shift disetujui",
			Body:     "Tukar shift sudah dieksekusi. Cek jadwal terbaru Anda.",
			Category: model.NotificationCategoryTrade,
			DeepLink: "/schedules",
		})
	}
}

func (s *TradeService) notifyManagers(trade *model.ShiftTradeRequest) {
	requester, err := s.staffRepo.FindByID(trade.RequesterID)
	if err != nil {
		return
	}
	managers, err := s.staffRepo.FindManagersByStore(requester.StoreID)
	if err != nil {
		return
	}
	for _, m := range managers {
		s.notifier.Send(m.ID, notification.Intent{
			Title:    "Persetujuan tukar shift",
			Body:     fmt.Sprintf("Tukar shift %s menunggu persetujuan Anda.", requester.Name),
			Category: model.NotificationCategoryTrade,
			DeepLink: fmt.Sprintf("/trades/%d", trade.ID),
			Actions:  []string{TradeActionAccept, TradeActionReject},
		})
	}
}
