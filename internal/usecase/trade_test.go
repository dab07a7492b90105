package usecase

import (
	"testing"

	"gorm.io/gorm"

	"workforce-backend/internal/apperr"
	"workforce-backend/internal/model"
)

type tradeFixture struct {
	svc          *TradeService
	tradeRepo    *mockTradeRepo
	scheduleRepo *mockScheduleRepo
	staffRepo    *mockStaffRepo
	gateway      *mockGateway

	sourceID uint // jadwal milik staff 10
	targetID uint // jadwal milik staff 20
}

func newTradeFixture(requireManagerApproval bool) *tradeFixture {
	f := &tradeFixture{
		tradeRepo:    newMockTradeRepo(),
		scheduleRepo: newMockScheduleRepo(),
		staffRepo:    newMockStaffRepo(),
		gateway:      &mockGateway{},
	}
	f.staffRepo.add(model.Staff{Model: gorm.Model{ID: 10}, Name: "Andi", StoreID: 5, CompanyID: 1})
	f.staffRepo.add(model.Staff{Model: gorm.Model{ID: 20}, Name: "Sari", StoreID: 5, CompanyID: 1})
	f.staffRepo.managers[1] = []model.Staff{{Model: gorm.Model{ID: 9}, Name: "Manager", StoreID: 5}}

	source := &model.ScheduleEntry{
		StaffID: 10, StoreID: 5, WorkDate: "2024-06-12",
		StartTime: at("2024-06-12", "09:00"), EndTime: at("2024-06-12", "18:00"),
		GeneratedBy: model.ScheduleSourceContract,
	}
	target := &model.ScheduleEntry{
		StaffID: 20, StoreID: 5, WorkDate: "2024-06-13",
		StartTime: at("2024-06-13", "09:00"), EndTime: at("2024-06-13", "18:00"),
		GeneratedBy: model.ScheduleSourceContract,
	}
	f.scheduleRepo.Create(source)
	f.scheduleRepo.Create(target)
	f.sourceID = source.ID
	f.targetID = target.ID

	f.svc = NewTradeService(f.tradeRepo, f.scheduleRepo, f.staffRepo, f.gateway, requireManagerApproval)
	return f
}

func TestTradeCreate(t *testing.T) {
	f := newTradeFixture(false)

	trade, err := f.svc.Create(10, f.sourceID, f.targetID, "acara keluarga")
	if err != nil {
		t.Fatal(err)
	}
	if trade.Status != model.TradeStatusPending {
		t.Errorf("status = %s, harusnya PENDING", trade.Status)
	}
	if trade.TargetID != 20 {
		t.Errorf("target_id = %d, harusnya pemilik jadwal target", trade.TargetID)
	}
	if trade.RequiresManagerApproval {
		t.Errorf("trade satu store dengan kebijakan default off tidak butuh approval")
	}
	if len(f.gateway.sent) != 1 || f.gateway.sent[0].staffID != 20 {
		t.Errorf("pegawai target harus dapat notifikasi")
	}
}

func TestTradeCreateValidation(t *testing.T) {
	f := newTradeFixture(false)

	if _, err := f.svc.Create(10, f.sourceID, f.sourceID, ""); !apperr.IsValidation(err) {
		t.Errorf("jadwal sama: %v, harusnya Validation", err)
	}
	if _, err := f.svc.Create(20, f.sourceID, f.targetID, ""); !apperr.IsValidation(err) {
		t.Errorf("bukan pemilik jadwal sumber: %v, harusnya Validation", err)
	}
	if _, err := f.svc.Create(10, f.sourceID, 999, ""); !apperr.IsNotFound(err) {
		t.Errorf("jadwal target tidak ada: %v, harusnya NotFound", err)
	}
}

func TestTradeCreateDuplicateOpen(t *testing.T) {
	f := newTradeFixture(false)

	if _, err := f.svc.Create(10, f.sourceID, f.targetID, ""); err != nil {
		t.Fatal(err)
	}
	_, err := f.svc.Create(10, f.sourceID, f.targetID, "")
	if !apperr.IsConflict(err) {
		t.Fatalf("pengajuan kedua untuk jadwal yang sama harusnya Conflict, dapat %v", err)
	}
}

// Trade lintas store selalu butuh persetujuan manager, apapun kebijakan defaultnya.
func TestTradeCrossStoreRequiresApproval(t *testing.T) {
	f := newTradeFixture(false)
	other := &model.ScheduleEntry{
		StaffID: 20, StoreID: 7, WorkDate: "2024-06-14",
		StartTime: at("2024-06-14", "09:00"), EndTime: at("2024-06-14", "18:00"),
		GeneratedBy: model.ScheduleSourceManual,
	}
	f.scheduleRepo.Create(other)

	trade, err := f.svc.Create(10, f.sourceID, other.ID, "")
	if err != nil {
		t.Fatal(err)
	}
	if !trade.RequiresManagerApproval {
		t.Fatalf("trade lintas store harus requires_manager_approval")
	}
}

func TestTradeRejectByTarget(t *testing.T) {
	f := newTradeFixture(false)
	trade, _ := f.svc.Create(10, f.sourceID, f.targetID, "")

	updated, err := f.svc.Respond(trade.ID, 20, TradeActionReject, "tidak bisa")
	if err != nil {
		t.Fatal(err)
	}
	if updated.Status != model.TradeStatusRejected {
		t.Fatalf("status = %s, harusnya REJECTED", updated.Status)
	}
	if updated.ResponseComment != "tidak bisa" {
		t.Errorf("response_comment tidak tersimpan")
	}

	// Jadwal tidak boleh tersentuh
	source, _ := f.scheduleRepo.GetByID(f.sourceID)
	if source.StaffID != 10 {
		t.Errorf("jadwal berpindah tangan padahal trade ditolak")
	}
}

func TestTradeRespondOnlyTarget(t *testing.T) {
	f := newTradeFixture(false)
	trade, _ := f.svc.Create(10, f.sourceID, f.targetID, "")

	_, err := f.svc.Respond(trade.ID, 10, TradeActionAccept, "")
	if !apperr.IsConflict(err) {
		t.Fatalf("respond oleh non-target harusnya Conflict, dapat %v", err)
	}
}

func TestTradeRespondInvalidAction(t *testing.T) {
	f := newTradeFixture(false)
	trade, _ := f.svc.Create(10, f.sourceID, f.targetID, "")

	_, err := f.svc.Respond(trade.ID, 20, "MAYBE", "")
	if !apperr.IsValidation(err) {
		t.Fatalf("aksi tidak dikenal harusnya Validation, dapat %v", err)
	}
}

// Accept pada trade yang sudah final harus Conflict: guard optimistik,
// bukan eksekusi ulang.
func TestTradeAcceptAfterRejected(t *testing.T) {
	f := newTradeFixture(false)
	trade, _ := f.svc.Create(10, f.sourceID, f.targetID, "")
	if _, err := f.svc.Respond(trade.ID, 20, TradeActionReject, ""); err != nil {
		t.Fatal(err)
	}

	_, err := f.svc.Respond(trade.ID, 20, TradeActionAccept, "berubah pikiran")
	if !apperr.IsConflict(err) {
		t.Fatalf("accept setelah REJECTED harusnya Conflict, dapat %v", err)
	}
}

// Tanpa kebutuhan approval, accept target langsung mengeksekusi tukar:
// kepemilikan berganti dan lineage terisi dua arah.
func TestTradeAcceptExecutesSwap(t *testing.T) {
	f := newTradeFixture(false)
	trade, _ := f.svc.Create(10, f.sourceID, f.targetID, "")

	updated, err := f.svc.Respond(trade.ID, 20, TradeActionAccept, "oke")
	if err != nil {
		t.Fatal(err)
	}
	if updated.Status != model.TradeStatusApproved {
		t.Fatalf("status = %s, harusnya APPROVED", updated.Status)
	}

	source, _ := f.scheduleRepo.GetByID(f.sourceID)
	target, _ := f.scheduleRepo.GetByID(f.targetID)
	if source.StaffID != 20 || target.StaffID != 10 {
		t.Fatalf("kepemilikan tidak tertukar: source=%d target=%d", source.StaffID, target.StaffID)
	}
	if source.TradedFromID == nil || *source.TradedFromID != f.targetID {
		t.Errorf("traded_from_id source tidak menunjuk jadwal lawan")
	}
	if source.OriginalStaffID == nil || *source.OriginalStaffID != 10 {
		t.Errorf("original_staff_id source harus pemilik semula")
	}
	if target.TradedFromID == nil || *target.TradedFromID != f.sourceID {
		t.Errorf("traded_from_id target tidak menunjuk jadwal lawan")
	}
	if target.OriginalStaffID == nil || *target.OriginalStaffID != 20 {
		t.Errorf("original_staff_id target harus pemilik semula")
	}
}

// Dengan kebijakan approval aktif: accept target menggantung di
// AWAITING_APPROVAL, eksekusi baru terjadi setelah keputusan manager.
func TestTradeManagerApprovalFlow(t *testing.T) {
	f := newTradeFixture(true)
	trade, _ := f.svc.Create(10, f.sourceID, f.targetID, "")

	updated, err := f.svc.Respond(trade.ID, 20, TradeActionAccept, "")
	if err != nil {
		t.Fatal(err)
	}
	if updated.Status != model.TradeStatusAwaitingApproval {
		t.Fatalf("status = %s, harusnya AWAITING_APPROVAL", updated.Status)
	}
	source, _ := f.scheduleRepo.GetByID(f.sourceID)
	if source.StaffID != 10 {
		t.Fatalf("jadwal sudah tertukar sebelum keputusan manager")
	}

	approved, err := f.svc.Approve(trade.ID, 9, TradeActionAccept, "silakan")
	if err != nil {
		t.Fatal(err)
	}
	if approved.Status != model.TradeStatusApproved {
		t.Fatalf("status = %s, harusnya APPROVED", approved.Status)
	}
	if approved.ManagerID == nil || *approved.ManagerID != 9 {
		t.Errorf("manager_id tidak tersimpan")
	}
	source, _ = f.scheduleRepo.GetByID(f.sourceID)
	if source.StaffID != 20 {
		t.Fatalf("eksekusi tukar tidak jalan setelah approval")
	}
}

func TestTradeManagerReject(t *testing.T) {
	f := newTradeFixture(true)
	trade, _ := f.svc.Create(10, f.sourceID, f.targetID, "")
	if _, err := f.svc.Respond(trade.ID, 20, TradeActionAccept, ""); err != nil {
		t.Fatal(err)
	}

	rejected, err := f.svc.Approve(trade.ID, 9, TradeActionReject, "staffing ketat")
	if err != nil {
		t.Fatal(err)
	}
	if rejected.Status != model.TradeStatusManagerRejected {
		t.Fatalf("status = %s, harusnya MANAGER_REJECTED", rejected.Status)
	}
	source, _ := f.scheduleRepo.GetByID(f.sourceID)
	if source.StaffID != 10 {
		t.Errorf("jadwal tertukar padahal manager menolak")
	}
}

// Approve hanya valid dari AWAITING_APPROVAL.
func TestTradeApproveFromPending(t *testing.T) {
	f := newTradeFixture(true)
	trade, _ := f.svc.Create(10, f.sourceID, f.targetID, "")

	_, err := f.svc.Approve(trade.ID, 9, TradeActionAccept, "")
	if !apperr.IsConflict(err) {
		t.Fatalf("approve dari PENDING harusnya Conflict, dapat %v", err)
	}
}

// Dua writer balapan: yang kalah klaim transisi dapat Conflict dan
// eksekusi tukar tidak jalan dua kali.
func TestTradeLostRaceConflict(t *testing.T) {
	f := newTradeFixture(false)
	trade, _ := f.svc.Create(10, f.sourceID, f.targetID, "")

	// Writer lain menang duluan: status di DB berubah di belakang layar
	f.tradeRepo.setStatus(trade.ID, model.TradeStatusRejected)

	_, err := f.svc.Respond(trade.ID, 20, TradeActionAccept, "")
	if !apperr.IsConflict(err) {
		t.Fatalf("kalah balapan harusnya Conflict, dapat %v", err)
	}
	source, _ := f.scheduleRepo.GetByID(f.sourceID)
	if source.StaffID != 10 {
		t.Errorf("eksekusi tukar jalan padahal transisi gagal diklaim")
	}
}
