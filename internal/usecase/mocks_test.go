package usecase

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"workforce-backend/internal/model"
	"workforce-backend/internal/notification"
)

// Mock repository in-memory untuk test usecase tanpa database.

// ── Schedule ──

type mockScheduleRepo struct {
	nextID    uint
	byID      map[uint]*model.ScheduleEntry
	byKey     map[string]uint
	failBatch bool
	failDates map[string]bool // work_date yang dibikin gagal di Upsert per-entry
}

func newMockScheduleRepo() *mockScheduleRepo {
	return &mockScheduleRepo{
		nextID:    1,
		byID:      map[uint]*model.ScheduleEntry{},
		byKey:     map[string]uint{},
		failDates: map[string]bool{},
	}
}

func scheduleKey(e *model.ScheduleEntry) string {
	return fmt.Sprintf("%d|%s|%s|%d", e.StaffID, e.WorkDate, e.GeneratedBy, e.StartTime.Unix())
}

func (m *mockScheduleRepo) Create(entry *model.ScheduleEntry) error {
	key := scheduleKey(entry)
	if _, ok := m.byKey[key]; ok {
		return errors.New("Error 1062: Duplicate entry")
	}
	entry.ID = m.nextID
	m.nextID++
	copied := *entry
	m.byID[entry.ID] = &copied
	m.byKey[key] = entry.ID
	return nil
}

func (m *mockScheduleRepo) GetByID(id uint) (*model.ScheduleEntry, error) {
	e, ok := m.byID[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *e
	return &copied, nil
}

func (m *mockScheduleRepo) Update(entry *model.ScheduleEntry) error {
	if _, ok := m.byID[entry.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	copied := *entry
	m.byID[entry.ID] = &copied
	return nil
}

func (m *mockScheduleRepo) GetByStaffAndDate(staffID uint, date string) ([]model.ScheduleEntry, error) {
	var list []model.ScheduleEntry
	for _, e := range m.byID {
		if e.StaffID == staffID && e.WorkDate == date && e.Status != model.ScheduleStatusCancelled {
			list = append(list, *e)
		}
	}
	// urut jam mulai
	for i := range list {
		for j := i + 1; j < len(list); j++ {
			if list[j].StartTime.Before(list[i].StartTime) {
				list[i], list[j] = list[j], list[i]
			}
		}
	}
	return list, nil
}

func (m *mockScheduleRepo) GetByDateAndStore(date string, storeID uint) ([]model.ScheduleEntry, error) {
	var list []model.ScheduleEntry
	for _, e := range m.byID {
		if e.WorkDate == date && e.StoreID == storeID {
			list = append(list, *e)
		}
	}
	return list, nil
}

func (m *mockScheduleRepo) GetByStaffAndMonth(staffID uint, month string, year string) ([]model.ScheduleEntry, error) {
	prefix := year + "-" + month
	var list []model.ScheduleEntry
	for _, e := range m.byID {
		if e.StaffID == staffID && len(e.WorkDate) >= 7 && e.WorkDate[:7] == prefix {
			list = append(list, *e)
		}
	}
	return list, nil
}

func (m *mockScheduleRepo) upsertOne(entry *model.ScheduleEntry) {
	key := scheduleKey(entry)
	if id, ok := m.byKey[key]; ok {
		entry.ID = id
		copied := *entry
		m.byID[id] = &copied
		return
	}
	entry.ID = m.nextID
	m.nextID++
	copied := *entry
	m.byID[entry.ID] = &copied
	m.byKey[key] = entry.ID
}

func (m *mockScheduleRepo) UpsertBatch(entries []model.ScheduleEntry) error {
	if m.failBatch {
		return errors.New("bulk insert rejected")
	}
	for i := range entries {
		m.upsertOne(&entries[i])
	}
	return nil
}

func (m *mockScheduleRepo) Upsert(entry *model.ScheduleEntry) error {
	if m.failDates[entry.WorkDate] {
		return errors.New("Error 1062: Duplicate entry")
	}
	m.upsertOne(entry)
	return nil
}

func (m *mockScheduleRepo) count() int {
	return len(m.byID)
}

// ── Attendance ──

type mockAttendanceRepo struct {
	nextID uint
	byID   map[uint]*model.AttendanceRecord
	byKey  map[string]uint
}

func newMockAttendanceRepo() *mockAttendanceRepo {
	return &mockAttendanceRepo{nextID: 1, byID: map[uint]*model.AttendanceRecord{}, byKey: map[string]uint{}}
}

func attendanceKey(staffID uint, date string) string {
	return fmt.Sprintf("%d|%s", staffID, date)
}

func (m *mockAttendanceRepo) Upsert(record *model.AttendanceRecord) error {
	key := attendanceKey(record.StaffID, record.WorkDate)
	if id, ok := m.byKey[key]; ok {
		record.ID = id
	} else {
		record.ID = m.nextID
		m.nextID++
		m.byKey[key] = record.ID
	}
	copied := *record
	m.byID[record.ID] = &copied
	return nil
}

func (m *mockAttendanceRepo) Update(record *model.AttendanceRecord) error {
	if _, ok := m.byID[record.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	copied := *record
	m.byID[record.ID] = &copied
	return nil
}

func (m *mockAttendanceRepo) GetByID(id uint) (*model.AttendanceRecord, error) {
	r, ok := m.byID[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *r
	return &copied, nil
}

func (m *mockAttendanceRepo) GetByStaffAndDate(staffID uint, date string) (*model.AttendanceRecord, error) {
	id, ok := m.byKey[attendanceKey(staffID, date)]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *m.byID[id]
	return &copied, nil
}

func (m *mockAttendanceRepo) GetHistory(staffID uint) ([]model.AttendanceRecord, error) {
	var list []model.AttendanceRecord
	for _, r := range m.byID {
		if r.StaffID == staffID {
			list = append(list, *r)
		}
	}
	return list, nil
}

func (m *mockAttendanceRepo) GetByStaffAndMonth(staffID uint, month string, year string) ([]model.AttendanceRecord, error) {
	prefix := year + "-" + month
	var list []model.AttendanceRecord
	for _, r := range m.byID {
		if r.StaffID == staffID && len(r.WorkDate) >= 7 && r.WorkDate[:7] == prefix {
			list = append(list, *r)
		}
	}
	return list, nil
}

func (m *mockAttendanceRepo) GetByStoreAndMonth(storeID uint, month string, year string) ([]model.AttendanceRecord, error) {
	prefix := year + "-" + month
	var list []model.AttendanceRecord
	for _, r := range m.byID {
		if r.StoreID == storeID && len(r.WorkDate) >= 7 && r.WorkDate[:7] == prefix {
			list = append(list, *r)
		}
	}
	return list, nil
}

func (m *mockAttendanceRepo) GetByDate(date string) ([]model.AttendanceRecord, error) {
	var list []model.AttendanceRecord
	for _, r := range m.byID {
		if r.WorkDate == date {
			list = append(list, *r)
		}
	}
	return list, nil
}

func (m *mockAttendanceRepo) GetOpenBefore(date string) ([]model.AttendanceRecord, error) {
	var list []model.AttendanceRecord
	for _, r := range m.byID {
		if r.ActualCheckIn != nil && r.ActualCheckOut == nil && r.WorkDate < date {
			list = append(list, *r)
		}
	}
	return list, nil
}

func (m *mockAttendanceRepo) GetOpenByDate(date string) ([]model.AttendanceRecord, error) {
	var list []model.AttendanceRecord
	for _, r := range m.byID {
		if r.ActualCheckIn != nil && r.ActualCheckOut == nil && r.WorkDate == date {
			list = append(list, *r)
		}
	}
	return list, nil
}

func (m *mockAttendanceRepo) GetOpenInRange(startDate string, endDate string) ([]model.AttendanceRecord, error) {
	var list []model.AttendanceRecord
	for _, r := range m.byID {
		if r.ActualCheckIn != nil && r.ActualCheckOut == nil && r.WorkDate >= startDate && r.WorkDate <= endDate {
			list = append(list, *r)
		}
	}
	return list, nil
}

func (m *mockAttendanceRepo) CountByStoreDateAndStatus(storeID uint, date string, status string) (int64, error) {
	var count int64
	for _, r := range m.byID {
		if r.StoreID == storeID && r.WorkDate == date && r.Status == status {
			count++
		}
	}
	return count, nil
}

// ── Contract ──

type mockContractRepo struct {
	nextID uint
	byID   map[uint]*model.Contract
}

func newMockContractRepo() *mockContractRepo {
	return &mockContractRepo{nextID: 1, byID: map[uint]*model.Contract{}}
}

func (m *mockContractRepo) Create(contract *model.Contract) error {
	contract.ID = m.nextID
	m.nextID++
	copied := *contract
	m.byID[contract.ID] = &copied
	return nil
}

func (m *mockContractRepo) GetByID(id uint) (*model.Contract, error) {
	c, ok := m.byID[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *c
	return &copied, nil
}

func (m *mockContractRepo) Update(contract *model.Contract) error {
	copied := *contract
	m.byID[contract.ID] = &copied
	return nil
}

func (m *mockContractRepo) GetByStaff(staffID uint) ([]model.Contract, error) {
	var list []model.Contract
	for _, c := range m.byID {
		if c.StaffID == staffID {
			list = append(list, *c)
		}
	}
	return list, nil
}

func (m *mockContractRepo) GetActiveByStaffAndDate(staffID uint, date string) (*model.Contract, error) {
	for _, c := range m.byID {
		if c.StaffID != staffID || c.Status != model.ContractStatusSigned {
			continue
		}
		if c.StartDate <= date && (c.EndDate == "" || c.EndDate >= date) {
			copied := *c
			return &copied, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

// ── Correction ──

type mockCorrectionRepo struct {
	nextID uint
	byID   map[uint]*model.CorrectionRequest
}

func newMockCorrectionRepo() *mockCorrectionRepo {
	return &mockCorrectionRepo{nextID: 1, byID: map[uint]*model.CorrectionRequest{}}
}

func (m *mockCorrectionRepo) Create(request *model.CorrectionRequest) error {
	request.ID = m.nextID
	m.nextID++
	copied := *request
	m.byID[request.ID] = &copied
	return nil
}

func (m *mockCorrectionRepo) GetByID(id uint) (*model.CorrectionRequest, error) {
	r, ok := m.byID[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *r
	return &copied, nil
}

func (m *mockCorrectionRepo) Update(request *model.CorrectionRequest) error {
	copied := *request
	m.byID[request.ID] = &copied
	return nil
}

func (m *mockCorrectionRepo) GetByStaff(staffID uint) ([]model.CorrectionRequest, error) {
	var list []model.CorrectionRequest
	for _, r := range m.byID {
		if r.StaffID == staffID {
			list = append(list, *r)
		}
	}
	return list, nil
}

func (m *mockCorrectionRepo) GetPendingByCompany(companyID uint) ([]model.CorrectionRequest, error) {
	return nil, nil
}

func (m *mockCorrectionRepo) ExistsByAttendanceAndType(attendanceID uint, requestType string) (bool, error) {
	for _, r := range m.byID {
		if r.AttendanceID == attendanceID && r.RequestType == requestType {
			return true, nil
		}
	}
	return false, nil
}

func (m *mockCorrectionRepo) countByType(requestType string) int {
	count := 0
	for _, r := range m.byID {
		if r.RequestType == requestType {
			count++
		}
	}
	return count
}

// ── Trade ──

type mockTradeRepo struct {
	nextID uint
	byID   map[uint]*model.ShiftTradeRequest
}

func newMockTradeRepo() *mockTradeRepo {
	return &mockTradeRepo{nextID: 1, byID: map[uint]*model.ShiftTradeRequest{}}
}

func (m *mockTradeRepo) Create(trade *model.ShiftTradeRequest) error {
	trade.ID = m.nextID
	m.nextID++
	copied := *trade
	m.byID[trade.ID] = &copied
	return nil
}

func (m *mockTradeRepo) GetByID(id uint) (*model.ShiftTradeRequest, error) {
	t, ok := m.byID[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *t
	return &copied, nil
}

func (m *mockTradeRepo) GetByStaff(staffID uint) ([]model.ShiftTradeRequest, error) {
	var list []model.ShiftTradeRequest
	for _, t := range m.byID {
		if t.RequesterID == staffID || t.TargetID == staffID {
			list = append(list, *t)
		}
	}
	return list, nil
}

func (m *mockTradeRepo) GetAwaitingApprovalByCompany(companyID uint) ([]model.ShiftTradeRequest, error) {
	return nil, nil
}

func (m *mockTradeRepo) ExistsOpenBySchedule(scheduleID uint) (bool, error) {
	for _, t := range m.byID {
		if t.RequesterScheduleID != scheduleID {
			continue
		}
		if t.Status == model.TradeStatusPending || t.Status == model.TradeStatusAwaitingApproval {
			return true, nil
		}
	}
	return false, nil
}

func (m *mockTradeRepo) UpdateStatusIf(id uint, expectedStatus string, updates map[string]interface{}) (bool, error) {
	t, ok := m.byID[id]
	if !ok || t.Status != expectedStatus {
		return false, nil
	}
	if v, ok := updates["status"]; ok {
		t.Status = v.(string)
	}
	if v, ok := updates["response_comment"]; ok {
		t.ResponseComment = v.(string)
	}
	if v, ok := updates["manager_comment"]; ok {
		t.ManagerComment = v.(string)
	}
	if v, ok := updates["manager_id"]; ok {
		id := v.(uint)
		t.ManagerID = &id
	}
	return true, nil
}

// setStatus: langsung ubah status di "DB", untuk mensimulasikan writer lain
// yang menang balapan.
func (m *mockTradeRepo) setStatus(id uint, status string) {
	if t, ok := m.byID[id]; ok {
		t.Status = status
	}
}

// ── Approval ──

type mockApprovalRepo struct {
	nextID uint
	byID   map[uint]*model.ShiftApproval
}

func newMockApprovalRepo() *mockApprovalRepo {
	return &mockApprovalRepo{nextID: 1, byID: map[uint]*model.ShiftApproval{}}
}

func (m *mockApprovalRepo) Create(approval *model.ShiftApproval) error {
	approval.ID = m.nextID
	m.nextID++
	copied := *approval
	m.byID[approval.ID] = &copied
	return nil
}

func (m *mockApprovalRepo) GetByID(id uint) (*model.ShiftApproval, error) {
	a, ok := m.byID[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *a
	return &copied, nil
}

func (m *mockApprovalRepo) Update(approval *model.ShiftApproval) error {
	copied := *approval
	m.byID[approval.ID] = &copied
	return nil
}

func (m *mockApprovalRepo) GetPendingByCompany(companyID uint) ([]model.ShiftApproval, error) {
	return nil, nil
}

func (m *mockApprovalRepo) ExistsByStaffDateKind(staffID uint, workDate string, kind string) (bool, error) {
	for _, a := range m.byID {
		if a.StaffID == staffID && a.WorkDate == workDate && a.Kind == kind {
			return true, nil
		}
	}
	return false, nil
}

// ── Notification repo + gateway ──

type mockNotificationRepo struct {
	nextID uint
	byID   map[uint]*model.Notification
}

func newMockNotificationRepo() *mockNotificationRepo {
	return &mockNotificationRepo{nextID: 1, byID: map[uint]*model.Notification{}}
}

func (m *mockNotificationRepo) Create(n *model.Notification) error {
	n.ID = m.nextID
	m.nextID++
	copied := *n
	m.byID[n.ID] = &copied
	return nil
}

func (m *mockNotificationRepo) GetByStaff(staffID uint) ([]model.Notification, error) {
	var list []model.Notification
	for _, n := range m.byID {
		if n.StaffID == staffID {
			list = append(list, *n)
		}
	}
	return list, nil
}

func (m *mockNotificationRepo) MarkRead(id uint, staffID uint) error {
	if n, ok := m.byID[id]; ok && n.StaffID == staffID {
		n.IsRead = true
	}
	return nil
}

func (m *mockNotificationRepo) ExistsByTitleAndDate(staffID uint, category string, title string, date string) (bool, error) {
	for _, n := range m.byID {
		if n.StaffID == staffID && n.Category == category && n.Title == title && n.SentAt.Format(dateFormat) == date {
			return true, nil
		}
	}
	return false, nil
}

type sentIntent struct {
	staffID uint
	intent  notification.Intent
}

// mockGateway mencatat intent terkirim; kalau notifRepo di-set, intent juga
// ditulis ke tabel mock (meniru perilaku notification.Service di produksi,
// yang jadi sumber query dedup).
type mockGateway struct {
	sent      []sentIntent
	notifRepo *mockNotificationRepo
	now       time.Time
}

func (g *mockGateway) Send(staffID uint, intent notification.Intent) {
	g.sent = append(g.sent, sentIntent{staffID: staffID, intent: intent})
	if g.notifRepo != nil {
		sentAt := g.now
		if sentAt.IsZero() {
			sentAt = time.Now()
		}
		g.notifRepo.Create(&model.Notification{
			StaffID:  staffID,
			Title:    intent.Title,
			Body:     intent.Body,
			Category: intent.Category,
			SentAt:   sentAt,
		})
	}
}

func (g *mockGateway) countByTitle(title string) int {
	count := 0
	for _, s := range g.sent {
		if s.intent.Title == title {
			count++
		}
	}
	return count
}

// ── Staff ──

type mockStaffRepo struct {
	byID     map[uint]*model.Staff
	managers map[uint][]model.Staff // per company
}

func newMockStaffRepo() *mockStaffRepo {
	return &mockStaffRepo{byID: map[uint]*model.Staff{}, managers: map[uint][]model.Staff{}}
}

func (m *mockStaffRepo) add(staff model.Staff) {
	copied := staff
	m.byID[staff.ID] = &copied
}

func (m *mockStaffRepo) Create(staff *model.Staff) error {
	copied := *staff
	m.byID[staff.ID] = &copied
	return nil
}

func (m *mockStaffRepo) FindByID(id uint) (*model.Staff, error) {
	s, ok := m.byID[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *s
	return &copied, nil
}

func (m *mockStaffRepo) FindByEmployeeNo(employeeNo string) (*model.Staff, error) {
	for _, s := range m.byID {
		if s.EmployeeNo == employeeNo {
			copied := *s
			return &copied, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockStaffRepo) Update(staff *model.Staff) error {
	copied := *staff
	m.byID[staff.ID] = &copied
	return nil
}

func (m *mockStaffRepo) AddDevice(device *model.Device) error { return nil }

func (m *mockStaffRepo) GetByStore(storeID uint) ([]model.Staff, error) {
	var list []model.Staff
	for _, s := range m.byID {
		if s.StoreID == storeID {
			list = append(list, *s)
		}
	}
	return list, nil
}

func (m *mockStaffRepo) FindManagersByCompany(companyID uint) ([]model.Staff, error) {
	return m.managers[companyID], nil
}

func (m *mockStaffRepo) FindManagersByStore(storeID uint) ([]model.Staff, error) {
	var list []model.Staff
	for _, managers := range m.managers {
		for _, mg := range managers {
			if mg.StoreID == storeID {
				list = append(list, mg)
			}
		}
	}
	return list, nil
}
