package notification

import (
	"encoding/json"
	"log"
	"time"

	"workforce-backend/internal/model"
	"workforce-backend/internal/repository"
)

// Mailer: kanal email opsional di belakang gateway (lihat mail.go).
type Mailer interface {
	Send(to string, subject string, body string) error
}

// Service mencatat notifikasi ke tabel notifications (feed user + index dedup)
// lalu best-effort kirim email kalau staff punya alamat email.
type Service struct {
	repo      repository.NotificationRepository
	staffRepo repository.StaffRepository
	mailer    Mailer // boleh nil (email dimatikan)
}

func NewService(repo repository.NotificationRepository, staffRepo repository.StaffRepository, mailer Mailer) *Service {
	return &Service{repo: repo, staffRepo: staffRepo, mailer: mailer}
}

func (s *Service) Send(staffID uint, intent Intent) {
	priority := intent.Priority
	if priority == "" {
		priority = model.NotificationPriorityNormal
	}

	var actions []byte
	if len(intent.Actions) > 0 {
		actions, _ = json.Marshal(intent.Actions)
	}

	n := model.Notification{
		StaffID:  staffID,
		Title:    intent.Title,
		Body:     intent.Body,
		Category: intent.Category,
		Priority: priority,
		DeepLink: intent.DeepLink,
		Actions:  actions,
		SentAt:   time.Now(),
	}
	if err := s.repo.Create(&n); err != nil {
		log.Printf("[NOTIF] gagal simpan notifikasi staff=%d title=%q: %v", staffID, intent.Title, err)
		return
	}

	if s.mailer == nil {
		return
	}
	staff, err := s.staffRepo.FindByID(staffID)
	if err != nil || staff.Email == "" {
		return
	}
	if err := s.mailer.Send(staff.Email, intent.Title, intent.Body); err != nil {
		log.Printf("[NOTIF] gagal kirim email ke %s: %v", staff.Email, err)
	}
}
