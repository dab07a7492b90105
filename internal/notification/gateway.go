// Package notification: gerbang keluar notifikasi milik engine.
// Semua pengiriman fire-and-forget: gagal kirim dicatat di log,
// TIDAK pernah menggagalkan atau me-rollback operasi utama.
package notification

type Intent struct {
	Title    string
	Body     string
	Category string
	Priority string
	DeepLink string
	Actions  []string // Aksi yang ditawarkan ke user, contoh: ACCEPT/REJECT
}

// Gateway adalah satu-satunya ketergantungan engine ke dunia notifikasi.
// Core state machine bisa dites tanpa kanal pengiriman sungguhan.
type Gateway interface {
	Send(staffID uint, intent Intent)
}
