// Package apperr mendefinisikan taksonomi error domain.
// Handler memetakan tipe error ini ke status HTTP (400/404/409);
// usecase tidak pernah menyentuh kode HTTP secara langsung.
package apperr

import "errors"

type Kind int

const (
	KindValidation Kind = iota // Input tidak valid, tidak ada state yang berubah
	KindNotFound               // Referensi tidak ditemukan / di luar scope caller
	KindConflict               // Transisi state ilegal (double check-in, trade sudah diproses, dll)
)

type Error struct {
	Kind    Kind
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

func Validation(msg string) error {
	return &Error{Kind: KindValidation, Message: msg}
}

func NotFound(msg string) error {
	return &Error{Kind: KindNotFound, Message: msg}
}

func Conflict(msg string) error {
	return &Error{Kind: KindConflict, Message: msg}
}

func IsValidation(err error) bool { return is(err, KindValidation) }
func IsNotFound(err error) bool   { return is(err, KindNotFound) }
func IsConflict(err error) bool   { return is(err, KindConflict) }

func is(err error, kind Kind) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind == kind
	}
	return false
}
