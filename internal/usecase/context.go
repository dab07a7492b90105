package usecase

// ResolveStoreID menentukan "store saat ini" dari beberapa sumber opsional,
// urutan prioritas: parameter eksplisit request > store di jadwal >
// store default staff > store dari context auth. Nol = tidak ada.
// Dibuat satu fungsi eksplisit supaya precedence-nya bisa dites sendiri,
// bukan rantai OR tersebar di tiap handler.
func ResolveStoreID(explicit, scheduleStoreID, staffStoreID, authStoreID uint) uint {
	if explicit != 0 {
		return explicit
	}
	if scheduleStoreID != 0 {
		return scheduleStoreID
	}
	if staffStoreID != 0 {
		return staffStoreID
	}
	return authStoreID
}
