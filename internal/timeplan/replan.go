package timeplan

import "github.com/m04kA/SMC-DispatchService/internal/domain"

// MergeFills переносит заполнение со старых слотов на новые при перепланировании
//
// Заполнение (сотрудник, is_filled, ссылка на стаффа) сохраняется только для
// слотов, чей интервал не изменился: тот же номер, то же время, та же
// длительность. Слоты со сдвинувшимся временем возвращаются пустыми -
// прежняя запись на другой интервал недействительна
func MergeFills(oldSlots, newSlots []domain.TimeSlot) []domain.TimeSlot {
	merged := make([]domain.TimeSlot, len(newSlots))
	copy(merged, newSlots)

	for i := range merged {
		if i >= len(oldSlots) {
			break
		}
		old := &oldSlots[i]
		if old.Slot != merged[i].Slot || !old.SameWindow(&merged[i]) {
			continue
		}
		merged[i].IsFilled = old.IsFilled
		merged[i].EmployeeID = old.EmployeeID
		merged[i].EmployeeName = old.EmployeeName
		merged[i].EmployeeDepartment = old.EmployeeDepartment
		merged[i].EmployeePosition = old.EmployeePosition
		merged[i].StaffID = old.StaffID
	}

	return merged
}
