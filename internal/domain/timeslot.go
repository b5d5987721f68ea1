package domain

import "github.com/m04kA/SMC-DispatchService/pkg/types"

// TimeSlot один слот обслуживания внутри окна предложения
// Создается планировщиком (internal/timeplan); заполнение меняется
// только операциями регистрации/снятия сотрудника
type TimeSlot struct {
	Slot      int              `json:"slot"` // Номер слота (1-based, без пропусков)
	StartTime types.TimeString `json:"start_time"`
	EndTime   types.TimeString `json:"end_time"`
	Duration  int              `json:"duration"` // Минуты
	IsFilled  bool             `json:"is_filled"`

	// Сотрудник компании, записанный в слот
	EmployeeID         *int64  `json:"employee_id,omitempty"`
	EmployeeName       *string `json:"employee_name,omitempty"`
	EmployeeDepartment *string `json:"employee_department,omitempty"`
	EmployeePosition   *string `json:"employee_position,omitempty"`

	// Информационная ссылка на стаффа (авторитетная связь - в Assignment)
	StaffID *int64 `json:"staff_id,omitempty"`
}

// IsOccupied возвращает true, если слот занят
// Учитывает оба пути заполнения: флаг is_filled и ссылку на сотрудника
func (s *TimeSlot) IsOccupied() bool {
	return s.IsFilled || s.EmployeeID != nil || (s.EmployeeName != nil && *s.EmployeeName != "")
}

// SameWindow возвращает true, если слот занимает тот же временной интервал
// Используется при перепланировании для сохранения заполнения неизменившихся слотов
func (s *TimeSlot) SameWindow(other *TimeSlot) bool {
	return s.StartTime == other.StartTime &&
		s.EndTime == other.EndTime &&
		s.Duration == other.Duration
}

// ClearEmployee снимает сотрудника со слота
func (s *TimeSlot) ClearEmployee() {
	s.IsFilled = false
	s.EmployeeID = nil
	s.EmployeeName = nil
	s.EmployeeDepartment = nil
	s.EmployeePosition = nil
}
