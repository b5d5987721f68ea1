package domain

// Значения по умолчанию
const (
	DefaultServiceDuration = 40   // Длительность обслуживания (минуты)
	DefaultBreakDuration   = 0    // Перерыв между слотами (минуты)
	DefaultHourlyRate      = 1500 // Ставка (йен/час)
	DefaultMaxParticipants = 1    // Вместимость (человек)
)

// Границы валидации
const (
	MinServiceDuration = 5   // Минимальная длительность обслуживания (минуты)
	MaxServiceDuration = 480 // 8 часов
	MinBreakDuration   = 0
	MaxBreakDuration   = 120 // 2 часа
	MinMaxParticipants = 1
	MaxMaxParticipants = 100
	MaxNotesLength     = 500
)

// Форматы времени
const (
	TimeFormat      = "15:04"      // HH:MM
	DateFormat      = "2006-01-02" // YYYY-MM-DD
	SlashDateFormat = "2006/01/02" // Отображаемый формат дат
)

// Расчет заработка
const (
	MinutesPerHour = 60
)

// Пагинация
const (
	DefaultPageLimit = 50
	MaxPageLimit     = 200
)

// InactiveAssignmentStatuses статусы ассайнов, освобождающих место
// Используется при подсчете занятости предложения
var InactiveAssignmentStatuses = []AssignmentStatus{
	AssignmentRejected,
	AssignmentCancelled,
}
