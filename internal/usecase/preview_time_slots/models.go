package preview_time_slots

import "github.com/m04kA/SMC-DispatchService/pkg/types"

// Request запрос на предпросмотр нарезки слотов
// MaxParticipants опционален - с ним количество слотов ограничивается
// вместимостью, как при создании предложения
type Request struct {
	StartTime       types.TimeString `json:"startTime"`
	EndTime         types.TimeString `json:"endTime"`
	ServiceDuration int              `json:"serviceDuration"`
	BreakDuration   int              `json:"breakDuration"`
	HourlyRate      int              `json:"hourlyRate,omitempty"`
	MaxParticipants *int             `json:"maxParticipants,omitempty"`
}

// SlotPreview слот в ответе предпросмотра
type SlotPreview struct {
	Slot      int    `json:"slot"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
	Duration  int    `json:"duration"`
	Earnings  int    `json:"earnings,omitempty"`
}

// ShortfallInfo описание нехватки времени для одного слота
type ShortfallInfo struct {
	RequiredMinutes  int `json:"requiredMinutes"`
	AvailableMinutes int `json:"availableMinutes"`
	ExcessMinutes    int `json:"excessMinutes"`
}

// Response результат предпросмотра
type Response struct {
	Feasible          bool           `json:"feasible"`
	SlotCount         int            `json:"slotCount"`
	PhysicalSlotCount int            `json:"physicalSlotCount"`
	Slots             []SlotPreview  `json:"slots"`
	TotalMinutes      int            `json:"totalMinutes"`
	UsedMinutes       int            `json:"usedMinutes"`
	RemainingMinutes  int            `json:"remainingMinutes"`
	TotalEarnings     int            `json:"totalEarnings,omitempty"`
	Shortfall         *ShortfallInfo `json:"shortfall,omitempty"`
}
