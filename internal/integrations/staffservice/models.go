package staffservice

// Staff модель выездного специалиста из StaffService
type Staff struct {
	ID       int64    `json:"id"`
	Name     string   `json:"name"`
	Phone    *string  `json:"phone,omitempty"`
	Email    *string  `json:"email,omitempty"`
	Skills   []string `json:"skills,omitempty"`
	IsActive bool     `json:"is_active"`
}

// ErrorResponse модель ошибки от StaffService
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
