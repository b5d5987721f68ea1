package renew_contract

import "errors"

var (
	// ErrCompanyNotFound возвращается, когда компания не найдена
	ErrCompanyNotFound = errors.New("renew_contract: company not found")

	// ErrInvalidPlan возвращается при неизвестном тарифном плане
	ErrInvalidPlan = errors.New("renew_contract: invalid plan")

	// ErrNoContract возвращается, когда у компании нет действующего контракта
	ErrNoContract = errors.New("renew_contract: company has no contract to renew")

	// ErrContractExpired возвращается при попытке продлить истекший контракт
	ErrContractExpired = errors.New("renew_contract: contract already expired")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("renew_contract: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("renew_contract: internal error")
)
