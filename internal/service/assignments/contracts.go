package assignments

import (
	"context"
	"database/sql"
	"time"

	"github.com/m04kA/SMC-DispatchService/internal/domain"
)

// AssignmentRepository интерфейс репозитория ассайнов
type AssignmentRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Assignment, error)
	GetByFilter(ctx context.Context, filter domain.AssignmentFilter) ([]*domain.Assignment, error)
	UpdateStatus(ctx context.Context, id int64, status domain.AssignmentStatus, responseAt sql.NullTime) error
	Delete(ctx context.Context, id int64) error
}

// ReservationRepository интерфейс репозитория предложений
type ReservationRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Reservation, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error
}

// TimeProvider интерфейс для получения текущего времени
// Позволяет подменять время в тестах
type TimeProvider interface {
	Now() time.Time
}

// RealTimeProvider реализация TimeProvider на системных часах
type RealTimeProvider struct{}

// Now возвращает текущее время
func (RealTimeProvider) Now() time.Time {
	return time.Now()
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
