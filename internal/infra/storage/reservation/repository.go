package reservation

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/m04kA/SMC-DispatchService/internal/domain"
	"github.com/m04kA/SMC-DispatchService/pkg/dbmetrics"
	"github.com/m04kA/SMC-DispatchService/pkg/psqlbuilder"
)

// Список колонок таблицы reservations в порядке сканирования
var reservationColumns = []string{
	"id",
	"company_id",
	"office_name",
	"office_address",
	"reservation_date",
	"start_time",
	"end_time",
	"application_deadline",
	"max_participants",
	"total_duration",
	"service_duration",
	"break_duration",
	"slot_count",
	"time_slots",
	"slots_filled",
	"hourly_rate",
	"status",
	"notes",
	"requirements",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с предложениями
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория предложений
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новое предложение
// Если в контексте передана активная транзакция (через context.Value), использует её.
// Слоты сериализуются в JSONB-колонку time_slots
func (r *Repository) Create(ctx context.Context, res *domain.Reservation) (*domain.Reservation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	slotsJSON, err := json.Marshal(res.TimeSlots)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - marshal time slots: %v", ErrEncodeSlots, err)
	}

	query, args, err := psqlbuilder.Insert("reservations").
		Columns(
			"company_id",
			"office_name",
			"office_address",
			"reservation_date",
			"start_time",
			"end_time",
			"application_deadline",
			"max_participants",
			"total_duration",
			"service_duration",
			"break_duration",
			"slot_count",
			"time_slots",
			"slots_filled",
			"hourly_rate",
			"status",
			"notes",
			"requirements",
		).
		Values(
			res.CompanyID,
			res.OfficeName,
			res.OfficeAddress,
			res.ReservationDate,
			res.StartTime,
			res.EndTime,
			res.ApplicationDeadline,
			res.MaxParticipants,
			res.TotalDuration,
			res.ServiceDuration,
			res.BreakDuration,
			res.SlotCount,
			slotsJSON,
			res.SlotsFilled,
			res.HourlyRate,
			res.Status,
			res.Notes,
			res.Requirements,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&res.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	res.CreatedAt = createdAt.Time
	res.UpdatedAt = updatedAt.Time

	return res, nil
}

// GetByID получает предложение по ID
// Внутри транзакции строка блокируется через FOR UPDATE - это основа
// защиты от гонок при регистрации сотрудников и создании офферов
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Reservation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(reservationColumns...).
		From("reservations").
		Where(squirrel.Eq{"id": id})

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	res, err := r.scanReservation(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrReservationNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan reservation: %v", ErrScanRow, err)
	}

	return res, nil
}

// List получает список предложений с фильтрацией
// Сортировка: сначала ближайшие по дате выезда
func (r *Repository) List(ctx context.Context, filter domain.ReservationFilter) ([]*domain.Reservation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(reservationColumns...).
		From("reservations").
		OrderBy("reservation_date ASC, start_time ASC, id ASC")

	// Фильтрация по компании, если указана
	if filter.CompanyID != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"company_id": *filter.CompanyID})
	}

	// Фильтрация по статусу, если указан
	if filter.Status != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"status": *filter.Status})
	}

	limit := filter.Limit
	if limit <= 0 {
		limit = domain.DefaultPageLimit
	}
	if limit > domain.MaxPageLimit {
		limit = domain.MaxPageLimit
	}
	selectBuilder = selectBuilder.Limit(uint64(limit))

	if filter.Offset > 0 {
		selectBuilder = selectBuilder.Offset(uint64(filter.Offset))
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	reservations := make([]*domain.Reservation, 0)
	for rows.Next() {
		res, err := r.scanReservation(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: List - scan reservation: %v", ErrScanRow, err)
		}
		reservations = append(reservations, res)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %v", ErrScanRow, err)
	}

	return reservations, nil
}

// Update обновляет редактируемые поля предложения вместе со слотами
// Слоты пишутся целиком - частичных обновлений JSONB нет
func (r *Repository) Update(ctx context.Context, res *domain.Reservation) (*domain.Reservation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	slotsJSON, err := json.Marshal(res.TimeSlots)
	if err != nil {
		return nil, fmt.Errorf("%w: Update - marshal time slots: %v", ErrEncodeSlots, err)
	}

	query, args, err := psqlbuilder.Update("reservations").
		Set("office_name", res.OfficeName).
		Set("office_address", res.OfficeAddress).
		Set("reservation_date", res.ReservationDate).
		Set("start_time", res.StartTime).
		Set("end_time", res.EndTime).
		Set("application_deadline", res.ApplicationDeadline).
		Set("max_participants", res.MaxParticipants).
		Set("total_duration", res.TotalDuration).
		Set("service_duration", res.ServiceDuration).
		Set("break_duration", res.BreakDuration).
		Set("slot_count", res.SlotCount).
		Set("time_slots", slotsJSON).
		Set("slots_filled", res.SlotsFilled).
		Set("hourly_rate", res.HourlyRate).
		Set("status", res.Status).
		Set("notes", res.Notes).
		Set("requirements", res.Requirements).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": res.ID}).
		Suffix("RETURNING updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	var updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&updatedAt)
	if err == sql.ErrNoRows {
		return nil, ErrReservationNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Update - execute update: %v", ErrExecQuery, err)
	}

	res.UpdatedAt = updatedAt.Time

	return res, nil
}

// UpdateTimeSlots обновляет только слоты и счетчик занятости
// Используется при регистрации/снятии сотрудников
func (r *Repository) UpdateTimeSlots(ctx context.Context, id int64, slots []domain.TimeSlot, slotsFilled int) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	slotsJSON, err := json.Marshal(slots)
	if err != nil {
		return fmt.Errorf("%w: UpdateTimeSlots - marshal time slots: %v", ErrEncodeSlots, err)
	}

	query, args, err := psqlbuilder.Update("reservations").
		Set("time_slots", slotsJSON).
		Set("slots_filled", slotsFilled).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: UpdateTimeSlots - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: UpdateTimeSlots - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdateTimeSlots - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrReservationNotFound
	}

	return nil
}

// UpdateStatus обновляет статус предложения
func (r *Repository) UpdateStatus(ctx context.Context, id int64, status domain.ReservationStatus) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("reservations").
		Set("status", status).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrReservationNotFound
	}

	return nil
}

// Delete удаляет предложение
// Ассайны удаляются каскадно на уровне схемы БД
func (r *Repository) Delete(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("reservations").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrReservationNotFound
	}

	return nil
}

// rowScanner общий интерфейс *sql.Row и *sql.Rows
type rowScanner interface {
	Scan(dest ...interface{}) error
}

func (r *Repository) scanReservation(row rowScanner) (*domain.Reservation, error) {
	var res domain.Reservation
	var slotsJSON []byte
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&res.ID,
		&res.CompanyID,
		&res.OfficeName,
		&res.OfficeAddress,
		&res.ReservationDate,
		&res.StartTime,
		&res.EndTime,
		&res.ApplicationDeadline,
		&res.MaxParticipants,
		&res.TotalDuration,
		&res.ServiceDuration,
		&res.BreakDuration,
		&res.SlotCount,
		&slotsJSON,
		&res.SlotsFilled,
		&res.HourlyRate,
		&res.Status,
		&res.Notes,
		&res.Requirements,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	res.TimeSlots = make([]domain.TimeSlot, 0)
	if len(slotsJSON) > 0 {
		if err := json.Unmarshal(slotsJSON, &res.TimeSlots); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrDecodeSlots, err)
		}
	}

	res.CreatedAt = createdAt.Time
	res.UpdatedAt = updatedAt.Time

	return &res, nil
}
