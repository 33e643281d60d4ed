package reservation

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-CourtService/internal/domain"
	"github.com/m04kA/SMC-CourtService/pkg/dbmetrics"
	"github.com/m04kA/SMC-CourtService/pkg/pgerrors"
	"github.com/m04kA/SMC-CourtService/pkg/psqlbuilder"
)

const table = "reservations"

var columns = []string{
	"id",
	"user_id",
	"court_id",
	"reservation_date",
	"start_time",
	"end_time",
	"status",
	"price",
	"people_num",
	"phone",
	"password",
	"created_at",
	"updated_at",
}

// Repository репозиторий бронирований кортов
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает бронирование.
// Если в контексте передана транзакция, использует её.
// Нарушение уникальности активного слота возвращается как ErrSlotAlreadyBooked
func (r *Repository) Create(ctx context.Context, res *domain.Reservation) (*domain.Reservation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert(table).
		Columns(
			"user_id",
			"court_id",
			"reservation_date",
			"start_time",
			"end_time",
			"status",
			"price",
			"people_num",
			"phone",
			"password",
		).
		Values(
			res.UserID,
			res.CourtID,
			res.Date,
			res.StartTime,
			res.EndTime,
			res.Status,
			res.Price,
			res.PeopleNum,
			res.Phone,
			res.Password,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&res.ID, &createdAt, &updatedAt)
	if err != nil {
		return nil, mapWriteError("Create - execute insert", err)
	}

	res.CreatedAt = createdAt.Time
	res.UpdatedAt = updatedAt.Time

	return res, nil
}

// GetByID получает бронирование по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Reservation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	builder := psqlbuilder.Select(columns...).
		From(table).
		Where(squirrel.Eq{"id": id})

	// В транзакции блокируем строку до конца изменения статуса
	if dbmetrics.IsInTransaction(ctx) {
		builder = builder.Suffix("FOR UPDATE")
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	res, err := scanReservation(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrReservationNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan reservation: %w", ErrScanRow, err)
	}

	return res, nil
}

// FindActiveBySlot ищет бронирование на (корт, дата, начало) со статусом не cancelled.
// Возвращает nil, nil если слот свободен
func (r *Repository) FindActiveBySlot(ctx context.Context, key domain.ReservationKey) (*domain.Reservation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	builder := psqlbuilder.Select(columns...).
		From(table).
		Where(squirrel.Eq{
			"court_id":         key.CourtID,
			"reservation_date": key.Date,
			"start_time":       key.StartTime,
		}).
		Where(squirrel.NotEq{"status": domain.ReservationStatusCancelled}).
		Limit(1)

	if dbmetrics.IsInTransaction(ctx) {
		builder = builder.Suffix("FOR UPDATE")
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: FindActiveBySlot - build select query: %v", ErrBuildQuery, err)
	}

	res, err := scanReservation(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: FindActiveBySlot - scan reservation: %w", ErrScanRow, err)
	}

	return res, nil
}

// List получает бронирования по фильтру, новые даты первыми
func (r *Repository) List(ctx context.Context, filter domain.ReservationFilter) ([]*domain.Reservation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	builder := psqlbuilder.Select(columns...).From(table)

	if filter.UserID != nil {
		builder = builder.Where(squirrel.Eq{"user_id": *filter.UserID})
	}
	if filter.CourtID != nil {
		builder = builder.Where(squirrel.Eq{"court_id": *filter.CourtID})
	}
	if filter.Date != nil {
		builder = builder.Where(squirrel.Eq{"reservation_date": *filter.Date})
	}
	if filter.Status != nil {
		builder = builder.Where(squirrel.Eq{"status": *filter.Status})
	}

	// Для конкретной даты удобнее порядок по времени начала
	if filter.Date != nil {
		builder = builder.OrderBy("start_time ASC", "court_id ASC")
	} else {
		builder = builder.OrderBy("reservation_date DESC", "start_time DESC")
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	reservations := make([]*domain.Reservation, 0)
	for rows.Next() {
		res, err := scanReservation(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: List - scan reservation: %v", ErrScanRow, err)
		}
		reservations = append(reservations, res)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows iteration: %w", ErrExecQuery, err)
	}

	return reservations, nil
}

// GetByUserID получает историю бронирований пользователя
func (r *Repository) GetByUserID(ctx context.Context, userID int64) ([]*domain.Reservation, error) {
	return r.List(ctx, domain.ReservationFilter{UserID: &userID})
}

// UpdateStatus обновляет статус бронирования и, если передан, пароль
func (r *Repository) UpdateStatus(ctx context.Context, id int64, status domain.ReservationStatus, password *string) error {
	builder := psqlbuilder.Update(table).
		Set("status", status).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id})

	if password != nil {
		builder = builder.Set("password", *password)
	}

	return r.exec(ctx, "UpdateStatus", builder)
}

// Update сохраняет изменяемые поля бронирования (дата, время, цена, телефон, количество человек)
func (r *Repository) Update(ctx context.Context, res *domain.Reservation) error {
	builder := psqlbuilder.Update(table).
		Set("reservation_date", res.Date).
		Set("start_time", res.StartTime).
		Set("end_time", res.EndTime).
		Set("price", res.Price).
		Set("people_num", res.PeopleNum).
		Set("phone", res.Phone).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": res.ID})

	return r.exec(ctx, "Update", builder)
}

func (r *Repository) exec(ctx context.Context, op string, builder squirrel.UpdateBuilder) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := builder.ToSql()
	if err != nil {
		return fmt.Errorf("%w: %s - build update query: %v", ErrBuildQuery, op, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return mapWriteError(op+" - execute update", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %s - rows affected: %w", ErrExecQuery, op, err)
	}
	if affected == 0 {
		return ErrReservationNotFound
	}

	return nil
}

// Delete удаляет бронирование
func (r *Repository) Delete(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete(table).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %w", ErrExecQuery, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - rows affected: %w", ErrExecQuery, err)
	}
	if affected == 0 {
		return ErrReservationNotFound
	}

	return nil
}

// mapWriteError переводит ошибки ограничений PostgreSQL в ошибки репозитория.
// Остальные ошибки оборачиваются с сохранением исходной (нужно для повтора сериализуемых транзакций)
func mapWriteError(step string, err error) error {
	switch {
	case pgerrors.IsUniqueViolation(err):
		return ErrSlotAlreadyBooked
	case pgerrors.IsForeignKeyViolation(err):
		return ErrReferenceNotFound
	default:
		return fmt.Errorf("%w: %s: %w", ErrExecQuery, step, err)
	}
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanReservation(row rowScanner) (*domain.Reservation, error) {
	var res domain.Reservation
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&res.ID,
		&res.UserID,
		&res.CourtID,
		&res.Date,
		&res.StartTime,
		&res.EndTime,
		&res.Status,
		&res.Price,
		&res.PeopleNum,
		&res.Phone,
		&res.Password,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	res.CreatedAt = createdAt.Time
	res.UpdatedAt = updatedAt.Time

	return &res, nil
}
