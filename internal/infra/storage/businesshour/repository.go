package businesshour

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

const table = "business_hours"

var columns = []string{"id", "day_of_week", "open_time", "close_time", "is_holiday"}

// Repository репозиторий рабочих часов площадки
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория рабочих часов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetAll возвращает рабочие часы всех дней, отсортированные по дню недели
func (r *Repository) GetAll(ctx context.Context) ([]*domain.BusinessHour, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(columns...).
		From(table).
		OrderBy("day_of_week ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetAll - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetAll - execute query: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	hours := make([]*domain.BusinessHour, 0, 7)
	for rows.Next() {
		bh, err := scanBusinessHour(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: GetAll - scan row: %v", ErrScanRow, err)
		}
		hours = append(hours, bh)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetAll - rows iteration: %w", ErrExecQuery, err)
	}

	return hours, nil
}

// GetByDay возвращает рабочие часы для дня недели
func (r *Repository) GetByDay(ctx context.Context, dayOfWeek int) (*domain.BusinessHour, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(columns...).
		From(table).
		Where(squirrel.Eq{"day_of_week": dayOfWeek}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByDay - build select query: %v", ErrBuildQuery, err)
	}

	bh, err := scanBusinessHour(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrBusinessHourNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByDay - scan row: %w", ErrScanRow, err)
	}

	return bh, nil
}

// Create создает рабочие часы для дня недели.
// Повтор для того же дня возвращает ErrBusinessHourExists
func (r *Repository) Create(ctx context.Context, bh *domain.BusinessHour) (*domain.BusinessHour, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert(table).
		Columns("day_of_week", "open_time", "close_time", "is_holiday").
		Values(bh.DayOfWeek, bh.OpenTime, bh.CloseTime, bh.IsHoliday).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	if err := executor.QueryRowContext(ctx, query, args...).Scan(&bh.ID); err != nil {
		if pgerrors.IsUniqueViolation(err) {
			return nil, ErrBusinessHourExists
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %w", ErrExecQuery, err)
	}

	return bh, nil
}

// UpdateByDay обновляет рабочие часы для дня недели
func (r *Repository) UpdateByDay(ctx context.Context, bh *domain.BusinessHour) (*domain.BusinessHour, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update(table).
		Set("open_time", bh.OpenTime).
		Set("close_time", bh.CloseTime).
		Set("is_holiday", bh.IsHoliday).
		Where(squirrel.Eq{"day_of_week": bh.DayOfWeek}).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: UpdateByDay - build update query: %v", ErrBuildQuery, err)
	}

	err = executor.QueryRowContext(ctx, query, args...).Scan(&bh.ID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrBusinessHourNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: UpdateByDay - execute update: %w", ErrExecQuery, err)
	}

	return bh, nil
}

// Upsert создает или обновляет рабочие часы для дня недели
func (r *Repository) Upsert(ctx context.Context, bh *domain.BusinessHour) (*domain.BusinessHour, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert(table).
		Columns("day_of_week", "open_time", "close_time", "is_holiday").
		Values(bh.DayOfWeek, bh.OpenTime, bh.CloseTime, bh.IsHoliday).
		Suffix("ON CONFLICT (day_of_week) DO UPDATE SET " +
			"open_time = EXCLUDED.open_time, close_time = EXCLUDED.close_time, is_holiday = EXCLUDED.is_holiday " +
			"RETURNING id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Upsert - build insert query: %v", ErrBuildQuery, err)
	}

	if err := executor.QueryRowContext(ctx, query, args...).Scan(&bh.ID); err != nil {
		return nil, fmt.Errorf("%w: Upsert - execute insert: %w", ErrExecQuery, err)
	}

	return bh, nil
}

// DeleteByDay удаляет рабочие часы для дня недели
func (r *Repository) DeleteByDay(ctx context.Context, dayOfWeek int) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete(table).
		Where(squirrel.Eq{"day_of_week": dayOfWeek}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: DeleteByDay - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: DeleteByDay - execute delete: %w", ErrExecQuery, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: DeleteByDay - rows affected: %w", ErrExecQuery, err)
	}
	if affected == 0 {
		return ErrBusinessHourNotFound
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanBusinessHour(row rowScanner) (*domain.BusinessHour, error) {
	var bh domain.BusinessHour
	if err := row.Scan(&bh.ID, &bh.DayOfWeek, &bh.OpenTime, &bh.CloseTime, &bh.IsHoliday); err != nil {
		return nil, err
	}
	return &bh, nil
}
