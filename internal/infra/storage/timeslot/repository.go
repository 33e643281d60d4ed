package timeslot

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
	"github.com/m04kA/SMC-CourtService/pkg/types"
)

const table = "time_slots"

// BulkInsertBatchSize количество строк в одном INSERT при пакетной вставке
const BulkInsertBatchSize = 500

// onConflictSkip пропускает конкретные слоты, ключ которых уже занят
const onConflictSkip = "ON CONFLICT (court_id, slot_date, start_time, end_time) WHERE NOT is_template DO NOTHING"

var columns = []string{
	"id",
	"court_id",
	"is_template",
	"slot_date",
	"name",
	"start_time",
	"end_time",
	"default_price",
	"created_at",
	"updated_at",
}

// Repository репозиторий шаблонов и конкретных слотов (одна таблица, флаг is_template)
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория слотов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetTemplates возвращает все шаблоны, опционально только для одного корта
func (r *Repository) GetTemplates(ctx context.Context, courtID *int64) ([]*domain.Template, error) {
	isTemplate := true
	items, err := r.List(ctx, domain.SlotFilter{IsTemplate: &isTemplate, CourtID: courtID})
	if err != nil {
		return nil, err
	}

	templates := make([]*domain.Template, 0, len(items))
	for _, item := range items {
		templates = append(templates, item.Template)
	}
	return templates, nil
}

// GetSlotsInRange возвращает конкретные слоты с датой в полуинтервале [from, to)
func (r *Repository) GetSlotsInRange(ctx context.Context, from, to types.Date) ([]*domain.Slot, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(columns...).
		From(table).
		Where(squirrel.Eq{"is_template": false}).
		Where(squirrel.GtOrEq{"slot_date": from}).
		Where(squirrel.Lt{"slot_date": to}).
		OrderBy("slot_date ASC", "court_id ASC", "start_time ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetSlotsInRange - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetSlotsInRange - execute query: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	items, err := scanTimeSlots(rows)
	if err != nil {
		return nil, fmt.Errorf("%w: GetSlotsInRange - %w", ErrScanRow, err)
	}

	slots := make([]*domain.Slot, 0, len(items))
	for _, item := range items {
		slots = append(slots, item.Slot)
	}
	return slots, nil
}

// List возвращает шаблоны и/или слоты по фильтру.
// Конкретные слоты сортируются по дате и времени, шаблоны идут первыми
func (r *Repository) List(ctx context.Context, filter domain.SlotFilter) ([]domain.TimeSlot, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	builder := psqlbuilder.Select(columns...).From(table)

	if filter.IsTemplate != nil {
		builder = builder.Where(squirrel.Eq{"is_template": *filter.IsTemplate})
	}
	if filter.CourtID != nil {
		builder = builder.Where(squirrel.Eq{"court_id": *filter.CourtID})
	}
	if filter.Date != nil {
		builder = builder.Where(squirrel.Eq{"slot_date": *filter.Date})
	}

	query, args, err := builder.
		OrderBy("is_template DESC", "slot_date ASC NULLS FIRST", "court_id ASC", "start_time ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	items, err := scanTimeSlots(rows)
	if err != nil {
		return nil, fmt.Errorf("%w: List - %w", ErrScanRow, err)
	}
	return items, nil
}

// GetByID возвращает шаблон или слот по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (domain.TimeSlot, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(columns...).
		From(table).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return domain.TimeSlot{}, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	item, err := scanTimeSlot(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return domain.TimeSlot{}, ErrTimeSlotNotFound
	}
	if err != nil {
		return domain.TimeSlot{}, fmt.Errorf("%w: GetByID - %w", ErrScanRow, err)
	}
	return item, nil
}

// CreateTemplate создает шаблон слота
func (r *Repository) CreateTemplate(ctx context.Context, t *domain.Template) (*domain.Template, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert(table).
		Columns("court_id", "is_template", "name", "start_time", "end_time", "default_price").
		Values(t.CourtID, true, t.Name, t.StartTime, t.EndTime, t.DefaultPrice).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: CreateTemplate - build insert query: %v", ErrBuildQuery, err)
	}

	err = executor.QueryRowContext(ctx, query, args...).Scan(&t.ID, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		if pgerrors.IsForeignKeyViolation(err) {
			return nil, ErrCourtNotFound
		}
		return nil, fmt.Errorf("%w: CreateTemplate - execute insert: %w", ErrExecQuery, err)
	}

	return t, nil
}

// CreateSlot создает один конкретный слот
func (r *Repository) CreateSlot(ctx context.Context, s *domain.Slot) (*domain.Slot, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert(table).
		Columns("court_id", "is_template", "slot_date", "name", "start_time", "end_time", "default_price").
		Values(s.CourtID, false, s.Date, s.Name, s.StartTime, s.EndTime, s.DefaultPrice).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: CreateSlot - build insert query: %v", ErrBuildQuery, err)
	}

	err = executor.QueryRowContext(ctx, query, args...).Scan(&s.ID, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		switch {
		case pgerrors.IsUniqueViolation(err):
			return nil, ErrSlotExists
		case pgerrors.IsForeignKeyViolation(err):
			return nil, ErrCourtNotFound
		}
		return nil, fmt.Errorf("%w: CreateSlot - execute insert: %w", ErrExecQuery, err)
	}

	return s, nil
}

// BulkInsert вставляет конкретные слоты пачками, пропуская уже существующие ключи.
// Возвращает количество реально вставленных строк
func (r *Repository) BulkInsert(ctx context.Context, slots []*domain.Slot) (int64, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	var inserted int64
	for start := 0; start < len(slots); start += BulkInsertBatchSize {
		end := start + BulkInsertBatchSize
		if end > len(slots) {
			end = len(slots)
		}

		builder := psqlbuilder.Insert(table).
			Columns("court_id", "is_template", "slot_date", "name", "start_time", "end_time", "default_price")
		for _, s := range slots[start:end] {
			builder = builder.Values(s.CourtID, false, s.Date, s.Name, s.StartTime, s.EndTime, s.DefaultPrice)
		}

		query, args, err := builder.Suffix(onConflictSkip).ToSql()
		if err != nil {
			return inserted, fmt.Errorf("%w: BulkInsert - build insert query: %v", ErrBuildQuery, err)
		}

		result, err := executor.ExecContext(ctx, query, args...)
		if err != nil {
			return inserted, fmt.Errorf("%w: BulkInsert - execute insert: %w", ErrExecQuery, err)
		}

		affected, err := result.RowsAffected()
		if err != nil {
			return inserted, fmt.Errorf("%w: BulkInsert - rows affected: %w", ErrExecQuery, err)
		}
		inserted += affected
	}

	return inserted, nil
}

// UpdateTemplate обновляет шаблон
func (r *Repository) UpdateTemplate(ctx context.Context, t *domain.Template) (*domain.Template, error) {
	builder := psqlbuilder.Update(table).
		Set("court_id", t.CourtID).
		Set("name", t.Name).
		Set("start_time", t.StartTime).
		Set("end_time", t.EndTime).
		Set("default_price", t.DefaultPrice).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": t.ID, "is_template": true})

	if err := r.update(ctx, "UpdateTemplate", builder, &t.CreatedAt, &t.UpdatedAt); err != nil {
		return nil, err
	}
	return t, nil
}

// UpdateSlot обновляет конкретный слот
func (r *Repository) UpdateSlot(ctx context.Context, s *domain.Slot) (*domain.Slot, error) {
	builder := psqlbuilder.Update(table).
		Set("court_id", s.CourtID).
		Set("slot_date", s.Date).
		Set("name", s.Name).
		Set("start_time", s.StartTime).
		Set("end_time", s.EndTime).
		Set("default_price", s.DefaultPrice).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": s.ID, "is_template": false})

	if err := r.update(ctx, "UpdateSlot", builder, &s.CreatedAt, &s.UpdatedAt); err != nil {
		return nil, err
	}
	return s, nil
}

func (r *Repository) update(ctx context.Context, op string, builder squirrel.UpdateBuilder, createdAt, updatedAt interface{}) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := builder.Suffix("RETURNING created_at, updated_at").ToSql()
	if err != nil {
		return fmt.Errorf("%w: %s - build update query: %v", ErrBuildQuery, op, err)
	}

	err = executor.QueryRowContext(ctx, query, args...).Scan(createdAt, updatedAt)
	switch {
	case err == nil:
		return nil
	case errors.Is(err, sql.ErrNoRows):
		return ErrTimeSlotNotFound
	case pgerrors.IsUniqueViolation(err):
		return ErrSlotExists
	case pgerrors.IsForeignKeyViolation(err):
		return ErrCourtNotFound
	default:
		return fmt.Errorf("%w: %s - execute update: %w", ErrExecQuery, op, err)
	}
}

// Delete удаляет шаблон или слот по ID
func (r *Repository) Delete(ctx context.Context, id int64) error {
	affected, err := r.delete(ctx, "Delete", squirrel.Eq{"id": id})
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrTimeSlotNotFound
	}
	return nil
}

// DeleteNonTemplates удаляет все конкретные слоты, шаблоны остаются
func (r *Repository) DeleteNonTemplates(ctx context.Context) (int64, error) {
	return r.delete(ctx, "DeleteNonTemplates", squirrel.Eq{"is_template": false})
}

// DeleteOlderThan удаляет конкретные слоты с датой строго раньше threshold
func (r *Repository) DeleteOlderThan(ctx context.Context, threshold types.Date) (int64, error) {
	return r.delete(ctx, "DeleteOlderThan", squirrel.And{
		squirrel.Eq{"is_template": false},
		squirrel.Lt{"slot_date": threshold},
	})
}

func (r *Repository) delete(ctx context.Context, op string, where squirrel.Sqlizer) (int64, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete(table).Where(where).ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: %s - build delete query: %v", ErrBuildQuery, op, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("%w: %s - execute delete: %w", ErrExecQuery, op, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: %s - rows affected: %w", ErrExecQuery, op, err)
	}
	return affected, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

// scanTimeSlot читает строку time_slots в шаблон или слот в зависимости от is_template
func scanTimeSlot(row rowScanner) (domain.TimeSlot, error) {
	var (
		id, courtID        int64
		isTemplate         bool
		date               types.Date
		name               string
		start, end         types.TimeString
		price              float64
		createdAt, updated sql.NullTime
	)

	if err := row.Scan(&id, &courtID, &isTemplate, &date, &name, &start, &end, &price, &createdAt, &updated); err != nil {
		return domain.TimeSlot{}, err
	}

	if isTemplate {
		return domain.TimeSlot{Template: &domain.Template{
			ID:           id,
			CourtID:      courtID,
			Name:         name,
			StartTime:    start,
			EndTime:      end,
			DefaultPrice: price,
			CreatedAt:    createdAt.Time,
			UpdatedAt:    updated.Time,
		}}, nil
	}

	return domain.TimeSlot{Slot: &domain.Slot{
		ID:           id,
		CourtID:      courtID,
		Date:         date,
		Name:         name,
		StartTime:    start,
		EndTime:      end,
		DefaultPrice: price,
		CreatedAt:    createdAt.Time,
		UpdatedAt:    updated.Time,
	}}, nil
}

func scanTimeSlots(rows *sql.Rows) ([]domain.TimeSlot, error) {
	items := make([]domain.TimeSlot, 0)
	for rows.Next() {
		item, err := scanTimeSlot(rows)
		if err != nil {
			return nil, fmt.Errorf("scan time slot: %w", err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration: %w", err)
	}
	return items, nil
}
