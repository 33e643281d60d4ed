package timeslot

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-CourtService/internal/domain"
	"github.com/m04kA/SMC-CourtService/pkg/dbmetrics"
	"github.com/m04kA/SMC-CourtService/pkg/types"
)

type execCall struct {
	query string
	args  []interface{}
}

// recordingExecutor записывает Exec запросы, Query в этих тестах не используются
type recordingExecutor struct {
	dbmetrics.DBExecutor
	calls    []execCall
	affected []int64
	err      error
}

type rowsAffected int64

func (r rowsAffected) LastInsertId() (int64, error) { return 0, nil }
func (r rowsAffected) RowsAffected() (int64, error) { return int64(r), nil }

func (e *recordingExecutor) ExecContext(_ context.Context, query string, args ...interface{}) (sql.Result, error) {
	e.calls = append(e.calls, execCall{query: query, args: args})
	if e.err != nil {
		return nil, e.err
	}
	var n int64
	if i := len(e.calls) - 1; i < len(e.affected) {
		n = e.affected[i]
	}
	return rowsAffected(n), nil
}

func slots(n int) []*domain.Slot {
	result := make([]*domain.Slot, n)
	for i := range result {
		result[i] = &domain.Slot{
			CourtID:   1,
			Date:      types.NewDate(2025, time.June, 2).AddDays(i),
			StartTime: "09:00",
			EndTime:   "10:00",
		}
	}
	return result
}

func TestBulkInsert_BatchesAndSkipsConflicts(t *testing.T) {
	db := &recordingExecutor{affected: []int64{BulkInsertBatchSize - 2, 1}}
	repo := NewRepository(db)

	inserted, err := repo.BulkInsert(context.Background(), slots(BulkInsertBatchSize+1))

	require.NoError(t, err)
	assert.Equal(t, int64(BulkInsertBatchSize-1), inserted)
	require.Len(t, db.calls, 2)
	assert.Len(t, db.calls[0].args, BulkInsertBatchSize*7)
	assert.Len(t, db.calls[1].args, 7)
	for _, call := range db.calls {
		assert.True(t, strings.HasPrefix(call.query, "INSERT INTO time_slots"))
		assert.True(t, strings.HasSuffix(call.query, onConflictSkip))
	}
}

func TestBulkInsert_Empty(t *testing.T) {
	db := &recordingExecutor{}

	inserted, err := NewRepository(db).BulkInsert(context.Background(), nil)

	require.NoError(t, err)
	assert.Zero(t, inserted)
	assert.Empty(t, db.calls)
}

func TestBulkInsert_UsesTransactionFromContext(t *testing.T) {
	db := &recordingExecutor{}
	tx := &recordingTx{recordingExecutor: recordingExecutor{affected: []int64{1}}}
	ctx := dbmetrics.WithTx(context.Background(), tx)

	inserted, err := NewRepository(db).BulkInsert(ctx, slots(1))

	require.NoError(t, err)
	assert.Equal(t, int64(1), inserted)
	assert.Empty(t, db.calls)
	assert.Len(t, tx.calls, 1)
}

type recordingTx struct {
	recordingExecutor
}

func (t *recordingTx) Commit() error   { return nil }
func (t *recordingTx) Rollback() error { return nil }

func TestDeleteOlderThan_KeepsTemplates(t *testing.T) {
	db := &recordingExecutor{affected: []int64{12}}
	threshold := types.NewDate(2025, time.March, 15)

	deleted, err := NewRepository(db).DeleteOlderThan(context.Background(), threshold)

	require.NoError(t, err)
	assert.Equal(t, int64(12), deleted)
	require.Len(t, db.calls, 1)
	assert.Equal(t, "DELETE FROM time_slots WHERE (is_template = $1 AND slot_date < $2)", db.calls[0].query)
	// squirrel разворачивает driver.Valuer, поэтому дата уходит строкой
	assert.Equal(t, []interface{}{false, "2025-03-15"}, db.calls[0].args)
}

func TestDelete_NotFound(t *testing.T) {
	db := &recordingExecutor{affected: []int64{0}}

	err := NewRepository(db).Delete(context.Background(), 99)

	assert.ErrorIs(t, err, ErrTimeSlotNotFound)
}

func TestDeleteNonTemplates_ExecError(t *testing.T) {
	db := &recordingExecutor{err: errors.New("connection reset")}

	_, err := NewRepository(db).DeleteNonTemplates(context.Background())

	assert.ErrorIs(t, err, ErrExecQuery)
}
