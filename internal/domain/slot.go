package domain

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-CourtService/pkg/types"
)

// Template is a recurring slot definition that is not bound to a calendar date.
// Persisted in time_slots with is_template = true
type Template struct {
	ID           int64
	CourtID      int64
	Name         string
	StartTime    types.TimeString
	EndTime      types.TimeString
	DefaultPrice float64
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Instantiate builds the concrete slot of this template for the given date
func (t *Template) Instantiate(date types.Date) *Slot {
	return &Slot{
		CourtID:      t.CourtID,
		Date:         date,
		Name:         t.Name,
		StartTime:    t.StartTime,
		EndTime:      t.EndTime,
		DefaultPrice: t.DefaultPrice,
	}
}

// Slot is a concrete, bookable time slot on a specific date.
// Persisted in time_slots with is_template = false
type Slot struct {
	ID           int64
	CourtID      int64
	Date         types.Date
	Name         string
	StartTime    types.TimeString
	EndTime      types.TimeString
	DefaultPrice float64
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Key returns the uniqueness key of a concrete slot
func (s *Slot) Key() SlotKey {
	return NewSlotKey(s.CourtID, s.Date, s.StartTime, s.EndTime)
}

// SlotKey identifies a concrete slot: court|date|start|end
type SlotKey string

// NewSlotKey builds a slot key with the date normalized to YYYY-MM-DD
func NewSlotKey(courtID int64, date types.Date, start, end types.TimeString) SlotKey {
	return SlotKey(fmt.Sprintf("%d|%s|%s|%s", courtID, date.String(), start, end))
}

// SlotFilter filter for listing slots and templates
type SlotFilter struct {
	IsTemplate *bool       // nil = both kinds
	CourtID    *int64      // optional
	Date       *types.Date // only concrete slots have a date
}

// TimeSlot is the storage view of a time_slots row: either a template or a concrete slot.
// Exactly one of Template and Slot is set
type TimeSlot struct {
	Template *Template
	Slot     *Slot
}

// IsTemplate reports whether the row is a template
func (ts TimeSlot) IsTemplate() bool {
	return ts.Template != nil
}
