package types

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTimeStringFromString(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    TimeString
		wantErr bool
	}{
		{name: "normal", input: "09:30", want: "09:30"},
		{name: "single digit hour", input: "9:05", want: "09:05"},
		{name: "last minute", input: "23:59", want: "23:59"},
		{name: "midnight", input: "00:00", want: "00:00"},
		{name: "hour 24", input: "24:00", wantErr: true},
		{name: "minute 60", input: "10:60", wantErr: true},
		{name: "no colon", input: "1000", wantErr: true},
		{name: "empty", input: "", wantErr: true},
		{name: "seconds", input: "10:00:00", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NewTimeStringFromString(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidTimeString)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTimeString_Minutes(t *testing.T) {
	m, err := TimeString("21:30").Minutes()
	require.NoError(t, err)
	assert.Equal(t, 21*60+30, m)

	_, err = TimeString("bad").Minutes()
	assert.Error(t, err)
}

func TestTimeString_AddMinutes(t *testing.T) {
	got, err := TimeString("09:45").AddMinutes(30)
	require.NoError(t, err)
	assert.Equal(t, TimeString("10:15"), got)

	_, err = TimeString("23:30").AddMinutes(30)
	assert.ErrorIs(t, err, ErrTimeOutOfRange)
}

func TestTimeString_Compare(t *testing.T) {
	assert.True(t, TimeString("9:00").IsBefore("10:00"))
	assert.True(t, TimeString("22:00").IsAfter("21:59"))
	assert.Equal(t, 0, TimeString("9:00").Compare("09:00"))
}

func TestTimeString_Scan(t *testing.T) {
	var ts TimeString

	require.NoError(t, ts.Scan("08:00"))
	assert.Equal(t, TimeString("08:00"), ts)

	require.NoError(t, ts.Scan([]byte("18:30:00")))
	assert.Equal(t, TimeString("18:30"), ts)

	assert.Error(t, ts.Scan(42))
}

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2025-06-02")
	require.NoError(t, err)
	assert.Equal(t, Date{Year: 2025, Month: time.June, Day: 2}, d)

	d, err = ParseDate("2025-06-02T16:00:00.000Z")
	require.NoError(t, err)
	assert.Equal(t, "2025-06-02", d.String())

	_, err = ParseDate("02/06/2025")
	assert.ErrorIs(t, err, ErrInvalidDate)
}

func TestDate_Arithmetic(t *testing.T) {
	d := NewDate(2025, time.February, 27)

	assert.Equal(t, "2025-03-01", d.AddDays(2).String())
	assert.Equal(t, "2024-11-27", d.AddMonths(-3).String())
	assert.Equal(t, time.Thursday, d.Weekday())
	assert.True(t, d.Before(d.AddDays(1)))
	assert.True(t, d.AddDays(1).After(d))
	assert.True(t, d.Equal(NewDate(2025, time.February, 27)))
}

func TestDate_WeekdayIgnoresTimezone(t *testing.T) {
	// 2025-06-02 is a Monday regardless of the server timezone
	d := NewDate(2025, time.June, 2)
	assert.Equal(t, time.Monday, d.Weekday())
}

func TestToday_UsesLocation(t *testing.T) {
	taipei := time.FixedZone("UTC+8", 8*60*60)
	now := time.Date(2025, time.June, 1, 20, 0, 0, 0, time.UTC)

	assert.Equal(t, "2025-06-02", Today(now, taipei).String())
	assert.Equal(t, "2025-06-01", Today(now, time.UTC).String())
}

func TestDate_JSON(t *testing.T) {
	type payload struct {
		Date Date `json:"date"`
	}

	data, err := json.Marshal(payload{Date: NewDate(2025, time.June, 2)})
	require.NoError(t, err)
	assert.JSONEq(t, `{"date":"2025-06-02"}`, string(data))

	var p payload
	require.NoError(t, json.Unmarshal([]byte(`{"date":"2025-06-09"}`), &p))
	assert.Equal(t, NewDate(2025, time.June, 9), p.Date)

	require.NoError(t, json.Unmarshal([]byte(`{"date":null}`), &p))
	assert.True(t, p.Date.IsZero())
}

func TestDate_Scan(t *testing.T) {
	var d Date

	require.NoError(t, d.Scan(time.Date(2025, time.June, 2, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, "2025-06-02", d.String())

	require.NoError(t, d.Scan(nil))
	assert.True(t, d.IsZero())
}
