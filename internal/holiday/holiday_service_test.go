package holiday_test

import (
	"path/filepath"
	"testing"
	"time"

	"go-leave/internal/holiday"
	"go-leave/internal/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var anchor = time.Date(2026, time.May, 4, 9, 0, 0, 0, time.UTC)

func setupHolidayTest(t *testing.T) (*store.Store, holiday.Service) {
	t.Helper()
	dir := t.TempDir()
	st := store.New(filepath.Join(dir, "employees.json"), filepath.Join(dir, "system.log"))
	st.Data = &store.Document{
		Employees: map[string]*store.Employee{},
		Holidays:  []string{"2026-12-25"},
	}
	return st, holiday.NewServiceWithClock(st, func() time.Time { return anchor })
}

func TestHolidayService_IsHoliday(t *testing.T) {
	_, svc := setupHolidayTest(t)

	assert.True(t, svc.IsHoliday("2026-12-25"))
	assert.False(t, svc.IsHoliday("2026-12-26"))
}

func TestHolidayService_Add(t *testing.T) {
	t.Run("success persists and replies", func(t *testing.T) {
		st, svc := setupHolidayTest(t)

		reply, err := svc.Add("2026-06-01")

		require.NoError(t, err)
		assert.Equal(t, "Holiday 2026-06-01 added.", reply)
		assert.Equal(t, []string{"2026-12-25", "2026-06-01"}, st.Data.Holidays)
		assert.True(t, svc.IsHoliday("2026-06-01"))
	})

	t.Run("today accepted", func(t *testing.T) {
		_, svc := setupHolidayTest(t)

		reply, err := svc.Add("2026-05-04")

		require.NoError(t, err)
		assert.Equal(t, "Holiday 2026-05-04 added.", reply)
	})

	t.Run("malformed date rejected", func(t *testing.T) {
		st, svc := setupHolidayTest(t)

		reply, err := svc.Add("25-12-2026")

		require.NoError(t, err)
		assert.Equal(t, "Invalid date format. Use YYYY-MM-DD.", reply)
		assert.Len(t, st.Data.Holidays, 1)
	})

	t.Run("past date rejected", func(t *testing.T) {
		st, svc := setupHolidayTest(t)

		reply, err := svc.Add("2026-05-03")

		require.NoError(t, err)
		assert.Equal(t, "Invalid date format. Use YYYY-MM-DD.", reply)
		assert.Len(t, st.Data.Holidays, 1)
	})

	t.Run("duplicate rejected", func(t *testing.T) {
		st, svc := setupHolidayTest(t)

		reply, err := svc.Add("2026-12-25")

		require.NoError(t, err)
		assert.Equal(t, "Holiday already exists.", reply)
		assert.Len(t, st.Data.Holidays, 1)
	})
}

func TestHolidayService_Dates(t *testing.T) {
	st, svc := setupHolidayTest(t)

	dates := svc.Dates()
	dates[0] = "mutated"

	assert.Equal(t, []string{"2026-12-25"}, st.Data.Holidays)
}
