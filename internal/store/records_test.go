package store

import (
	"regexp"
	"sync"
	"testing"

	"bookkeeping_system/internal/db"
	"bookkeeping_system/internal/domain"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
)

func sampleRecord(date string) domain.Record {
	return domain.Record{
		Date:        date,
		Time:        "10:30",
		Name:        "Office supplies",
		Type:        "stationery",
		Detail:      "pens",
		PaymentType: "cash",
		Amount:      12.5,
		CreatedBy:   1,
	}
}

func TestRecordStore_NextSlNo(t *testing.T) {
	conn := newTestDB(t)
	expenses := NewRecordStore(conn, domain.KindExpense)
	gains := NewRecordStore(conn, domain.KindGain)

	next, err := expenses.NextSlNo(ctx)
	require.NoError(t, err)
	assert.Equal(t, "EXP001", next)

	next, err = gains.NextSlNo(ctx)
	require.NoError(t, err)
	assert.Equal(t, "GN001", next)

	for _, code := range []string{"EXP001", "EXP002", "EXP005"} {
		rec := sampleRecord("2024-01-01")
		rec.SlNo = code
		_, err := expenses.Create(ctx, rec)
		require.NoError(t, err)
	}
	next, err = expenses.NextSlNo(ctx)
	require.NoError(t, err)
	assert.Equal(t, "EXP006", next)

	// Gains are counted independently
	next, err = gains.NextSlNo(ctx)
	require.NoError(t, err)
	assert.Equal(t, "GN001", next)
}

func TestRecordStore_CreateAllocatesSlNo(t *testing.T) {
	gains := NewRecordStore(newTestDB(t), domain.KindGain)

	first, err := gains.Create(ctx, sampleRecord("2024-02-01"))
	require.NoError(t, err)
	assert.Equal(t, "GN001", first.SlNo)
	assert.NotZero(t, first.ID)

	second, err := gains.Create(ctx, sampleRecord("2024-02-02"))
	require.NoError(t, err)
	assert.Equal(t, "GN002", second.SlNo)

	// Deleting the highest code frees it, gaps below are never compacted
	removed, err := gains.Delete(ctx, first.ID)
	require.NoError(t, err)
	require.True(t, removed)
	third, err := gains.Create(ctx, sampleRecord("2024-02-03"))
	require.NoError(t, err)
	assert.Equal(t, "GN003", third.SlNo)
}

func TestRecordStore_DuplicateSlNo(t *testing.T) {
	expenses := NewRecordStore(newTestDB(t), domain.KindExpense)

	rec := sampleRecord("2024-01-01")
	rec.SlNo = "EXP001"
	_, err := expenses.Create(ctx, rec)
	require.NoError(t, err)

	_, err = expenses.Create(ctx, rec)
	require.ErrorIs(t, err, domain.ErrConflict)

	list, err := expenses.List(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestRecordStore_ConcurrentCreateUnique(t *testing.T) {
	expenses := NewRecordStore(newTestDB(t), domain.KindExpense)

	const writers = 10
	var wg sync.WaitGroup
	for i := 0; i < writers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = expenses.Create(ctx, sampleRecord("2024-03-01"))
		}()
	}
	wg.Wait()

	list, err := expenses.List(ctx)
	require.NoError(t, err)
	seen := map[string]bool{}
	for _, rec := range list {
		assert.False(t, seen[rec.SlNo], "duplicate %s", rec.SlNo)
		seen[rec.SlNo] = true
	}
}

func TestRecordStore_ListOrderedByDateDesc(t *testing.T) {
	expenses := NewRecordStore(newTestDB(t), domain.KindExpense)
	for _, date := range []string{"2024-01-15", "2024-03-01", "2023-12-31"} {
		_, err := expenses.Create(ctx, sampleRecord(date))
		require.NoError(t, err)
	}

	list, err := expenses.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, "2024-03-01", list[0].Date)
	assert.Equal(t, "2024-01-15", list[1].Date)
	assert.Equal(t, "2023-12-31", list[2].Date)
}

func TestRecordStore_ListEmpty(t *testing.T) {
	list, err := NewRecordStore(newTestDB(t), domain.KindGain).List(ctx)
	require.NoError(t, err)
	assert.NotNil(t, list)
	assert.Empty(t, list)
}

func TestRecordStore_GetByID(t *testing.T) {
	expenses := NewRecordStore(newTestDB(t), domain.KindExpense)
	created, err := expenses.Create(ctx, sampleRecord("2024-01-01"))
	require.NoError(t, err)

	got, err := expenses.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, got)

	_, err = expenses.GetByID(ctx, created.ID+100)
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestRecordStore_Update(t *testing.T) {
	expenses := NewRecordStore(newTestDB(t), domain.KindExpense)
	created, err := expenses.Create(ctx, sampleRecord("2024-01-01"))
	require.NoError(t, err)

	t.Run("empty patch is a no-op", func(t *testing.T) {
		got, err := expenses.Update(ctx, created.ID, domain.RecordPatch{})
		require.NoError(t, err)
		assert.Equal(t, created, got)
	})

	t.Run("partial patch keeps other fields", func(t *testing.T) {
		amount := 99.0
		detail := ""
		got, err := expenses.Update(ctx, created.ID, domain.RecordPatch{Amount: &amount, Detail: &detail})
		require.NoError(t, err)
		assert.Equal(t, 99.0, got.Amount)
		assert.Equal(t, "", got.Detail)
		assert.Equal(t, created.Name, got.Name)
		assert.Equal(t, created.SlNo, got.SlNo)
		assert.Equal(t, created.CreatedBy, got.CreatedBy)
	})

	t.Run("missing id is not created", func(t *testing.T) {
		name := "ghost"
		_, err := expenses.Update(ctx, created.ID+100, domain.RecordPatch{Name: &name})
		require.ErrorIs(t, err, domain.ErrNotFound)

		list, err := expenses.List(ctx)
		require.NoError(t, err)
		assert.Len(t, list, 1)
	})
}

func TestRecordStore_Delete(t *testing.T) {
	expenses := NewRecordStore(newTestDB(t), domain.KindExpense)
	keep, err := expenses.Create(ctx, sampleRecord("2024-01-01"))
	require.NoError(t, err)
	drop, err := expenses.Create(ctx, sampleRecord("2024-01-02"))
	require.NoError(t, err)

	removed, err := expenses.Delete(ctx, drop.ID+100)
	require.NoError(t, err)
	assert.False(t, removed)
	list, err := expenses.List(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 2)

	removed, err = expenses.Delete(ctx, drop.ID)
	require.NoError(t, err)
	assert.True(t, removed)
	list, err = expenses.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, keep.ID, list[0].ID)
}

func TestRecordStore_DriverFailure(t *testing.T) {
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer sqlDB.Close()

	conn, err := db.OpenDialector(mysql.New(mysql.Config{Conn: sqlDB, SkipInitializeWithVersion: true}), true)
	require.NoError(t, err)
	expenses := NewRecordStore(conn, domain.KindExpense)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT * FROM `expenses`")).WillReturnError(assert.AnError)
	_, err = expenses.List(ctx)
	require.ErrorIs(t, err, assert.AnError)
	assert.NotErrorIs(t, err, domain.ErrNotFound)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT `sl_no` FROM `expenses`")).WillReturnError(assert.AnError)
	_, err = expenses.NextSlNo(ctx)
	require.ErrorIs(t, err, assert.AnError)

	require.NoError(t, mock.ExpectationsWereMet())
}
