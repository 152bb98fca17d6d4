package store

import (
	"context"
	"database/sql/driver"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"hotel-reservation-backend/internal/model"
)

// A helper function to create a mock database connection.
func newTestDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	gormDB, err := gorm.Open(postgres.New(postgres.Config{
		Conn: db,
	}), &gorm.Config{})
	require.NoError(t, err)

	return gormDB, mock
}

func TestGormStore_MarkRoomStatus(t *testing.T) {
	testCases := []struct {
		name         string
		rowsAffected int64
		execErr      error
		expectedErr  error
	}{
		{name: "version matches, status is swapped", rowsAffected: 1},
		{name: "version moved on, swap is refused", rowsAffected: 0, expectedErr: ErrVersionMismatch},
		{name: "storage failure propagates", execErr: errors.New("connection reset")},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			gormDB, mock := newTestDB(t)
			store := NewGormStore(gormDB)

			mock.ExpectBegin()
			exec := mock.ExpectExec(regexp.QuoteMeta(`UPDATE "rooms" SET`)).
				WithArgs(model.RoomStatusBooked, 1, Any{}, int64(7), int64(3))
			if tc.execErr != nil {
				exec.WillReturnError(tc.execErr)
				mock.ExpectRollback()
			} else {
				exec.WillReturnResult(sqlmock.NewResult(0, tc.rowsAffected))
				mock.ExpectCommit()
			}

			err := store.MarkRoomStatus(context.Background(), 7, 3, model.RoomStatusBooked)
			switch {
			case tc.execErr != nil:
				assert.ErrorIs(t, err, tc.execErr)
			case tc.expectedErr != nil:
				assert.ErrorIs(t, err, tc.expectedErr)
			default:
				assert.NoError(t, err)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestGormStore_FindCategoryByKey_NotFound(t *testing.T) {
	gormDB, mock := newTestDB(t)
	store := NewGormStore(gormDB)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "room_categories" WHERE lookup_key = $1`)).
		WithArgs("deluxe", 1).
		WillReturnRows(sqlmock.NewRows([]string{"id", "lookup_key", "name", "base_price"}))

	_, err := store.FindCategoryByKey(context.Background(), "deluxe")
	assert.ErrorIs(t, err, ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGormStore_GetRoom_StorageFailure(t *testing.T) {
	gormDB, mock := newTestDB(t)
	store := NewGormStore(gormDB)
	dbErr := errors.New("disk full")

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "rooms"`)).WillReturnError(dbErr)

	_, err := store.GetRoom(context.Background(), 1, false)
	assert.ErrorIs(t, err, dbErr)
	assert.NotErrorIs(t, err, ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGormStore_DeleteBookings(t *testing.T) {
	gormDB, mock := newTestDB(t)
	store := NewGormStore(gormDB)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM "bookings" WHERE room_id = $1`)).
		WithArgs(int64(7)).
		WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectCommit()

	n, err := store.DeleteBookings(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGormStore_Atomic_RollsBackOnError(t *testing.T) {
	gormDB, mock := newTestDB(t)
	store := NewGormStore(gormDB)
	failure := errors.New("abort")

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM "bookings" WHERE room_id = $1`)).
		WithArgs(int64(9)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectRollback()

	err := store.Atomic(context.Background(), func(tx Store) error {
		if _, err := tx.DeleteBookings(context.Background(), 9); err != nil {
			return err
		}
		return failure
	})
	assert.ErrorIs(t, err, failure)
	assert.NoError(t, mock.ExpectationsWereMet())
}

// Any is a helper for sqlmock to match any argument.
type Any struct{}

// Match satisfies the sqlmock.Argument interface
func (a Any) Match(v driver.Value) bool {
	return true
}
