package services

import (
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(mysql.New(mysql.Config{
		Conn:                      sqlDB,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)

	return db, mock
}

// overlapCountPattern pins the availability predicate, including the bound
// order: a reservation conflicts only when it starts before the new
// check-out and ends after the new check-in. Stays are half-open
// [checkIn, checkOut), so equal boundary dates do not conflict.
const overlapCountPattern = "SELECT count\\(\\*\\) FROM `reservations` " +
	"WHERE room_id = \\? AND \\(check_in_date < \\? AND check_out_date > \\?\\)"

func roomColumns() []string {
	return []string{
		"room_id", "hotel_id", "room_type", "base_cost",
		"tax_percentage", "capacity", "status", "created_at", "updated_at",
	}
}

func roomRow(mockRoomID, mockHotelID string) *sqlmock.Rows {
	return sqlmock.NewRows(roomColumns()).
		AddRow(mockRoomID, mockHotelID, "Standard", 120.0, 19.0, 2, true, time.Now().UTC(), nil)
}

func reservationColumns() []string {
	return []string{
		"reservation_id", "room_id", "check_in_date", "check_out_date",
		"total_guests", "total_cost", "email_notification", "created_at",
	}
}

func countRows(n int64) *sqlmock.Rows {
	return sqlmock.NewRows([]string{"count(*)"}).AddRow(n)
}

func date(t *testing.T, value string) time.Time {
	t.Helper()
	d, err := time.Parse("2006-01-02", value)
	require.NoError(t, err)
	return d
}
