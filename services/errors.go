package services

import (
	"errors"

	"github.com/go-sql-driver/mysql"
)

var (
	ErrHotelNotFound       = errors.New("hotel not found")
	ErrRoomNotFound        = errors.New("room not found")
	ErrReservationNotFound = errors.New("reservation not found")
	ErrNoGuestsFound       = errors.New("no guests found for reservation")

	// ErrInvalidRoomReference: the room does not exist, does not belong to
	// the claimed hotel, or is inactive at booking time.
	ErrInvalidRoomReference = errors.New("the specified room does not exist or does not belong to the specified hotel")

	// ErrRoomUnavailable: the requested dates overlap an existing
	// reservation for the room. Retrying with the same input will fail again.
	ErrRoomUnavailable = errors.New("the room is not available for the selected dates")
)

const mysqlErrForeignKeyViolation = 1452

// isForeignKeyViolation reports whether err is a MySQL "cannot add or update
// a child row" error, which surfaces when an insert races a referenced row.
func isForeignKeyViolation(err error) bool {
	var myErr *mysql.MySQLError
	return errors.As(err, &myErr) && myErr.Number == mysqlErrForeignKeyViolation
}
