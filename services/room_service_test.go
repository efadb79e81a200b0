package services

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddRoomToMissingHotel(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewRoomService(db)

	mock.ExpectQuery("SELECT count\\(\\*\\) FROM `hotels`").
		WillReturnRows(countRows(0))

	_, err := svc.AddToHotel(context.Background(), uuid.NewString(), AddRoomInput{
		RoomType: "Standard",
		BaseCost: 100,
		Capacity: 2,
		Status:   true,
	})
	require.ErrorIs(t, err, ErrHotelNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAddRoomToHotel(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewRoomService(db)
	hotelID := uuid.NewString()

	mock.ExpectQuery("SELECT count\\(\\*\\) FROM `hotels`").
		WillReturnRows(countRows(1))
	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO `rooms`").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	room, err := svc.AddToHotel(context.Background(), hotelID, AddRoomInput{
		RoomType:      "Deluxe",
		BaseCost:      150,
		TaxPercentage: 19,
		Capacity:      3,
		Status:        true,
	})
	require.NoError(t, err)
	assert.Equal(t, hotelID, room.HotelID)
	assert.NotEmpty(t, room.RoomID)
	assert.True(t, room.Status)
	assert.NoError(t, mock.ExpectationsWereMet())
}
