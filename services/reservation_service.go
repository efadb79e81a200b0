package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"hotels-api/models"
)

// bookingTimeout bounds the reservation transaction; a timed-out booking
// surfaces as a persistence error, never as success.
const bookingTimeout = 10 * time.Second

type ReservationService struct {
	DB      *gorm.DB
	Pricing CostCalculator
	Log     *zap.Logger
}

func NewReservationService(db *gorm.DB, pricing CostCalculator, log *zap.Logger) *ReservationService {
	return &ReservationService{DB: db, Pricing: pricing, Log: log}
}

type CreateReservationInput struct {
	HotelID     string
	RoomID      string
	CheckIn     time.Time
	CheckOut    time.Time
	TotalGuests int
}

// Create books a room for the half-open interval [CheckIn, CheckOut).
//
// The room row is locked FOR UPDATE for the duration of the transaction, so
// two concurrent bookings of the same room serialize: the second waits on
// the lock and then observes the first one's reservation in the overlap
// check. Callers must have validated that CheckIn < CheckOut.
func (s *ReservationService) Create(ctx context.Context, in CreateReservationInput) (*models.Reservation, error) {
	ctx, cancel := context.WithTimeout(ctx, bookingTimeout)
	defer cancel()

	var created models.Reservation
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var room models.Room
		err := tx.
			Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("room_id = ? AND hotel_id = ? AND status = ?", in.RoomID, in.HotelID, true).
			First(&room).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrInvalidRoomReference
			}
			return fmt.Errorf("failed to verify room %s: %w", in.RoomID, err)
		}

		var conflicts int64
		err = tx.Model(&models.Reservation{}).
			Where("room_id = ?", in.RoomID).
			Where("check_in_date < ? AND check_out_date > ?", in.CheckOut, in.CheckIn).
			Count(&conflicts).Error
		if err != nil {
			return fmt.Errorf("failed to check availability for room %s: %w", in.RoomID, err)
		}
		if conflicts > 0 {
			return ErrRoomUnavailable
		}

		created = models.Reservation{
			ReservationID:     uuid.NewString(),
			RoomID:            in.RoomID,
			CheckInDate:       datatypes.Date(in.CheckIn),
			CheckOutDate:      datatypes.Date(in.CheckOut),
			TotalGuests:       in.TotalGuests,
			TotalCost:         s.Pricing.TotalCost(room, in.CheckIn, in.CheckOut),
			EmailNotification: true,
			CreatedAt:         time.Now().UTC(),
		}
		if err := tx.Create(&created).Error; err != nil {
			if isForeignKeyViolation(err) {
				return ErrInvalidRoomReference
			}
			return fmt.Errorf("failed to create reservation: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.Log.Info("reservation created",
		zap.String("reservationId", created.ReservationID),
		zap.String("roomId", created.RoomID),
		zap.Int("totalGuests", created.TotalGuests),
	)
	return &created, nil
}

func (s *ReservationService) GetByID(ctx context.Context, reservationID string) (*models.Reservation, error) {
	var res models.Reservation
	err := s.DB.WithContext(ctx).
		Where("reservation_id = ?", reservationID).
		First(&res).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrReservationNotFound
		}
		return nil, fmt.Errorf("failed to retrieve reservation %s: %w", reservationID, err)
	}
	return &res, nil
}

func (s *ReservationService) GetByHotel(ctx context.Context, hotelID string) ([]models.Reservation, error) {
	var list []models.Reservation
	err := s.DB.WithContext(ctx).
		Select("reservations.*").
		Joins("JOIN rooms ON rooms.room_id = reservations.room_id").
		Where("rooms.hotel_id = ?", hotelID).
		Order("reservations.check_in_date").
		Find(&list).Error
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve reservations for hotel %s: %w", hotelID, err)
	}
	return list, nil
}

// AddGuests increments the reservation's guest count by additionalGuests.
// The row is locked FOR UPDATE so concurrent increments do not lose updates.
func (s *ReservationService) AddGuests(ctx context.Context, reservationID string, additionalGuests int) (int, error) {
	var total int
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var res models.Reservation
		err := tx.
			Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("reservation_id = ?", reservationID).
			First(&res).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrReservationNotFound
			}
			return fmt.Errorf("failed to load reservation %s: %w", reservationID, err)
		}

		total = res.TotalGuests + additionalGuests
		err = tx.Model(&models.Reservation{}).
			Where("reservation_id = ?", reservationID).
			Update("total_guests", gorm.Expr("total_guests + ?", additionalGuests)).Error
		if err != nil {
			return fmt.Errorf("failed to update guest count for reservation %s: %w", reservationID, err)
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return total, nil
}
