package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"hotels-api/models"
)

type HotelService struct {
	DB *gorm.DB
}

func NewHotelService(db *gorm.DB) *HotelService {
	return &HotelService{DB: db}
}

type CreateHotelInput struct {
	Name      string
	Location  string
	BasePrice float64
}

// Create inserts a hotel; new hotels are always active.
func (s *HotelService) Create(ctx context.Context, in CreateHotelInput) (*models.Hotel, error) {
	hotel := models.Hotel{
		HotelID:   uuid.NewString(),
		Name:      in.Name,
		Location:  in.Location,
		BasePrice: in.BasePrice,
		Status:    true,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.DB.WithContext(ctx).Create(&hotel).Error; err != nil {
		return nil, fmt.Errorf("failed to create hotel: %w", err)
	}
	return &hotel, nil
}

func (s *HotelService) GetAll(ctx context.Context) ([]models.Hotel, error) {
	var hotels []models.Hotel
	if err := s.DB.WithContext(ctx).Find(&hotels).Error; err != nil {
		return nil, fmt.Errorf("failed to retrieve hotels: %w", err)
	}
	return hotels, nil
}

func (s *HotelService) GetByID(ctx context.Context, hotelID string) (*models.Hotel, error) {
	var hotel models.Hotel
	err := s.DB.WithContext(ctx).
		Where("hotel_id = ?", hotelID).
		First(&hotel).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrHotelNotFound
		}
		return nil, fmt.Errorf("failed to retrieve hotel %s: %w", hotelID, err)
	}
	return &hotel, nil
}

type UpdateHotelInput struct {
	Name      string
	Location  string
	BasePrice float64
	Status    bool
}

func (s *HotelService) Update(ctx context.Context, hotelID string, in UpdateHotelInput) error {
	result := s.DB.WithContext(ctx).
		Model(&models.Hotel{}).
		Where("hotel_id = ?", hotelID).
		Updates(map[string]interface{}{
			"name":       in.Name,
			"location":   in.Location,
			"base_price": in.BasePrice,
			"status":     in.Status,
			"updated_at": time.Now().UTC(),
		})
	if result.Error != nil {
		return fmt.Errorf("failed to update hotel %s: %w", hotelID, result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrHotelNotFound
	}
	return nil
}

// ToggleStatus flips the hotel's active flag and returns the new state.
// Last-write-wins is fine here; the flag needs no cross-record coordination.
func (s *HotelService) ToggleStatus(ctx context.Context, hotelID string) (bool, error) {
	result := s.DB.WithContext(ctx).
		Model(&models.Hotel{}).
		Where("hotel_id = ?", hotelID).
		Updates(map[string]interface{}{
			"status":     gorm.Expr("NOT status"),
			"updated_at": time.Now().UTC(),
		})
	if result.Error != nil {
		return false, fmt.Errorf("failed to toggle hotel %s: %w", hotelID, result.Error)
	}
	if result.RowsAffected == 0 {
		return false, ErrHotelNotFound
	}

	var hotel models.Hotel
	err := s.DB.WithContext(ctx).
		Select("status").
		Where("hotel_id = ?", hotelID).
		First(&hotel).Error
	if err != nil {
		return false, fmt.Errorf("failed to read hotel %s status: %w", hotelID, err)
	}
	return hotel.Status, nil
}

type SearchHotelsInput struct {
	City      string
	CheckIn   time.Time
	CheckOut  time.Time
	NumGuests int
}

// Search lists active hotels with at least one active room that fits the
// party and has no reservation overlapping [CheckIn, CheckOut).
func (s *HotelService) Search(ctx context.Context, in SearchHotelsInput) ([]models.Hotel, error) {
	booked := s.DB.
		Table("reservations").
		Select("room_id").
		Where("check_in_date < ? AND check_out_date > ?", in.CheckOut, in.CheckIn)

	query := s.DB.WithContext(ctx).
		Table("hotels").
		Select("DISTINCT hotels.*").
		Joins("JOIN rooms ON rooms.hotel_id = hotels.hotel_id").
		Where("hotels.status = ? AND rooms.status = ?", true, true).
		Where("rooms.capacity >= ?", in.NumGuests).
		Where("rooms.room_id NOT IN (?)", booked).
		Order("hotels.name")

	if in.City != "" {
		query = query.Where("hotels.location = ?", in.City)
	}

	var hotels []models.Hotel
	if err := query.Find(&hotels).Error; err != nil {
		return nil, fmt.Errorf("failed to search hotels: %w", err)
	}
	return hotels, nil
}
