package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"hotels-api/models"
)

type RoomService struct {
	DB *gorm.DB
}

func NewRoomService(db *gorm.DB) *RoomService {
	return &RoomService{DB: db}
}

type AddRoomInput struct {
	RoomType      string
	BaseCost      float64
	TaxPercentage float64
	Capacity      int
	Status        bool
}

// AddToHotel inserts a room for the given hotel, verifying the hotel exists
// first so a dangling hotel id maps to not-found instead of an FK error.
func (s *RoomService) AddToHotel(ctx context.Context, hotelID string, in AddRoomInput) (*models.Room, error) {
	var count int64
	err := s.DB.WithContext(ctx).
		Model(&models.Hotel{}).
		Where("hotel_id = ?", hotelID).
		Count(&count).Error
	if err != nil {
		return nil, fmt.Errorf("failed to verify hotel %s: %w", hotelID, err)
	}
	if count == 0 {
		return nil, ErrHotelNotFound
	}

	room := models.Room{
		RoomID:        uuid.NewString(),
		HotelID:       hotelID,
		RoomType:      in.RoomType,
		BaseCost:      in.BaseCost,
		TaxPercentage: in.TaxPercentage,
		Capacity:      in.Capacity,
		Status:        in.Status,
		CreatedAt:     time.Now().UTC(),
	}
	if err := s.DB.WithContext(ctx).Create(&room).Error; err != nil {
		if isForeignKeyViolation(err) {
			return nil, ErrHotelNotFound
		}
		return nil, fmt.Errorf("failed to add room to hotel %s: %w", hotelID, err)
	}
	return &room, nil
}

func (s *RoomService) GetByHotel(ctx context.Context, hotelID string) ([]models.Room, error) {
	var rooms []models.Room
	err := s.DB.WithContext(ctx).
		Where("hotel_id = ?", hotelID).
		Find(&rooms).Error
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve rooms for hotel %s: %w", hotelID, err)
	}
	return rooms, nil
}

type UpdateRoomInput struct {
	RoomType      string
	BaseCost      float64
	TaxPercentage float64
	Capacity      int
	Status        bool
}

func (s *RoomService) Update(ctx context.Context, roomID string, in UpdateRoomInput) error {
	result := s.DB.WithContext(ctx).
		Model(&models.Room{}).
		Where("room_id = ?", roomID).
		Updates(map[string]interface{}{
			"room_type":      in.RoomType,
			"base_cost":      in.BaseCost,
			"tax_percentage": in.TaxPercentage,
			"capacity":       in.Capacity,
			"status":         in.Status,
			"updated_at":     time.Now().UTC(),
		})
	if result.Error != nil {
		return fmt.Errorf("failed to update room %s: %w", roomID, result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrRoomNotFound
	}
	return nil
}

// ToggleStatus flips the room's active flag and returns the new state.
func (s *RoomService) ToggleStatus(ctx context.Context, roomID string) (bool, error) {
	result := s.DB.WithContext(ctx).
		Model(&models.Room{}).
		Where("room_id = ?", roomID).
		Updates(map[string]interface{}{
			"status":     gorm.Expr("NOT status"),
			"updated_at": time.Now().UTC(),
		})
	if result.Error != nil {
		return false, fmt.Errorf("failed to toggle room %s: %w", roomID, result.Error)
	}
	if result.RowsAffected == 0 {
		return false, ErrRoomNotFound
	}

	var room models.Room
	err := s.DB.WithContext(ctx).
		Select("status").
		Where("room_id = ?", roomID).
		First(&room).Error
	if err != nil {
		return false, fmt.Errorf("failed to read room %s status: %w", roomID, err)
	}
	return room.Status, nil
}
