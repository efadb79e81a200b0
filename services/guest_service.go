package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"hotels-api/models"
)

type GuestService struct {
	DB *gorm.DB
}

func NewGuestService(db *gorm.DB) *GuestService {
	return &GuestService{DB: db}
}

func (s *GuestService) GetByReservation(ctx context.Context, reservationID string) ([]models.Guest, error) {
	var guests []models.Guest
	err := s.DB.WithContext(ctx).
		Where("reservation_id = ?", reservationID).
		Find(&guests).Error
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve guests for reservation %s: %w", reservationID, err)
	}
	return guests, nil
}

type AddEmergencyContactInput struct {
	FullName     string
	Phone        string
	Relationship string
}

// AddEmergencyContact attaches a contact to the lead guest of the
// reservation. Lookup and insert share one transaction so the guest cannot
// vanish between them.
func (s *GuestService) AddEmergencyContact(ctx context.Context, reservationID string, in AddEmergencyContactInput) (*models.EmergencyContact, error) {
	var contact models.EmergencyContact
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var guest models.Guest
		err := tx.
			Where("reservation_id = ?", reservationID).
			Order("guest_id").
			First(&guest).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNoGuestsFound
			}
			return fmt.Errorf("failed to find guest for reservation %s: %w", reservationID, err)
		}

		contact = models.EmergencyContact{
			ContactID:    uuid.NewString(),
			GuestID:      guest.GuestID,
			FullName:     in.FullName,
			Phone:        in.Phone,
			Relationship: in.Relationship,
		}
		if err := tx.Create(&contact).Error; err != nil {
			return fmt.Errorf("failed to add emergency contact for reservation %s: %w", reservationID, err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &contact, nil
}
