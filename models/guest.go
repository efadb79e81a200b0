package models

import (
	"time"
)

type Guest struct {
	GuestID        string     `gorm:"primaryKey;type:char(36);column:guest_id" json:"guestId"`
	ReservationID  string     `gorm:"type:char(36);index;not null;column:reservation_id" json:"reservationId"`
	FullName       string     `gorm:"size:255;column:full_name" json:"fullName"`
	DateOfBirth    *time.Time `gorm:"column:date_of_birth" json:"dateOfBirth,omitempty"`
	Gender         string     `gorm:"size:32" json:"gender"`
	DocumentType   string     `gorm:"size:64;column:document_type" json:"documentType"`
	DocumentNumber string     `gorm:"size:64;column:document_number" json:"documentNumber"`
	Email          string     `gorm:"size:255" json:"email"`
	Phone          string     `gorm:"size:50" json:"phone"`

	Reservation Reservation `gorm:"foreignKey:ReservationID;references:ReservationID" json:"-"`
}

func (Guest) TableName() string { return "guests" }
