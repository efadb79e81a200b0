package models

import (
	"time"

	"gorm.io/datatypes"
)

// Reservation dates are a half-open interval [CheckInDate, CheckOutDate):
// a stay ending on the day another begins does not collide with it.
type Reservation struct {
	ReservationID     string         `gorm:"primaryKey;type:char(36);column:reservation_id" json:"reservationId"`
	RoomID            string         `gorm:"type:char(36);index;not null;column:room_id" json:"roomId"`
	CheckInDate       datatypes.Date `gorm:"not null;column:check_in_date" json:"checkInDate"`
	CheckOutDate      datatypes.Date `gorm:"not null;column:check_out_date" json:"checkOutDate"`
	TotalGuests       int            `gorm:"not null;default:1;column:total_guests" json:"totalGuests"`
	TotalCost         float64        `gorm:"column:total_cost" json:"totalCost"`
	EmailNotification bool           `gorm:"column:email_notification" json:"emailNotification"`
	CreatedAt         time.Time      `json:"createdAt"`

	Room Room `gorm:"foreignKey:RoomID;references:RoomID" json:"-"`
}

func (Reservation) TableName() string { return "reservations" }
