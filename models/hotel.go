package models

import (
	"time"
)

// Hotel is never physically deleted; Status is the soft active flag.
type Hotel struct {
	HotelID   string     `gorm:"primaryKey;type:char(36);column:hotel_id" json:"hotelId"`
	Name      string     `gorm:"size:255;not null" json:"name"`
	Location  string     `gorm:"size:255;not null" json:"location"`
	BasePrice float64    `gorm:"column:base_price" json:"basePrice"`
	Status    bool       `gorm:"not null;default:true" json:"status"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt *time.Time `json:"updatedAt,omitempty"`

	Rooms []Room `gorm:"foreignKey:HotelID;references:HotelID" json:"rooms,omitempty"`
}

func (Hotel) TableName() string { return "hotels" }
