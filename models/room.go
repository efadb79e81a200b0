package models

import (
	"time"
)

// Room belongs to exactly one hotel for its lifetime.
type Room struct {
	RoomID        string     `gorm:"primaryKey;type:char(36);column:room_id" json:"roomId"`
	HotelID       string     `gorm:"type:char(36);index;not null;column:hotel_id" json:"hotelId"`
	RoomType      string     `gorm:"size:100;column:room_type" json:"roomType"`
	BaseCost      float64    `gorm:"column:base_cost" json:"baseCost"`
	TaxPercentage float64    `gorm:"column:tax_percentage" json:"taxPercentage"`
	Capacity      int        `gorm:"not null;default:1" json:"capacity"`
	Status        bool       `gorm:"not null;default:true" json:"status"`
	CreatedAt     time.Time  `json:"createdAt"`
	UpdatedAt     *time.Time `json:"updatedAt,omitempty"`

	Hotel Hotel `gorm:"foreignKey:HotelID;references:HotelID" json:"-"`
}

func (Room) TableName() string { return "rooms" }
