package models

type EmergencyContact struct {
	ContactID    string `gorm:"primaryKey;type:char(36);column:contact_id" json:"contactId"`
	GuestID      string `gorm:"type:char(36);index;not null;column:guest_id" json:"guestId"`
	FullName     string `gorm:"size:255;column:full_name" json:"fullName"`
	Phone        string `gorm:"size:50" json:"phone"`
	Relationship string `gorm:"size:100" json:"relationship"`

	Guest Guest `gorm:"foreignKey:GuestID;references:GuestID" json:"-"`
}

func (EmergencyContact) TableName() string { return "emergency_contacts" }
