package models

import (
	"time"

	"github.com/google/uuid"
)

// Address is the shipping destination captured at checkout.
type Address struct {
	ID            uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey"`
	RecipientName string    `gorm:"column:recipient_name;not null"`
	Address       string    `gorm:"type:text;not null"`
	City          string    `gorm:"type:text;not null"`
	State         string    `gorm:"type:text;not null"`
	Postcode      string    `gorm:"type:text;not null"`
	CreatedAt     time.Time `gorm:"column:created_at;autoCreateTime"`
}
