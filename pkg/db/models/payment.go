package models

import (
	"time"

	"github.com/google/uuid"
)

// Payment stores the masked card capture taken at checkout. Only the last
// four digits of the card survive persistence.
type Payment struct {
	ID           uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey"`
	CardLastFour string    `gorm:"column:card_last_four;not null"`
	ExpDate      string    `gorm:"column:exp_date;not null"`
	CreatedAt    time.Time `gorm:"column:created_at;autoCreateTime"`
}
