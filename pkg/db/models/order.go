package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Order is the immutable checkout header. UserID stays nil for guest
// checkouts.
type Order struct {
	ID         uuid.UUID       `gorm:"type:uuid;default:gen_random_uuid();primaryKey"`
	UserID     *uuid.UUID      `gorm:"type:uuid;column:user_id;index"`
	Email      string          `gorm:"type:text;not null"`
	Phone      string          `gorm:"type:text;not null"`
	TotalPrice decimal.Decimal `gorm:"column:total_price;type:numeric(12,2);not null"`
	AddressID  uuid.UUID       `gorm:"type:uuid;column:address_id;not null"`
	PaymentID  uuid.UUID       `gorm:"type:uuid;column:payment_id;not null"`
	OrderDate  time.Time       `gorm:"column:order_date;autoCreateTime"`

	Items []OrderItem `gorm:"foreignKey:OrderID"`
}
