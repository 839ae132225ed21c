package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderItem is one leased line on an order, priced at add-to-cart time.
type OrderItem struct {
	ID            uuid.UUID       `gorm:"type:uuid;default:gen_random_uuid();primaryKey"`
	OrderID       uuid.UUID       `gorm:"type:uuid;column:order_id;not null;index"`
	ArtworkID     uuid.UUID       `gorm:"type:uuid;column:artwork_id;not null"`
	ImageURL      string          `gorm:"column:image_url;not null;default:''"`
	PricePerMonth decimal.Decimal `gorm:"column:price_per_month;type:numeric(12,2);not null"`
	Months        int             `gorm:"column:months;not null"`
	StartDate     time.Time       `gorm:"column:start_date;not null"`
	EndDate       time.Time       `gorm:"column:end_date;not null"`
	TotalPrice    decimal.Decimal `gorm:"column:total_price;type:numeric(12,2);not null"`
	CreatedAt     time.Time       `gorm:"column:created_at;autoCreateTime"`
}
