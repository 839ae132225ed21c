package models

import (
	"time"

	"github.com/artlease-io/artlease-backend/pkg/enums"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Artwork is a leasable catalog item. Rows are soft-deleted, never removed,
// so order history keeps resolving.
type Artwork struct {
	ID            uuid.UUID         `gorm:"type:uuid;default:gen_random_uuid();primaryKey"`
	ProviderID    uuid.UUID         `gorm:"type:uuid;column:provider_id;not null;index"`
	Title         string            `gorm:"type:text;not null"`
	ArtistName    string            `gorm:"column:artist_name;not null"`
	GalleryName   string            `gorm:"column:gallery_name;not null;default:''"`
	Type          string            `gorm:"type:text;not null;default:''"`
	Genre         string            `gorm:"type:text;not null;default:''"`
	PricePerMonth decimal.Decimal   `gorm:"column:price_per_month;type:numeric(12,2);not null"`
	Size          string            `gorm:"type:text;not null;default:''"`
	Year          string            `gorm:"type:text;not null;default:''"`
	LeaseStatus   enums.LeaseStatus `gorm:"column:lease_status;type:text;not null;default:'Available'"`
	ImageURL      string            `gorm:"column:image_url;not null;default:''"`
	Description   string            `gorm:"type:text;not null;default:''"`
	IsDeleted     bool              `gorm:"column:is_deleted;not null;default:false;index"`
	CreatedAt     time.Time         `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt     time.Time         `gorm:"column:updated_at;autoUpdateTime"`
}
