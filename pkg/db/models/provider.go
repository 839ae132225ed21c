package models

import (
	"time"

	"github.com/artlease-io/artlease-backend/pkg/enums"
	"github.com/google/uuid"
)

// Provider is the listing account behind catalog items. One per user,
// created lazily on first upload.
type Provider struct {
	ID          uuid.UUID          `gorm:"type:uuid;default:gen_random_uuid();primaryKey"`
	UserID      uuid.UUID          `gorm:"type:uuid;column:user_id;not null;uniqueIndex"`
	Kind        enums.ProviderKind `gorm:"type:text;not null"`
	DisplayName string             `gorm:"column:display_name;not null"`
	CreatedAt   time.Time          `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt   time.Time          `gorm:"column:updated_at;autoUpdateTime"`
}
