package providers

import (
	"time"

	"github.com/artlease-io/artlease-backend/pkg/db/models"
	"github.com/artlease-io/artlease-backend/pkg/enums"
	"github.com/google/uuid"
)

// ProviderDTO is the admin-facing provider payload.
type ProviderDTO struct {
	ID          uuid.UUID          `json:"id"`
	UserID      uuid.UUID          `json:"user_id"`
	Kind        enums.ProviderKind `json:"kind"`
	DisplayName string             `json:"display_name"`
	CreatedAt   time.Time          `json:"created_at"`
}

// ListResult pages providers newest first.
type ListResult struct {
	Providers  []ProviderDTO `json:"providers"`
	NextCursor string        `json:"next_cursor,omitempty"`
}

func NewProviderDTO(provider *models.Provider) ProviderDTO {
	return ProviderDTO{
		ID:          provider.ID,
		UserID:      provider.UserID,
		Kind:        provider.Kind,
		DisplayName: provider.DisplayName,
		CreatedAt:   provider.CreatedAt,
	}
}
