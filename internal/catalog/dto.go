package catalog

import (
	"time"

	"github.com/artlease-io/artlease-backend/pkg/db/models"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Filters carries the optional facet selections for a catalog query. Empty
// values add no predicate.
type Filters struct {
	Q          string
	Artist     string
	Gallery    string
	Type       string
	Genre      string
	Price      string
	Size       string
	Period     string
	ProviderID *uuid.UUID
}

// ArtworkDTO is the catalog payload returned to clients.
type ArtworkDTO struct {
	ID            uuid.UUID       `json:"id"`
	ProviderID    uuid.UUID       `json:"provider_id"`
	Title         string          `json:"title"`
	ArtistName    string          `json:"artist_name"`
	GalleryName   string          `json:"gallery_name,omitempty"`
	Type          string          `json:"type,omitempty"`
	Genre         string          `json:"genre,omitempty"`
	PricePerMonth decimal.Decimal `json:"price_per_month"`
	Size          string          `json:"size,omitempty"`
	Year          string          `json:"year,omitempty"`
	LeaseStatus   string          `json:"lease_status"`
	ImageURL      string          `json:"image_url,omitempty"`
	Description   string          `json:"description,omitempty"`
	CreatedAt     time.Time       `json:"created_at"`
}

// ListResult is one page of catalog rows plus the cursor for the next page.
type ListResult struct {
	Artworks   []ArtworkDTO `json:"artworks"`
	NextCursor string       `json:"next_cursor,omitempty"`
}

// FacetsDTO lists the distinct values the catalog UI can filter on.
type FacetsDTO struct {
	Artists   []string `json:"artists"`
	Galleries []string `json:"galleries"`
	Types     []string `json:"types"`
	Genres    []string `json:"genres"`
}

// CreateArtworkInput holds the validated payload to list an artwork.
type CreateArtworkInput struct {
	Title         string
	ArtistName    string
	GalleryName   string
	Type          string
	Genre         string
	PricePerMonth decimal.Decimal
	Size          string
	Year          string
	LeaseStatus   string
	ImageURL      string
	Description   string
}

// UpdateArtworkInput holds optional mutation values for an artwork.
type UpdateArtworkInput struct {
	Title         *string
	ArtistName    *string
	GalleryName   *string
	Type          *string
	Genre         *string
	PricePerMonth *decimal.Decimal
	Size          *string
	Year          *string
	LeaseStatus   *string
	ImageURL      *string
	Description   *string
}

// NewArtworkDTO builds a DTO from the persisted model.
func NewArtworkDTO(artwork *models.Artwork) *ArtworkDTO {
	return &ArtworkDTO{
		ID:            artwork.ID,
		ProviderID:    artwork.ProviderID,
		Title:         artwork.Title,
		ArtistName:    artwork.ArtistName,
		GalleryName:   artwork.GalleryName,
		Type:          artwork.Type,
		Genre:         artwork.Genre,
		PricePerMonth: artwork.PricePerMonth,
		Size:          artwork.Size,
		Year:          artwork.Year,
		LeaseStatus:   string(artwork.LeaseStatus),
		ImageURL:      artwork.ImageURL,
		Description:   artwork.Description,
		CreatedAt:     artwork.CreatedAt,
	}
}
