package catalog

import (
	"context"
	"strings"

	"github.com/artlease-io/artlease-backend/pkg/db/models"
	"github.com/artlease-io/artlease-backend/pkg/enums"
	"github.com/artlease-io/artlease-backend/pkg/pagination"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Repository handles artwork persistence and faceted catalog queries.
type Repository struct {
	db *gorm.DB
}

// NewRepository builds a repository tied to the provided GORM DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// WithTx returns a repository bound to the provided transaction.
func (r *Repository) WithTx(tx *gorm.DB) *Repository {
	return &Repository{db: tx}
}

// FindByID loads an artwork, hiding soft-deleted rows.
func (r *Repository) FindByID(ctx context.Context, id uuid.UUID) (*models.Artwork, error) {
	var artwork models.Artwork
	if err := r.db.WithContext(ctx).
		First(&artwork, "id = ? AND is_deleted = ?", id, false).
		Error; err != nil {
		return nil, err
	}
	return &artwork, nil
}

// Create inserts a new artwork row.
func (r *Repository) Create(ctx context.Context, artwork *models.Artwork) (*models.Artwork, error) {
	if err := r.db.WithContext(ctx).Create(artwork).Error; err != nil {
		return nil, err
	}
	return artwork, nil
}

// Update saves an existing artwork row.
func (r *Repository) Update(ctx context.Context, artwork *models.Artwork) (*models.Artwork, error) {
	if err := r.db.WithContext(ctx).Save(artwork).Error; err != nil {
		return nil, err
	}
	return artwork, nil
}

// SoftDelete flags the artwork as deleted without removing the row, so
// order history keeps resolving.
func (r *Repository) SoftDelete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).
		Model(&models.Artwork{}).
		Where("id = ?", id).
		Update("is_deleted", true).
		Error
}

// List returns one catalog page matching the provided facets, newest first.
func (r *Repository) List(ctx context.Context, filters Filters, page pagination.Params) (*ListResult, error) {
	pageSize := pagination.NormalizeLimit(page.Limit)
	limitWithBuffer := pagination.LimitWithBuffer(page.Limit)

	cursor, err := pagination.ParseCursor(page.Cursor)
	if err != nil {
		return nil, err
	}

	qb := applyFilters(r.db.WithContext(ctx).Model(&models.Artwork{}), filters)

	if cursor != nil {
		qb = qb.Where("(created_at < ?) OR (created_at = ? AND id < ?)", cursor.CreatedAt, cursor.CreatedAt, cursor.ID)
	}

	var rows []models.Artwork
	if err := qb.Order("created_at DESC").Order("id DESC").Limit(limitWithBuffer).Find(&rows).Error; err != nil {
		return nil, err
	}

	nextCursor := ""
	if len(rows) > pageSize {
		rows = rows[:pageSize]
		last := rows[len(rows)-1]
		nextCursor = pagination.EncodeCursor(pagination.Cursor{CreatedAt: last.CreatedAt, ID: last.ID})
	}

	artworks := make([]ArtworkDTO, 0, len(rows))
	for i := range rows {
		artworks = append(artworks, *NewArtworkDTO(&rows[i]))
	}

	return &ListResult{
		Artworks:   artworks,
		NextCursor: nextCursor,
	}, nil
}

// Facets returns the distinct filterable values over live catalog rows.
func (r *Repository) Facets(ctx context.Context) (*FacetsDTO, error) {
	facets := &FacetsDTO{}

	columns := []struct {
		name string
		dest *[]string
	}{
		{"artist_name", &facets.Artists},
		{"gallery_name", &facets.Galleries},
		{"type", &facets.Types},
		{"genre", &facets.Genres},
	}

	for _, col := range columns {
		err := r.db.WithContext(ctx).
			Model(&models.Artwork{}).
			Where("is_deleted = ? AND "+col.name+" <> ''", false).
			Distinct(col.name).
			Order(col.name).
			Pluck(col.name, col.dest).
			Error
		if err != nil {
			return nil, err
		}
	}

	return facets, nil
}

// applyFilters turns the facet selections into predicates. Unknown or
// malformed bucket tags add no predicate rather than failing the query.
func applyFilters(qb *gorm.DB, filters Filters) *gorm.DB {
	qb = qb.Where("is_deleted = ?", false)

	if filters.ProviderID != nil {
		qb = qb.Where("provider_id = ?", *filters.ProviderID)
	}
	if filters.Artist != "" {
		qb = qb.Where("artist_name = ?", filters.Artist)
	}
	if filters.Gallery != "" {
		qb = qb.Where("gallery_name = ?", filters.Gallery)
	}
	if filters.Type != "" {
		qb = qb.Where("type = ?", filters.Type)
	}
	if filters.Genre != "" {
		qb = qb.Where("genre = ?", filters.Genre)
	}
	if q := strings.TrimSpace(filters.Q); q != "" {
		pattern := "%" + strings.ToLower(q) + "%"
		qb = qb.Where("(LOWER(title) LIKE ? OR LOWER(artist_name) LIKE ? OR LOWER(gallery_name) LIKE ?)", pattern, pattern, pattern)
	}
	qb = applyPriceBucket(qb, filters.Price)
	if label := enums.SizeBucket(filters.Size).Label(); label != "" {
		qb = qb.Where("size = ?", label)
	}
	if stored := enums.PeriodTag(filters.Period).StoredValue(); stored != "" {
		qb = qb.Where("year = ?", stored)
	}

	return qb
}

// applyPriceBucket maps a tag like "500-5000" to a closed range and "20000+"
// to an open-ended floor.
func applyPriceBucket(qb *gorm.DB, tag string) *gorm.DB {
	tag = strings.TrimSpace(tag)
	if tag == "" {
		return qb
	}

	if strings.HasSuffix(tag, "+") {
		floor, err := decimal.NewFromString(strings.TrimSuffix(tag, "+"))
		if err != nil {
			return qb
		}
		return qb.Where("price_per_month >= ?", floor)
	}

	bounds := strings.SplitN(tag, "-", 2)
	if len(bounds) != 2 {
		return qb
	}
	low, err := decimal.NewFromString(bounds[0])
	if err != nil {
		return qb
	}
	high, err := decimal.NewFromString(bounds[1])
	if err != nil {
		return qb
	}
	return qb.Where("price_per_month BETWEEN ? AND ?", low, high)
}
