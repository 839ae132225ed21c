package providers

import (
	"context"
	"errors"

	"github.com/artlease-io/artlease-backend/pkg/db/models"
	"github.com/artlease-io/artlease-backend/pkg/enums"
	pkgerrors "github.com/artlease-io/artlease-backend/pkg/errors"
	"github.com/artlease-io/artlease-backend/pkg/pagination"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Repository handles provider persistence.
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

// FindByID loads a provider row.
func (r *Repository) FindByID(ctx context.Context, id uuid.UUID) (*models.Provider, error) {
	var provider models.Provider
	if err := r.db.WithContext(ctx).First(&provider, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &provider, nil
}

// FindByUserID loads the provider owned by the given user, if any.
func (r *Repository) FindByUserID(ctx context.Context, userID uuid.UUID) (*models.Provider, error) {
	var provider models.Provider
	if err := r.db.WithContext(ctx).First(&provider, "user_id = ?", userID).Error; err != nil {
		return nil, err
	}
	return &provider, nil
}

// List pages every provider newest first on (created_at, id).
func (r *Repository) List(ctx context.Context, params pagination.Params) (*ListResult, error) {
	query := r.db.WithContext(ctx).
		Model(&models.Provider{}).
		Order("created_at DESC").
		Order("id DESC")

	cursor, err := pagination.ParseCursor(params.Cursor)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid cursor")
	}
	if cursor != nil {
		query = query.Where(
			"(created_at < ?) OR (created_at = ? AND id < ?)",
			cursor.CreatedAt, cursor.CreatedAt, cursor.ID,
		)
	}

	limit := pagination.NormalizeLimit(params.Limit)
	var rows []models.Provider
	if err := query.Limit(pagination.LimitWithBuffer(params.Limit)).Find(&rows).Error; err != nil {
		return nil, err
	}

	result := &ListResult{Providers: make([]ProviderDTO, 0, len(rows))}
	if len(rows) > limit {
		rows = rows[:limit]
		last := rows[len(rows)-1]
		result.NextCursor = pagination.EncodeCursor(pagination.Cursor{
			CreatedAt: last.CreatedAt,
			ID:        last.ID,
		})
	}
	for i := range rows {
		result.Providers = append(result.Providers, NewProviderDTO(&rows[i]))
	}
	return result, nil
}

// EnsureForUser returns the user's provider, creating it on first use. The
// provider kind follows the account role, display name defaults to the
// user name.
func (r *Repository) EnsureForUser(ctx context.Context, userID uuid.UUID, role enums.Role, displayName string) (*models.Provider, error) {
	existing, err := r.FindByUserID(ctx, userID)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	kind, err := enums.ProviderKindForRole(role)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeForbidden, err, "account cannot own listings")
	}

	provider := &models.Provider{
		ID:          uuid.New(),
		UserID:      userID,
		Kind:        kind,
		DisplayName: displayName,
	}
	if err := r.db.WithContext(ctx).Create(provider).Error; err != nil {
		// lost the race against a concurrent first upload, reload
		if reloaded, findErr := r.FindByUserID(ctx, userID); findErr == nil {
			return reloaded, nil
		}
		return nil, err
	}
	return provider, nil
}
