package catalog

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/artlease-io/artlease-backend/pkg/db/models"
	"github.com/artlease-io/artlease-backend/pkg/enums"
	pkgerrors "github.com/artlease-io/artlease-backend/pkg/errors"
	"github.com/artlease-io/artlease-backend/pkg/pagination"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Actor identifies who is asking for a mutation.
type Actor struct {
	UserID uuid.UUID
	Role   enums.Role
}

// Service exposes catalog browsing and provider listing management.
type Service interface {
	List(ctx context.Context, filters Filters, page pagination.Params) (*ListResult, error)
	Get(ctx context.Context, id uuid.UUID) (*ArtworkDTO, error)
	Facets(ctx context.Context) (*FacetsDTO, error)
	ListForProvider(ctx context.Context, actor Actor, page pagination.Params) (*ListResult, error)
	Create(ctx context.Context, actor Actor, displayName string, input CreateArtworkInput) (*ArtworkDTO, error)
	Update(ctx context.Context, actor Actor, artworkID uuid.UUID, input UpdateArtworkInput) (*ArtworkDTO, error)
	Delete(ctx context.Context, actor Actor, artworkID uuid.UUID) error
}

type providerStore interface {
	FindByUserID(ctx context.Context, userID uuid.UUID) (*models.Provider, error)
	EnsureForUser(ctx context.Context, userID uuid.UUID, role enums.Role, displayName string) (*models.Provider, error)
	FindByID(ctx context.Context, id uuid.UUID) (*models.Provider, error)
}

type service struct {
	repo      *Repository
	providers providerStore
}

// NewService constructs a catalog service instance.
func NewService(repo *Repository, providers providerStore) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("catalog repository required")
	}
	if providers == nil {
		return nil, fmt.Errorf("provider repository required")
	}
	return &service{repo: repo, providers: providers}, nil
}

func (s *service) List(ctx context.Context, filters Filters, page pagination.Params) (*ListResult, error) {
	result, err := s.repo.List(ctx, filters, page)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "listing catalog")
	}
	return result, nil
}

func (s *service) Get(ctx context.Context, id uuid.UUID) (*ArtworkDTO, error) {
	artwork, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "artwork not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "loading artwork")
	}
	return NewArtworkDTO(artwork), nil
}

func (s *service) Facets(ctx context.Context) (*FacetsDTO, error) {
	facets, err := s.repo.Facets(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "loading catalog facets")
	}
	return facets, nil
}

// ListForProvider reuses the public filter path scoped to the caller's own
// listings, soft-deleted rows excluded.
func (s *service) ListForProvider(ctx context.Context, actor Actor, page pagination.Params) (*ListResult, error) {
	provider, err := s.providers.FindByUserID(ctx, actor.UserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &ListResult{Artworks: []ArtworkDTO{}}, nil
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "loading provider")
	}
	return s.List(ctx, Filters{ProviderID: &provider.ID}, page)
}

func (s *service) Create(ctx context.Context, actor Actor, displayName string, input CreateArtworkInput) (*ArtworkDTO, error) {
	if err := validateCreateInput(input); err != nil {
		return nil, err
	}

	provider, err := s.providers.EnsureForUser(ctx, actor.UserID, actor.Role, displayName)
	if err != nil {
		if typed := pkgerrors.As(err); typed != nil {
			return nil, typed
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "ensuring provider")
	}

	status := enums.LeaseStatusAvailable
	if input.LeaseStatus != "" {
		parsed, err := enums.ParseLeaseStatus(input.LeaseStatus)
		if err != nil {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "invalid lease status")
		}
		status = parsed
	}

	artwork := &models.Artwork{
		ID:            uuid.New(),
		ProviderID:    provider.ID,
		Title:         strings.TrimSpace(input.Title),
		ArtistName:    strings.TrimSpace(input.ArtistName),
		GalleryName:   strings.TrimSpace(input.GalleryName),
		Type:          input.Type,
		Genre:         input.Genre,
		PricePerMonth: input.PricePerMonth,
		Size:          input.Size,
		Year:          input.Year,
		LeaseStatus:   status,
		ImageURL:      input.ImageURL,
		Description:   input.Description,
	}

	created, err := s.repo.Create(ctx, artwork)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "creating artwork")
	}
	return NewArtworkDTO(created), nil
}

func (s *service) Update(ctx context.Context, actor Actor, artworkID uuid.UUID, input UpdateArtworkInput) (*ArtworkDTO, error) {
	artwork, err := s.loadOwned(ctx, actor, artworkID)
	if err != nil {
		return nil, err
	}

	applyUpdate(artwork, input)
	if artwork.Title == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "title is required")
	}
	if artwork.PricePerMonth.IsNegative() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "price per month cannot be negative")
	}

	updated, err := s.repo.Update(ctx, artwork)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "updating artwork")
	}
	return NewArtworkDTO(updated), nil
}

func (s *service) Delete(ctx context.Context, actor Actor, artworkID uuid.UUID) error {
	if _, err := s.loadOwned(ctx, actor, artworkID); err != nil {
		return err
	}
	if err := s.repo.SoftDelete(ctx, artworkID); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "deleting artwork")
	}
	return nil
}

// loadOwned fetches the artwork and enforces ownership. Admins bypass the
// ownership check but not existence.
func (s *service) loadOwned(ctx context.Context, actor Actor, artworkID uuid.UUID) (*models.Artwork, error) {
	artwork, err := s.repo.FindByID(ctx, artworkID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "artwork not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "loading artwork")
	}

	if actor.Role == enums.RoleAdmin {
		return artwork, nil
	}

	provider, err := s.providers.FindByUserID(ctx, actor.UserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeForbidden, "not the owner of this artwork")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "loading provider")
	}
	if provider.ID != artwork.ProviderID {
		return nil, pkgerrors.New(pkgerrors.CodeForbidden, "not the owner of this artwork")
	}
	return artwork, nil
}

func validateCreateInput(input CreateArtworkInput) error {
	fields := map[string]string{}
	if strings.TrimSpace(input.Title) == "" {
		fields["title"] = "is required"
	}
	if strings.TrimSpace(input.ArtistName) == "" {
		fields["artist_name"] = "is required"
	}
	if input.PricePerMonth.IsNegative() {
		fields["price_per_month"] = "cannot be negative"
	}
	if len(fields) > 0 {
		return pkgerrors.New(pkgerrors.CodeValidation, "invalid artwork payload").WithDetails(fields)
	}
	return nil
}

func applyUpdate(artwork *models.Artwork, input UpdateArtworkInput) {
	if input.Title != nil {
		artwork.Title = strings.TrimSpace(*input.Title)
	}
	if input.ArtistName != nil {
		artwork.ArtistName = strings.TrimSpace(*input.ArtistName)
	}
	if input.GalleryName != nil {
		artwork.GalleryName = strings.TrimSpace(*input.GalleryName)
	}
	if input.Type != nil {
		artwork.Type = *input.Type
	}
	if input.Genre != nil {
		artwork.Genre = *input.Genre
	}
	if input.PricePerMonth != nil {
		artwork.PricePerMonth = *input.PricePerMonth
	}
	if input.Size != nil {
		artwork.Size = *input.Size
	}
	if input.Year != nil {
		artwork.Year = *input.Year
	}
	if input.LeaseStatus != nil {
		if parsed, err := enums.ParseLeaseStatus(*input.LeaseStatus); err == nil {
			artwork.LeaseStatus = parsed
		}
	}
	if input.ImageURL != nil {
		artwork.ImageURL = *input.ImageURL
	}
	if input.Description != nil {
		artwork.Description = *input.Description
	}
}
