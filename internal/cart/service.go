package cart

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/artlease-io/artlease-backend/pkg/db/models"
	pkgerrors "github.com/artlease-io/artlease-backend/pkg/errors"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const (
	// MinMonths and MaxMonths bound a lease line's duration.
	MinMonths = 1
	MaxMonths = 12
)

// ClampMonths forces a requested duration into the allowed lease range.
func ClampMonths(months int) int {
	if months < MinMonths {
		return MinMonths
	}
	if months > MaxMonths {
		return MaxMonths
	}
	return months
}

// Service exposes session cart operations.
type Service interface {
	Get(ctx context.Context, cartID string) (*CartDTO, error)
	Add(ctx context.Context, cartID string, artworkID uuid.UUID, months int, startDate string) (*CartDTO, error)
	UpdateLine(ctx context.Context, cartID string, artworkID uuid.UUID, months int, startDate string) (*CartDTO, error)
	RemoveLine(ctx context.Context, cartID string, artworkID uuid.UUID) (*CartDTO, error)
	Clear(ctx context.Context, cartID string) error
}

type cartStore interface {
	Load(ctx context.Context, cartID string) (*Cart, error)
	Save(ctx context.Context, cartID string, cart *Cart) error
	Clear(ctx context.Context, cartID string) error
}

type artworkReader interface {
	FindByID(ctx context.Context, id uuid.UUID) (*models.Artwork, error)
}

type service struct {
	store    cartStore
	artworks artworkReader
}

// NewService constructs a cart service instance.
func NewService(store cartStore, artworks artworkReader) (Service, error) {
	if store == nil {
		return nil, fmt.Errorf("cart store required")
	}
	if artworks == nil {
		return nil, fmt.Errorf("artwork reader required")
	}
	return &service{store: store, artworks: artworks}, nil
}

func (s *service) Get(ctx context.Context, cartID string) (*CartDTO, error) {
	cart, err := s.store.Load(ctx, cartID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "loading cart")
	}
	return NewCartDTO(cart), nil
}

// Add snapshots the artwork's current price into a cart line. Adding an item
// already in the cart updates that line instead of appending a duplicate.
func (s *service) Add(ctx context.Context, cartID string, artworkID uuid.UUID, months int, startDate string) (*CartDTO, error) {
	if err := validateStartDate(startDate); err != nil {
		return nil, err
	}

	artwork, err := s.artworks.FindByID(ctx, artworkID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "artwork not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "loading artwork")
	}

	cart, err := s.store.Load(ctx, cartID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "loading cart")
	}

	months = ClampMonths(months)

	if line := cart.FindLine(artworkID); line != nil {
		line.Months = months
		line.StartDate = startDate
		line.PricePerMonth = artwork.PricePerMonth
		recompute(line)
	} else {
		newLine := Line{
			ArtworkID:     artwork.ID,
			Title:         artwork.Title,
			ImageURL:      artwork.ImageURL,
			PricePerMonth: artwork.PricePerMonth,
			Months:        months,
			StartDate:     startDate,
		}
		recompute(&newLine)
		cart.Lines = append(cart.Lines, newLine)
	}

	if err := s.store.Save(ctx, cartID, cart); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "saving cart")
	}
	return NewCartDTO(cart), nil
}

// UpdateLine changes duration or start date on an existing line.
func (s *service) UpdateLine(ctx context.Context, cartID string, artworkID uuid.UUID, months int, startDate string) (*CartDTO, error) {
	if err := validateStartDate(startDate); err != nil {
		return nil, err
	}

	cart, err := s.store.Load(ctx, cartID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "loading cart")
	}

	line := cart.FindLine(artworkID)
	if line == nil {
		return nil, pkgerrors.New(pkgerrors.CodeNotFound, "item is not in the cart")
	}

	line.Months = ClampMonths(months)
	line.StartDate = startDate
	recompute(line)

	if err := s.store.Save(ctx, cartID, cart); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "saving cart")
	}
	return NewCartDTO(cart), nil
}

func (s *service) RemoveLine(ctx context.Context, cartID string, artworkID uuid.UUID) (*CartDTO, error) {
	cart, err := s.store.Load(ctx, cartID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "loading cart")
	}

	kept := cart.Lines[:0]
	for _, line := range cart.Lines {
		if line.ArtworkID != artworkID {
			kept = append(kept, line)
		}
	}
	cart.Lines = kept

	if err := s.store.Save(ctx, cartID, cart); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "saving cart")
	}
	return NewCartDTO(cart), nil
}

func (s *service) Clear(ctx context.Context, cartID string) error {
	if err := s.store.Clear(ctx, cartID); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "clearing cart")
	}
	return nil
}

func recompute(line *Line) {
	line.Subtotal = line.PricePerMonth.Mul(decimal.NewFromInt(int64(line.Months)))
}

func validateStartDate(startDate string) error {
	if startDate == "" {
		return nil
	}
	if _, err := time.Parse(time.DateOnly, startDate); err != nil {
		return pkgerrors.New(pkgerrors.CodeValidation, "start date must be YYYY-MM-DD").
			WithDetails(map[string]string{"start_date": "must be an ISO date"})
	}
	return nil
}
