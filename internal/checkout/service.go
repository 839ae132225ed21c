package checkout

import (
	"context"
	"fmt"
	"time"

	"github.com/artlease-io/artlease-backend/internal/cart"
	"github.com/artlease-io/artlease-backend/pkg/db"
	"github.com/artlease-io/artlease-backend/pkg/db/models"
	pkgerrors "github.com/artlease-io/artlease-backend/pkg/errors"
	"github.com/artlease-io/artlease-backend/pkg/leasedate"
	"github.com/artlease-io/artlease-backend/pkg/logger"
	"github.com/artlease-io/artlease-backend/pkg/metrics"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Service runs the checkout write sequence.
type Service interface {
	Checkout(ctx context.Context, cartID string, userID *uuid.UUID, input Input) (*Result, error)
}

type cartAccess interface {
	Load(ctx context.Context, cartID string) (*cart.Cart, error)
	Clear(ctx context.Context, cartID string) error
}

type service struct {
	repo     *Repository
	dbClient *db.Client
	carts    cartAccess
	metrics  *metrics.CheckoutMetrics
	logg     *logger.Logger
	now      func() time.Time
}

// NewService constructs a checkout service instance.
func NewService(repo *Repository, dbClient *db.Client, carts cartAccess, checkoutMetrics *metrics.CheckoutMetrics, logg *logger.Logger) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("checkout repository required")
	}
	if dbClient == nil {
		return nil, fmt.Errorf("db client required")
	}
	if carts == nil {
		return nil, fmt.Errorf("cart access required")
	}
	if logg == nil {
		return nil, fmt.Errorf("logger required")
	}
	return &service{
		repo:     repo,
		dbClient: dbClient,
		carts:    carts,
		metrics:  checkoutMetrics,
		logg:     logg,
		now:      time.Now,
	}, nil
}

// Checkout turns the session cart into a persisted order. The payment,
// address, order header, and order item writes share one transaction; any
// failure rolls back all of them and leaves the cart untouched so the user
// can retry.
func (s *service) Checkout(ctx context.Context, cartID string, userID *uuid.UUID, input Input) (*Result, error) {
	currentCart, err := s.carts.Load(ctx, cartID)
	if err != nil {
		s.metrics.IncOutcome("cart_unavailable")
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "loading cart")
	}
	if len(currentCart.Lines) == 0 {
		s.metrics.IncOutcome("empty_cart")
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "cart is empty")
	}

	if fields, vErr := input.validate(); vErr != nil {
		s.metrics.IncOutcome("invalid_input")
		return nil, pkgerrors.Wrap(pkgerrors.CodeValidation, vErr, "incomplete checkout form").WithDetails(fields)
	}

	s.metrics.ObserveCartLines(len(currentCart.Lines))

	orderID := uuid.New()
	defaultStart := s.now()

	// Line totals are recomputed from the clamped months rather than trusted
	// from the stored cart, so a stale redis line cannot persist a subtotal
	// that disagrees with price x months.
	total := decimal.Zero
	items := make([]models.OrderItem, 0, len(currentCart.Lines))
	for _, line := range currentCart.Lines {
		months := cart.ClampMonths(line.Months)
		start := defaultStart
		if line.StartDate != "" {
			if parsed, err := time.Parse(time.DateOnly, line.StartDate); err == nil {
				start = parsed
			}
		}
		start, end := leasedate.Period(start, months)

		lineTotal := line.PricePerMonth.Mul(decimal.NewFromInt(int64(months)))
		total = total.Add(lineTotal)

		items = append(items, models.OrderItem{
			ID:            uuid.New(),
			OrderID:       orderID,
			ArtworkID:     line.ArtworkID,
			ImageURL:      line.ImageURL,
			PricePerMonth: line.PricePerMonth,
			Months:        months,
			StartDate:     start,
			EndDate:       end,
			TotalPrice:    lineTotal,
		})
	}

	err = s.dbClient.WithTx(ctx, func(tx *gorm.DB) error {
		repo := s.repo.WithTx(tx)

		payment := &models.Payment{
			ID:           uuid.New(),
			CardLastFour: cardLastFour(input.CardNumber),
			ExpDate:      input.ExpDate,
		}
		if err := repo.CreatePayment(ctx, payment); err != nil {
			return fmt.Errorf("creating payment: %w", err)
		}

		address := &models.Address{
			ID:            uuid.New(),
			RecipientName: input.RecipientName,
			Address:       input.Address,
			City:          input.City,
			State:         input.State,
			Postcode:      input.Postcode,
		}
		if err := repo.CreateAddress(ctx, address); err != nil {
			return fmt.Errorf("creating address: %w", err)
		}

		order := &models.Order{
			ID:         orderID,
			UserID:     userID,
			Email:      input.Email,
			Phone:      input.Phone,
			TotalPrice: total,
			AddressID:  address.ID,
			PaymentID:  payment.ID,
		}
		if err := repo.CreateOrder(ctx, order); err != nil {
			return fmt.Errorf("creating order: %w", err)
		}

		if err := repo.CreateOrderItems(ctx, items); err != nil {
			return fmt.Errorf("creating order items: %w", err)
		}
		return nil
	})
	if err != nil {
		s.metrics.IncOutcome("storage_failure")
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "checkout failed")
	}

	// The order is committed; a failed cart clear must not undo that.
	if err := s.carts.Clear(ctx, cartID); err != nil {
		s.logg.Warn(s.logg.WithCartID(ctx, cartID), "clearing cart after checkout failed")
	}

	s.metrics.IncOutcome("success")
	return &Result{OrderID: orderID, Total: total}, nil
}
