package orders

import (
	"context"
	"fmt"

	"github.com/artlease-io/artlease-backend/pkg/enums"
	pkgerrors "github.com/artlease-io/artlease-backend/pkg/errors"
	"github.com/artlease-io/artlease-backend/pkg/pagination"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Actor identifies the caller for ownership checks.
type Actor struct {
	UserID uuid.UUID
	Role   enums.Role
}

// Service exposes order history reads with ownership enforcement.
type Service interface {
	ListMine(ctx context.Context, actor Actor) ([]OrderDTO, error)
	Get(ctx context.Context, actor Actor, orderID uuid.UUID) (*OrderDTO, error)
	ListAll(ctx context.Context, actor Actor, params pagination.Params) (*ListResult, error)
}

type service struct {
	repo *Repository
}

// NewService builds the orders service.
func NewService(repo *Repository) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("orders repository required")
	}
	return &service{repo: repo}, nil
}

func (s *service) ListMine(ctx context.Context, actor Actor) ([]OrderDTO, error) {
	if actor.UserID == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeUnauthorized, "user identity missing")
	}

	records, err := s.repo.FindByUser(ctx, actor.UserID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "listing orders")
	}

	out := make([]OrderDTO, 0, len(records))
	for i := range records {
		out = append(out, NewOrderDTO(&records[i]))
	}
	return out, nil
}

// Get returns the order when the caller owns it or is an admin. Orders
// belonging to other users read as not found rather than forbidden so the
// endpoint does not confirm which order ids exist.
func (s *service) Get(ctx context.Context, actor Actor, orderID uuid.UUID) (*OrderDTO, error) {
	if actor.UserID == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeUnauthorized, "user identity missing")
	}

	order, err := s.repo.FindByID(ctx, orderID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "order not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "loading order")
	}

	if actor.Role != enums.RoleAdmin {
		if order.UserID == nil || *order.UserID != actor.UserID {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "order not found")
		}
	}

	dto := NewOrderDTO(order)
	return &dto, nil
}

func (s *service) ListAll(ctx context.Context, actor Actor, params pagination.Params) (*ListResult, error) {
	if actor.Role != enums.RoleAdmin {
		return nil, pkgerrors.New(pkgerrors.CodeForbidden, "admin access required")
	}

	records, err := s.repo.ListAll(ctx, params)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "listing orders")
	}

	limit := pagination.NormalizeLimit(params.Limit)
	next := ""
	if len(records) > limit {
		records = records[:limit]
		last := records[len(records)-1]
		next = pagination.EncodeCursor(pagination.Cursor{CreatedAt: last.OrderDate, ID: last.ID})
	}

	out := make([]OrderDTO, 0, len(records))
	for i := range records {
		out = append(out, NewOrderDTO(&records[i]))
	}
	return &ListResult{Orders: out, NextCursor: next}, nil
}
