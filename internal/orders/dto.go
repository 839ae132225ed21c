package orders

import (
	"time"

	"github.com/artlease-io/artlease-backend/pkg/db/models"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderItemDTO is one lease line as returned to clients.
type OrderItemDTO struct {
	ID            uuid.UUID       `json:"id"`
	ArtworkID     uuid.UUID       `json:"artwork_id"`
	ImageURL      string          `json:"image_url"`
	PricePerMonth decimal.Decimal `json:"price_per_month"`
	Months        int             `json:"months"`
	StartDate     string          `json:"start_date"`
	EndDate       string          `json:"end_date"`
	TotalPrice    decimal.Decimal `json:"total_price"`
}

// OrderDTO is the order header with its lease lines.
type OrderDTO struct {
	ID         uuid.UUID       `json:"id"`
	UserID     *uuid.UUID      `json:"user_id,omitempty"`
	Email      string          `json:"email"`
	Phone      string          `json:"phone"`
	TotalPrice decimal.Decimal `json:"total_price"`
	OrderDate  time.Time       `json:"order_date"`
	Items      []OrderItemDTO  `json:"items"`
}

// ListResult is a page of orders plus the cursor for the next page.
type ListResult struct {
	Orders     []OrderDTO `json:"orders"`
	NextCursor string     `json:"next_cursor,omitempty"`
}

// NewOrderDTO maps a persisted order and its lines into the API shape.
func NewOrderDTO(order *models.Order) OrderDTO {
	items := make([]OrderItemDTO, 0, len(order.Items))
	for _, item := range order.Items {
		items = append(items, OrderItemDTO{
			ID:            item.ID,
			ArtworkID:     item.ArtworkID,
			ImageURL:      item.ImageURL,
			PricePerMonth: item.PricePerMonth,
			Months:        item.Months,
			StartDate:     item.StartDate.Format(time.DateOnly),
			EndDate:       item.EndDate.Format(time.DateOnly),
			TotalPrice:    item.TotalPrice,
		})
	}
	return OrderDTO{
		ID:         order.ID,
		UserID:     order.UserID,
		Email:      order.Email,
		Phone:      order.Phone,
		TotalPrice: order.TotalPrice,
		OrderDate:  order.OrderDate,
		Items:      items,
	}
}
