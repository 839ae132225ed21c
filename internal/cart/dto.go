package cart

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Line is one leased item in the session cart. Unit price is snapshotted at
// add time; subtotal is recomputed on every mutation.
type Line struct {
	ArtworkID     uuid.UUID       `json:"artwork_id"`
	Title         string          `json:"title"`
	ImageURL      string          `json:"image_url,omitempty"`
	PricePerMonth decimal.Decimal `json:"price_per_month"`
	Months        int             `json:"months"`
	StartDate     string          `json:"start_date,omitempty"`
	Subtotal      decimal.Decimal `json:"subtotal"`
}

// Cart is the redis-persisted session cart payload.
type Cart struct {
	Lines []Line `json:"lines"`
}

// Total sums the line subtotals. Empty carts total zero.
func (c *Cart) Total() decimal.Decimal {
	total := decimal.Zero
	for _, line := range c.Lines {
		total = total.Add(line.Subtotal)
	}
	return total
}

// FindLine returns a pointer into Lines for the given artwork, or nil.
func (c *Cart) FindLine(artworkID uuid.UUID) *Line {
	for i := range c.Lines {
		if c.Lines[i].ArtworkID == artworkID {
			return &c.Lines[i]
		}
	}
	return nil
}

// CartDTO is the cart payload returned to clients.
type CartDTO struct {
	Lines []Line          `json:"lines"`
	Total decimal.Decimal `json:"total"`
}

// NewCartDTO builds the client payload from the stored cart.
func NewCartDTO(cart *Cart) *CartDTO {
	lines := cart.Lines
	if lines == nil {
		lines = []Line{}
	}
	return &CartDTO{
		Lines: lines,
		Total: cart.Total(),
	}
}
