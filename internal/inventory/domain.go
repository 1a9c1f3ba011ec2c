package inventory

import "time"

// Item models a stocked material tracked for construction work.
type Item struct {
	ID          string    `json:"id"`
	SKU         string    `json:"sku"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	UOM         string    `json:"uom"`
	OnHand      float64   `json:"onHand"`
	MinQty      float64   `json:"minQty"`
	LastPrice   *float64  `json:"lastPrice"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// BelowMin reports whether the item is under its reorder threshold.
func (i Item) BelowMin() bool {
	return i.OnHand < i.MinQty
}

// CreateInput carries the fields accepted on create.
type CreateInput struct {
	SKU         string   `json:"sku" validate:"required,min=1"`
	Name        string   `json:"name" validate:"required,min=1"`
	Description string   `json:"description"`
	UOM         string   `json:"uom" validate:"required,min=1"`
	OnHand      float64  `json:"onHand" validate:"gte=0"`
	MinQty      float64  `json:"minQty" validate:"gte=0"`
	LastPrice   *float64 `json:"lastPrice" validate:"omitempty,gte=0"`
}

// UpdateInput carries a partial update; nil fields are left unchanged.
type UpdateInput struct {
	ID          string   `json:"id" validate:"required"`
	SKU         *string  `json:"sku" validate:"omitempty,min=1"`
	Name        *string  `json:"name" validate:"omitempty,min=1"`
	Description *string  `json:"description"`
	UOM         *string  `json:"uom" validate:"omitempty,min=1"`
	OnHand      *float64 `json:"onHand" validate:"omitempty,gte=0"`
	MinQty      *float64 `json:"minQty" validate:"omitempty,gte=0"`
	LastPrice   *float64 `json:"lastPrice" validate:"omitempty,gte=0"`
}
