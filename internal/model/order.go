package model

import "github.com/google/uuid"

// Order is an immutable record of a completed checkout. TotalAmount already
// includes the tax surcharge; TotalProfit is pre-tax margin.
type Order struct {
	BaseModel
	UserID      uuid.UUID `gorm:"type:uuid;not null;index" json:"user_id"`
	User        *User     `json:"user,omitempty" validate:"-"`
	TotalAmount float64   `gorm:"not null" json:"total_amount"`
	TotalProfit float64   `gorm:"not null" json:"total_profit"`

	Items []OrderItem `json:"items,omitempty"`
}

// OrderItem captures one line of an order. Price is the selling price at
// order time, not a live reference to the product's current price.
type OrderItem struct {
	BaseModel
	OrderID   uuid.UUID `gorm:"type:uuid;not null;index" json:"order_id"`
	ProductID uuid.UUID `gorm:"type:uuid;not null" json:"product_id"`
	Product   *Product  `json:"product,omitempty" validate:"-"`
	Quantity  int       `gorm:"not null" json:"quantity"`
	Price     float64   `gorm:"not null" json:"price"`
}

// CartLine is a requested line item at checkout. Transient input, not persisted.
type CartLine struct {
	ProductID uuid.UUID `json:"product_id" validate:"uuid_required"`
	Quantity  int       `json:"quantity" validate:"required,gt=0"`
}
