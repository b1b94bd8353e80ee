// models.go

package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

func init() {
	// Prices go over the wire as JSON numbers, not quoted strings.
	decimal.MarshalJSONWithoutQuotes = true
}

type Product struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Category    string          `json:"category"`
	Image       string          `json:"image"`
	Images      []string        `json:"images"`
	Dimensions  *string         `json:"dimensions"`
	Material    *string         `json:"material"`
	InStock     bool            `json:"in_stock"`
	Featured    bool            `json:"featured"`
}

type Category struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Image string `json:"image"`
}

// CartItem is the request shape for add/update.
type CartItem struct {
	ProductID string `json:"product_id"`
	Quantity  *int   `json:"quantity"`
}

// QuantityOrDefault returns the requested quantity, 1 when omitted.
func (i CartItem) QuantityOrDefault() int {
	if i.Quantity == nil {
		return 1
	}
	return *i.Quantity
}

// CartLineItem is a snapshot of a product taken when it was added to a cart.
type CartLineItem struct {
	ProductID string          `json:"product_id"`
	Name      string          `json:"name"`
	Price     decimal.Decimal `json:"price"`
	Image     string          `json:"image"`
	Quantity  int             `json:"quantity"`
}

// Subtotal is price * quantity.
func (l CartLineItem) Subtotal() decimal.Decimal {
	return l.Price.Mul(decimal.NewFromInt(int64(l.Quantity)))
}

type Cart struct {
	ID    string          `json:"id"`
	Items []CartLineItem  `json:"items"`
	Total decimal.Decimal `json:"total"`
}

// Recompute rebuilds Total from scratch over every line.
func (c *Cart) Recompute() {
	total := decimal.Zero
	for _, l := range c.Items {
		total = total.Add(l.Subtotal())
	}
	c.Total = total
}

// Clone returns a deep copy so callers can't reach the stored line slice.
func (c Cart) Clone() Cart {
	items := make([]CartLineItem, len(c.Items))
	copy(items, c.Items)
	c.Items = items
	return c
}

type CustomerDetails struct {
	FullName string `json:"full_name" bson:"full_name" binding:"required"`
	Email    string `json:"email" bson:"email" binding:"required"`
	Phone    string `json:"phone" bson:"phone" binding:"required"`
	Address  string `json:"address" bson:"address" binding:"required"`
	City     string `json:"city" bson:"city" binding:"required"`
	State    string `json:"state" bson:"state" binding:"required"`
	Pincode  string `json:"pincode" bson:"pincode" binding:"required"`
}

type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusConfirmed OrderStatus = "confirmed"
	OrderStatusCancelled OrderStatus = "cancelled"
)

type PaymentStatus string

const (
	PaymentStatusUnpaid PaymentStatus = "unpaid"
	PaymentStatusPaid   PaymentStatus = "paid"
	PaymentStatusFailed PaymentStatus = "failed"
)

type Order struct {
	ID            string          `json:"id"`
	Customer      CustomerDetails `json:"customer"`
	Items         []CartLineItem  `json:"items"`
	Total         decimal.Decimal `json:"total"`
	Status        OrderStatus     `json:"status"`
	PaymentStatus PaymentStatus   `json:"payment_status"`
	CreatedAt     time.Time       `json:"created_at"`
}

type StatusCheck struct {
	ID         string    `json:"id"`
	ClientName string    `json:"client_name"`
	Timestamp  time.Time `json:"timestamp"`
}
