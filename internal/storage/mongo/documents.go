package mongo

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"lumiere-backend/internal/domain"
)

// Storage shapes. Money goes in as Decimal128 so totals survive a round trip
// without float drift.

type lineDocument struct {
	ProductID string               `bson:"product_id"`
	Name      string               `bson:"name"`
	Price     primitive.Decimal128 `bson:"price"`
	Image     string               `bson:"image"`
	Quantity  int                  `bson:"quantity"`
}

type orderDocument struct {
	ID            string                 `bson:"id"`
	Customer      domain.CustomerDetails `bson:"customer"`
	Items         []lineDocument         `bson:"items"`
	Total         primitive.Decimal128   `bson:"total"`
	Status        string                 `bson:"status"`
	PaymentStatus string                 `bson:"payment_status"`
	CreatedAt     time.Time              `bson:"created_at"`
}

type statusCheckDocument struct {
	ID         string    `bson:"id"`
	ClientName string    `bson:"client_name"`
	Timestamp  time.Time `bson:"timestamp"`
}

func toDecimal128(d decimal.Decimal) (primitive.Decimal128, error) {
	text := d.String()
	if d.Exponent() < 0 {
		// keep the scale, String drops trailing zeros
		text = d.StringFixed(-d.Exponent())
	}
	v, err := primitive.ParseDecimal128(text)
	if err != nil {
		return primitive.Decimal128{}, fmt.Errorf("encode decimal %s: %w", d, err)
	}
	return v, nil
}

func fromDecimal128(v primitive.Decimal128) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(v.String())
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("decode decimal %s: %w", v, err)
	}
	return d, nil
}

func newOrderDocument(o domain.Order) (orderDocument, error) {
	total, err := toDecimal128(o.Total)
	if err != nil {
		return orderDocument{}, err
	}
	items := make([]lineDocument, 0, len(o.Items))
	for _, l := range o.Items {
		price, err := toDecimal128(l.Price)
		if err != nil {
			return orderDocument{}, err
		}
		items = append(items, lineDocument{
			ProductID: l.ProductID,
			Name:      l.Name,
			Price:     price,
			Image:     l.Image,
			Quantity:  l.Quantity,
		})
	}
	return orderDocument{
		ID:            o.ID,
		Customer:      o.Customer,
		Items:         items,
		Total:         total,
		Status:        string(o.Status),
		PaymentStatus: string(o.PaymentStatus),
		CreatedAt:     o.CreatedAt,
	}, nil
}

func (d orderDocument) toDomain() (domain.Order, error) {
	total, err := fromDecimal128(d.Total)
	if err != nil {
		return domain.Order{}, err
	}
	items := make([]domain.CartLineItem, 0, len(d.Items))
	for _, l := range d.Items {
		price, err := fromDecimal128(l.Price)
		if err != nil {
			return domain.Order{}, err
		}
		items = append(items, domain.CartLineItem{
			ProductID: l.ProductID,
			Name:      l.Name,
			Price:     price,
			Image:     l.Image,
			Quantity:  l.Quantity,
		})
	}
	return domain.Order{
		ID:            d.ID,
		Customer:      d.Customer,
		Items:         items,
		Total:         total,
		Status:        domain.OrderStatus(d.Status),
		PaymentStatus: domain.PaymentStatus(d.PaymentStatus),
		CreatedAt:     d.CreatedAt.UTC(),
	}, nil
}
