// Package payment holds the checkout payment hook. No gateway is wired yet;
// the default implementation answers without contacting anyone.
package payment

import "context"

const DefaultCurrency = "INR"

type CreateOrderRequest struct {
	// Amount is in paise.
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
	OrderID  string `json:"order_id" binding:"required"`
}

type CreateOrderResponse struct {
	Message  string `json:"message"`
	OrderID  string `json:"order_id"`
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
}

type VerifyRequest struct {
	GatewayOrderID   string `form:"razorpay_order_id" json:"razorpay_order_id"`
	GatewayPaymentID string `form:"razorpay_payment_id" json:"razorpay_payment_id"`
	Signature        string `form:"razorpay_signature" json:"razorpay_signature"`
	OrderID          string `form:"order_id" json:"order_id"`
}

type VerifyResponse struct {
	Message string `json:"message"`
}

type Gateway interface {
	CreateOrder(ctx context.Context, req CreateOrderRequest) (CreateOrderResponse, error)
	Verify(ctx context.Context, req VerifyRequest) (VerifyResponse, error)
}

// DisabledGateway echoes requests back and never touches order state.
type DisabledGateway struct{}

var _ Gateway = DisabledGateway{}

func (DisabledGateway) CreateOrder(_ context.Context, req CreateOrderRequest) (CreateOrderResponse, error) {
	currency := req.Currency
	if currency == "" {
		currency = DefaultCurrency
	}
	return CreateOrderResponse{
		Message:  "Payment integration not enabled",
		OrderID:  req.OrderID,
		Amount:   req.Amount,
		Currency: currency,
	}, nil
}

func (DisabledGateway) Verify(context.Context, VerifyRequest) (VerifyResponse, error) {
	return VerifyResponse{Message: "Payment verification not enabled"}, nil
}
