package payment

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDisabledGateway_CreateOrder(t *testing.T) {
	tests := []struct {
		name         string
		req          CreateOrderRequest
		wantCurrency string
	}{
		{"default currency", CreateOrderRequest{Amount: 7599900, OrderID: "o-1"}, "INR"},
		{"explicit currency", CreateOrderRequest{Amount: 100, Currency: "USD", OrderID: "o-2"}, "USD"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := DisabledGateway{}.CreateOrder(context.Background(), tt.req)
			require.NoError(t, err)
			assert.Equal(t, "Payment integration not enabled", resp.Message)
			assert.Equal(t, tt.req.OrderID, resp.OrderID)
			assert.Equal(t, tt.req.Amount, resp.Amount)
			assert.Equal(t, tt.wantCurrency, resp.Currency)
		})
	}
}

func TestDisabledGateway_Verify(t *testing.T) {
	resp, err := DisabledGateway{}.Verify(context.Background(), VerifyRequest{OrderID: "o-1", Signature: "bogus"})
	require.NoError(t, err)
	assert.Equal(t, "Payment verification not enabled", resp.Message)
}
