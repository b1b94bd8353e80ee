package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"lumiere-backend/internal/domain"
	"lumiere-backend/internal/logging"
	"lumiere-backend/internal/payment"
)

type createOrderReq struct {
	Customer domain.CustomerDetails `json:"customer"`
	CartID   string                 `json:"cart_id" binding:"required"`
}

// @Summary Place an order from a cart
// @Description Persists the order, then empties the cart.
// @Tags orders
// @Accept json
// @Produce json
// @Param input body createOrderReq true "Order"
// @Success 200 {object} domain.Order
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /api/orders [post]
func (s *Server) createOrder(c *gin.Context) {
	var req createOrderReq
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid input")
		return
	}
	o, err := s.orders.PlaceOrder(c.Request.Context(), req.CartID, req.Customer)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, o)
}

// @Summary Get order by id
// @Tags orders
// @Produce json
// @Param id path string true "Order ID"
// @Success 200 {object} domain.Order
// @Failure 404 {object} map[string]string
// @Router /api/orders/{id} [get]
func (s *Server) getOrder(c *gin.Context) {
	o, err := s.orders.GetOrder(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, o)
}

// @Summary Create payment order (disabled)
// @Tags payment
// @Accept json
// @Produce json
// @Param input body payment.CreateOrderRequest true "Payment order"
// @Success 200 {object} payment.CreateOrderResponse
// @Failure 400 {object} map[string]string
// @Router /api/payment/create-order [post]
func (s *Server) createPaymentOrder(c *gin.Context) {
	var req payment.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid input")
		return
	}
	resp, err := s.payments.CreateOrder(c.Request.Context(), req)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// @Summary Verify payment (disabled)
// @Tags payment
// @Produce json
// @Param razorpay_order_id query string false "Gateway order id"
// @Param razorpay_payment_id query string false "Gateway payment id"
// @Param razorpay_signature query string false "Gateway signature"
// @Param order_id query string false "Order ID"
// @Success 200 {object} payment.VerifyResponse
// @Router /api/payment/verify [post]
func (s *Server) verifyPayment(c *gin.Context) {
	var req payment.VerifyRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		logging.FromContext(c.Request.Context()).Debug("payment verify: unreadable query", zap.Error(err))
	}
	resp, err := s.payments.Verify(c.Request.Context(), req)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

type createStatusCheckReq struct {
	ClientName string `json:"client_name"`
}

// @Summary Record a status check
// @Tags status
// @Accept json
// @Produce json
// @Param input body createStatusCheckReq true "Status check"
// @Success 200 {object} domain.StatusCheck
// @Failure 400 {object} map[string]string
// @Router /api/status [post]
func (s *Server) createStatusCheck(c *gin.Context) {
	var req createStatusCheckReq
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid input")
		return
	}
	check, err := s.status.Record(c.Request.Context(), req.ClientName)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, check)
}

// @Summary List status checks
// @Tags status
// @Produce json
// @Success 200 {array} domain.StatusCheck
// @Router /api/status [get]
func (s *Server) listStatusChecks(c *gin.Context) {
	checks, err := s.status.List(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, checks)
}
