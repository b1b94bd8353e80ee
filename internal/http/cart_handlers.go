package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"lumiere-backend/internal/domain"
)

// @Summary Create an empty cart
// @Tags cart
// @Produce json
// @Success 200 {object} domain.Cart
// @Router /api/cart/create [post]
func (s *Server) createCart(c *gin.Context) {
	c.JSON(http.StatusOK, s.carts.Create(c.Request.Context()))
}

// @Summary Get cart
// @Tags cart
// @Produce json
// @Param id path string true "Cart ID"
// @Success 200 {object} domain.Cart
// @Failure 404 {object} map[string]string
// @Router /api/cart/{id} [get]
func (s *Server) getCart(c *gin.Context) {
	cart, err := s.carts.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, cart)
}

// @Summary Add product to cart
// @Tags cart
// @Accept json
// @Produce json
// @Param id path string true "Cart ID"
// @Param input body domain.CartItem true "Item; quantity defaults to 1"
// @Success 200 {object} domain.Cart
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /api/cart/{id}/add [post]
func (s *Server) addToCart(c *gin.Context) {
	item, ok := bindCartItem(c)
	if !ok {
		return
	}
	cart, err := s.carts.Add(c.Request.Context(), c.Param("id"), item.ProductID, item.QuantityOrDefault())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, cart)
}

// @Summary Remove product from cart
// @Tags cart
// @Produce json
// @Param id path string true "Cart ID"
// @Param product_id query string true "Product ID"
// @Success 200 {object} domain.Cart
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /api/cart/{id}/remove [post]
func (s *Server) removeFromCart(c *gin.Context) {
	productID := c.Query("product_id")
	if productID == "" {
		badRequest(c, "product_id is required")
		return
	}
	cart, err := s.carts.Remove(c.Request.Context(), c.Param("id"), productID)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, cart)
}

// @Summary Set quantity of a cart line
// @Description A quantity of zero or less removes the line.
// @Tags cart
// @Accept json
// @Produce json
// @Param id path string true "Cart ID"
// @Param input body domain.CartItem true "Item"
// @Success 200 {object} domain.Cart
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /api/cart/{id}/update [post]
func (s *Server) updateCart(c *gin.Context) {
	item, ok := bindCartItem(c)
	if !ok {
		return
	}
	cart, err := s.carts.Update(c.Request.Context(), c.Param("id"), item.ProductID, item.QuantityOrDefault())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, cart)
}

func bindCartItem(c *gin.Context) (domain.CartItem, bool) {
	var item domain.CartItem
	if err := c.ShouldBindJSON(&item); err != nil {
		badRequest(c, "invalid input")
		return item, false
	}
	if item.ProductID == "" {
		badRequest(c, "product_id is required")
		return item, false
	}
	return item, true
}
