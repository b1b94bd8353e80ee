package httpapi

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"lumiere-backend/internal/catalog"
)

// @Summary API banner
// @Tags meta
// @Produce json
// @Success 200 {object} map[string]string
// @Router /api/ [get]
func (s *Server) root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "Lumière Furniture API"})
}

// @Summary List products
// @Tags products
// @Produce json
// @Param category query string false "Category id, or all"
// @Param min_price query number false "Inclusive lower price bound"
// @Param max_price query number false "Inclusive upper price bound"
// @Param search query string false "Case-insensitive match on name or description"
// @Param featured query bool false "Featured flag"
// @Success 200 {array} domain.Product
// @Failure 400 {object} map[string]string
// @Router /api/products [get]
func (s *Server) listProducts(c *gin.Context) {
	f := catalog.Filter{
		Category: c.Query("category"),
		Search:   c.Query("search"),
	}
	var err error
	if f.MinPrice, err = queryDecimal(c, "min_price"); err != nil {
		badRequest(c, "invalid min_price")
		return
	}
	if f.MaxPrice, err = queryDecimal(c, "max_price"); err != nil {
		badRequest(c, "invalid max_price")
		return
	}
	if v, ok := c.GetQuery("featured"); ok && v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			badRequest(c, "invalid featured")
			return
		}
		f.Featured = &b
	}
	c.JSON(http.StatusOK, s.catalog.List(f))
}

// @Summary List featured products
// @Tags products
// @Produce json
// @Param limit query int false "Maximum number of products" default(6)
// @Success 200 {array} domain.Product
// @Failure 400 {object} map[string]string
// @Router /api/products/featured [get]
func (s *Server) featuredProducts(c *gin.Context) {
	limit := catalog.DefaultFeaturedLimit
	if v := c.Query("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			badRequest(c, "invalid limit")
			return
		}
		limit = n
	}
	c.JSON(http.StatusOK, s.catalog.Featured(limit))
}

// @Summary Get product by id
// @Tags products
// @Produce json
// @Param id path string true "Product ID"
// @Success 200 {object} domain.Product
// @Failure 404 {object} map[string]string
// @Router /api/products/{id} [get]
func (s *Server) getProduct(c *gin.Context) {
	p, err := s.catalog.Get(c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

// @Summary List categories
// @Tags products
// @Produce json
// @Success 200 {array} domain.Category
// @Router /api/categories [get]
func (s *Server) listCategories(c *gin.Context) {
	c.JSON(http.StatusOK, s.catalog.Categories())
}

func queryDecimal(c *gin.Context, key string) (*decimal.Decimal, error) {
	v := c.Query(key)
	if v == "" {
		return nil, nil
	}
	d, err := decimal.NewFromString(v)
	if err != nil {
		return nil, err
	}
	return &d, nil
}
