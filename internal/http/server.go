package httpapi

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	"lumiere-backend/internal/cart"
	"lumiere-backend/internal/catalog"
	"lumiere-backend/internal/order"
	"lumiere-backend/internal/payment"
	"lumiere-backend/internal/status"
)

// Pinger reports whether the backing store is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

type Deps struct {
	Catalog  *catalog.Catalog
	Carts    cart.Store
	Orders   *order.Service
	Status   *status.Service
	Payments payment.Gateway
	// Ready is optional; without it readiness always succeeds.
	Ready Pinger

	Logger         *zap.Logger
	CORSOrigins    []string
	RequestTimeout time.Duration
}

type Server struct {
	engine   *gin.Engine
	catalog  *catalog.Catalog
	carts    cart.Store
	orders   *order.Service
	status   *status.Service
	payments payment.Gateway
	ready    Pinger
	log      *zap.Logger
}

func NewServer(d Deps) *Server {
	if d.Logger == nil {
		d.Logger = zap.NewNop()
	}
	if d.Payments == nil {
		d.Payments = payment.DisabledGateway{}
	}

	r := gin.New()
	r.Use(
		gin.Recovery(),
		RequestLogger(d.Logger),
		cors.New(corsConfig(d.CORSOrigins)),
		Timeout(d.RequestTimeout),
	)

	s := &Server{
		engine:   r,
		catalog:  d.Catalog,
		carts:    d.Carts,
		orders:   d.Orders,
		status:   d.Status,
		payments: d.Payments,
		ready:    d.Ready,
		log:      d.Logger,
	}
	s.registerRoutes()
	return s
}

func (s *Server) Engine() *gin.Engine { return s.engine }

func (s *Server) registerRoutes() {
	s.engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	s.engine.GET("/health/live", s.live)
	s.engine.GET("/health/ready", s.readyz)

	api := s.engine.Group("/api")
	{
		api.GET("/", s.root)

		api.GET("/products", s.listProducts)
		api.GET("/products/featured", s.featuredProducts)
		api.GET("/products/:id", s.getProduct)
		api.GET("/categories", s.listCategories)

		carts := api.Group("/cart")
		carts.POST("/create", s.createCart)
		carts.GET("/:id", s.getCart)
		carts.POST("/:id/add", s.addToCart)
		carts.POST("/:id/remove", s.removeFromCart)
		carts.POST("/:id/update", s.updateCart)

		api.POST("/orders", s.createOrder)
		api.GET("/orders/:id", s.getOrder)

		api.POST("/payment/create-order", s.createPaymentOrder)
		api.POST("/payment/verify", s.verifyPayment)

		api.POST("/status", s.createStatusCheck)
		api.GET("/status", s.listStatusChecks)
	}
}

func corsConfig(origins []string) cors.Config {
	cfg := cors.Config{
		AllowMethods:  []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Authorization", requestIDHeader},
		ExposeHeaders: []string{requestIDHeader},
		MaxAge:        12 * time.Hour,
	}
	allowAll := len(origins) == 0
	for _, o := range origins {
		allowAll = allowAll || o == "*"
	}
	if allowAll {
		cfg.AllowAllOrigins = true
		return cfg
	}
	// credentials are only allowed with an explicit origin list
	cfg.AllowOrigins = origins
	cfg.AllowCredentials = true
	return cfg
}

// @Summary Liveness probe
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health/live [get]
func (s *Server) live(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// @Summary Readiness probe
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Failure 503 {object} map[string]string
// @Router /health/ready [get]
func (s *Server) readyz(c *gin.Context) {
	if s.ready != nil {
		if err := s.ready.Ping(c.Request.Context()); err != nil {
			s.log.Warn("readiness check failed", zap.Error(err))
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable"})
			return
		}
	}
	c.JSON(http.StatusOK, gin.H{"status": "ready"})
}
