// main.go

// @title Lumière Furniture API
// @version 1.0
// @description Catalog, cart and order backend for the Lumière storefront.
// @BasePath /
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	_ "lumiere-backend/docs"
	"lumiere-backend/internal/cache"
	"lumiere-backend/internal/cart"
	"lumiere-backend/internal/catalog"
	"lumiere-backend/internal/config"
	"lumiere-backend/internal/events"
	httpapi "lumiere-backend/internal/http"
	"lumiere-backend/internal/logging"
	"lumiere-backend/internal/order"
	"lumiere-backend/internal/payment"
	"lumiere-backend/internal/status"
	"lumiere-backend/internal/storage/mongo"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		// logger level comes from config, so fall back to a default logger here
		zap.NewExample().Fatal("load config", zap.Error(err))
	}

	log, err := logging.New(cfg.LogLevel)
	if err != nil {
		panic(err)
	}
	defer func() { _ = log.Sync() }()
	zap.ReplaceGlobals(log)

	if err := run(cfg, log); err != nil {
		log.Fatal("server stopped", zap.Error(err))
	}
}

func run(cfg *config.Config, log *zap.Logger) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	db, err := mongo.ConnectMongoDB(ctx, cfg.MongoURL, cfg.DBName)
	if err == nil {
		err = mongo.EnsureIndexes(ctx, db)
	}
	cancel()
	if err != nil {
		return err
	}
	log.Info("connected to MongoDB", zap.String("db", cfg.DBName))
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := db.Client().Disconnect(ctx); err != nil {
			log.Warn("mongo disconnect", zap.Error(err))
		}
	}()

	var opts []order.Option
	if cfg.RedisAddr != "" {
		rdb := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		defer rdb.Close()
		if err := rdb.Ping(context.Background()).Err(); err != nil {
			// the cache is optional; order reads fall through to mongo
			log.Warn("redis unreachable, order cache degraded", zap.String("addr", cfg.RedisAddr), zap.Error(err))
		}
		opts = append(opts, order.WithCache(cache.NewOrderCache(rdb, cfg.OrderCacheTTL)))
	}
	if len(cfg.KafkaBrokers) > 0 {
		pub := events.NewKafkaPublisher(log, cfg.KafkaOrderTopic, cfg.KafkaBrokers...)
		defer pub.Close()
		opts = append(opts, order.WithPublisher(pub))
		log.Info("publishing order events", zap.String("topic", cfg.KafkaOrderTopic), zap.Strings("brokers", cfg.KafkaBrokers))
	}

	products := catalog.New()
	carts := cart.NewMemoryStore(products)

	srv := httpapi.NewServer(httpapi.Deps{
		Catalog:        products,
		Carts:          carts,
		Orders:         order.NewService(carts, mongo.NewOrders(db), opts...),
		Status:         status.NewService(mongo.NewStatusChecks(db)),
		Payments:       payment.DisabledGateway{},
		Ready:          mongo.NewPinger(db),
		Logger:         log,
		CORSOrigins:    cfg.CORSOrigins,
		RequestTimeout: cfg.RequestTimeout,
	})

	httpServer := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           srv.Engine(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("HTTP server listening", zap.String("addr", httpServer.Addr))
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	select {
	case err := <-errCh:
		return err
	case sig := <-quit:
		log.Info("shutting down", zap.String("signal", sig.String()))
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Error("shutdown error", zap.Error(err))
	}
	return nil
}
