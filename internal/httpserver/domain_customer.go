package httpserver

import (
	"context"
	"fmt"

	customerHTTP "cseboard/internal/customer/delivery/http"
	"cseboard/internal/customer/repository/sqlstore"
	customerUC "cseboard/internal/customer/usecase"
	"cseboard/internal/middleware"
)

// setupCustomerDomain wires the customer record store and registers its routes.
func (srv HTTPServer) setupCustomerDomain(ctx context.Context, mw middleware.Middleware) error {
	// 1. Repository
	repo, err := sqlstore.New(srv.db, srv.l, sqlstore.Options{
		Driver:  srv.dbDriver,
		Table:   srv.table,
		Metrics: srv.metrics,
	})
	if err != nil {
		return fmt.Errorf("customer repository: %w", err)
	}

	// 2. UseCase
	uc := customerUC.New(repo, srv.l, customerUC.Options{
		CacheSize: srv.cache.Size,
		CacheTTL:  srv.cache.TTL,
		Metrics:   srv.metrics,
	})

	// 3. HTTP Handler
	h := customerHTTP.New(srv.l, uc)

	// 4. Routes: /api/Org, /api/customer/:Org, /api/saveData and /api/v1/...
	customerHTTP.RegisterLegacyRoutes(srv.gin.Group("/api"), h, mw.RateLimit())
	customerHTTP.RegisterRoutes(srv.gin.Group("/api/v1"), h, mw.RateLimit())

	srv.l.Infof(ctx, "Customer domain registered (driver=%s)", srv.dbDriver)
	return nil
}
