package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/jmjubaer/white-black-server/internal/config"
	"github.com/jmjubaer/white-black-server/internal/db"
	"github.com/jmjubaer/white-black-server/internal/httpserver"
	cartrepo "github.com/jmjubaer/white-black-server/internal/repository/cart"
	contactrepo "github.com/jmjubaer/white-black-server/internal/repository/contact"
	contentrepo "github.com/jmjubaer/white-black-server/internal/repository/content"
	orderrepo "github.com/jmjubaer/white-black-server/internal/repository/order"
	postrepo "github.com/jmjubaer/white-black-server/internal/repository/post"
	productrepo "github.com/jmjubaer/white-black-server/internal/repository/product"
	catalogsvc "github.com/jmjubaer/white-black-server/internal/service/catalog"
	ordersvc "github.com/jmjubaer/white-black-server/internal/service/order"
)

func main() {
	cfg := config.FromEnv()
	logger := log.New(os.Stdout, "[api] ", log.LstdFlags|log.LUTC|log.Lshortfile)

	ctx := context.Background()
	dbpool, err := db.Connect(ctx, cfg.DBConnString)
	if err != nil {
		logger.Fatalf("connect to db: %v", err)
	}
	defer dbpool.Close()

	productRepo := productrepo.NewPostgres(dbpool, logger)
	orderRepo := orderrepo.NewPostgres(dbpool, logger)
	cartRepo := cartrepo.NewPostgres(dbpool, logger)
	catalogService := catalogsvc.New(productRepo)
	orderService := ordersvc.New(orderRepo, cartRepo, logger)

	srv, err := httpserver.New(cfg.HTTPAddr, logger, dbpool, httpserver.Deps{
		CatalogSvc:  catalogService,
		OrderSvc:    orderService,
		CartRepo:    cartRepo,
		PostRepo:    postrepo.NewPostgres(dbpool),
		ContentRepo: contentrepo.NewPostgres(dbpool),
		ContactRepo: contactrepo.NewPostgres(dbpool),
	})
	if err != nil {
		logger.Fatalf("init server: %v", err)
	}

	serverErr := make(chan error, 1)
	go func() {
		logger.Printf("starting http server on %s", cfg.HTTPAddr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	stopCh := make(chan os.Signal, 1)
	signal.Notify(stopCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-stopCh:
		logger.Printf("received signal %s, shutting down", sig)
	case err := <-serverErr:
		logger.Printf("server error: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Printf("graceful shutdown failed: %v", err)
	} else {
		logger.Printf("server stopped")
	}
}
