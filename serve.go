package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/barinistanbul/storefront/auth"
	"github.com/barinistanbul/storefront/blobstore"
	"github.com/barinistanbul/storefront/cart"
	"github.com/barinistanbul/storefront/catalog"
	"github.com/barinistanbul/storefront/controllers"
	"github.com/barinistanbul/storefront/models"
	"github.com/barinistanbul/storefront/statesync"
	"github.com/barinistanbul/storefront/utils"
	"github.com/gin-gonic/gin"
	"github.com/urfave/cli/v2"
	"go.uber.org/zap"
)

const cartSweepInterval = 10 * time.Minute

func serve(c *cli.Context) error {
	cfg, appLogger, err := setup()
	if err != nil {
		return err
	}
	defer appLogger.Sync()

	ctx, stop := signal.NotifyContext(c.Context, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	backend, err := blobstore.Open(ctx, cfg, appLogger)
	if err != nil {
		appLogger.Error("could not open blob store", zap.Error(err))
		return err
	}
	defer func() {
		if err := backend.Close(); err != nil {
			appLogger.Warn("closing blob store", zap.Error(err))
		}
	}()

	initial := models.DefaultAdminData()
	samples := sampleOrders(cfg)
	if samples != nil {
		initial.Orders = samples()
	}
	store := catalog.New(catalog.Options{Initial: &initial})

	syncer := statesync.New(backend.Store, store, statesync.Options{
		Document:     cfg.Blob.Document,
		Debounce:     cfg.Sync.SaveDebounce,
		PushTimeout:  cfg.Sync.PushTimeout,
		SampleOrders: samples,
	}, appLogger)
	defer syncer.Close()

	go func() {
		loadCtx, cancel := context.WithTimeout(ctx, cfg.Sync.LoadTimeout)
		defer cancel()
		syncer.Load(loadCtx)
	}()

	guard, err := auth.NewPasswordGuard(cfg.Auth)
	if err != nil {
		return err
	}
	if cfg.Auth.JWTSecret == "" {
		appLogger.Warn("JWT_SECRET is not set, admin sessions end on restart")
	}

	carts := cart.NewRegistry(cfg.Shop.CartIdleTTL)
	go carts.Run(ctx, cartSweepInterval, appLogger)

	if !cfg.IsDevelopment() {
		gin.SetMode(gin.ReleaseMode)
	}
	router := controllers.NewRouter(controllers.Deps{
		Catalog:        store,
		Sync:           syncer,
		Carts:          carts,
		Checkout:       cart.NewCheckout(store, cfg.Shop.ClearCartOnCheckout),
		Guard:          guard,
		Images:         backend.Images,
		ImageValidator: utils.NewImageValidator(cfg.Upload.MaxSizeMB),
		ImageOptimizer: utils.ImageOptimizer{MaxDimension: cfg.Upload.MaxDimension, JPEGQuality: cfg.Upload.JPEGQuality},
		AllowedOrigins: cfg.Server.AllowedOrigins,
		Log:            appLogger,
	})
	appLogger.Info("allowed origins", zap.Strings("origins", cfg.Server.AllowedOrigins))

	srv := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		appLogger.Info("server listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			appLogger.Error("server stopped", zap.Error(err))
			return err
		}
	case <-ctx.Done():
	}

	appLogger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		appLogger.Warn("http shutdown", zap.Error(err))
	}
	if err := syncer.Flush(shutdownCtx); err != nil {
		appLogger.Error("final save failed", zap.Error(err))
	}
	return nil
}
