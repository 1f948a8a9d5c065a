package routes

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	_ "vendor_registration/docs"
	"vendor_registration/internal/adapter/http/handlers"
	"vendor_registration/internal/adapter/http/middleware"
	"vendor_registration/internal/config"
	"vendor_registration/pkg/logger"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

const (
	shutdownTimeout = 30 * time.Second
	// Multipart bodies carry every file plus form fields.
	multipartOverhead = 1 << 20
)

// Handlers are the HTTP entry points mounted by NewRouter.
type Handlers struct {
	Registration *handlers.VendorRegistrationHandler
	Health       *handlers.HealthHandler
}

// NewRouter builds the gin engine with the middleware chain and every route.
func NewRouter(cfg *config.Config, h Handlers) *gin.Engine {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.MaxMultipartMemory = maxBodyBytes(cfg)
	router.Use(
		middleware.RequestID(),
		middleware.RequestLogger(),
		middleware.Recovery(),
		middleware.CORS(cfg.AllowedOrigins),
	)

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := router.Group(PathAPI)
	addRegistrationRoutes(api, h.Registration, h.Health)

	return router
}

// Run wires the application, serves HTTP and shuts down gracefully on
// SIGINT/SIGTERM.
func Run(cfg *config.Config) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	app, err := newApplication(ctx, cfg)
	if err != nil {
		return err
	}
	defer app.Close()

	srv := &http.Server{
		Addr:              ":" + strconv.Itoa(cfg.Port),
		Handler:           NewRouter(cfg, app.handlers),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.L().Info("[http][server] listening", zap.String("addr", srv.Addr), zap.String("environment", cfg.Environment))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return err
		}
	case <-ctx.Done():
		logger.L().Info("[http][server] shutting down")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.L().Error("[http][server] graceful shutdown failed", zap.Error(err))
		return err
	}
	logger.L().Info("[http][server] stopped")
	return nil
}

func maxBodyBytes(cfg *config.Config) int64 {
	return cfg.Upload.MaxFileSize*int64(cfg.Upload.MaxFiles) + multipartOverhead
}
