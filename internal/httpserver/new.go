package httpserver

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	pkgConfig "schedlink/config"
	"schedlink/internal/availability"
	"schedlink/internal/booking"
	"schedlink/internal/settings"
	"schedlink/pkg/log"
	"schedlink/pkg/ownertoken"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string

	// Auth and throttling
	adminAPIKey string
	rateLimit   pkgConfig.RateLimitConfig

	// Domains
	settingsUC     settings.UseCase
	availabilityUC availability.UseCase
	bookingUC      booking.UseCase
	tokenResolver  *ownertoken.Resolver
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      log.Logger
	Port        int
	Mode        string
	Environment string

	AdminAPIKey string
	RateLimit   pkgConfig.RateLimitConfig

	SettingsUC     settings.UseCase
	AvailabilityUC availability.UseCase
	BookingUC      booking.UseCase
	TokenResolver  *ownertoken.Resolver
}

// New creates a new HTTPServer instance.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:              logger,
		gin:            gin.New(),
		port:           cfg.Port,
		mode:           cfg.Mode,
		environment:    cfg.Environment,
		adminAPIKey:    cfg.AdminAPIKey,
		rateLimit:      cfg.RateLimit,
		settingsUC:     cfg.SettingsUC,
		availabilityUC: cfg.AvailabilityUC,
		bookingUC:      cfg.BookingUC,
		tokenResolver:  cfg.TokenResolver,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.settingsUC == nil || srv.availabilityUC == nil || srv.bookingUC == nil {
		return errors.New("all domain usecases are required")
	}
	if srv.tokenResolver == nil {
		return errors.New("token resolver is required")
	}
	return nil
}

// Run maps the handlers and serves until ctx is canceled, then shuts down
// gracefully.
func (srv *HTTPServer) Run(ctx context.Context) error {
	if err := srv.mapHandlers(); err != nil {
		return err
	}

	httpSrv := &http.Server{
		Addr:    fmt.Sprintf(":%d", srv.port),
		Handler: srv.gin,
	}

	errCh := make(chan error, 1)
	go func() {
		srv.l.Infof(ctx, "HTTP server listening on %s (%s)", httpSrv.Addr, srv.environment)
		if err := httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return httpSrv.Shutdown(shutdownCtx)
}
