package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	availabilityHTTP "schedlink/internal/availability/delivery/http"
	bookingHTTP "schedlink/internal/booking/delivery/http"
	"schedlink/internal/middleware"
	settingsHTTP "schedlink/internal/settings/delivery/http"
)

func (srv *HTTPServer) setupSettingsDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware) {
	h := settingsHTTP.New(srv.l, srv.settingsUC, srv.tokenResolver)
	settingsHTTP.RegisterRoutes(api, h, mw)
	srv.l.Infof(ctx, "Settings domain registered")
}

func (srv *HTTPServer) setupAvailabilityDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware) {
	h := availabilityHTTP.New(srv.l, srv.availabilityUC)
	availabilityHTTP.RegisterRoutes(api, h, mw)
	srv.l.Infof(ctx, "Availability domain registered")
}

func (srv *HTTPServer) setupBookingDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware) {
	h := bookingHTTP.New(srv.l, srv.bookingUC)
	bookingHTTP.RegisterRoutes(api, h, mw)
	srv.l.Infof(ctx, "Booking domain registered")
}
