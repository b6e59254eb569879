package api

import (
	stdhttp "net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"travely/internal/config"
	"travely/internal/http/handlers"
	"travely/internal/http/middleware"
	"travely/internal/utils"
)

func NewRouter(env config.Env, a handlers.API) *gin.Engine {
	r := gin.New()
	r.Use(middleware.RequestID(), middleware.Logger(), gin.Recovery(), cors.New(corsConfig(env)))

	if err := r.SetTrustedProxies(nil); err != nil {
		utils.Logger().Warnf("failed to set trusted proxies: %v", err)
	}

	r.NoRoute(func(c *gin.Context) {
		c.JSON(stdhttp.StatusNotFound, gin.H{
			"error":  "route not found",
			"path":   c.Request.URL.Path,
			"method": c.Request.Method,
		})
	})

	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	apiGroup := r.Group("/api")
	apiGroup.Use(middleware.Auth(a.JWTSecret, a.Identity))
	{
		apiGroup.GET("/health", a.Health)

		travel := apiGroup.Group("/travel-options")
		travel.GET("", a.ListTravelOptions)
		travel.GET("/:id", a.GetTravelOption)

		bookings := apiGroup.Group("/bookings")
		bookings.GET("", a.ListBookings)
		bookings.POST("", a.CreateBooking)
		bookings.GET("/:id", a.GetBooking)
		bookings.POST("/:id/cancel", a.CancelBooking)
		bookings.GET("/:id/eticket", a.GetBookingETicket)
		bookings.GET("/:id/receipt", a.GetBookingReceipt)

		auth := apiGroup.Group("/auth")
		auth.POST("/login", a.Login)
		auth.POST("/register", a.Register)
		auth.GET("/me", a.Me)
		auth.POST("/logout", a.Logout)
		auth.PUT("/profile", a.UpdateProfile)
	}

	return r
}

func corsConfig(env config.Env) cors.Config {
	cfg := cors.DefaultConfig()
	cfg.AllowOrigins = env.CORSAllowedOrigins
	cfg.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
	cfg.AllowHeaders = []string{"Content-Type", "Authorization", "Accept", "Origin"}
	cfg.AllowCredentials = true
	cfg.MaxAge = 24 * time.Hour
	return cfg
}
