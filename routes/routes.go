package routes

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/Prithvi-Rao-879/salon-iq-ai-glow/config"
	"github.com/Prithvi-Rao-879/salon-iq-ai-glow/controllers"
	"github.com/Prithvi-Rao-879/salon-iq-ai-glow/utils"
)

// Router carries everything the HTTP layer needs.
type Router struct {
	AllowedOrigins []string
	JWTSecret      string
	Revocations    utils.RevocationChecker
	Gatherer       prometheus.Gatherer

	Auth      *controllers.AuthController
	Salons    *controllers.SalonController
	Bookings  *controllers.BookingController
	Favorites *controllers.FavoriteController
	Admin     *controllers.AdminController
}

func SetupRouter(rt Router) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	r.Use(cors.New(cors.Config{
		AllowOrigins:     rt.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	r.Use(config.PerformanceLogger())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	gatherer := rt.Gatherer
	if gatherer == nil {
		gatherer = prometheus.DefaultGatherer
	}
	r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})))

	requireAuth := utils.AuthMiddleware(rt.JWTSecret, rt.Revocations)

	auth := r.Group("/auth")
	{
		auth.POST("/signup", rt.Auth.Signup)
		auth.POST("/login", rt.Auth.Login)

		auth.Use(requireAuth)
		auth.POST("/logout", rt.Auth.Logout)
		auth.GET("/me", rt.Auth.Me)
	}

	api := r.Group("/api")
	{
		// Catalog routes are public
		api.GET("/salons", rt.Salons.ListSalons)
		api.GET("/salons/:id", rt.Salons.GetSalon)
		api.GET("/salons/:id/reviews", rt.Salons.ListReviews)
		api.GET("/time-slots", rt.Salons.TimeSlots)

		protected := api.Group("", requireAuth)
		{
			protected.POST("/salons/:id/reviews", rt.Salons.AddReview)

			bookings := protected.Group("/bookings")
			{
				bookings.POST("", rt.Bookings.CreateBooking)
				bookings.GET("", rt.Bookings.ListBookings)
				bookings.DELETE("/:id", rt.Bookings.CancelBooking)
			}

			favorites := protected.Group("/favorites")
			{
				favorites.GET("", rt.Favorites.ListFavorites)
				favorites.POST("/:salonId/toggle", rt.Favorites.ToggleFavorite)
			}

			protected.POST("/admin/setup", rt.Admin.Setup)

			admin := protected.Group("/admin", rt.Admin.RequireAdmin())
			{
				admin.GET("/dashboard", rt.Admin.Dashboard)
				admin.GET("/bookings", rt.Admin.ListBookings)
				admin.PUT("/bookings/:id/status", rt.Admin.UpdateBookingStatus)
			}
		}
	}

	return r
}
