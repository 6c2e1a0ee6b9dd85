package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/Prithvi-Rao-879/salon-iq-ai-glow/catalog"
	"github.com/Prithvi-Rao-879/salon-iq-ai-glow/config"
	"github.com/Prithvi-Rao-879/salon-iq-ai-glow/controllers"
	"github.com/Prithvi-Rao-879/salon-iq-ai-glow/models"
	"github.com/Prithvi-Rao-879/salon-iq-ai-glow/pkg/logging"
	"github.com/Prithvi-Rao-879/salon-iq-ai-glow/repository"
	"github.com/Prithvi-Rao-879/salon-iq-ai-glow/routes"
	"github.com/Prithvi-Rao-879/salon-iq-ai-glow/services"
)

func main() {
	cfg := config.Load()
	logging.Setup(cfg.LogLevel)
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	if err := run(cfg); err != nil {
		slog.Error("server stopped", "error", err)
		os.Exit(1)
	}
}

func run(cfg *config.Config) error {
	if err := cfg.EnsureJWTSecret(); err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := config.ConnectDB(cfg.DatabaseURL)
	if err != nil {
		return err
	}
	if err := db.AutoMigrate(
		&models.Profile{},
		&models.UserRole{},
		&models.ManagedSalon{},
		&models.Booking{},
	); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}

	rdb, err := config.ConnectRedis(ctx, cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
	if err != nil {
		return err
	}
	defer rdb.Close()

	loc := cfg.Location()
	salons := catalog.Default()
	metrics := services.NewMetrics(prometheus.DefaultRegisterer)

	bookingRepo := repository.NewBookingRepository(db)
	accountRepo := repository.NewAccountRepository(db)
	sessionRepo := repository.NewSessionRepository(rdb)

	views := services.NewBookingViews(salons, bookingRepo, services.BookingViewsConfig{
		Location:            loc,
		AverageServicePrice: cfg.AverageServicePrice,
		PointsPerVisit:      cfg.LoyaltyPointsPerVisit,
	})

	scheduler := services.NewStatsScheduler(bookingRepo, metrics)
	if err := scheduler.Start(cfg.StatsRefreshSchedule); err != nil {
		return fmt.Errorf("stats scheduler: %w", err)
	}
	defer scheduler.Stop()

	r := routes.SetupRouter(routes.Router{
		AllowedOrigins: cfg.AllowedOrigins,
		JWTSecret:      cfg.JWTSecret,
		Revocations:    sessionRepo,
		Gatherer:       prometheus.DefaultGatherer,
		Auth: &controllers.AuthController{
			Accounts:     accountRepo,
			Sessions:     sessionRepo,
			Secret:       cfg.JWTSecret,
			TokenTTL:     cfg.TokenTTL(),
			SecureCookie: cfg.Env == "production",
		},
		Salons: &controllers.SalonController{
			Catalog: salons,
			Reviews: services.NewReviewService(salons, repository.NewReviewRepository(rdb)),
		},
		Bookings: &controllers.BookingController{
			Bookings: services.NewBookingService(
				salons,
				bookingRepo,
				services.NewHTTPReserver(cfg.ReservationURL, cfg.ReservationTimeout),
				metrics,
				loc,
			),
			Views: views,
		},
		Favorites: &controllers.FavoriteController{
			Favorites: services.NewFavoriteService(salons, repository.NewFavoriteRepository(rdb)),
		},
		Admin: &controllers.AdminController{
			Accounts: accountRepo,
			Views:    views,
		},
	})
	printRoutes(r)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("server listening", "port", cfg.Port, "env", cfg.Env)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			return err
		}
	case <-ctx.Done():
		slog.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown: %w", err)
		}
	}
	return nil
}

func printRoutes(r *gin.Engine) {
	routes := r.Routes()
	for _, route := range routes {
		fmt.Printf("%-6s %s\n", route.Method, route.Path)
	}
}
