package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"hotels-api/config"
	"hotels-api/controllers"
	"hotels-api/routes"
	"hotels-api/services"
	"hotels-api/utils"
)

func main() {
	// .env is optional; real deployments set environment variables directly.
	if err := godotenv.Load(); err != nil {
		log.Println(".env not found, continuing with environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config load failed: %v", err)
	}

	logger, err := utils.NewLogger(cfg.IsProduction(), cfg.LogLevel)
	if err != nil {
		log.Fatalf("logger init failed: %v", err)
	}
	defer logger.Sync()

	db, err := config.ConnectDatabase(cfg)
	if err != nil {
		logger.Fatal("database connect failed", zap.Error(err))
	}
	logger.Info("database connection established")

	pricing := services.NewCostCalculator(cfg.PricingMode, cfg.FlatReservationCost)

	hotelService := services.NewHotelService(db)
	roomService := services.NewRoomService(db)
	reservationService := services.NewReservationService(db, pricing, logger)
	guestService := services.NewGuestService(db)

	hotelController := controllers.NewHotelController(hotelService, logger)
	roomController := controllers.NewRoomController(roomService, logger)
	reservationController := controllers.NewReservationController(reservationService, logger)
	guestController := controllers.NewGuestController(guestService, logger)

	router := routes.SetupRouter(
		hotelController,
		roomController,
		reservationController,
		guestController,
		logger,
		cfg.CORSOrigins,
	)

	addr := ":" + cfg.AppPort
	srv := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadTimeout:       10 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      20 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		logger.Info("server starting", zap.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("listen failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	logger.Info("shutdown signal received")

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Fatal("forced shutdown", zap.Error(err))
	}

	logger.Info("server stopped gracefully")
}
