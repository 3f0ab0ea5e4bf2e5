package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"havenhotel/config"
	"havenhotel/database"
	"havenhotel/database/repository"
	"havenhotel/handlers"
	"havenhotel/routes"
	"havenhotel/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	client, err := database.Connect(config.AppConfig.DatabaseURL)
	if err != nil {
		logger.Sugar().Fatalf("main: %v", err)
	}
	db := client.Database(config.AppConfig.DatabaseName)

	tokens := utils.NewTokenManager(
		config.AppConfig.JWTSecret,
		time.Duration(config.AppConfig.TokenTTLMinutes)*time.Minute,
	)

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())

	hb := &routes.HandlerBundle{
		Auth:     handlers.NewAuthHandler(tokens),
		Rooms:    handlers.NewRoomHandler(repository.NewMongoRoomRepo(db)),
		Bookings: handlers.NewBookingHandler(repository.NewMongoBookingRepo(db)),
		Reviews:  handlers.NewReviewHandler(repository.NewMongoReviewRepo(db)),
		Tokens:   tokens,
	}
	routes.RegisterRoutes(router, hb)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
