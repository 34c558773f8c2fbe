package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"yellowball/api/routes"
	"yellowball/internal/config"
	"yellowball/internal/handlers"
	"yellowball/internal/services"
	"yellowball/pkg/nylottery"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize the results client and services
	resultsClient := nylottery.NewClient(cfg.Results.BaseURL, cfg.Results.Mock)
	var resultsService services.ResultsService = services.NewResultsService(resultsClient)
	ticketService := services.NewTicketService()

	// Initialize handlers
	ticketHandler := handlers.NewTicketHandler(ticketService, resultsService)

	handlerDeps := routes.HandlerDependencies{
		TicketHandler: ticketHandler,
	}

	router := routes.SetupRouter(cfg, handlerDeps)

	srv := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: router,
	}

	log.Printf("Server starting on port %s", cfg.Server.Port)

	// Run server in a goroutine so that it doesn't block
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown: ", err)
	}

	log.Println("Server exiting")
}
