package main

import (
	"context"
	"fmt"
	"log"
	"net/http"

	"toolrental-backend/internal/cache"
	"toolrental-backend/internal/config"
	"toolrental-backend/internal/database"
	"toolrental-backend/internal/db"
	"toolrental-backend/internal/handlers"
	"toolrental-backend/internal/health"
	h "toolrental-backend/internal/http"
	"toolrental-backend/internal/middleware"
	"toolrental-backend/internal/models"
	"toolrental-backend/internal/repositories"
	"toolrental-backend/internal/services"
)

func main() {
	cfg := config.Load()

	pool := db.Connect(cfg)
	defer pool.Close()

	migrator := database.NewMigrator(pool)
	if err := migrator.RunMigrations(context.Background()); err != nil {
		log.Fatalf("Migrations failed: %v", err)
	}

	// Redis is optional: without it the catalog reads from Postgres
	if err := cache.Init(); err != nil {
		log.Printf("[Cache] Redis unavailable, running without cache: %v", err)
	} else {
		log.Println("[Cache] Redis connected")
	}

	rentalTicket := models.TicketFormat{
		Prefix: cfg.Rental.TicketPrefix,
		Width:  cfg.Rental.TicketWidth,
	}
	serviceTicket := models.TicketFormat{
		Prefix: cfg.Rental.ServiceTicketPrefix,
		Width:  cfg.Rental.TicketWidth,
	}

	// Repositories
	customerRepo := repositories.NewCustomerRepository(pool)
	deviceRepo := repositories.NewDeviceRepository(pool)
	rentalRepo := repositories.NewRentalRepository(pool)
	financialRepo := repositories.NewFinancialRepository(pool)
	serviceRepo := repositories.NewServiceRepository(pool)

	// Services
	customerService := services.NewCustomerService(customerRepo)
	deviceService := services.NewDeviceService(deviceRepo)
	rentalService := services.NewRentalService(rentalRepo, rentalTicket, cfg.Rental.DefaultRentalDays)
	financialService := services.NewFinancialService(financialRepo)
	serviceTicketService := services.NewServiceTicketService(serviceRepo, serviceTicket, cfg.Rental.DefaultTechnician)
	reportService := services.NewReportService(deviceRepo, rentalRepo, financialRepo)

	// Handlers
	customerHandler := handlers.NewCustomerHandler(customerService)
	deviceHandler := handlers.NewDeviceHandler(deviceService)
	rentalHandler := handlers.NewRentalHandler(rentalService, cfg.Company.Name)
	financialHandler := handlers.NewFinancialHandler(financialService)
	serviceHandler := handlers.NewServiceHandler(serviceTicketService)
	reportHandler := handlers.NewReportHandler(reportService)
	healthHandler := handlers.NewHealthHandler(health.NewHealthChecker(pool))

	router := h.NewRouter(customerHandler, deviceHandler, rentalHandler,
		financialHandler, serviceHandler, reportHandler, healthHandler)

	corsMiddleware := middleware.NewCORS(cfg)
	handler := middleware.PanicRecovery(middleware.MetricsMiddleware(corsMiddleware(router)))

	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	log.Printf("Server running on %s", addr)
	if err := http.ListenAndServe(addr, handler); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}
