package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/broomworks/leadgen-backend/internal/clock"
	"github.com/broomworks/leadgen-backend/internal/db"
	"github.com/broomworks/leadgen-backend/internal/logger"
	"github.com/broomworks/leadgen-backend/internal/repos"
	"github.com/broomworks/leadgen-backend/internal/services"
)

func main() {
	mode := flag.String("mode", "generate", "generate | report")
	customerName := flag.String("customer", "", "Restrict generation to a single customer by name")
	productName := flag.String("product", "", "Report: filter leads by product name substring")
	sinceDays := flag.Int("since-days", 0, "Report: only leads created in the last N days")
	urgency := flag.String("urgency", "", "Report: filter leads by urgency tier (High/Medium/Low)")
	flag.Parse()

	// Logger
	logMode := os.Getenv("LOG_MODE")
	if logMode == "" {
		logMode = "development"
	}
	log, err := logger.New(logMode)
	if err != nil {
		fmt.Printf("Failed to init logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	// Database
	dbService, err := db.New(log)
	if err != nil {
		log.Error("Database init failed", "error", err)
		os.Exit(1)
	}
	if err = dbService.AutoMigrateAll(); err != nil {
		log.Error("Auto migration failed", "error", err)
		os.Exit(1)
	}
	database := dbService.DB()

	// Repos
	log.Info("Setting up repos from main...")
	customerRepo := repos.NewCustomerRepo(database, log)
	eventRepo := repos.NewPurchaseEventRepo(database, log)
	leadRepo := repos.NewLeadRepo(database, log)
	productRepo := repos.NewProductRepo(database, log)

	// Services
	log.Info("Setting up services from main...")
	clk := clock.System()
	ledgerService := services.NewLedgerService(database, log, eventRepo, clk)
	generatorService := services.NewGeneratorService(database, log, ledgerService, leadRepo, clk)
	leadService := services.NewLeadService(database, log, leadRepo, clk)

	cfg := loadRunConfig(log)

	switch *mode {
	case "generate":
		runGenerate(log, cfg, customerRepo, generatorService, *customerName)
	case "report":
		runReport(log, leadService, productRepo, *productName, *sinceDays, *urgency)
	default:
		log.Error("Unknown mode", "mode", *mode)
		os.Exit(1)
	}
}
