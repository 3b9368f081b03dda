package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/schollz/progressbar/v3"

	"github.com/broomworks/leadgen-backend/internal/logger"
	"github.com/broomworks/leadgen-backend/internal/repos"
	"github.com/broomworks/leadgen-backend/internal/services"
	"github.com/broomworks/leadgen-backend/internal/types"
	"github.com/broomworks/leadgen-backend/internal/utils"
)

type runConfig struct {
	concurrency    int
	timeoutSeconds int
}

func loadRunConfig(log *logger.Logger) runConfig {
	return runConfig{
		concurrency:    utils.GetEnvAsInt("GEN_CONCURRENCY", 8, log),
		timeoutSeconds: utils.GetEnvAsInt("GEN_TIMEOUT_SECONDS", 300, log),
	}
}

func runGenerate(log *logger.Logger, cfg runConfig, customerRepo repos.CustomerRepo, generator *services.GeneratorService, customerName string) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.timeoutSeconds)*time.Second)
	defer cancel()

	var customerIDs []uuid.UUID
	if customerName != "" {
		customer, err := customerRepo.GetByName(ctx, nil, customerName)
		if err != nil {
			log.Error("Customer not found", "customer", customerName, "error", err)
			os.Exit(1)
		}
		customerIDs = []uuid.UUID{customer.ID}
	} else {
		ids, err := customerRepo.GetAllIDs(ctx, nil)
		if err != nil {
			log.Error("Failed to list customers", "error", err)
			os.Exit(1)
		}
		customerIDs = ids
	}

	if len(customerIDs) == 0 {
		fmt.Println("No customers to process.")
		return
	}

	bar := progressbar.Default(int64(len(customerIDs)))
	summary, err := generator.GenerateAll(ctx, customerIDs, cfg.concurrency,
		func(types.CustomerGenerationResult) { _ = bar.Add(1) })
	if err != nil {
		log.Error("Lead generation batch aborted", "error", err)
		os.Exit(1)
	}

	fmt.Printf("Lead Generation Complete: %d new leads, %d redundant, %d insufficient history, %d failed\n",
		summary.Generated, summary.Redundant, summary.Insufficient, summary.Failed)
	for _, result := range summary.Results {
		if result.Outcome == types.OutcomeFailed {
			fmt.Printf("  failed %s: %s\n", result.CustomerID, result.Error)
		}
	}
}

// loadProductNames maps product IDs to display names for report output. The
// map is always usable; on error it is simply empty.
func loadProductNames(ctx context.Context, productRepo repos.ProductRepo) (map[uuid.UUID]string, error) {
	productNames := map[uuid.UUID]string{}
	products, err := productRepo.GetAll(ctx, nil)
	if err != nil {
		return productNames, err
	}
	for _, p := range products {
		productNames[p.ID] = p.Name
	}
	return productNames, nil
}

func runReport(log *logger.Logger, leadService *services.LeadService, productRepo repos.ProductRepo, productName string, sinceDays int, urgency string) {
	ctx := context.Background()

	var leads []*types.Lead
	var err error
	switch {
	case urgency != "":
		leads, err = leadService.ActiveByUrgency(ctx, urgency)
	default:
		leads, err = leadService.ActiveByProduct(ctx, productName, sinceDays)
	}
	if err != nil {
		log.Error("Report query failed", "error", err)
		os.Exit(1)
	}

	productNames, err := loadProductNames(ctx, productRepo)
	if err != nil {
		// Degrade to UUID-only output, but loudly.
		log.Warn("Failed to load product names for report, falling back to IDs", "error", err)
	}

	fmt.Printf("%d open leads\n", len(leads))
	for _, lead := range leads {
		name := productNames[lead.ProductInterest]
		if name == "" {
			name = lead.ProductInterest.String()
		}
		fmt.Printf("%s ; customer=%s ; product=%s ; predicted=%s ; urgency=%s ; status=%s\n",
			lead.ID, lead.CustomerID, name,
			lead.PredictedNextPurchase.Format("2006-01-02"), lead.UrgencyTier, lead.Status)
	}
}
