package main

import (
	"context"
	"flag"
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/schollz/progressbar/v3"

	"github.com/broomworks/leadgen-backend/internal/clock"
	"github.com/broomworks/leadgen-backend/internal/db"
	"github.com/broomworks/leadgen-backend/internal/logger"
	"github.com/broomworks/leadgen-backend/internal/repos"
	"github.com/broomworks/leadgen-backend/internal/services"
	"github.com/broomworks/leadgen-backend/internal/types"
	"github.com/broomworks/leadgen-backend/internal/utils"
)

var sampleProducts = []struct {
	name     string
	category string
}{
	{"Honda CBR 150", "Motorcycle"},
	{"Honda Vario 160", "Motorcycle"},
	{"Honda PCX 160", "Motorcycle"},
	{"Honda ADV 160", "Motorcycle"},
	{"Honda Beat", "Motorcycle"},
	{"Honda Scoopy", "Motorcycle"},
	{"Yamaha NMAX", "Motorcycle"},
	{"Yamaha Aerox", "Motorcycle"},
	{"Yamaha R15", "Motorcycle"},
	{"Suzuki GSX-R150", "Motorcycle"},
}

// Populates the store with synthetic customers and purchase histories so the
// generator has something to chew on. Purchases go through the ledger service
// rather than raw inserts, so ingestion validation is exercised too.
func main() {
	customerCount := flag.Int("customers", 360, "Number of synthetic customers to create")
	seed := flag.Int64("seed", time.Now().UnixNano(), "RNG seed")
	flag.Parse()

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

	customerRepo := repos.NewCustomerRepo(database, log)
	eventRepo := repos.NewPurchaseEventRepo(database, log)
	productRepo := repos.NewProductRepo(database, log)
	ledgerService := services.NewLedgerService(database, log, eventRepo, clock.System())

	ctx := context.Background()
	rng := rand.New(rand.NewSource(*seed))

	log.Info("Inserting products...")
	products := make([]*types.Product, 0, len(sampleProducts))
	for _, sample := range sampleProducts {
		product, err := productRepo.GetOrCreateByName(ctx, nil, &types.Product{
			Name:     sample.name,
			Category: sample.category,
			Price:    float64(15000000 + rng.Intn(30000001)),
		})
		if err != nil {
			log.Error("Failed to insert product", "product", sample.name, "error", err)
			os.Exit(1)
		}
		products = append(products, product)
	}

	log.Info("Generating customers with purchase history...", "count", *customerCount)
	bar := progressbar.Default(int64(*customerCount))
	now := utils.DateOnly(time.Now().UTC())

	for i := 1; i <= *customerCount; i++ {
		customer := &types.Customer{
			Name:  fmt.Sprintf("Customer %03d", i),
			Email: fmt.Sprintf("customer%d@email.com", i),
			Phone: fmt.Sprintf("08%011d", rng.Int63n(100000000000)),
		}
		if _, err := customerRepo.Create(ctx, nil, []*types.Customer{customer}); err != nil {
			log.Warn("Skipping customer, insert failed", "customer", customer.Name, "error", err)
			_ = bar.Add(1)
			continue
		}

		// Walk backwards in time: the newest purchase lands within the last
		// 180 days, older ones sit 200-800 days apart, mimicking real
		// motorcycle buying cycles.
		numPurchases := 1 + rng.Intn(5)
		daysAgo := 1 + rng.Intn(180)
		dates := make([]time.Time, 0, numPurchases)
		for p := 0; p < numPurchases; p++ {
			if p > 0 {
				daysAgo += 200 + rng.Intn(601)
			}
			dates = append(dates, now.AddDate(0, 0, -daysAgo))
		}

		// Oldest first so ledger ordering matches insertion order.
		for p := len(dates) - 1; p >= 0; p-- {
			product := products[rng.Intn(len(products))]
			event := &types.PurchaseEvent{
				CustomerID:   customer.ID,
				ProductID:    product.ID,
				PurchaseDate: dates[p],
				Amount:       float64(15000000 + rng.Intn(30000001)),
			}
			if _, err := ledgerService.Record(ctx, event); err != nil {
				log.Warn("Purchase rejected during seeding", "customer", customer.Name, "error", err)
			}
		}
		_ = bar.Add(1)
	}

	fmt.Printf("Seeded %d customers and %d products.\n", *customerCount, len(products))
}
