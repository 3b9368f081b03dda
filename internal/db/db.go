package db

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/broomworks/leadgen-backend/internal/logger"
	"github.com/broomworks/leadgen-backend/internal/types"
	"github.com/broomworks/leadgen-backend/internal/utils"
)

type Service struct {
	db  *gorm.DB
	log *logger.Logger
}

// New opens the configured database. DB_DRIVER selects sqlite (default) or
// postgres; sqlite keeps local runs and the seeder self-contained, postgres is
// the deployed target. TranslateError is on so duplicate-key violations from
// either driver surface as gorm.ErrDuplicatedKey, which the lead generator
// relies on for its insert-race handling.
func New(log *logger.Logger) (*Service, error) {
	serviceLog := log.With("service", "DBService")

	driver := utils.GetEnv("DB_DRIVER", "sqlite", log)

	var dialector gorm.Dialector
	switch driver {
	case "postgres":
		host := utils.GetEnv("POSTGRES_HOST", "localhost", log)
		port := utils.GetEnv("POSTGRES_PORT", "5432", log)
		user := utils.GetEnv("POSTGRES_USER", "postgres", log)
		password := utils.GetEnv("POSTGRES_PASSWORD", "", log)
		name := utils.GetEnv("POSTGRES_NAME", "leadgen", log)
		dsn := fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable", user, password, host, port, name)
		dialector = postgres.Open(dsn)
	case "sqlite":
		path := utils.GetEnv("SQLITE_PATH", "leadgen.sqlite", log)
		dialector = sqlite.Open(path)
	default:
		return nil, fmt.Errorf("unknown DB_DRIVER %q", driver)
	}

	log.Info("Connecting to database...", "driver", driver)
	database, err := gorm.Open(dialector, &gorm.Config{
		TranslateError: true,
	})
	if err != nil {
		serviceLog.Error("Failed to connect to database", "driver", driver, "error", err)
		return nil, fmt.Errorf("failed to connect to %s: %w", driver, err)
	}

	return &Service{db: database, log: serviceLog}, nil
}

func (s *Service) DB() *gorm.DB { return s.db }

func (s *Service) AutoMigrateAll() error {
	s.log.Info("Auto migrating tables...")
	err := s.db.AutoMigrate(
		&types.Customer{},
		&types.Product{},
		&types.PurchaseEvent{},
		&types.Lead{},
	)
	if err != nil {
		s.log.Error("Auto migration failed", "error", err)
		return err
	}

	// An ordinary unique constraint on the lead triple would reject suppressed
	// duplicates outright and lose the audit trail, so uniqueness is scoped to
	// non-redundant rows only. Both sqlite and postgres support partial
	// indexes with this syntax.
	if err := s.db.Exec(`
		CREATE UNIQUE INDEX IF NOT EXISTS idx_lead_active_triple
		ON lead (customer_id, product_interest, predicted_next_purchase)
		WHERE is_redundant = false
	`).Error; err != nil {
		s.log.Error("Failed to create partial unique index on lead", "error", err)
		return err
	}
	s.log.Info("Migrations complete")
	return nil
}
