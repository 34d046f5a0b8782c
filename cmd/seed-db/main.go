// Command seed-db populates the database with sample customers and products
// for local development.
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"commercehub/internal/auth"
	"commercehub/internal/config"
	"commercehub/internal/database"
	"commercehub/internal/model"
	"commercehub/internal/repository"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	logger := config.NewLogger(cfg.Logger)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	pool, err := database.NewPool(ctx, cfg.Database, logger)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer pool.Close()

	if err := database.Migrate(ctx, pool, logger); err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}

	customerRepo := repository.NewCustomerRepository(pool, logger)
	productRepo := repository.NewProductRepository(pool, logger)

	customers := []struct {
		name       string
		email      string
		password   string
		clientType model.ClientType
	}{
		{"Acme Wholesale", "buyer@acme.example", "wholesale-pass", model.ClientTypeWholesaler},
		{"Jane Retail", "jane@shop.example", "retail-pass-1", model.ClientTypeRetailer},
	}

	for _, c := range customers {
		hash, err := auth.HashPassword(c.password)
		if err != nil {
			return err
		}
		err = customerRepo.Create(ctx, &model.Customer{
			ID:           uuid.New(),
			Name:         c.name,
			Email:        c.email,
			PasswordHash: hash,
			ClientType:   c.clientType,
			CreatedAt:    time.Now(),
		})
		if err == model.ErrEmailExists {
			logger.Info().Str("email", c.email).Msg("customer already seeded")
			continue
		}
		if err != nil {
			return err
		}
		logger.Info().Str("email", c.email).Msg("seeded customer")
	}

	products := []struct {
		name      string
		desc      string
		wholesale string
		retail    string
		category  string
		stock     int
	}{
		{"Cordless Drill", "18V cordless drill with two batteries", "45.00", "79.99", "tools", 120},
		{"Claw Hammer", "16oz fiberglass handle", "6.50", "12.99", "tools", 300},
		{"LED Work Light", "2000 lumen rechargeable", "18.00", "34.99", "lighting", 85},
		{"Extension Cord 15m", "Outdoor rated, 3 sockets", "11.25", "21.50", "electrical", 60},
		{"Safety Glasses", "Anti-fog, clear lens", "1.80", "4.99", "safety", 500},
	}

	now := time.Now()
	for _, p := range products {
		err := productRepo.Create(ctx, &model.Product{
			ID:             uuid.New(),
			Name:           p.name,
			Description:    p.desc,
			WholesalePrice: decimal.RequireFromString(p.wholesale),
			RetailPrice:    decimal.RequireFromString(p.retail),
			Category:       p.category,
			InStock:        p.stock > 0,
			StockQuantity:  p.stock,
			CreatedAt:      now,
			UpdatedAt:      now,
		})
		if err != nil {
			return err
		}
		logger.Info().Str("name", p.name).Msg("seeded product")
	}

	return nil
}
