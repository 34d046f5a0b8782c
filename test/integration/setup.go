package integration

import (
	"context"
	"testing"
	"time"

	pgxdecimal "github.com/jackc/pgx-shopspring-decimal"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"commercehub/internal/auth"
	"commercehub/internal/database"
	"commercehub/internal/model"

	"github.com/google/uuid"
)

// TestDB represents a test database instance.
type TestDB struct {
	Container *postgres.PostgresContainer
	Pool      *pgxpool.Pool
	ConnStr   string
}

// SetupTestDB creates a PostgreSQL test container, a connection pool with the
// decimal codecs registered, and applies the embedded schema.
func SetupTestDB(t *testing.T) *TestDB {
	t.Helper()

	ctx := context.Background()

	postgresContainer, err := postgres.Run(ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second)),
	)
	if err != nil {
		t.Fatalf("failed to start postgres container: %v", err)
	}

	connStr, err := postgresContainer.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		t.Fatalf("failed to get connection string: %v", err)
	}

	poolConfig, err := pgxpool.ParseConfig(connStr)
	if err != nil {
		t.Fatalf("failed to parse connection string: %v", err)
	}
	poolConfig.AfterConnect = func(ctx context.Context, conn *pgx.Conn) error {
		pgxdecimal.Register(conn.TypeMap())
		return nil
	}

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		t.Fatalf("failed to create connection pool: %v", err)
	}

	if err := pool.Ping(ctx); err != nil {
		t.Fatalf("failed to ping database: %v", err)
	}

	if err := database.Migrate(ctx, pool, zerolog.Nop()); err != nil {
		t.Fatalf("failed to apply schema: %v", err)
	}

	t.Cleanup(func() {
		pool.Close()
		if err := postgresContainer.Terminate(ctx); err != nil {
			t.Logf("failed to terminate container: %v", err)
		}
	})

	return &TestDB{
		Container: postgresContainer,
		Pool:      pool,
		ConnStr:   connStr,
	}
}

// SeedCustomer inserts a customer with a bcrypt-hashed password and returns it.
func SeedCustomer(t *testing.T, pool *pgxpool.Pool, email, password string, clientType model.ClientType) *model.Customer {
	t.Helper()

	hash, err := auth.HashPassword(password)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}

	customer := &model.Customer{
		ID:           uuid.New(),
		Name:         "Integration Customer",
		Email:        email,
		PasswordHash: hash,
		ClientType:   clientType,
		CreatedAt:    time.Now(),
	}

	_, err = pool.Exec(context.Background(),
		`INSERT INTO customers (id, name, email, password_hash, client_type, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		customer.ID, customer.Name, customer.Email, customer.PasswordHash,
		customer.ClientType, customer.CreatedAt,
	)
	if err != nil {
		t.Fatalf("failed to seed customer %s: %v", email, err)
	}

	return customer
}

// SeedProduct inserts a product and returns it.
func SeedProduct(t *testing.T, pool *pgxpool.Pool, name, wholesale, retail string, stock int) *model.Product {
	t.Helper()

	now := time.Now()
	product := &model.Product{
		ID:             uuid.New(),
		Name:           name,
		Description:    "integration test product",
		WholesalePrice: decimal.RequireFromString(wholesale),
		RetailPrice:    decimal.RequireFromString(retail),
		Category:       "test",
		InStock:        stock > 0,
		StockQuantity:  stock,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO products (id, name, description, wholesale_price, retail_price,
		                       image_url, category, in_stock, stock_quantity, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`,
		product.ID, product.Name, product.Description, product.WholesalePrice,
		product.RetailPrice, product.ImageURL, product.Category, product.InStock,
		product.StockQuantity, product.CreatedAt, product.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("failed to seed product %s: %v", name, err)
	}

	return product
}

// CleanupDB removes all data from the test tables.
func CleanupDB(t *testing.T, pool *pgxpool.Pool) {
	t.Helper()

	ctx := context.Background()

	// Delete order matters: children first.
	tables := []string{"order_items", "orders", "cart_items", "products", "customers"}
	for _, table := range tables {
		if _, err := pool.Exec(ctx, "DELETE FROM "+table); err != nil {
			t.Logf("failed to clean table %s: %v", table, err)
		}
	}
}

// CountRows returns the number of rows in a table.
func CountRows(t *testing.T, pool *pgxpool.Pool, table string) int {
	t.Helper()

	var count int
	if err := pool.QueryRow(context.Background(), "SELECT COUNT(*) FROM "+table).Scan(&count); err != nil {
		t.Fatalf("failed to count rows in %s: %v", table, err)
	}
	return count
}
