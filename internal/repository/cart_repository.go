package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	"commercehub/internal/model"
)

// cartRepository implements the CartRepository interface using PostgreSQL.
type cartRepository struct {
	pool   *pgxpool.Pool
	logger zerolog.Logger
}

// NewCartRepository creates a new PostgreSQL-backed cart repository.
func NewCartRepository(pool *pgxpool.Pool, logger zerolog.Logger) CartRepository {
	return &cartRepository{
		pool:   pool,
		logger: logger.With().Str("repository", "cart").Logger(),
	}
}

const cartLineColumns = `
		ci.id, ci.customer_id, ci.product_id, ci.quantity, ci.created_at, ci.updated_at,
		p.id, p.name, p.description, p.wholesale_price, p.retail_price,
		p.image_url, p.category, p.in_stock, p.stock_quantity, p.created_at, p.updated_at`

func scanCartLine(row pgx.Row) (model.CartLine, error) {
	var line model.CartLine
	err := row.Scan(
		&line.Item.ID, &line.Item.CustomerID, &line.Item.ProductID,
		&line.Item.Quantity, &line.Item.CreatedAt, &line.Item.UpdatedAt,
		&line.Product.ID, &line.Product.Name, &line.Product.Description,
		&line.Product.WholesalePrice, &line.Product.RetailPrice,
		&line.Product.ImageURL, &line.Product.Category, &line.Product.InStock,
		&line.Product.StockQuantity, &line.Product.CreatedAt, &line.Product.UpdatedAt,
	)
	return line, err
}

// ListByCustomer retrieves the customer's cart entries joined with products.
func (r *cartRepository) ListByCustomer(ctx context.Context, customerID uuid.UUID) ([]model.CartLine, error) {
	query := `
		SELECT ` + cartLineColumns + `
		FROM cart_items ci
		JOIN products p ON p.id = ci.product_id
		WHERE ci.customer_id = $1
		ORDER BY ci.created_at
	`

	rows, err := r.pool.Query(ctx, query, customerID)
	if err != nil {
		r.logger.Error().Err(err).
			Str("customer_id", customerID.String()).
			Msg("failed to query cart items")
		return nil, fmt.Errorf("failed to query cart items: %w", err)
	}
	defer rows.Close()

	var lines []model.CartLine
	for rows.Next() {
		line, err := scanCartLine(rows)
		if err != nil {
			r.logger.Error().Err(err).Msg("failed to scan cart item row")
			return nil, fmt.Errorf("failed to scan cart item: %w", err)
		}
		lines = append(lines, line)
	}

	if err := rows.Err(); err != nil {
		r.logger.Error().Err(err).Msg("error iterating cart item rows")
		return nil, fmt.Errorf("error iterating cart items: %w", err)
	}

	return lines, nil
}

// GetItem retrieves one cart entry with its product, scoped to the customer.
func (r *cartRepository) GetItem(ctx context.Context, customerID, itemID uuid.UUID) (*model.CartLine, error) {
	query := `
		SELECT ` + cartLineColumns + `
		FROM cart_items ci
		JOIN products p ON p.id = ci.product_id
		WHERE ci.id = $1 AND ci.customer_id = $2
	`

	line, err := scanCartLine(r.pool.QueryRow(ctx, query, itemID, customerID))
	if err != nil {
		if err == pgx.ErrNoRows {
			r.logger.Debug().Str("cart_item_id", itemID.String()).Msg("cart item not found")
			return nil, nil
		}
		r.logger.Error().Err(err).Str("cart_item_id", itemID.String()).Msg("failed to query cart item")
		return nil, fmt.Errorf("failed to query cart item: %w", err)
	}

	return &line, nil
}

// Upsert inserts the cart item or atomically increments the quantity of the
// existing (customer, product) row. The increment happens inside the database
// so concurrent adds for the same product cannot lose updates.
func (r *cartRepository) Upsert(ctx context.Context, item *model.CartItem) (*model.CartItem, error) {
	query := `
		INSERT INTO cart_items (id, customer_id, product_id, quantity, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $5)
		ON CONFLICT (customer_id, product_id)
		DO UPDATE SET quantity = cart_items.quantity + EXCLUDED.quantity,
		              updated_at = EXCLUDED.updated_at
		RETURNING id, customer_id, product_id, quantity, created_at, updated_at
	`

	var stored model.CartItem
	err := r.pool.QueryRow(ctx, query,
		item.ID, item.CustomerID, item.ProductID, item.Quantity, time.Now(),
	).Scan(
		&stored.ID, &stored.CustomerID, &stored.ProductID,
		&stored.Quantity, &stored.CreatedAt, &stored.UpdatedAt,
	)
	if err != nil {
		r.logger.Error().Err(err).
			Str("customer_id", item.CustomerID.String()).
			Str("product_id", item.ProductID.String()).
			Msg("failed to upsert cart item")
		return nil, fmt.Errorf("failed to upsert cart item: %w", err)
	}

	r.logger.Debug().
		Str("cart_item_id", stored.ID.String()).
		Int("quantity", stored.Quantity).
		Msg("cart item upserted")

	return &stored, nil
}

// UpdateQuantity sets the quantity of the customer's cart entry.
func (r *cartRepository) UpdateQuantity(ctx context.Context, customerID, itemID uuid.UUID, quantity int) (*model.CartItem, error) {
	query := `
		UPDATE cart_items
		SET quantity = $3, updated_at = $4
		WHERE id = $1 AND customer_id = $2
		RETURNING id, customer_id, product_id, quantity, created_at, updated_at
	`

	var stored model.CartItem
	err := r.pool.QueryRow(ctx, query, itemID, customerID, quantity, time.Now()).Scan(
		&stored.ID, &stored.CustomerID, &stored.ProductID,
		&stored.Quantity, &stored.CreatedAt, &stored.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			r.logger.Debug().Str("cart_item_id", itemID.String()).Msg("cart item not found for update")
			return nil, nil
		}
		r.logger.Error().Err(err).Str("cart_item_id", itemID.String()).Msg("failed to update cart item")
		return nil, fmt.Errorf("failed to update cart item: %w", err)
	}

	return &stored, nil
}

// Delete removes the customer's cart entry.
func (r *cartRepository) Delete(ctx context.Context, customerID, itemID uuid.UUID) (bool, error) {
	query := `
		DELETE FROM cart_items
		WHERE id = $1 AND customer_id = $2
	`

	tag, err := r.pool.Exec(ctx, query, itemID, customerID)
	if err != nil {
		r.logger.Error().Err(err).Str("cart_item_id", itemID.String()).Msg("failed to delete cart item")
		return false, fmt.Errorf("failed to delete cart item: %w", err)
	}

	return tag.RowsAffected() > 0, nil
}

// Clear removes all cart entries for the customer.
func (r *cartRepository) Clear(ctx context.Context, customerID uuid.UUID) error {
	query := `
		DELETE FROM cart_items
		WHERE customer_id = $1
	`

	_, err := r.pool.Exec(ctx, query, customerID)
	if err != nil {
		r.logger.Error().Err(err).
			Str("customer_id", customerID.String()).
			Msg("failed to clear cart")
		return fmt.Errorf("failed to clear cart: %w", err)
	}

	return nil
}

// ClearTx removes all cart entries for the customer within the transaction.
func (r *cartRepository) ClearTx(ctx context.Context, tx pgx.Tx, customerID uuid.UUID) error {
	query := `
		DELETE FROM cart_items
		WHERE customer_id = $1
	`

	_, err := tx.Exec(ctx, query, customerID)
	if err != nil {
		r.logger.Error().Err(err).
			Str("customer_id", customerID.String()).
			Msg("failed to clear cart in transaction")
		return fmt.Errorf("failed to clear cart: %w", err)
	}

	return nil
}
