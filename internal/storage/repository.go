package storage

import (
	"database/sql"
	"fmt"

	"github.com/equinoxial2/vps/internal/domain/models"
)

// OrderRepository persists and reads back the submitted-order audit
// log.
type OrderRepository interface {
	InsertOrder(rec *models.OrderRecord) error
	ListRecent(limit int) ([]models.OrderRecord, error)
}

type orderRepository struct {
	db *sql.DB
}

// NewOrderRepository wraps an open connection pool.
func NewOrderRepository(db *sql.DB) OrderRepository {
	return &orderRepository{db: db}
}

// nullable maps "" onto SQL NULL for optional order fields.
func nullable(s string) any {
	if s == "" {
		return nil
	}
	return s
}

// InsertOrder appends one audit row and fills rec.ID with the
// generated key.
func (r *orderRepository) InsertOrder(rec *models.OrderRecord) error {
	const q = `
		INSERT INTO orders (
			command, symbol, side, order_type, quantity, price,
			callback_rate, activation_price, testnet, exchange_order_id, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING id`

	err := r.db.QueryRow(q,
		rec.Command,
		rec.Symbol,
		rec.Side,
		rec.OrderType,
		rec.Quantity,
		nullable(rec.Price),
		nullable(rec.CallbackRate),
		nullable(rec.ActivationPrice),
		rec.Testnet,
		nullable(rec.ExchangeOrderID),
		rec.CreatedAt,
	).Scan(&rec.ID)
	if err != nil {
		return fmt.Errorf("insert order: %w", err)
	}
	return nil
}

// ListRecent returns the newest audit rows, newest first. The limit is
// clamped to [1,100] with a default of 20.
func (r *orderRepository) ListRecent(limit int) ([]models.OrderRecord, error) {
	if limit <= 0 {
		limit = 20
	}
	if limit > 100 {
		limit = 100
	}

	const q = `
		SELECT id, command, symbol, side, order_type, quantity,
		       COALESCE(price, ''), COALESCE(callback_rate, ''),
		       COALESCE(activation_price, ''), testnet,
		       COALESCE(exchange_order_id, ''), created_at
		FROM orders
		ORDER BY id DESC
		LIMIT $1`

	rows, err := r.db.Query(q, limit)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var out []models.OrderRecord
	for rows.Next() {
		var rec models.OrderRecord
		if err := rows.Scan(
			&rec.ID,
			&rec.Command,
			&rec.Symbol,
			&rec.Side,
			&rec.OrderType,
			&rec.Quantity,
			&rec.Price,
			&rec.CallbackRate,
			&rec.ActivationPrice,
			&rec.Testnet,
			&rec.ExchangeOrderID,
			&rec.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan order row: %w", err)
		}
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate order rows: %w", err)
	}
	return out, nil
}
