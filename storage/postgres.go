package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/arkasala/badmintongo-storefront/cart"
)

// PostgresStore persists carts in a single key-value table, one row per
// cart key with the item list as JSONB.
type PostgresStore struct {
	conn *pgx.Conn
}

func NewPostgresStore(conn *pgx.Conn) *PostgresStore {
	return &PostgresStore{conn: conn}
}

func (s *PostgresStore) Load(ctx context.Context, key string) ([]cart.Item, error) {
	sql := `SELECT items FROM "storefront".cart WHERE key=$1;`

	var data []byte
	err := s.conn.QueryRow(ctx, sql, key).Scan(&data)

	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}

	if err != nil {
		return nil, fmt.Errorf("failed to fetch cart '%v': %w", key, err)
	}

	var items []cart.Item

	if err := json.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf("failed to decode cart '%v': %w", key, err)
	}

	return items, nil
}

func (s *PostgresStore) Save(ctx context.Context, key string, items []cart.Item) error {
	sql := `
			INSERT INTO "storefront".cart(key, items, "updatedAt")
			VALUES ($1, $2, now())
			ON CONFLICT (key) DO UPDATE SET items=EXCLUDED.items, "updatedAt"=now();
		`

	data, err := json.Marshal(items)

	if err != nil {
		return fmt.Errorf("failed to encode cart '%v': %w", key, err)
	}

	if _, err := s.conn.Exec(ctx, sql, key, data); err != nil {
		return fmt.Errorf("failed to save cart '%v': %w", key, err)
	}

	return nil
}
