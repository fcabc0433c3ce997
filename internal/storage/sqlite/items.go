package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/mmynk/stockroom/internal/models"
	"github.com/mmynk/stockroom/internal/storage"
)

// CreateItem persists a new item to the database.
func (s *SQLiteStore) CreateItem(ctx context.Context, item *models.Item) error {
	if item.ID == "" {
		item.ID = uuid.New().String()
	}

	_, err := s.db.ExecContext(ctx,
		"INSERT INTO items (id, name, price, quantity) VALUES (?, ?, ?, ?)",
		item.ID, item.Name, item.Price, item.Quantity,
	)
	if err != nil {
		return fmt.Errorf("failed to insert item: %w", err)
	}

	return nil
}

// ListItems retrieves all items in insertion order.
func (s *SQLiteStore) ListItems(ctx context.Context) ([]models.Item, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT id, name, price, quantity FROM items ORDER BY rowid",
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list items: %w", err)
	}
	defer rows.Close()

	items := []models.Item{}
	for rows.Next() {
		var item models.Item
		if err := rows.Scan(&item.ID, &item.Name, &item.Price, &item.Quantity); err != nil {
			return nil, fmt.Errorf("failed to scan item: %w", err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate items: %w", err)
	}

	return items, nil
}

// GetItem retrieves an item by ID.
func (s *SQLiteStore) GetItem(ctx context.Context, itemID string) (*models.Item, error) {
	item := &models.Item{}
	err := s.db.QueryRowContext(ctx,
		"SELECT id, name, price, quantity FROM items WHERE id = ?",
		itemID,
	).Scan(&item.ID, &item.Name, &item.Price, &item.Quantity)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("item %s: %w", itemID, storage.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get item: %w", err)
	}

	return item, nil
}

// UpdateItem replaces the stored row for item.ID.
func (s *SQLiteStore) UpdateItem(ctx context.Context, item *models.Item) error {
	res, err := s.db.ExecContext(ctx,
		"UPDATE items SET name = ?, price = ?, quantity = ? WHERE id = ?",
		item.Name, item.Price, item.Quantity, item.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update item: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check update result: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("item %s: %w", item.ID, storage.ErrNotFound)
	}

	return nil
}

// DeleteItem removes an item and returns its prior state.
func (s *SQLiteStore) DeleteItem(ctx context.Context, itemID string) (*models.Item, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	item := &models.Item{}
	err = tx.QueryRowContext(ctx,
		"SELECT id, name, price, quantity FROM items WHERE id = ?",
		itemID,
	).Scan(&item.ID, &item.Name, &item.Price, &item.Quantity)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("item %s: %w", itemID, storage.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get item: %w", err)
	}

	if _, err := tx.ExecContext(ctx, "DELETE FROM items WHERE id = ?", itemID); err != nil {
		return nil, fmt.Errorf("failed to delete item: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return item, nil
}
