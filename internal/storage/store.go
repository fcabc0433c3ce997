// Package storage provides abstractions for persistent data storage.
package storage

import (
	"context"
	"errors"

	"github.com/mmynk/stockroom/internal/models"
)

// ErrNotFound is returned when a requested record does not exist.
// Implementations wrap it with the record kind and ID; callers match it
// with errors.Is.
var ErrNotFound = errors.New("not found")

// Store defines the interface for inventory and bill storage operations.
// This abstraction allows swapping storage backends (SQLite, PostgreSQL, etc.)
// without changing the service layer.
type Store interface {
	// CreateItem persists a new item. The item.ID field will be populated
	// by the store if empty.
	CreateItem(ctx context.Context, item *models.Item) error

	// ListItems retrieves all items in storage order.
	ListItems(ctx context.Context) ([]models.Item, error)

	// GetItem retrieves an item by its ID.
	// Returns an error wrapping ErrNotFound if the item does not exist.
	GetItem(ctx context.Context, itemID string) (*models.Item, error)

	// UpdateItem replaces the stored row for item.ID with the given fields.
	// Returns an error wrapping ErrNotFound if the item does not exist.
	UpdateItem(ctx context.Context, item *models.Item) error

	// DeleteItem removes an item and returns its prior state.
	// Returns an error wrapping ErrNotFound if the item does not exist.
	DeleteItem(ctx context.Context, itemID string) (*models.Item, error)

	// CreateBill persists a new bill with its line items. The bill.ID and
	// bill.CreatedAt fields will be populated by the store if unset.
	CreateBill(ctx context.Context, bill *models.Bill) error

	// ListBills retrieves all bills, each with its line items in
	// submission order.
	ListBills(ctx context.Context) ([]models.Bill, error)

	// GetBill retrieves a bill by its ID.
	// Returns an error wrapping ErrNotFound if the bill does not exist.
	GetBill(ctx context.Context, billID string) (*models.Bill, error)

	// Close releases any resources held by the store.
	Close() error
}
