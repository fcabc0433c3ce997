// Package service implements the business operations of Stockroom on top of
// a storage.Store: item CRUD and the billing operation.
package service

import (
	"context"
	"log/slog"

	"github.com/mmynk/stockroom/internal/models"
	"github.com/mmynk/stockroom/internal/storage"
)

// ItemService manages stock items.
type ItemService struct {
	store storage.Store
}

// NewItemService creates a new ItemService with the given storage backend.
func NewItemService(store storage.Store) *ItemService {
	return &ItemService{store: store}
}

// ItemUpdate carries the fields of a partial item update. Nil fields keep
// their current value.
type ItemUpdate struct {
	Name     *string
	Price    *float64
	Quantity *int64
}

// Create persists a new item and returns it with its generated ID.
// Negative price or quantity are stored as-is; only the request shape is
// validated at the HTTP boundary.
func (s *ItemService) Create(ctx context.Context, item *models.Item) (*models.Item, error) {
	if err := s.store.CreateItem(ctx, item); err != nil {
		slog.Error("CreateItem failed", "error", err)
		return nil, err
	}

	slog.Info("Item created", "item_id", item.ID, "name", item.Name)
	return item, nil
}

// List retrieves all items.
func (s *ItemService) List(ctx context.Context) ([]models.Item, error) {
	items, err := s.store.ListItems(ctx)
	if err != nil {
		slog.Error("ListItems failed", "error", err)
		return nil, err
	}

	return items, nil
}

// Get retrieves an item by ID.
func (s *ItemService) Get(ctx context.Context, itemID string) (*models.Item, error) {
	item, err := s.store.GetItem(ctx, itemID)
	if err != nil {
		slog.Warn("GetItem failed", "item_id", itemID, "error", err)
		return nil, err
	}

	return item, nil
}

// Update applies the non-nil fields of upd to the item identified by itemID
// and returns the updated item.
func (s *ItemService) Update(ctx context.Context, itemID string, upd ItemUpdate) (*models.Item, error) {
	item, err := s.store.GetItem(ctx, itemID)
	if err != nil {
		slog.Warn("UpdateItem failed", "item_id", itemID, "error", err)
		return nil, err
	}

	if upd.Name != nil {
		item.Name = *upd.Name
	}
	if upd.Price != nil {
		item.Price = *upd.Price
	}
	if upd.Quantity != nil {
		item.Quantity = *upd.Quantity
	}

	if err := s.store.UpdateItem(ctx, item); err != nil {
		slog.Error("UpdateItem failed", "item_id", itemID, "error", err)
		return nil, err
	}

	slog.Info("Item updated", "item_id", item.ID)
	return item, nil
}

// Delete removes an item and returns its prior state.
func (s *ItemService) Delete(ctx context.Context, itemID string) (*models.Item, error) {
	item, err := s.store.DeleteItem(ctx, itemID)
	if err != nil {
		slog.Warn("DeleteItem failed", "item_id", itemID, "error", err)
		return nil, err
	}

	slog.Info("Item deleted", "item_id", itemID)
	return item, nil
}
