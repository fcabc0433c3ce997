package models

// Item represents a stock-keeping unit held in inventory.
type Item struct {
	// ID is the unique identifier for the item (UUID format).
	ID string `json:"id"`

	// Name is the display name of the item (e.g., "Widget").
	Name string `json:"name"`

	// Price is the current unit price.
	Price float64 `json:"price"`

	// Quantity is the on-hand stock count. Billing decrements it and an
	// accepted operation never drives it negative.
	Quantity int64 `json:"quantity"`
}
