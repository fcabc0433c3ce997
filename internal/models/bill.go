package models

// Bill represents a completed sale. Bills are immutable once created:
// there is no update or delete, and the embedded line items are owned
// exclusively by their bill.
type Bill struct {
	// ID is the unique identifier for the bill (UUID format).
	ID string `json:"id"`

	// Items are the line items of the sale, in submission order.
	Items []BillLineItem `json:"items"`

	// TotalAmount is the sum of price * quantity over all line items,
	// computed at billing time.
	TotalAmount float64 `json:"totalAmount"`

	// CreatedAt is the Unix timestamp when the bill was created.
	CreatedAt int64 `json:"createdAt"`
}

// BillLineItem is one entry on a bill. Price is the unit price copied from
// the referenced Item at the moment of billing, not a live link, so
// historical bills stay accurate when item prices change.
type BillLineItem struct {
	// ItemID references the sold Item by ID (not ownership).
	ItemID string `json:"itemId"`

	// Quantity is the number of units sold.
	Quantity int64 `json:"quantity"`

	// Price is the unit price captured at billing time.
	Price float64 `json:"price"`
}
