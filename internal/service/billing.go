package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/mmynk/stockroom/internal/metrics"
	"github.com/mmynk/stockroom/internal/models"
	"github.com/mmynk/stockroom/internal/storage"
)

// ErrInvalidBillRequest is returned when a bill request references a missing
// item or asks for more units than are in stock.
var ErrInvalidBillRequest = errors.New("invalid item or insufficient stock")

// BillLineRequest is one requested line of a bill: an item reference and a
// quantity. The unit price is never taken from the caller; it is resolved
// from the store at billing time.
type BillLineRequest struct {
	ItemID   string
	Quantity int64
}

// BillingService creates bills against current stock and reads bill history.
type BillingService struct {
	store   storage.Store
	metrics *metrics.Metrics
}

// NewBillingService creates a new BillingService with the given storage
// backend and metrics collector.
func NewBillingService(store storage.Store, m *metrics.Metrics) *BillingService {
	return &BillingService{store: store, metrics: m}
}

// CreateBill processes the requested lines in submission order: each line is
// checked against current stock, the item's quantity is decremented and
// persisted, and the unit price is snapshotted into the bill. The total is
// the sum of price * quantity over the resolved lines.
//
// Decrements are persisted per line as they are processed. When a later line
// fails, decrements already committed for earlier lines are not rolled back;
// this matches the behavior of the system this replaces and is a known
// defect rather than a goal. The read-modify-write on item quantity is also
// unguarded, so two concurrent bills can both pass the sufficiency check for
// the same item.
func (s *BillingService) CreateBill(ctx context.Context, lines []BillLineRequest) (*models.Bill, error) {
	var total float64
	resolved := make([]models.BillLineItem, 0, len(lines))

	for _, req := range lines {
		item, err := s.store.GetItem(ctx, req.ItemID)
		if err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				slog.Warn("Bill rejected: unknown item", "item_id", req.ItemID)
				s.metrics.BillsRejected.Inc()
				return nil, fmt.Errorf("item %s: %w", req.ItemID, ErrInvalidBillRequest)
			}
			slog.Error("CreateBill failed", "item_id", req.ItemID, "error", err)
			return nil, err
		}

		if item.Quantity < req.Quantity {
			slog.Warn("Bill rejected: insufficient stock",
				"item_id", req.ItemID,
				"requested", req.Quantity,
				"in_stock", item.Quantity,
			)
			s.metrics.BillsRejected.Inc()
			return nil, fmt.Errorf("item %s: %w", req.ItemID, ErrInvalidBillRequest)
		}

		item.Quantity -= req.Quantity
		if err := s.store.UpdateItem(ctx, item); err != nil {
			slog.Error("CreateBill failed to decrement stock", "item_id", req.ItemID, "error", err)
			return nil, err
		}

		resolved = append(resolved, models.BillLineItem{
			ItemID:   item.ID,
			Quantity: req.Quantity,
			Price:    item.Price,
		})
		total += item.Price * float64(req.Quantity)
	}

	bill := &models.Bill{
		Items:       resolved,
		TotalAmount: total,
	}
	if err := s.store.CreateBill(ctx, bill); err != nil {
		slog.Error("CreateBill failed to persist bill", "error", err)
		return nil, err
	}

	slog.Info("Bill created",
		"bill_id", bill.ID,
		"lines", len(bill.Items),
		"total", bill.TotalAmount,
	)
	s.metrics.BillsCreated.Inc()

	return bill, nil
}

// ListBills retrieves all bills.
func (s *BillingService) ListBills(ctx context.Context) ([]models.Bill, error) {
	bills, err := s.store.ListBills(ctx)
	if err != nil {
		slog.Error("ListBills failed", "error", err)
		return nil, err
	}

	return bills, nil
}

// GetBill retrieves a bill by ID.
func (s *BillingService) GetBill(ctx context.Context, billID string) (*models.Bill, error) {
	bill, err := s.store.GetBill(ctx, billID)
	if err != nil {
		slog.Warn("GetBill failed", "bill_id", billID, "error", err)
		return nil, err
	}

	return bill, nil
}
