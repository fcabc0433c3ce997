package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/mmynk/stockroom/internal/models"
	"github.com/mmynk/stockroom/internal/storage"
)

// CreateBill persists a new bill and its line items in a single transaction.
func (s *SQLiteStore) CreateBill(ctx context.Context, bill *models.Bill) error {
	// Generate ID and timestamp if not set
	if bill.ID == "" {
		bill.ID = uuid.New().String()
	}
	if bill.CreatedAt == 0 {
		bill.CreatedAt = time.Now().Unix()
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	// Insert bill
	_, err = tx.ExecContext(ctx,
		"INSERT INTO bills (id, total_amount, created_at) VALUES (?, ?, ?)",
		bill.ID, bill.TotalAmount, bill.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert bill: %w", err)
	}

	// Insert line items; position preserves submission order
	for i, line := range bill.Items {
		_, err = tx.ExecContext(ctx,
			"INSERT INTO bill_items (bill_id, position, item_id, quantity, price) VALUES (?, ?, ?, ?, ?)",
			bill.ID, i, line.ItemID, line.Quantity, line.Price,
		)
		if err != nil {
			return fmt.Errorf("failed to insert line item: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// ListBills retrieves all bills, each with its line items.
func (s *SQLiteStore) ListBills(ctx context.Context) ([]models.Bill, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT id, total_amount, created_at FROM bills ORDER BY rowid",
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list bills: %w", err)
	}
	defer rows.Close()

	bills := []models.Bill{}
	for rows.Next() {
		var bill models.Bill
		if err := rows.Scan(&bill.ID, &bill.TotalAmount, &bill.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan bill: %w", err)
		}
		bills = append(bills, bill)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate bills: %w", err)
	}

	for i := range bills {
		lines, err := s.getBillLines(ctx, bills[i].ID)
		if err != nil {
			return nil, err
		}
		bills[i].Items = lines
	}

	return bills, nil
}

// GetBill retrieves a bill by ID, including its line items in submission order.
func (s *SQLiteStore) GetBill(ctx context.Context, billID string) (*models.Bill, error) {
	bill := &models.Bill{}
	err := s.db.QueryRowContext(ctx,
		"SELECT id, total_amount, created_at FROM bills WHERE id = ?",
		billID,
	).Scan(&bill.ID, &bill.TotalAmount, &bill.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("bill %s: %w", billID, storage.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get bill: %w", err)
	}

	lines, err := s.getBillLines(ctx, billID)
	if err != nil {
		return nil, err
	}
	bill.Items = lines

	return bill, nil
}

func (s *SQLiteStore) getBillLines(ctx context.Context, billID string) ([]models.BillLineItem, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT item_id, quantity, price FROM bill_items WHERE bill_id = ? ORDER BY position",
		billID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get line items: %w", err)
	}
	defer rows.Close()

	lines := []models.BillLineItem{}
	for rows.Next() {
		var line models.BillLineItem
		if err := rows.Scan(&line.ItemID, &line.Quantity, &line.Price); err != nil {
			return nil, fmt.Errorf("failed to scan line item: %w", err)
		}
		lines = append(lines, line)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate line items: %w", err)
	}

	return lines, nil
}
