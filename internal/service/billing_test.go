package service

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmynk/stockroom/internal/metrics"
	"github.com/mmynk/stockroom/internal/models"
	"github.com/mmynk/stockroom/internal/storage/sqlite"
)

func newBillingService(t *testing.T) *BillingService {
	t.Helper()

	tempDir, err := os.MkdirTemp("", "stockroom-billing-test-*")
	require.NoError(t, err)
	t.Cleanup(func() { os.RemoveAll(tempDir) })

	store, err := sqlite.New(filepath.Join(tempDir, "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })

	return NewBillingService(store, metrics.New(prometheus.NewRegistry()))
}

func createItem(t *testing.T, svc *BillingService, name string, price float64, quantity int64) *models.Item {
	t.Helper()

	item := &models.Item{Name: name, Price: price, Quantity: quantity}
	require.NoError(t, svc.store.CreateItem(context.Background(), item))
	return item
}

func TestCreateBill(t *testing.T) {
	ctx := context.Background()

	t.Run("computes total and decrements stock", func(t *testing.T) {
		svc := newBillingService(t)
		widget := createItem(t, svc, "Widget", 10, 5)

		bill, err := svc.CreateBill(ctx, []BillLineRequest{
			{ItemID: widget.ID, Quantity: 3},
		})
		require.NoError(t, err)

		assert.NotEmpty(t, bill.ID)
		assert.Equal(t, 30.0, bill.TotalAmount)
		require.Len(t, bill.Items, 1)
		assert.Equal(t, widget.ID, bill.Items[0].ItemID)
		assert.Equal(t, int64(3), bill.Items[0].Quantity)
		assert.Equal(t, 10.0, bill.Items[0].Price)

		got, err := svc.store.GetItem(ctx, widget.ID)
		require.NoError(t, err)
		assert.Equal(t, int64(2), got.Quantity)
	})

	t.Run("snapshots prices from stock, sums across lines", func(t *testing.T) {
		svc := newBillingService(t)
		coffee := createItem(t, svc, "Coffee", 4.5, 10)
		bagel := createItem(t, svc, "Bagel", 2.25, 10)

		bill, err := svc.CreateBill(ctx, []BillLineRequest{
			{ItemID: coffee.ID, Quantity: 2},
			{ItemID: bagel.ID, Quantity: 4},
		})
		require.NoError(t, err)

		assert.Equal(t, 4.5*2+2.25*4, bill.TotalAmount)
		require.Len(t, bill.Items, 2)
		assert.Equal(t, coffee.ID, bill.Items[0].ItemID)
		assert.Equal(t, bagel.ID, bill.Items[1].ItemID)

		// Later price changes must not affect the persisted bill
		coffee.Price = 99
		require.NoError(t, svc.store.UpdateItem(ctx, coffee))

		got, err := svc.GetBill(ctx, bill.ID)
		require.NoError(t, err)
		assert.Equal(t, 4.5, got.Items[0].Price)
		assert.Equal(t, 4.5*2+2.25*4, got.TotalAmount)
	})

	t.Run("rejects unknown item without persisting a bill", func(t *testing.T) {
		svc := newBillingService(t)

		_, err := svc.CreateBill(ctx, []BillLineRequest{
			{ItemID: "no-such-item", Quantity: 1},
		})
		assert.ErrorIs(t, err, ErrInvalidBillRequest)

		bills, err := svc.ListBills(ctx)
		require.NoError(t, err)
		assert.Empty(t, bills)
	})

	t.Run("rejects insufficient stock without decrementing", func(t *testing.T) {
		svc := newBillingService(t)
		item := createItem(t, svc, "Scarce", 10, 1)

		_, err := svc.CreateBill(ctx, []BillLineRequest{
			{ItemID: item.ID, Quantity: 5},
		})
		assert.ErrorIs(t, err, ErrInvalidBillRequest)

		got, err := svc.store.GetItem(ctx, item.ID)
		require.NoError(t, err)
		assert.Equal(t, int64(1), got.Quantity)

		bills, err := svc.ListBills(ctx)
		require.NoError(t, err)
		assert.Empty(t, bills)
	})

	t.Run("earlier decrements persist when a later line fails", func(t *testing.T) {
		// Documents inherited behavior: lines commit one at a time, and a
		// failure partway through does not roll back earlier decrements.
		svc := newBillingService(t)
		a := createItem(t, svc, "A", 1, 1)
		b := createItem(t, svc, "B", 1, 1)

		_, err := svc.CreateBill(ctx, []BillLineRequest{
			{ItemID: a.ID, Quantity: 1},
			{ItemID: b.ID, Quantity: 5},
		})
		assert.ErrorIs(t, err, ErrInvalidBillRequest)

		gotA, err := svc.store.GetItem(ctx, a.ID)
		require.NoError(t, err)
		assert.Equal(t, int64(0), gotA.Quantity, "A's decrement is not rolled back")

		gotB, err := svc.store.GetItem(ctx, b.ID)
		require.NoError(t, err)
		assert.Equal(t, int64(1), gotB.Quantity)

		bills, err := svc.ListBills(ctx)
		require.NoError(t, err)
		assert.Empty(t, bills, "no bill is persisted on failure")
	})

	t.Run("exact stock is billable down to zero", func(t *testing.T) {
		svc := newBillingService(t)
		item := createItem(t, svc, "Last", 7, 3)

		bill, err := svc.CreateBill(ctx, []BillLineRequest{
			{ItemID: item.ID, Quantity: 3},
		})
		require.NoError(t, err)
		assert.Equal(t, 21.0, bill.TotalAmount)

		got, err := svc.store.GetItem(ctx, item.ID)
		require.NoError(t, err)
		assert.Equal(t, int64(0), got.Quantity)
	})

	t.Run("same item may appear on multiple lines", func(t *testing.T) {
		svc := newBillingService(t)
		item := createItem(t, svc, "Repeat", 2, 5)

		bill, err := svc.CreateBill(ctx, []BillLineRequest{
			{ItemID: item.ID, Quantity: 2},
			{ItemID: item.ID, Quantity: 3},
		})
		require.NoError(t, err)
		assert.Equal(t, 10.0, bill.TotalAmount)

		got, err := svc.store.GetItem(ctx, item.ID)
		require.NoError(t, err)
		assert.Equal(t, int64(0), got.Quantity)
	})
}

func TestGetBill(t *testing.T) {
	ctx := context.Background()
	svc := newBillingService(t)

	item := createItem(t, svc, "Thing", 5, 10)
	created, err := svc.CreateBill(ctx, []BillLineRequest{{ItemID: item.ID, Quantity: 2}})
	require.NoError(t, err)

	got, err := svc.GetBill(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)
	assert.Equal(t, 10.0, got.TotalAmount)
	assert.NotZero(t, got.CreatedAt)
}
