package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smartdelivery/smartdelivery-golang/internal/models"
	"github.com/smartdelivery/smartdelivery-golang/internal/service"
	"github.com/smartdelivery/smartdelivery-golang/internal/testutil"
)

type fixedPrice struct{ v float64 }

func (p fixedPrice) AssignmentPrice() float64 { return p.v }

func newLifecycle(t *testing.T, clock *time.Time) (*service.Lifecycle, *testutil.MemOrderStore) {
	t.Helper()
	orders := testutil.NewMemOrderStore()
	now := func() time.Time { return *clock }
	return service.NewLifecycle(orders, fixedPrice{v: 55.5}, now), orders
}

func day(s string) time.Time {
	ts, _ := time.Parse("2006-01-02", s)
	return ts
}

func TestCreateOrderDefaults(t *testing.T) {
	clock := day("2025-03-10")
	lc, _ := newLifecycle(t, &clock)

	o, err := lc.CreateOrder(context.Background(), &models.Order{
		Item:     "Laptop",
		Customer: "Bob",
		Status:   "Delivered", // client-sent values must be ignored
		Driver:   "Mallory",
		Price:    999,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, o.ID)
	assert.Equal(t, models.OrderStatusAssigned, o.Status)
	assert.Equal(t, models.DriverUnassigned, o.Driver)
	assert.Equal(t, 0.0, o.Price)
	assert.Empty(t, o.DeliveryDate)
}

func TestAssignSetsDriverStatusAndPrice(t *testing.T) {
	clock := day("2025-03-10")
	lc, _ := newLifecycle(t, &clock)

	o, err := lc.CreateOrder(context.Background(), &models.Order{Item: "Box", Customer: "Ann"})
	require.NoError(t, err)

	got, err := lc.Assign(context.Background(), o.ID, "Alice")
	require.NoError(t, err)
	assert.Equal(t, "Alice", got.Driver)
	assert.Equal(t, models.OrderStatusAssigned, got.Status)
	assert.Equal(t, 55.5, got.Price)
}

func TestAssignDefaultPriceRange(t *testing.T) {
	clock := day("2025-03-10")
	orders := testutil.NewMemOrderStore()
	lc := service.NewLifecycle(orders, nil, func() time.Time { return clock })

	o, err := lc.CreateOrder(context.Background(), &models.Order{Item: "Box", Customer: "Ann"})
	require.NoError(t, err)

	for i := 0; i < 50; i++ {
		got, err := lc.Assign(context.Background(), o.ID, "Alice")
		require.NoError(t, err)
		assert.GreaterOrEqual(t, got.Price, 40.0)
		assert.Less(t, got.Price, 90.0)
	}
}

func TestAssignMissingOrderIsNoOp(t *testing.T) {
	clock := day("2025-03-10")
	lc, orders := newLifecycle(t, &clock)

	_, err := lc.Assign(context.Background(), "no-such-id", "Alice")
	assert.ErrorIs(t, err, models.ErrNotFound)

	// The failed assign must not have created anything.
	all, err := orders.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestAcceptRejectComplete(t *testing.T) {
	clock := day("2025-03-10")
	lc, _ := newLifecycle(t, &clock)
	ctx := context.Background()

	o, err := lc.CreateOrder(ctx, &models.Order{Item: "Box", Customer: "Ann"})
	require.NoError(t, err)

	got, err := lc.Accept(ctx, o.ID)
	require.NoError(t, err)
	assert.Equal(t, models.OrderStatusAccepted, got.Status)

	got, err = lc.Reject(ctx, o.ID)
	require.NoError(t, err)
	assert.Equal(t, models.OrderStatusAssigned, got.Status)
	assert.Equal(t, models.DriverUnassigned, got.Driver)

	got, err = lc.Complete(ctx, o.ID)
	require.NoError(t, err)
	assert.Equal(t, models.OrderStatusDelivered, got.Status)
	assert.Equal(t, "2025-03-10", got.DeliveryDate)
}

func TestCompleteTwiceRestampsDate(t *testing.T) {
	clock := day("2025-03-10")
	lc, _ := newLifecycle(t, &clock)
	ctx := context.Background()

	o, err := lc.CreateOrder(ctx, &models.Order{Item: "Box", Customer: "Ann"})
	require.NoError(t, err)

	_, err = lc.Complete(ctx, o.ID)
	require.NoError(t, err)

	// Completing again on a later day re-stamps the delivery date. Known
	// re-stamping risk; the call must still succeed.
	clock = day("2025-03-12")
	got, err := lc.Complete(ctx, o.ID)
	require.NoError(t, err)
	assert.Equal(t, models.OrderStatusDelivered, got.Status)
	assert.Equal(t, "2025-03-12", got.DeliveryDate)
}

func TestDeliveryDateInvariantHoldsAcrossTransitions(t *testing.T) {
	clock := day("2025-03-10")
	lc, orders := newLifecycle(t, &clock)
	ctx := context.Background()

	o, err := lc.CreateOrder(ctx, &models.Order{Item: "Box", Customer: "Ann"})
	require.NoError(t, err)

	steps := []func() (*models.Order, error){
		func() (*models.Order, error) { return lc.Assign(ctx, o.ID, "Alice") },
		func() (*models.Order, error) { return lc.Accept(ctx, o.ID) },
		func() (*models.Order, error) { return lc.Complete(ctx, o.ID) },
		func() (*models.Order, error) { return lc.Reject(ctx, o.ID) },
		func() (*models.Order, error) { return lc.UpdateStatus(ctx, o.ID, "Delivered") },
		func() (*models.Order, error) { return lc.UpdateStatus(ctx, o.ID, "Pending") },
		func() (*models.Order, error) { return lc.Complete(ctx, o.ID) },
	}
	for i, step := range steps {
		_, err := step()
		require.NoError(t, err, "step %d", i)

		all, err := orders.List(ctx)
		require.NoError(t, err)
		for _, got := range all {
			if got.IsDelivered() {
				assert.NotEmpty(t, got.DeliveryDate, "step %d: delivered order missing date", i)
			} else {
				assert.Empty(t, got.DeliveryDate, "step %d: undelivered order has date", i)
			}
		}
	}
}

func TestUpdateStatusCanonicalizesKnownValues(t *testing.T) {
	clock := day("2025-03-10")
	lc, _ := newLifecycle(t, &clock)
	ctx := context.Background()

	o, err := lc.CreateOrder(ctx, &models.Order{Item: "Box", Customer: "Ann"})
	require.NoError(t, err)

	got, err := lc.UpdateStatus(ctx, o.ID, "delivered")
	require.NoError(t, err)
	assert.Equal(t, models.OrderStatusDelivered, got.Status)
	assert.Equal(t, "2025-03-10", got.DeliveryDate)
}

func TestLifecycleEndToEnd(t *testing.T) {
	clock := day("2025-03-10")
	lc, _ := newLifecycle(t, &clock)
	ctx := context.Background()

	o, err := lc.CreateOrder(ctx, &models.Order{Item: "Parcel", Customer: "Carol"})
	require.NoError(t, err)
	assert.Equal(t, models.OrderStatusAssigned, o.Status)
	assert.Equal(t, models.DriverUnassigned, o.Driver)
	assert.Equal(t, 0.0, o.Price)

	o, err = lc.Assign(ctx, o.ID, "Alice")
	require.NoError(t, err)
	assert.Equal(t, "Alice", o.Driver)
	assert.Equal(t, models.OrderStatusAssigned, o.Status)

	o, err = lc.Accept(ctx, o.ID)
	require.NoError(t, err)
	assert.Equal(t, models.OrderStatusAccepted, o.Status)

	o, err = lc.Complete(ctx, o.ID)
	require.NoError(t, err)
	assert.Equal(t, models.OrderStatusDelivered, o.Status)
	assert.Equal(t, "2025-03-10", o.DeliveryDate)
}

func TestOperationsOnMissingOrderShortCircuit(t *testing.T) {
	clock := day("2025-03-10")
	lc, _ := newLifecycle(t, &clock)
	ctx := context.Background()

	for name, fn := range map[string]func() error{
		"accept":   func() error { _, err := lc.Accept(ctx, "missing"); return err },
		"reject":   func() error { _, err := lc.Reject(ctx, "missing"); return err },
		"complete": func() error { _, err := lc.Complete(ctx, "missing"); return err },
		"update":   func() error { _, err := lc.UpdateStatus(ctx, "missing", "Pending"); return err },
	} {
		err := fn()
		assert.True(t, errors.Is(err, models.ErrNotFound), "%s: expected not-found, got %v", name, err)
	}
}
