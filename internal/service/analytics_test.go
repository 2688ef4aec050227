package service_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smartdelivery/smartdelivery-golang/internal/models"
	"github.com/smartdelivery/smartdelivery-golang/internal/service"
	"github.com/smartdelivery/smartdelivery-golang/internal/testutil"
)

func seedOrder(t *testing.T, orders *testutil.MemOrderStore, driver, status, date string, price float64) models.Order {
	t.Helper()
	o, err := orders.Create(context.Background(), &models.Order{
		Item:         "Item",
		Customer:     "Customer",
		Driver:       driver,
		Status:       status,
		Price:        price,
		DeliveryDate: date,
	})
	require.NoError(t, err)
	return *o
}

func newAnalytics(orders *testutil.MemOrderStore, drivers *testutil.MemDriverStore, mode service.MatchMode) *service.Analytics {
	now := func() time.Time { return day("2025-03-10") }
	return service.NewAnalytics(orders, drivers, mode, now)
}

func TestSystemStats(t *testing.T) {
	orders := testutil.NewMemOrderStore()
	drivers := testutil.NewMemDriverStore()
	ctx := context.Background()

	for _, name := range []string{"Alice", "Bob"} {
		_, err := drivers.Create(ctx, &models.Driver{Name: name, Email: name + "@x.com", Status: models.DriverStatusAvailable})
		require.NoError(t, err)
	}
	seedOrder(t, orders, "Alice", models.OrderStatusDelivered, "2025-03-10", 50)
	seedOrder(t, orders, "Alice", models.OrderStatusDelivered, "2025-03-09", 60)
	seedOrder(t, orders, "Bob", models.OrderStatusAssigned, "", 0)

	stats, err := newAnalytics(orders, drivers, service.MatchSubstring).SystemStats(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), stats.TotalDrivers)
	assert.Equal(t, int64(3), stats.TotalOrders)
	assert.Equal(t, int64(1), stats.DeliveredToday)
}

func TestRevenueStatsCountsExactlyDeliveredOrders(t *testing.T) {
	orders := testutil.NewMemOrderStore()
	drivers := testutil.NewMemDriverStore()

	seedOrder(t, orders, "Alice", models.OrderStatusDelivered, "2025-03-01", 45.5)
	seedOrder(t, orders, "Bob", models.OrderStatusDelivered, "2025-03-02", 54.5)
	seedOrder(t, orders, "Bob", models.OrderStatusAccepted, "", 80) // price must not count
	seedOrder(t, orders, models.DriverUnassigned, models.OrderStatusAssigned, "", 0)

	stats, err := newAnalytics(orders, drivers, service.MatchSubstring).RevenueStats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(2), stats.Pending)
	assert.Equal(t, 100.0, stats.Revenue)
	// Weekly/monthly are aliases of the total order count, kept for
	// dashboard compatibility.
	assert.Equal(t, int64(4), stats.Weekly)
	assert.Equal(t, int64(4), stats.Monthly)
}

func TestDriverStats(t *testing.T) {
	orders := testutil.NewMemOrderStore()
	drivers := testutil.NewMemDriverStore()

	seedOrder(t, orders, "Alice", models.OrderStatusDelivered, "2025-03-01", 50)
	seedOrder(t, orders, "Alice", models.OrderStatusAccepted, "", 70)
	seedOrder(t, orders, "Bob", models.OrderStatusDelivered, "2025-03-01", 60)

	stats, err := newAnalytics(orders, drivers, service.MatchSubstring).DriverStats(context.Background(), "Alice")
	require.NoError(t, err)
	assert.Equal(t, int64(1), stats.Completed)
	assert.Equal(t, 50.0, stats.Revenue)
	assert.Equal(t, int64(1), stats.Pending)
}

func TestDriverHistoryCapAndOrder(t *testing.T) {
	orders := testutil.NewMemOrderStore()
	drivers := testutil.NewMemDriverStore()

	var seeded []models.Order
	for i := 0; i < 7; i++ {
		o := seedOrder(t, orders, "Alice", models.OrderStatusDelivered, "2025-03-01", float64(40+i))
		seeded = append(seeded, o)
	}
	seedOrder(t, orders, "Alice", models.OrderStatusAccepted, "", 0)

	history, err := newAnalytics(orders, drivers, service.MatchSubstring).DriverHistory(context.Background(), "Alice")
	require.NoError(t, err)
	require.Len(t, history, 5)

	// Newest first by insertion sequence, and only delivered orders.
	for i, got := range history {
		want := seeded[len(seeded)-1-i]
		assert.Equal(t, want.ID, got.ID, "position %d", i)
		assert.True(t, got.IsDelivered())
	}
}

func TestActiveOrdersExcludesDelivered(t *testing.T) {
	orders := testutil.NewMemOrderStore()
	drivers := testutil.NewMemDriverStore()

	seedOrder(t, orders, "Alice", models.OrderStatusDelivered, "2025-03-01", 50)
	active1 := seedOrder(t, orders, "Alice", models.OrderStatusAssigned, "", 0)
	active2 := seedOrder(t, orders, "Alice", models.OrderStatusAccepted, "", 45)

	active, err := newAnalytics(orders, drivers, service.MatchSubstring).ActiveOrders(context.Background(), "Alice")
	require.NoError(t, err)
	require.Len(t, active, 2)
	assert.Equal(t, active1.ID, active[0].ID)
	assert.Equal(t, active2.ID, active[1].ID)
}

func TestMatchModes(t *testing.T) {
	orders := testutil.NewMemOrderStore()
	drivers := testutil.NewMemDriverStore()

	seedOrder(t, orders, "Alice", models.OrderStatusAssigned, "", 0)
	seedOrder(t, orders, "Alina", models.OrderStatusAssigned, "", 0)

	// Substring mode over-matches: "Al" hits both drivers.
	loose, err := newAnalytics(orders, drivers, service.MatchSubstring).DriverOrders(context.Background(), "Al")
	require.NoError(t, err)
	assert.Len(t, loose, 2)

	// Exact mode matches neither.
	strict, err := newAnalytics(orders, drivers, service.MatchExact).DriverOrders(context.Background(), "Al")
	require.NoError(t, err)
	assert.Empty(t, strict)

	// Both modes match the full name, ignoring case.
	exact, err := newAnalytics(orders, drivers, service.MatchExact).DriverOrders(context.Background(), "alice")
	require.NoError(t, err)
	assert.Len(t, exact, 1)
}

func TestDriverOrdersIgnoresBlankIdentifier(t *testing.T) {
	orders := testutil.NewMemOrderStore()
	drivers := testutil.NewMemDriverStore()
	seedOrder(t, orders, "Alice", models.OrderStatusAssigned, "", 0)

	matched, err := newAnalytics(orders, drivers, service.MatchSubstring).DriverOrders(context.Background(), "")
	require.NoError(t, err)
	assert.Empty(t, matched)
}

func TestRevenueStatsLargeSetNoDoubleCounting(t *testing.T) {
	orders := testutil.NewMemOrderStore()
	drivers := testutil.NewMemDriverStore()

	var want float64
	for i := 0; i < 25; i++ {
		price := 40.0 + float64(i)
		status := models.OrderStatusDelivered
		date := "2025-03-05"
		if i%5 == 0 {
			status = models.OrderStatusAccepted
			date = ""
		} else {
			want += price
		}
		seedOrder(t, orders, fmt.Sprintf("Driver%d", i%3), status, date, price)
	}

	stats, err := newAnalytics(orders, drivers, service.MatchSubstring).RevenueStats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, want, stats.Revenue)
	assert.Equal(t, int64(5), stats.Pending)
}
