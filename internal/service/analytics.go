package service

import (
	"context"
	"strings"
	"time"

	"github.com/smartdelivery/smartdelivery-golang/internal/models"
	"github.com/smartdelivery/smartdelivery-golang/internal/store"
)

// MatchMode selects how an order's driver field is matched against a driver
// identifier. The historical behavior is the permissive substring match; it
// over-matches when one driver's name is a substring of another's, so the
// strict mode exists for callers ready to adopt it.
type MatchMode int

const (
	// MatchSubstring accepts a case-insensitive equality OR a
	// case-sensitive substring hit. This is the compatible default.
	MatchSubstring MatchMode = iota
	// MatchExact accepts only case-insensitive equality.
	MatchExact
)

// SystemStats is the admin dashboard headline block.
type SystemStats struct {
	TotalDrivers   int64 `json:"totalDrivers"`
	TotalOrders    int64 `json:"totalOrders"`
	DeliveredToday int64 `json:"deliveredToday"`
}

// RevenueStats aggregates order counts and delivered revenue. Weekly and
// monthly are aliases of the total order count, kept for dashboard
// compatibility; they are not time-windowed.
type RevenueStats struct {
	Weekly  int64   `json:"weekly"`
	Monthly int64   `json:"monthly"`
	Pending int64   `json:"pending"`
	Revenue float64 `json:"revenue"`
}

// DriverStats aggregates one driver's order set.
type DriverStats struct {
	Completed int64   `json:"completed"`
	Revenue   float64 `json:"revenue"`
	Pending   int64   `json:"pending"`
}

// Analytics computes the dashboard aggregations. All of them are in-memory
// passes over the full order collection; nothing is pushed down into SQL.
type Analytics struct {
	orders  store.OrderStore
	drivers store.DriverStore
	match   MatchMode
	now     func() time.Time
}

// NewAnalytics wires the analytics service with the given match mode.
func NewAnalytics(orders store.OrderStore, drivers store.DriverStore, match MatchMode, now func() time.Time) *Analytics {
	if now == nil {
		now = time.Now
	}
	return &Analytics{orders: orders, drivers: drivers, match: match, now: now}
}

// SystemStats returns driver/order counts and today's delivery count.
func (a *Analytics) SystemStats(ctx context.Context) (*SystemStats, error) {
	totalDrivers, err := a.drivers.Count(ctx)
	if err != nil {
		return nil, err
	}
	orders, err := a.orders.List(ctx)
	if err != nil {
		return nil, err
	}
	today := a.now().Format("2006-01-02")
	var deliveredToday int64
	for i := range orders {
		if orders[i].IsDelivered() && orders[i].DeliveryDate == today {
			deliveredToday++
		}
	}
	return &SystemStats{
		TotalDrivers:   totalDrivers,
		TotalOrders:    int64(len(orders)),
		DeliveredToday: deliveredToday,
	}, nil
}

// RevenueStats returns the system-wide pending count and delivered revenue.
func (a *Analytics) RevenueStats(ctx context.Context) (*RevenueStats, error) {
	orders, err := a.orders.List(ctx)
	if err != nil {
		return nil, err
	}
	stats := &RevenueStats{
		Weekly:  int64(len(orders)),
		Monthly: int64(len(orders)),
	}
	for i := range orders {
		if orders[i].IsDelivered() {
			stats.Revenue += orders[i].Price
		} else {
			stats.Pending++
		}
	}
	return stats, nil
}

// DriverStats returns completed/pending counts and delivered revenue for
// the orders matching the given driver identifier.
func (a *Analytics) DriverStats(ctx context.Context, driverID string) (*DriverStats, error) {
	orders, err := a.DriverOrders(ctx, driverID)
	if err != nil {
		return nil, err
	}
	stats := &DriverStats{}
	for i := range orders {
		if orders[i].IsDelivered() {
			stats.Completed++
			stats.Revenue += orders[i].Price
		} else {
			stats.Pending++
		}
	}
	return stats, nil
}

// DriverOrders returns every order matching the driver identifier,
// regardless of status, in insertion order.
func (a *Analytics) DriverOrders(ctx context.Context, driverID string) ([]models.Order, error) {
	orders, err := a.orders.List(ctx)
	if err != nil {
		return nil, err
	}
	matched := []models.Order{}
	for i := range orders {
		if a.matches(orders[i].Driver, driverID) {
			matched = append(matched, orders[i])
		}
	}
	return matched, nil
}

// ActiveOrders returns the driver's not-yet-delivered orders.
func (a *Analytics) ActiveOrders(ctx context.Context, driverID string) ([]models.Order, error) {
	orders, err := a.DriverOrders(ctx, driverID)
	if err != nil {
		return nil, err
	}
	active := []models.Order{}
	for i := range orders {
		if !orders[i].IsDelivered() {
			active = append(active, orders[i])
		}
	}
	return active, nil
}

// historyLimit caps how many delivered orders the driver history returns.
const historyLimit = 5

// DriverHistory returns the driver's most recent delivered orders, newest
// first by the store's insertion sequence, capped at historyLimit.
func (a *Analytics) DriverHistory(ctx context.Context, driverID string) ([]models.Order, error) {
	orders, err := a.DriverOrders(ctx, driverID)
	if err != nil {
		return nil, err
	}
	history := []models.Order{}
	for i := len(orders) - 1; i >= 0 && len(history) < historyLimit; i-- {
		if orders[i].IsDelivered() {
			history = append(history, orders[i])
		}
	}
	return history, nil
}

func (a *Analytics) matches(orderDriver, driverID string) bool {
	if orderDriver == "" || driverID == "" {
		return false
	}
	if strings.EqualFold(orderDriver, driverID) {
		return true
	}
	if a.match == MatchSubstring && strings.Contains(orderDriver, driverID) {
		return true
	}
	return false
}
