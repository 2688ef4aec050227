package service

import (
	"context"
	"math/rand"
	"time"

	"github.com/smartdelivery/smartdelivery-golang/internal/models"
	"github.com/smartdelivery/smartdelivery-golang/internal/store"
)

// PriceSource produces the price stamped onto an order at assignment time.
// The default is a uniform pseudo-random price in [40, 90); tests inject a
// deterministic source.
type PriceSource interface {
	AssignmentPrice() float64
}

type randomPrice struct{ rng *rand.Rand }

func (p randomPrice) AssignmentPrice() float64 {
	return 40.0 + p.rng.Float64()*50.0
}

// Lifecycle implements the order state transitions. Every operation loads
// the order, mutates it, and writes it back; a missing order short-circuits
// with ErrNotFound before any mutation.
type Lifecycle struct {
	orders store.OrderStore
	prices PriceSource
	now    func() time.Time
}

// NewLifecycle wires the lifecycle service. A nil prices falls back to the
// random source, a nil now to time.Now.
func NewLifecycle(orders store.OrderStore, prices PriceSource, now func() time.Time) *Lifecycle {
	if prices == nil {
		prices = randomPrice{rng: rand.New(rand.NewSource(time.Now().UnixNano()))}
	}
	if now == nil {
		now = time.Now
	}
	return &Lifecycle{orders: orders, prices: prices, now: now}
}

// CreateOrder stores a fresh admin-created order. Whatever the caller sent
// for status/driver/price is overwritten with the creation defaults.
func (l *Lifecycle) CreateOrder(ctx context.Context, o *models.Order) (*models.Order, error) {
	o.Status = models.OrderStatusAssigned
	o.Driver = models.DriverUnassigned
	o.Price = 0
	o.DeliveryDate = ""
	return l.orders.Create(ctx, o)
}

// Assign hands the order to the named driver and stamps the assignment
// price.
func (l *Lifecycle) Assign(ctx context.Context, orderID, driverName string) (*models.Order, error) {
	return l.mutate(ctx, orderID, func(o *models.Order) {
		o.Driver = driverName
		o.Status = models.OrderStatusAssigned
		o.Price = l.prices.AssignmentPrice()
	})
}

// Accept marks the order accepted by its driver. There is deliberately no
// check that the order was previously Assigned.
func (l *Lifecycle) Accept(ctx context.Context, orderID string) (*models.Order, error) {
	return l.mutate(ctx, orderID, func(o *models.Order) {
		o.Status = models.OrderStatusAccepted
	})
}

// Reject returns the order to the unassigned pool.
func (l *Lifecycle) Reject(ctx context.Context, orderID string) (*models.Order, error) {
	return l.mutate(ctx, orderID, func(o *models.Order) {
		o.Driver = models.DriverUnassigned
		o.Status = models.OrderStatusAssigned
	})
}

// UpdateStatus overwrites the order status with the caller-supplied value.
// Validation against the known set happens at the HTTP boundary; the
// service itself stays permissive.
func (l *Lifecycle) UpdateStatus(ctx context.Context, orderID, status string) (*models.Order, error) {
	return l.mutate(ctx, orderID, func(o *models.Order) {
		o.Status = models.CanonicalOrderStatus(status)
	})
}

// Complete marks the order Delivered and stamps today's date. Completing
// twice re-stamps the date to the later call's day.
func (l *Lifecycle) Complete(ctx context.Context, orderID string) (*models.Order, error) {
	return l.mutate(ctx, orderID, func(o *models.Order) {
		o.Status = models.OrderStatusDelivered
	})
}

// mutate runs the shared load/modify/store cycle and maintains the
// delivery-date invariant: DeliveryDate is non-empty exactly when the order
// is Delivered. Leaving Delivered (a reject, a manual status overwrite)
// clears it; entering Delivered stamps the local calendar date.
func (l *Lifecycle) mutate(ctx context.Context, orderID string, fn func(*models.Order)) (*models.Order, error) {
	o, err := l.orders.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	fn(o)
	if o.IsDelivered() {
		o.DeliveryDate = l.today()
	} else {
		o.DeliveryDate = ""
	}
	if err := l.orders.Update(ctx, o); err != nil {
		return nil, err
	}
	return o, nil
}

func (l *Lifecycle) today() string {
	return l.now().Format("2006-01-02")
}
