package service

import (
	"context"
	"strings"

	"github.com/smartdelivery/smartdelivery-golang/internal/models"
	"github.com/smartdelivery/smartdelivery-golang/internal/store"
)

// Roster manages the driver profiles the admin side works with: creation,
// availability status, GPS positions, and the bulk resets.
type Roster struct {
	drivers store.DriverStore
	orders  store.OrderStore
	users   store.UserStore
}

// NewRoster wires the roster service.
func NewRoster(drivers store.DriverStore, orders store.OrderStore, users store.UserStore) *Roster {
	return &Roster{drivers: drivers, orders: orders, users: users}
}

// CreateDriver stores an admin-created driver profile. A blank status
// defaults to Offline.
func (r *Roster) CreateDriver(ctx context.Context, d *models.Driver) (*models.Driver, error) {
	if d.Status == "" {
		d.Status = models.DriverStatusOffline
	}
	return r.drivers.Create(ctx, d)
}

// ListDrivers returns every driver profile.
func (r *Roster) ListDrivers(ctx context.Context) ([]models.Driver, error) {
	return r.drivers.List(ctx)
}

// FindDriver looks a driver up by email: exact match first, then the
// legacy case-insensitive scan. With matchName set, a driver whose name
// equals the identifier also counts (the location-report path accepts
// either).
func (r *Roster) FindDriver(ctx context.Context, email string, matchName bool) (*models.Driver, error) {
	d, err := r.drivers.GetByEmail(ctx, email)
	if err == nil {
		return d, nil
	}
	drivers, listErr := r.drivers.List(ctx)
	if listErr != nil {
		return nil, listErr
	}
	for i := range drivers {
		if strings.EqualFold(drivers[i].Email, email) {
			return &drivers[i], nil
		}
		if matchName && strings.EqualFold(drivers[i].Name, email) {
			return &drivers[i], nil
		}
	}
	return nil, err
}

// UpdateDriverStatus sets a driver's availability status.
func (r *Roster) UpdateDriverStatus(ctx context.Context, email, status string) (*models.Driver, error) {
	d, err := r.FindDriver(ctx, email, false)
	if err != nil {
		return nil, err
	}
	d.Status = status
	if err := r.drivers.Update(ctx, d); err != nil {
		return nil, err
	}
	return d, nil
}

// ReportLocation records a driver's current GPS position. Last write wins.
func (r *Roster) ReportLocation(ctx context.Context, identifier string, lat, lng float64) (*models.Driver, error) {
	d, err := r.FindDriver(ctx, identifier, true)
	if err != nil {
		return nil, err
	}
	d.CurrentLat = lat
	d.CurrentLng = lng
	if err := r.drivers.Update(ctx, d); err != nil {
		return nil, err
	}
	return d, nil
}

// DriverLocation returns a driver's last known position.
func (r *Roster) DriverLocation(ctx context.Context, email string) (lat, lng float64, err error) {
	d, err := r.FindDriver(ctx, email, false)
	if err != nil {
		return 0, 0, err
	}
	return d.CurrentLat, d.CurrentLng, nil
}

// DeleteAllDrivers wipes the driver roster. Irreversible.
func (r *Roster) DeleteAllDrivers(ctx context.Context) error {
	return r.drivers.DeleteAll(ctx)
}

// ResetSystem wipes drivers, orders, and users. Irreversible, no backup;
// exposed only on the admin surface.
func (r *Roster) ResetSystem(ctx context.Context) error {
	if err := r.drivers.DeleteAll(ctx); err != nil {
		return err
	}
	if err := r.orders.DeleteAll(ctx); err != nil {
		return err
	}
	return r.users.DeleteAll(ctx)
}
