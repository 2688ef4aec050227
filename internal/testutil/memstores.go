// Package testutil provides in-memory store fakes for service and handler
// tests. They reproduce the contract of the SQL stores, including the
// insertion-sequence ordering and the not-found sentinels.
package testutil

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/smartdelivery/smartdelivery-golang/internal/models"
)

// MemOrderStore is an in-memory store.OrderStore.
type MemOrderStore struct {
	mu     sync.Mutex
	seq    int64
	orders []models.Order
}

// NewMemOrderStore creates an empty order store.
func NewMemOrderStore() *MemOrderStore { return &MemOrderStore{} }

func (s *MemOrderStore) Create(_ context.Context, o *models.Order) (*models.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.seq++
	o.Seq = s.seq
	o.ID = uuid.NewString()
	s.orders = append(s.orders, *o)
	return o, nil
}

func (s *MemOrderStore) GetByID(_ context.Context, id string) (*models.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.orders {
		if s.orders[i].ID == id {
			o := s.orders[i]
			return &o, nil
		}
	}
	return nil, fmt.Errorf("order %s: %w", id, models.ErrNotFound)
}

func (s *MemOrderStore) List(_ context.Context) ([]models.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Order, len(s.orders))
	copy(out, s.orders)
	return out, nil
}

func (s *MemOrderStore) Update(_ context.Context, o *models.Order) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.orders {
		if s.orders[i].ID == o.ID {
			s.orders[i] = *o
			return nil
		}
	}
	return fmt.Errorf("order %s: %w", o.ID, models.ErrNotFound)
}

func (s *MemOrderStore) DeleteAll(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.orders = nil
	return nil
}

// MemDriverStore is an in-memory store.DriverStore.
type MemDriverStore struct {
	mu      sync.Mutex
	seq     int64
	drivers []models.Driver
}

// NewMemDriverStore creates an empty driver store.
func NewMemDriverStore() *MemDriverStore { return &MemDriverStore{} }

func (s *MemDriverStore) Create(_ context.Context, d *models.Driver) (*models.Driver, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if d.CurrentLat == 0 && d.CurrentLng == 0 {
		d.CurrentLat = models.DefaultDriverLat
		d.CurrentLng = models.DefaultDriverLng
	}
	s.seq++
	d.Seq = s.seq
	d.ID = uuid.NewString()
	s.drivers = append(s.drivers, *d)
	return d, nil
}

func (s *MemDriverStore) GetByEmail(_ context.Context, email string) (*models.Driver, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.drivers {
		if s.drivers[i].Email == email {
			d := s.drivers[i]
			return &d, nil
		}
	}
	return nil, fmt.Errorf("driver %s: %w", email, models.ErrNotFound)
}

func (s *MemDriverStore) List(_ context.Context) ([]models.Driver, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Driver, len(s.drivers))
	copy(out, s.drivers)
	return out, nil
}

func (s *MemDriverStore) Update(_ context.Context, d *models.Driver) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.drivers {
		if s.drivers[i].ID == d.ID {
			s.drivers[i] = *d
			return nil
		}
	}
	return fmt.Errorf("driver %s: %w", d.ID, models.ErrNotFound)
}

func (s *MemDriverStore) DeleteAll(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.drivers = nil
	return nil
}

func (s *MemDriverStore) Count(_ context.Context) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return int64(len(s.drivers)), nil
}

// MemUserStore is an in-memory store.UserStore.
type MemUserStore struct {
	mu    sync.Mutex
	seq   int64
	users []models.User
}

// NewMemUserStore creates an empty user store.
func NewMemUserStore() *MemUserStore { return &MemUserStore{} }

func (s *MemUserStore) Create(_ context.Context, u *models.User) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.seq++
	u.Seq = s.seq
	u.ID = uuid.NewString()
	s.users = append(s.users, *u)
	return u, nil
}

func (s *MemUserStore) GetByEmail(_ context.Context, email string) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.users {
		if s.users[i].Email == email {
			u := s.users[i]
			return &u, nil
		}
	}
	return nil, fmt.Errorf("user %s: %w", email, models.ErrNotFound)
}

func (s *MemUserStore) List(_ context.Context) ([]models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.User, len(s.users))
	copy(out, s.users)
	return out, nil
}

func (s *MemUserStore) Update(_ context.Context, u *models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.users {
		if s.users[i].ID == u.ID {
			s.users[i] = *u
			return nil
		}
	}
	return fmt.Errorf("user %s: %w", u.ID, models.ErrNotFound)
}

func (s *MemUserStore) DeleteAll(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.users = nil
	return nil
}
