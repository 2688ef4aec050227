package store

import (
	"context"

	"github.com/smartdelivery/smartdelivery-golang/internal/models"
)

// The store interfaces keep every record's read-modify-write behind a
// narrow seam. The current implementations are plain last-write-wins SQL;
// a stricter discipline (row locks, version checks) can replace them
// without touching the services.

// OrderStore defines operations on Order records.
type OrderStore interface {
	// Create inserts the order, assigning a fresh opaque ID and the
	// insertion sequence number.
	Create(ctx context.Context, o *models.Order) (*models.Order, error)
	// GetByID fetches an order by its opaque ID. Returns
	// models.ErrNotFound when no such order exists.
	GetByID(ctx context.Context, id string) (*models.Order, error)
	// List returns every order in insertion order (ascending Seq).
	List(ctx context.Context) ([]models.Order, error)
	// Update overwrites the stored row matching o.ID.
	Update(ctx context.Context, o *models.Order) error
	// DeleteAll wipes the collection.
	DeleteAll(ctx context.Context) error
}

// DriverStore defines operations on Driver records.
type DriverStore interface {
	Create(ctx context.Context, d *models.Driver) (*models.Driver, error)
	// GetByEmail is an exact-match lookup; callers that need the legacy
	// case-insensitive or name fallback scan over List.
	GetByEmail(ctx context.Context, email string) (*models.Driver, error)
	List(ctx context.Context) ([]models.Driver, error)
	Update(ctx context.Context, d *models.Driver) error
	DeleteAll(ctx context.Context) error
	Count(ctx context.Context) (int64, error)
}

// UserStore defines operations on User records.
type UserStore interface {
	Create(ctx context.Context, u *models.User) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	List(ctx context.Context) ([]models.User, error)
	Update(ctx context.Context, u *models.User) error
	DeleteAll(ctx context.Context) error
}
