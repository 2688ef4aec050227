package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/smartdelivery/smartdelivery-golang/internal/models"
)

// SQLDriverStore persists driver profiles through database/sql.
type SQLDriverStore struct {
	db *sql.DB
}

// NewDriverStore creates a SQLDriverStore on top of an open connection pool.
func NewDriverStore(db *sql.DB) *SQLDriverStore {
	return &SQLDriverStore{db: db}
}

const driverColumns = `seq, id, name, email, password, vehicle, phone, status, license, current_lat, current_lng`

func scanDriver(row interface{ Scan(...any) error }) (*models.Driver, error) {
	var d models.Driver
	err := row.Scan(&d.Seq, &d.ID, &d.Name, &d.Email, &d.Password, &d.Vehicle,
		&d.Phone, &d.Status, &d.License, &d.CurrentLat, &d.CurrentLng)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

// Create inserts a new driver profile. Missing coordinates fall back to the
// default position so the admin map never renders a driver at (0, 0).
func (s *SQLDriverStore) Create(ctx context.Context, d *models.Driver) (*models.Driver, error) {
	if d == nil {
		return nil, errors.New("driver is nil")
	}
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	if d.CurrentLat == 0 && d.CurrentLng == 0 {
		d.CurrentLat = models.DefaultDriverLat
		d.CurrentLng = models.DefaultDriverLng
	}
	d.ID = uuid.NewString()
	res, err := s.db.ExecContext(ctx,
		`INSERT INTO drivers (id, name, email, password, vehicle, phone, status, license, current_lat, current_lng)
		 VALUES (?,?,?,?,?,?,?,?,?,?)`,
		d.ID, d.Name, d.Email, d.Password, d.Vehicle, d.Phone, d.Status,
		d.License, d.CurrentLat, d.CurrentLng)
	if err != nil {
		return nil, fmt.Errorf("insert driver: %w", err)
	}
	seq, err := res.LastInsertId()
	if err != nil {
		return nil, err
	}
	d.Seq = seq
	return d, nil
}

// GetByEmail is the exact-match lookup. The legacy case-insensitive and
// name fallbacks live in the roster service on top of List.
func (s *SQLDriverStore) GetByEmail(ctx context.Context, email string) (*models.Driver, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	d, err := scanDriver(s.db.QueryRowContext(ctx,
		`SELECT `+driverColumns+` FROM drivers WHERE email = ? ORDER BY seq ASC LIMIT 1`, email))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("driver %s: %w", email, models.ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	return d, nil
}

// List returns every driver profile in insertion order.
func (s *SQLDriverStore) List(ctx context.Context) ([]models.Driver, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	rows, err := s.db.QueryContext(ctx,
		`SELECT `+driverColumns+` FROM drivers ORDER BY seq ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var drivers []models.Driver
	for rows.Next() {
		d, err := scanDriver(rows)
		if err != nil {
			return nil, err
		}
		drivers = append(drivers, *d)
	}
	return drivers, rows.Err()
}

// Update overwrites the stored row for d.ID.
func (s *SQLDriverStore) Update(ctx context.Context, d *models.Driver) error {
	if d == nil {
		return errors.New("driver is nil")
	}
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	_, err := s.db.ExecContext(ctx,
		`UPDATE drivers SET name=?, email=?, password=?, vehicle=?, phone=?, status=?, license=?, current_lat=?, current_lng=? WHERE id=?`,
		d.Name, d.Email, d.Password, d.Vehicle, d.Phone, d.Status, d.License,
		d.CurrentLat, d.CurrentLng, d.ID)
	return err
}

// DeleteAll wipes the drivers collection.
func (s *SQLDriverStore) DeleteAll(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()
	_, err := s.db.ExecContext(ctx, `DELETE FROM drivers`)
	return err
}

// Count returns the number of registered driver profiles.
func (s *SQLDriverStore) Count(ctx context.Context) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()
	var n int64
	err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM drivers`).Scan(&n)
	return n, err
}
