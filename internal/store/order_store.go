package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/smartdelivery/smartdelivery-golang/internal/models"
)

const opTimeout = 3 * time.Second

// SQLOrderStore persists orders through database/sql. The SQL is kept
// dialect-neutral so the same queries run against MySQL in production and
// in-memory sqlite in the tests.
type SQLOrderStore struct {
	db *sql.DB
}

// NewOrderStore creates a SQLOrderStore on top of an open connection pool.
func NewOrderStore(db *sql.DB) *SQLOrderStore {
	return &SQLOrderStore{db: db}
}

const orderColumns = `seq, id, item, customer, location, status, driver, price, dest_lat, dest_lng, delivery_date`

func scanOrder(row interface{ Scan(...any) error }) (*models.Order, error) {
	var o models.Order
	err := row.Scan(&o.Seq, &o.ID, &o.Item, &o.Customer, &o.Location, &o.Status,
		&o.Driver, &o.Price, &o.DestLat, &o.DestLng, &o.DeliveryDate)
	if err != nil {
		return nil, err
	}
	return &o, nil
}

// Create inserts a new order. The opaque ID is generated here so callers
// never have to care how the store keys its rows.
func (s *SQLOrderStore) Create(ctx context.Context, o *models.Order) (*models.Order, error) {
	if o == nil {
		return nil, errors.New("order is nil")
	}
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	o.ID = uuid.NewString()
	res, err := s.db.ExecContext(ctx,
		`INSERT INTO orders (id, item, customer, location, status, driver, price, dest_lat, dest_lng, delivery_date)
		 VALUES (?,?,?,?,?,?,?,?,?,?)`,
		o.ID, o.Item, o.Customer, o.Location, o.Status, o.Driver, o.Price,
		o.DestLat, o.DestLng, o.DeliveryDate)
	if err != nil {
		return nil, fmt.Errorf("insert order: %w", err)
	}
	seq, err := res.LastInsertId()
	if err != nil {
		return nil, err
	}
	o.Seq = seq
	return o, nil
}

// GetByID fetches a single order, mapping a missing row to ErrNotFound.
func (s *SQLOrderStore) GetByID(ctx context.Context, id string) (*models.Order, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	o, err := scanOrder(s.db.QueryRowContext(ctx,
		`SELECT `+orderColumns+` FROM orders WHERE id = ?`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("order %s: %w", id, models.ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	return o, nil
}

// List returns the full collection in insertion order. The dashboard
// aggregations run over this full scan rather than pushing filters into
// SQL; the data set is small and the counting rules live in one place.
func (s *SQLOrderStore) List(ctx context.Context) ([]models.Order, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	rows, err := s.db.QueryContext(ctx,
		`SELECT `+orderColumns+` FROM orders ORDER BY seq ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var orders []models.Order
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, err
		}
		orders = append(orders, *o)
	}
	return orders, rows.Err()
}

// Update overwrites the stored row for o.ID.
func (s *SQLOrderStore) Update(ctx context.Context, o *models.Order) error {
	if o == nil {
		return errors.New("order is nil")
	}
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	// MySQL reports zero affected rows for no-op updates (e.g. completing
	// an already-completed order on the same day), so RowsAffected cannot
	// distinguish "missing" from "unchanged". Callers load the record
	// before updating it, which covers the not-found decision point.
	_, err := s.db.ExecContext(ctx,
		`UPDATE orders SET item=?, customer=?, location=?, status=?, driver=?, price=?, dest_lat=?, dest_lng=?, delivery_date=? WHERE id=?`,
		o.Item, o.Customer, o.Location, o.Status, o.Driver, o.Price,
		o.DestLat, o.DestLng, o.DeliveryDate, o.ID)
	return err
}

// DeleteAll wipes the orders collection. No confirmation, no backup; the
// admin reset endpoints own that risk.
func (s *SQLOrderStore) DeleteAll(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()
	_, err := s.db.ExecContext(ctx, `DELETE FROM orders`)
	return err
}
