package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/smartdelivery/smartdelivery-golang/internal/models"
)

// SQLUserStore persists authentication accounts through database/sql.
// Email uniqueness is a registration-time pre-check in the accounts
// service, not a database constraint.
type SQLUserStore struct {
	db *sql.DB
}

// NewUserStore creates a SQLUserStore on top of an open connection pool.
func NewUserStore(db *sql.DB) *SQLUserStore {
	return &SQLUserStore{db: db}
}

const userColumns = `seq, id, name, email, password, role, vehicle, phone, status, current_lat, current_lng`

func scanUser(row interface{ Scan(...any) error }) (*models.User, error) {
	var u models.User
	err := row.Scan(&u.Seq, &u.ID, &u.Name, &u.Email, &u.Password, &u.Role,
		&u.Vehicle, &u.Phone, &u.Status, &u.CurrentLat, &u.CurrentLng)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// Create inserts a new account.
func (s *SQLUserStore) Create(ctx context.Context, u *models.User) (*models.User, error) {
	if u == nil {
		return nil, errors.New("user is nil")
	}
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	u.ID = uuid.NewString()
	res, err := s.db.ExecContext(ctx,
		`INSERT INTO users (id, name, email, password, role, vehicle, phone, status, current_lat, current_lng)
		 VALUES (?,?,?,?,?,?,?,?,?,?)`,
		u.ID, u.Name, u.Email, u.Password, u.Role, u.Vehicle, u.Phone,
		u.Status, u.CurrentLat, u.CurrentLng)
	if err != nil {
		return nil, fmt.Errorf("insert user: %w", err)
	}
	seq, err := res.LastInsertId()
	if err != nil {
		return nil, err
	}
	u.Seq = seq
	return u, nil
}

// GetByEmail fetches an account by its exact email.
func (s *SQLUserStore) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	u, err := scanUser(s.db.QueryRowContext(ctx,
		`SELECT `+userColumns+` FROM users WHERE email = ? ORDER BY seq ASC LIMIT 1`, email))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("user %s: %w", email, models.ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	return u, nil
}

// List returns every account in insertion order.
func (s *SQLUserStore) List(ctx context.Context) ([]models.User, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	rows, err := s.db.QueryContext(ctx,
		`SELECT `+userColumns+` FROM users ORDER BY seq ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []models.User
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		users = append(users, *u)
	}
	return users, rows.Err()
}

// Update overwrites the stored row for u.ID.
func (s *SQLUserStore) Update(ctx context.Context, u *models.User) error {
	if u == nil {
		return errors.New("user is nil")
	}
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	_, err := s.db.ExecContext(ctx,
		`UPDATE users SET name=?, email=?, password=?, role=?, vehicle=?, phone=?, status=?, current_lat=?, current_lng=? WHERE id=?`,
		u.Name, u.Email, u.Password, u.Role, u.Vehicle, u.Phone, u.Status,
		u.CurrentLat, u.CurrentLng, u.ID)
	return err
}

// DeleteAll wipes the users collection.
func (s *SQLUserStore) DeleteAll(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()
	_, err := s.db.ExecContext(ctx, `DELETE FROM users`)
	return err
}
