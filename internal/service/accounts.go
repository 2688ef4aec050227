package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/smartdelivery/smartdelivery-golang/internal/auth"
	"github.com/smartdelivery/smartdelivery-golang/internal/models"
	"github.com/smartdelivery/smartdelivery-golang/internal/store"
)

// Accounts implements registration, login, and the password-reset flow.
// Driver accounts are dual-written: a User row for authentication plus a
// mirrored Driver profile for the roster. The two are only synchronized at
// registration and password-reset time.
type Accounts struct {
	users     store.UserStore
	drivers   store.DriverStore
	resetKeys *auth.ResetKeys
}

// NewAccounts wires the accounts service.
func NewAccounts(users store.UserStore, drivers store.DriverStore, resetKeys *auth.ResetKeys) *Accounts {
	return &Accounts{users: users, drivers: drivers, resetKeys: resetKeys}
}

// Register creates an account. Duplicate emails are rejected by a
// pre-check (ErrConflict). DRIVER registrations also seed a Driver profile
// with status Available, unless one already exists for the email.
func (a *Accounts) Register(ctx context.Context, u *models.User) (*models.User, error) {
	if u.Email == "" || u.Password == "" {
		return nil, fmt.Errorf("email and password are required: %w", models.ErrInvalidInput)
	}
	if _, err := a.users.GetByEmail(ctx, u.Email); err == nil {
		return nil, fmt.Errorf("email %s already exists: %w", u.Email, models.ErrConflict)
	} else if !errors.Is(err, models.ErrNotFound) {
		return nil, err
	}

	u.Status = "Active"
	if u.IsDriver() {
		u.CurrentLat = models.RegistrationLat
		u.CurrentLng = models.RegistrationLng
	}
	created, err := a.users.Create(ctx, u)
	if err != nil {
		return nil, err
	}

	if created.IsDriver() {
		if _, err := a.drivers.GetByEmail(ctx, created.Email); errors.Is(err, models.ErrNotFound) {
			_, err := a.drivers.Create(ctx, &models.Driver{
				Name:       created.Name,
				Email:      created.Email,
				Password:   created.Password,
				Vehicle:    created.Vehicle,
				Phone:      created.Phone,
				Status:     models.DriverStatusAvailable,
				CurrentLat: created.CurrentLat,
				CurrentLng: created.CurrentLng,
			})
			if err != nil {
				return nil, err
			}
		} else if err != nil {
			return nil, err
		}
	}
	return created, nil
}

// Login checks the credentials with a plain equality comparison and returns
// the account on success. Any mismatch, including an unknown email, comes
// back as the same ErrInvalidInput so the response never reveals which part
// was wrong.
func (a *Accounts) Login(ctx context.Context, email, password string) (*models.User, error) {
	u, err := a.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return nil, fmt.Errorf("invalid credentials: %w", models.ErrInvalidInput)
		}
		return nil, err
	}
	if u.Password != password {
		return nil, fmt.Errorf("invalid credentials: %w", models.ErrInvalidInput)
	}
	return u, nil
}

// ForgotPassword issues a reset key for the email. The key is returned for
// out-of-band display (the server logs it); there is no email delivery.
func (a *Accounts) ForgotPassword(ctx context.Context, email string) (string, error) {
	if _, err := a.users.GetByEmail(ctx, email); err != nil {
		return "", err
	}
	return a.resetKeys.Issue(email), nil
}

// ResetPassword redeems the key and updates the User password, plus the
// mirrored Driver password if one exists. The key is consumed whether or
// not a mirror exists; a second redemption fails.
func (a *Accounts) ResetPassword(ctx context.Context, email, key, newPassword string) error {
	if newPassword == "" {
		return fmt.Errorf("new password is required: %w", models.ErrInvalidInput)
	}
	if err := a.resetKeys.Redeem(email, key); err != nil {
		return err
	}
	u, err := a.users.GetByEmail(ctx, email)
	if err != nil {
		return err
	}
	u.Password = newPassword
	if err := a.users.Update(ctx, u); err != nil {
		return err
	}
	if d, err := a.drivers.GetByEmail(ctx, email); err == nil {
		d.Password = newPassword
		if err := a.drivers.Update(ctx, d); err != nil {
			return err
		}
	} else if !errors.Is(err, models.ErrNotFound) {
		return err
	}
	return nil
}

// ListUsers returns every account.
func (a *Accounts) ListUsers(ctx context.Context) ([]models.User, error) {
	return a.users.List(ctx)
}
