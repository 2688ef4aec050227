package models

import "strings"

// User roles.
const (
	RoleAdmin  = "ADMIN"
	RoleDriver = "DRIVER"
)

// Registration coordinates seeded onto new DRIVER accounts before the
// driver reports a real position.
const (
	RegistrationLat = 40.7128
	RegistrationLng = -74.0060
)

// User is an authentication account. Passwords are stored and compared in
// clear text and never serialized to JSON.
type User struct {
	Seq        int64   `json:"-" db:"seq"`
	ID         string  `json:"id" db:"id"`
	Name       string  `json:"name" db:"name"`
	Email      string  `json:"email" db:"email"`
	Password   string  `json:"-" db:"password"`
	Role       string  `json:"role" db:"role"`
	Vehicle    string  `json:"vehicle,omitempty" db:"vehicle"`
	Phone      string  `json:"phone,omitempty" db:"phone"`
	Status     string  `json:"status" db:"status"`
	CurrentLat float64 `json:"currentLat,omitempty" db:"current_lat"`
	CurrentLng float64 `json:"currentLng,omitempty" db:"current_lng"`
}

// IsDriver reports whether the account was registered with the DRIVER role.
func (u *User) IsDriver() bool {
	return strings.EqualFold(u.Role, RoleDriver)
}
