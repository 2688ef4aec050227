package models

// Driver statuses.
const (
	DriverStatusAvailable = "Available"
	DriverStatusBusy      = "Busy"
	DriverStatusOffline   = "Offline"
)

// Fallback coordinates used when a driver has never reported a position.
const (
	DefaultDriverLat = 23.0225
	DefaultDriverLng = 72.5714
)

// Driver is the operational profile for a delivery driver: availability and
// last reported GPS position. It is created from (and loosely mirrors) a
// User record of role DRIVER, but the two are separate rows and separate
// collections.
type Driver struct {
	Seq        int64   `json:"-" db:"seq"`
	ID         string  `json:"id" db:"id"`
	Name       string  `json:"name" db:"name"`
	Email      string  `json:"email" db:"email"`
	Password   string  `json:"-" db:"password"`
	Vehicle    string  `json:"vehicle,omitempty" db:"vehicle"`
	Phone      string  `json:"phone,omitempty" db:"phone"`
	Status     string  `json:"status" db:"status"`
	License    string  `json:"license,omitempty" db:"license"`
	CurrentLat float64 `json:"currentLat" db:"current_lat"`
	CurrentLng float64 `json:"currentLng" db:"current_lng"`
}
