package models

import "strings"

// Order statuses. The status column is stored as a plain string, so these
// constants are the canonical spellings; comparison is case-insensitive.
const (
	OrderStatusPending   = "Pending"
	OrderStatusAssigned  = "Assigned"
	OrderStatusAccepted  = "Accepted"
	OrderStatusDelivered = "Delivered"
)

// DriverUnassigned is the sentinel stored in Order.Driver while no driver
// holds the order.
const DriverUnassigned = "Unassigned"

// Order is the model for the 'orders' table.
//
// Seq is the auto-increment insertion sequence. It is the authoritative
// "most recent" key for history queries and is never exposed over JSON;
// clients only ever see the opaque uuid ID.
type Order struct {
	Seq          int64   `json:"-" db:"seq"`
	ID           string  `json:"id" db:"id"`
	Item         string  `json:"item" db:"item"`
	Customer     string  `json:"customer" db:"customer"`
	Location     string  `json:"location" db:"location"`
	Status       string  `json:"status" db:"status"`
	Driver       string  `json:"driver" db:"driver"`
	Price        float64 `json:"price" db:"price"`
	DestLat      float64 `json:"destLat" db:"dest_lat"`
	DestLng      float64 `json:"destLng" db:"dest_lng"`
	DeliveryDate string  `json:"deliveryDate,omitempty" db:"delivery_date"` // "2006-01-02", empty until delivered
}

// IsDelivered reports whether the order reached the terminal Delivered state.
func (o *Order) IsDelivered() bool {
	return strings.EqualFold(o.Status, OrderStatusDelivered)
}

var knownOrderStatuses = []string{
	OrderStatusPending,
	OrderStatusAssigned,
	OrderStatusAccepted,
	OrderStatusDelivered,
}

// KnownOrderStatus reports whether s is one of the recognised order
// statuses, ignoring case.
func KnownOrderStatus(s string) bool {
	for _, known := range knownOrderStatuses {
		if strings.EqualFold(s, known) {
			return true
		}
	}
	return false
}

// CanonicalOrderStatus maps any accepted spelling of a known status to its
// canonical form. Unknown values are returned unchanged.
func CanonicalOrderStatus(s string) string {
	for _, known := range knownOrderStatuses {
		if strings.EqualFold(s, known) {
			return known
		}
	}
	return s
}
