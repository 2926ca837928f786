package model

import "time"

// Account is a login record. Role true means admin, false means customer.
// Passwords are stored and compared verbatim; that is the contracted
// behavior of the system this replaces.
type Account struct {
	ID        string     `json:"id"`
	Phone     string     `json:"phone"`
	Password  string     `json:"-"`
	Role      bool       `json:"role"`
	UpdatedAt *time.Time `json:"updated_at,omitempty"`
}

// RouteTarget is the view an authenticated account is routed to.
type RouteTarget string

const (
	RouteAdmin    RouteTarget = "admin"
	RouteCustomer RouteTarget = "customer"
)
