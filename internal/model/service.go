package model

import "time"

// Service is a catalog entry. The ID is assigned by the document store on
// creation and immutable thereafter.
type Service struct {
	ID        string    `json:"id"`
	Creator   string    `json:"creator"`
	Price     int64     `json:"price"`
	Name      string    `json:"name"`
	UpdatedAt time.Time `json:"updated_at"`
}
