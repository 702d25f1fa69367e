// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// AccommodationRequest is a dietary accommodation request submitted from
// the student services page. Requests are stored append-only; nobody
// processes them inside this system.
type AccommodationRequest struct {
	ID      uuid.UUID `json:"id"`
	Name    string    `json:"name"`
	Email   string    `json:"email"`
	Request string    `json:"request"`
	Time    time.Time `json:"time"`
}
