package models

import "time"

// Figure - фигурка из коллекции.
type Figure struct {
	ID           int       `json:"id"`
	Name         string    `json:"name"`
	Series       string    `json:"series"`
	Manufacturer string    `json:"manufacturer"`
	ReleaseYear  int       `json:"release_year,omitempty"`
	AcquiredAt   time.Time `json:"acquired_at"`
}
