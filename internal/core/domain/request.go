package domain

import (
	"time"

	"cloud.google.com/go/civil"
)

type GuestBreakdown struct {
	Ladies int `json:"ladies"`
	Gents  int `json:"gents"`
	Kids   int `json:"kids"`
}

func (g GuestBreakdown) Total() int {
	return g.Ladies + g.Gents + g.Kids
}

type BookingRequest struct {
	Date           civil.Date      `json:"date"`
	Time           civil.Time      `json:"time"`
	GuestCount     int             `json:"guest_count"`
	GuestBreakdown *GuestBreakdown `json:"guest_breakdown,omitempty"`
	RequestedAt    time.Time       `json:"requested_at"`
}
