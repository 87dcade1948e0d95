package domain

import (
	"fmt"
	"time"
)

// Status is the review state of a donation record.
type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusCompleted Status = "completed"
	StatusRejected  Status = "rejected"
)

// ActiveStatuses are the states matched by the "active" list filter.
var ActiveStatuses = []Status{StatusPending, StatusConfirmed}

// ParseStatus validates a raw status string before it reaches the store.
func ParseStatus(raw string) (Status, error) {
	switch s := Status(raw); s {
	case StatusPending, StatusConfirmed, StatusCompleted, StatusRejected:
		return s, nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidStatus, raw)
}

// Donation represents one pledged or scheduled donation and its review state.
// Date and Time are opaque text supplied by the donor; they are stored and
// echoed back without parsing.
type Donation struct {
	ID        string    `json:"id"`
	Donor     string    `json:"donor"`
	Contact   string    `json:"contact"`
	Date      string    `json:"date"`
	Time      string    `json:"time"`
	Items     string    `json:"items"`
	Location  string    `json:"location"`
	Status    Status    `json:"status"`
	Notes     string    `json:"notes"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
