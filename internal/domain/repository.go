package domain

import "context"

// DonationRepository handles donation persistence.
type DonationRepository interface {
	// List returns donations newest-first. An empty statuses slice means no
	// filter; otherwise a record matches when its status is in the set.
	List(ctx context.Context, statuses []Status) ([]Donation, error)
	// UpdateStatus sets the status of one record and refreshes its updated
	// timestamp, returning the new record state. Returns ErrNotFound when the
	// id does not resolve.
	UpdateStatus(ctx context.Context, id string, status Status) (*Donation, error)
	Create(ctx context.Context, donation *Donation) (*Donation, error)
}
