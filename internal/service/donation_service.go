package service

import (
	"context"

	"github.com/google/uuid"

	"server/internal/domain"
)

// StatusFilterActive is the list-filter alias matching records that still
// need staff attention (pending or confirmed).
const StatusFilterActive = "active"

// DonationService applies status-filtering and status-transition rules on
// top of the donation repository.
type DonationService struct {
	repo domain.DonationRepository
}

func NewDonationService(repo domain.DonationRepository) *DonationService {
	return &DonationService{repo: repo}
}

// List interprets the raw status query parameter into a repository filter.
// An empty parameter matches everything, "active" matches pending and
// confirmed, and any other value is passed through as an exact match — an
// unknown string simply yields zero records.
func (s *DonationService) List(ctx context.Context, statusParam string) ([]domain.Donation, error) {
	switch statusParam {
	case "":
		return s.repo.List(ctx, nil)
	case StatusFilterActive:
		return s.repo.List(ctx, domain.ActiveStatuses)
	default:
		return s.repo.List(ctx, []domain.Status{domain.Status(statusParam)})
	}
}

// SetStatus validates the raw status value and applies it to the record.
// Transitions are unconstrained: any status may move to any other. Returns
// domain.ErrInvalidStatus before touching the store when the value is not
// part of the enum, and domain.ErrNotFound when the id does not resolve.
func (s *DonationService) SetStatus(ctx context.Context, id, rawStatus string) (*domain.Donation, error) {
	status, err := domain.ParseStatus(rawStatus)
	if err != nil {
		return nil, err
	}
	return s.repo.UpdateStatus(ctx, id, status)
}

// CreateInput carries the donor-supplied fields of a new donation record.
type CreateInput struct {
	Donor    string
	Contact  string
	Date     string
	Time     string
	Items    string
	Location string
	Notes    string
}

// Create persists a new record with a generated id, status pending and the
// notes defaulted to empty text.
func (s *DonationService) Create(ctx context.Context, in CreateInput) (*domain.Donation, error) {
	donation := &domain.Donation{
		ID:       uuid.NewString(),
		Donor:    in.Donor,
		Contact:  in.Contact,
		Date:     in.Date,
		Time:     in.Time,
		Items:    in.Items,
		Location: in.Location,
		Status:   domain.StatusPending,
		Notes:    in.Notes,
	}
	return s.repo.Create(ctx, donation)
}
