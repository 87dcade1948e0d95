package repo

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"server/internal/domain"
	"server/internal/infra"
	"server/internal/sqlinline"
)

// DonationRepositoryPG implements domain.DonationRepository on PostgreSQL.
type DonationRepositoryPG struct {
	sql infra.SQLExecutor
}

// NewDonationRepository creates a new donation repo.
func NewDonationRepository(sql infra.SQLExecutor) *DonationRepositoryPG {
	return &DonationRepositoryPG{sql: sql}
}

// EnsureSchema creates the donations table when it does not exist yet.
func (r *DonationRepositoryPG) EnsureSchema(ctx context.Context) error {
	_, err := r.sql.Exec(ctx, sqlinline.QCreateDonationsTable)
	return err
}

// Create inserts a new donation record and returns the stored state,
// including store-assigned timestamps.
func (r *DonationRepositoryPG) Create(ctx context.Context, donation *domain.Donation) (*domain.Donation, error) {
	row := r.sql.QueryRow(ctx, sqlinline.QInsertDonation,
		donation.ID,
		donation.Donor,
		donation.Contact,
		donation.Date,
		donation.Time,
		donation.Items,
		donation.Location,
		string(donation.Status),
		donation.Notes,
	)
	return scanDonation(row)
}

// List returns donations newest-first, ties broken by insertion order.
// An empty statuses slice returns every record.
func (r *DonationRepositoryPG) List(ctx context.Context, statuses []domain.Status) ([]domain.Donation, error) {
	var (
		rows pgx.Rows
		err  error
	)
	if len(statuses) == 0 {
		rows, err = r.sql.Query(ctx, sqlinline.QListDonations)
	} else {
		filter := make([]string, len(statuses))
		for i, s := range statuses {
			filter[i] = string(s)
		}
		rows, err = r.sql.Query(ctx, sqlinline.QListDonationsByStatus, filter)
	}
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []domain.Donation
	for rows.Next() {
		d, err := scanDonation(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *d)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

// UpdateStatus sets the status of one record, refreshing updated_at, and
// returns the new record state. Returns domain.ErrNotFound when the id does
// not resolve.
func (r *DonationRepositoryPG) UpdateStatus(ctx context.Context, id string, status domain.Status) (*domain.Donation, error) {
	row := r.sql.QueryRow(ctx, sqlinline.QUpdateDonationStatus, id, string(status))
	d, err := scanDonation(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	return d, err
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanDonation(row rowScanner) (*domain.Donation, error) {
	var (
		d      domain.Donation
		status string
	)
	if err := row.Scan(
		&d.ID,
		&d.Donor,
		&d.Contact,
		&d.Date,
		&d.Time,
		&d.Items,
		&d.Location,
		&status,
		&d.Notes,
		&d.CreatedAt,
		&d.UpdatedAt,
	); err != nil {
		return nil, err
	}
	d.Status = domain.Status(status)
	return &d, nil
}

var _ domain.DonationRepository = (*DonationRepositoryPG)(nil)
