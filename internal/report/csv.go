package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"time"

	"server/internal/domain"
)

var header = []string{"ID", "Donor", "Contact", "Date", "Time", "Items", "Location", "Status", "Notes"}

// Write serializes the record set as CSV in the given order, header first.
// Fields containing commas, quotes or newlines are quoted and escaped per
// RFC 4180. Zero records produce the header line only.
func Write(w io.Writer, donations []domain.Donation) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}
	for _, d := range donations {
		row := []string{
			d.ID,
			d.Donor,
			d.Contact,
			d.Date,
			d.Time,
			d.Items,
			d.Location,
			string(d.Status),
			d.Notes,
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("write csv row: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// Filename returns the attachment name for a report generated at the given
// time. The timestamp is for uniqueness, not correctness.
func Filename(now time.Time) string {
	return fmt.Sprintf("donations-%d.csv", now.Unix())
}
