package report

import (
	"strings"
	"testing"
	"time"

	"server/internal/domain"
)

const headerLine = "ID,Donor,Contact,Date,Time,Items,Location,Status,Notes\n"

func TestWriteEmptyRecordSetYieldsHeaderOnly(t *testing.T) {
	var sb strings.Builder
	if err := Write(&sb, nil); err != nil {
		t.Fatalf("Write returned error: %v", err)
	}
	if sb.String() != headerLine {
		t.Fatalf("empty report = %q, want header line only", sb.String())
	}
}

func TestWriteQuotesFieldsWithCommas(t *testing.T) {
	donations := []domain.Donation{{
		ID:       "donation-1",
		Donor:    "Jamie",
		Contact:  "jamie@example.com",
		Date:     "2026-09-01",
		Time:     "10:30",
		Items:    "Canned food, rice",
		Location: "Main shelter",
		Status:   domain.StatusPending,
		Notes:    "",
	}}

	var sb strings.Builder
	if err := Write(&sb, donations); err != nil {
		t.Fatalf("Write returned error: %v", err)
	}

	out := sb.String()
	if !strings.HasPrefix(out, headerLine) {
		t.Fatalf("report does not start with header: %q", out)
	}
	if !strings.Contains(out, `"Canned food, rice"`) {
		t.Fatalf("comma field not quoted: %q", out)
	}
}

func TestWriteEscapesEmbeddedQuotes(t *testing.T) {
	donations := []domain.Donation{{
		ID:     "donation-2",
		Donor:  "Sam",
		Items:  `crates marked "fragile"`,
		Status: domain.StatusConfirmed,
	}}

	var sb strings.Builder
	if err := Write(&sb, donations); err != nil {
		t.Fatalf("Write returned error: %v", err)
	}
	if !strings.Contains(sb.String(), `"crates marked ""fragile"""`) {
		t.Fatalf("embedded quotes not escaped: %q", sb.String())
	}
}

func TestFilenameCarriesUnixTimestamp(t *testing.T) {
	now := time.Date(2026, 8, 28, 12, 0, 0, 0, time.UTC)
	got := Filename(now)
	want := "donations-1787918400.csv"
	if got != want {
		t.Fatalf("Filename = %q, want %q", got, want)
	}
}
