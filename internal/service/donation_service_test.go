package service

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"server/internal/domain"
)

type fakeRepo struct {
	listFilters  [][]domain.Status
	listResult   []domain.Donation
	listErr      error
	updateCalls  int
	updateID     string
	updateStatus domain.Status
	updateResult *domain.Donation
	updateErr    error
	created      *domain.Donation
	createErr    error
}

func (f *fakeRepo) List(_ context.Context, statuses []domain.Status) ([]domain.Donation, error) {
	f.listFilters = append(f.listFilters, statuses)
	return f.listResult, f.listErr
}

func (f *fakeRepo) UpdateStatus(_ context.Context, id string, status domain.Status) (*domain.Donation, error) {
	f.updateCalls++
	f.updateID = id
	f.updateStatus = status
	return f.updateResult, f.updateErr
}

func (f *fakeRepo) Create(_ context.Context, donation *domain.Donation) (*domain.Donation, error) {
	f.created = donation
	if f.createErr != nil {
		return nil, f.createErr
	}
	return donation, nil
}

func TestListInterpretsStatusParam(t *testing.T) {
	cases := []struct {
		param  string
		filter []domain.Status
	}{
		{param: "", filter: nil},
		{param: "active", filter: []domain.Status{domain.StatusPending, domain.StatusConfirmed}},
		{param: "rejected", filter: []domain.Status{domain.StatusRejected}},
		// Unknown strings pass through literally and match nothing downstream.
		{param: "archived", filter: []domain.Status{domain.Status("archived")}},
	}

	for _, tc := range cases {
		repo := &fakeRepo{}
		svc := NewDonationService(repo)
		if _, err := svc.List(context.Background(), tc.param); err != nil {
			t.Fatalf("List(%q) returned error: %v", tc.param, err)
		}
		if len(repo.listFilters) != 1 {
			t.Fatalf("List(%q): expected one repo call, got %d", tc.param, len(repo.listFilters))
		}
		got := repo.listFilters[0]
		if len(got) != len(tc.filter) {
			t.Fatalf("List(%q) filter = %v, want %v", tc.param, got, tc.filter)
		}
		for i := range got {
			if got[i] != tc.filter[i] {
				t.Fatalf("List(%q) filter = %v, want %v", tc.param, got, tc.filter)
			}
		}
	}
}

func TestSetStatusRejectsUnknownValueBeforeStore(t *testing.T) {
	repo := &fakeRepo{}
	svc := NewDonationService(repo)

	_, err := svc.SetStatus(context.Background(), "some-id", "archived")
	if !errors.Is(err, domain.ErrInvalidStatus) {
		t.Fatalf("SetStatus error = %v, want ErrInvalidStatus", err)
	}
	if repo.updateCalls != 0 {
		t.Fatalf("store was called %d times for an invalid status", repo.updateCalls)
	}
}

func TestSetStatusDelegatesToStore(t *testing.T) {
	want := &domain.Donation{ID: "donation-1", Status: domain.StatusConfirmed}
	repo := &fakeRepo{updateResult: want}
	svc := NewDonationService(repo)

	got, err := svc.SetStatus(context.Background(), "donation-1", "confirmed")
	if err != nil {
		t.Fatalf("SetStatus returned error: %v", err)
	}
	if got != want {
		t.Fatalf("SetStatus = %+v, want %+v", got, want)
	}
	if repo.updateID != "donation-1" || repo.updateStatus != domain.StatusConfirmed {
		t.Fatalf("store called with (%q, %q)", repo.updateID, repo.updateStatus)
	}
}

func TestSetStatusPropagatesNotFound(t *testing.T) {
	repo := &fakeRepo{updateErr: domain.ErrNotFound}
	svc := NewDonationService(repo)

	if _, err := svc.SetStatus(context.Background(), "missing", "completed"); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("SetStatus error = %v, want ErrNotFound", err)
	}
}

func TestCreateAppliesDefaults(t *testing.T) {
	repo := &fakeRepo{}
	svc := NewDonationService(repo)

	got, err := svc.Create(context.Background(), CreateInput{
		Donor:    "Jamie",
		Contact:  "jamie@example.com",
		Date:     "2026-09-01",
		Time:     "10:30",
		Items:    "Blankets",
		Location: "Main shelter",
	})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if got.Status != domain.StatusPending {
		t.Fatalf("new donation status = %q, want pending", got.Status)
	}
	if got.Notes != "" {
		t.Fatalf("new donation notes = %q, want empty", got.Notes)
	}
	if _, err := uuid.Parse(got.ID); err != nil {
		t.Fatalf("new donation id %q is not a uuid: %v", got.ID, err)
	}
	if repo.created == nil || repo.created.Donor != "Jamie" {
		t.Fatalf("store received %+v", repo.created)
	}
}
