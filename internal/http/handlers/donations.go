package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"server/internal/domain"
	"server/internal/report"
	"server/internal/service"
)

type donationCreateRequest struct {
	Donor    string `json:"donor" validate:"required"`
	Contact  string `json:"contact" validate:"required"`
	Date     string `json:"date" validate:"required"`
	Time     string `json:"time" validate:"required"`
	Items    string `json:"items" validate:"required"`
	Location string `json:"location" validate:"required"`
	Notes    string `json:"notes"`
}

type donationStatusRequest struct {
	Status string `json:"status"`
}

// DonationsList handles GET /api/donations. The optional status query
// parameter filters the result: "active" matches pending and confirmed, any
// other value is an exact match.
func (a *App) DonationsList(w http.ResponseWriter, r *http.Request) {
	items, err := a.Donations.List(r.Context(), r.URL.Query().Get("status"))
	if err != nil {
		a.Log.Error().Err(err).Msg("list donations")
		a.error(w, http.StatusInternalServerError, err.Error())
		return
	}
	if items == nil {
		items = []domain.Donation{}
	}
	a.json(w, http.StatusOK, items)
}

// DonationsCreate handles POST /api/donations.
func (a *App) DonationsCreate(w http.ResponseWriter, r *http.Request) {
	var req donationCreateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.error(w, http.StatusBadRequest, "invalid payload")
		return
	}
	if err := a.validate.Struct(req); err != nil {
		a.error(w, http.StatusBadRequest, fmt.Sprintf("invalid donation: %v", err))
		return
	}

	donation, err := a.Donations.Create(r.Context(), toCreateInput(req))
	if err != nil {
		a.Log.Error().Err(err).Msg("create donation")
		a.error(w, http.StatusInternalServerError, err.Error())
		return
	}
	a.json(w, http.StatusCreated, donation)
}

// DonationsUpdateStatus handles PUT /api/donations/{id}.
func (a *App) DonationsUpdateStatus(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req donationStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.error(w, http.StatusBadRequest, "invalid payload")
		return
	}

	donation, err := a.Donations.SetStatus(r.Context(), id, req.Status)
	switch {
	case errors.Is(err, domain.ErrInvalidStatus):
		a.error(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrNotFound):
		a.error(w, http.StatusNotFound, "Donation not found")
	case err != nil:
		a.Log.Error().Err(err).Str("id", id).Msg("update donation status")
		a.error(w, http.StatusInternalServerError, err.Error())
	default:
		a.json(w, http.StatusOK, donation)
	}
}

// DonationsReport handles GET /api/donations/report: the complete unfiltered
// record set, newest-first, as a CSV attachment.
func (a *App) DonationsReport(w http.ResponseWriter, r *http.Request) {
	items, err := a.Donations.List(r.Context(), "")
	if err != nil {
		a.Log.Error().Err(err).Msg("load donations for report")
		a.error(w, http.StatusInternalServerError, err.Error())
		return
	}

	var buf bytes.Buffer
	if err := report.Write(&buf, items); err != nil {
		a.Log.Error().Err(err).Msg("serialize donations report")
		a.error(w, http.StatusInternalServerError, err.Error())
		return
	}

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", "attachment; filename="+report.Filename(time.Now()))
	w.WriteHeader(http.StatusOK)
	_, _ = buf.WriteTo(w)
}

func toCreateInput(req donationCreateRequest) service.CreateInput {
	return service.CreateInput{
		Donor:    req.Donor,
		Contact:  req.Contact,
		Date:     req.Date,
		Time:     req.Time,
		Items:    req.Items,
		Location: req.Location,
		Notes:    req.Notes,
	}
}
