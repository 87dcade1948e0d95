package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"server/internal/service"
)

// App is the handler container: it carries the request-scoped collaborators
// every route needs.
type App struct {
	Log       zerolog.Logger
	Donations *service.DonationService

	validate *validator.Validate
}

func NewApp(logger zerolog.Logger, donations *service.DonationService) *App {
	return &App{
		Log:       logger,
		Donations: donations,
		validate:  validator.New(),
	}
}

func (a *App) json(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func (a *App) error(w http.ResponseWriter, code int, message string) {
	a.json(w, code, map[string]string{"message": message})
}
