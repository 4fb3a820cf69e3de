package locations

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"

	"ridesharex/pkg/jwt"
	"ridesharex/pkg/validation"
)

// Handler exposes saved-location HTTP endpoints.
type Handler struct{ svc *Service }

// NewHandler wires a handler to the location service.
func NewHandler(svc *Service) *Handler { return &Handler{svc: svc} }

// Routes returns a chi.Router with all location routes.
func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()
	r.Use(jwt.RequireAuth) // every location is scoped to its owner

	r.Get("/saved", h.List)
	r.Post("/save", h.Save)
	r.Delete("/saved/{id}", h.Delete)

	return r
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	claims := jwt.GetClaims(r.Context())
	locs, err := h.svc.List(r.Context(), claims.UserID)
	if err != nil {
		log.Printf("[locations] list failed: %v", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal error"})
		return
	}
	writeJSON(w, http.StatusOK, locs)
}

func (h *Handler) Save(w http.ResponseWriter, r *http.Request) {
	claims := jwt.GetClaims(r.Context())

	var req SaveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid body"})
		return
	}
	if !validation.ValidateName(req.Name) {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "name is required"})
		return
	}
	if !validation.ValidateCoordinates(req.Latitude, req.Longitude) {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid coordinates"})
		return
	}

	loc, err := h.svc.Save(r.Context(), claims.UserID, req)
	if err != nil {
		log.Printf("[locations] save failed: %v", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal error"})
		return
	}
	writeJSON(w, http.StatusCreated, loc)
}

func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	claims := jwt.GetClaims(r.Context())

	err := h.svc.Delete(r.Context(), claims.UserID, chi.URLParam(r, "id"))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			writeJSON(w, http.StatusNotFound, map[string]string{"error": "location not found"})
			return
		}
		log.Printf("[locations] delete failed: %v", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal error"})
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
