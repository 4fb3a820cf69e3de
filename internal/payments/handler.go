package payments

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"

	"ridesharex/pkg/jwt"
)

// Handler exposes payment HTTP endpoints.
type Handler struct{ svc *Service }

// NewHandler wires a handler to the payment service.
func NewHandler(svc *Service) *Handler { return &Handler{svc: svc} }

// Routes returns a chi.Router with all payment routes.
func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()
	r.Use(jwt.RequireAuth) // every payment record is scoped to its owner

	r.Get("/methods", h.ListMethods)
	r.Post("/methods", h.AddMethod)
	r.Get("/transactions", h.ListTransactions)
	r.Post("/process", h.Process)

	return r
}

func (h *Handler) ListMethods(w http.ResponseWriter, r *http.Request) {
	claims := jwt.GetClaims(r.Context())
	methods, err := h.svc.ListMethods(r.Context(), claims.UserID)
	if err != nil {
		log.Printf("[payments] list methods failed: %v", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal error"})
		return
	}
	writeJSON(w, http.StatusOK, methods)
}

func (h *Handler) AddMethod(w http.ResponseWriter, r *http.Request) {
	claims := jwt.GetClaims(r.Context())

	var req AddMethodRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid body"})
		return
	}

	m, err := h.svc.AddMethod(r.Context(), claims.UserID, req)
	if err != nil {
		if errors.Is(err, ErrInvalidMethod) {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
			return
		}
		log.Printf("[payments] add method failed: %v", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal error"})
		return
	}
	writeJSON(w, http.StatusCreated, m)
}

func (h *Handler) ListTransactions(w http.ResponseWriter, r *http.Request) {
	claims := jwt.GetClaims(r.Context())
	txns, err := h.svc.ListTransactions(r.Context(), claims.UserID)
	if err != nil {
		log.Printf("[payments] list transactions failed: %v", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal error"})
		return
	}
	writeJSON(w, http.StatusOK, txns)
}

func (h *Handler) Process(w http.ResponseWriter, r *http.Request) {
	claims := jwt.GetClaims(r.Context())

	var req ProcessRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid body"})
		return
	}

	t, err := h.svc.Process(r.Context(), claims.UserID, req)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidAmount):
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		case errors.Is(err, ErrMethodNotFound):
			writeJSON(w, http.StatusNotFound, map[string]string{"error": err.Error()})
		default:
			log.Printf("[payments] process failed: %v", err)
			writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal error"})
		}
		return
	}
	writeJSON(w, http.StatusCreated, t)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
