package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"os"

	"github.com/satheeshds/property/store"
)

// Response is the standard JSON envelope for all API responses.
type Response struct {
	Data  any    `json:"data"`
	Error string `json:"error,omitempty"`
	Field string `json:"field,omitempty"`
}

// Store is the shared record store used by all handlers.
var Store *store.Store

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(Response{Data: data})
}

// writeError writes a JSON error response.
func writeError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(Response{Error: msg})
}

// writeStoreError maps a store error to its HTTP status: missing records
// are 404, double bookings 409, every other rule violation 400. Anything
// untyped is a 500.
func writeStoreError(w http.ResponseWriter, err error) {
	var se *store.Error
	if !errors.As(err, &se) {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	status := http.StatusBadRequest
	switch se.Kind {
	case store.KindNotFound:
		status = http.StatusNotFound
	case store.KindAlreadyOccupied:
		status = http.StatusConflict
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(Response{Error: se.Message, Field: se.Field})
}

// APIKeyAuth is middleware that enforces the X-API-Key header. The key
// must match either the API_KEY environment variable or an active key in
// the api_keys table.
func APIKeyAuth(next http.Handler) http.Handler {
	staticKey := os.Getenv("API_KEY")

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		key := r.Header.Get("X-API-Key")
		if key == "" {
			writeError(w, http.StatusUnauthorized, "missing API key")
			return
		}
		if staticKey != "" && key == staticKey {
			next.ServeHTTP(w, r)
			return
		}

		ok, err := Store.ValidateAPIKey(key)
		if err != nil {
			slog.Error("api key lookup failed", "error", err)
			writeError(w, http.StatusInternalServerError, "authentication unavailable")
			return
		}
		if !ok {
			writeError(w, http.StatusUnauthorized, "invalid API key")
			return
		}
		next.ServeHTTP(w, r)
	})
}
