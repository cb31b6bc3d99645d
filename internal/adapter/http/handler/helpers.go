package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/iho/matchedbet/internal/adapter/http/dto"
	"github.com/iho/matchedbet/internal/domain"
	"github.com/iho/matchedbet/internal/usecase"
)

// writeJSON writes a JSON response.
func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// writeError writes an error response.
func writeError(w http.ResponseWriter, status int, message, details string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(dto.ErrorResponse{
		Error:   message,
		Message: details,
	})
}

// writeDomainError writes err with the status mapDomainError picks for it.
func writeDomainError(w http.ResponseWriter, message string, err error) {
	writeError(w, mapDomainError(err), message, err.Error())
}

// mapDomainError maps domain errors to HTTP status codes.
func mapDomainError(err error) int {
	switch {
	case errors.Is(err, domain.ErrBookmakerNotFound),
		errors.Is(err, domain.ErrOfferNotFound),
		errors.Is(err, domain.ErrMatchNotFound),
		errors.Is(err, domain.ErrBetNotFound),
		errors.Is(err, domain.ErrAccumulatorNotFound):
		return http.StatusNotFound

	case errors.Is(err, domain.ErrInvalidTarget),
		errors.Is(err, domain.ErrInvalidBetCategory),
		errors.Is(err, domain.ErrInvalidOutcome),
		errors.Is(err, domain.ErrInvalidName),
		errors.Is(err, domain.ErrInvalidURL),
		errors.Is(err, domain.ErrInvalidOdds),
		errors.Is(err, domain.ErrInvalidStake),
		errors.Is(err, domain.ErrInvalidLiability),
		errors.Is(err, domain.ErrInvalidAmount),
		errors.Is(err, domain.ErrInvalidExpiry),
		errors.Is(err, domain.ErrSameTeams),
		errors.Is(err, domain.ErrEmptyAccumulator):
		return http.StatusBadRequest

	case errors.Is(err, domain.ErrBetAlreadySettled),
		errors.Is(err, usecase.ErrBetSettled):
		return http.StatusConflict

	case errors.Is(err, domain.ErrMatchNotFinished),
		errors.Is(err, domain.ErrIncompleteBet),
		errors.Is(err, domain.ErrBetInAccumulator),
		errors.Is(err, domain.ErrInvalidCommission):
		return http.StatusUnprocessableEntity

	case errors.Is(err, usecase.ErrLedgerStopped):
		return http.StatusServiceUnavailable

	default:
		return http.StatusInternalServerError
	}
}

// decodeJSON decodes the request body into v, writing a 400 on failure.
func decodeJSON(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		status := http.StatusBadRequest
		// Enum fields reject unknown names while decoding.
		if errors.Is(err, domain.ErrInvalidTarget) {
			status = mapDomainError(err)
		}
		writeError(w, status, "invalid request body", err.Error())
		return false
	}
	return true
}

// pathID returns the {id} URL parameter, writing a 400 when it is missing.
func pathID(w http.ResponseWriter, r *http.Request, what string) (string, bool) {
	id := chi.URLParam(r, "id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "missing "+what+" ID", "")
		return "", false
	}
	return id, true
}

// parseIntQuery parses an integer query parameter with a default value.
func parseIntQuery(r *http.Request, key string, defaultValue int) int {
	val := r.URL.Query().Get(key)
	if val == "" {
		return defaultValue
	}
	i, err := strconv.Atoi(val)
	if err != nil {
		return defaultValue
	}
	return i
}
