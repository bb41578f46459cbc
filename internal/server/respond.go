package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/kindmeals/backend/internal/storage"
	"github.com/kindmeals/backend/internal/upload"
)

type errorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		if err := json.NewEncoder(w).Encode(data); err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	}
}

func respondError(w http.ResponseWriter, status int, code, message string) {
	respondJSON(w, status, map[string]errorBody{"error": {Code: code, Message: message}})
}

// respondStorageError maps the store's sentinel errors onto the HTTP error
// taxonomy. Anything unrecognized is a 500 with a generic body.
func respondStorageError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, storage.ErrNotFound):
		respondError(w, http.StatusNotFound, "not_found", "donation or record not found")
	case errors.Is(err, storage.ErrExpired):
		respondError(w, http.StatusConflict, "expired", "the donation has expired")
	case errors.Is(err, storage.ErrAlreadyAssigned):
		respondError(w, http.StatusConflict, "already_assigned", "a volunteer is already assigned to this donation")
	case errors.Is(err, storage.ErrNoVolunteerNeeded):
		respondError(w, http.StatusConflict, "invalid_state", "the donation is not in a state that allows this operation")
	case errors.Is(err, storage.ErrForbidden):
		respondError(w, http.StatusForbidden, "forbidden", "you are not allowed to perform this operation")
	case errors.Is(err, storage.ErrAlreadyExists):
		respondError(w, http.StatusConflict, "already_exists", "a profile already exists for this account")
	case errors.Is(err, storage.ErrInvalidInput):
		respondError(w, http.StatusBadRequest, "validation", err.Error())
	case errors.Is(err, upload.ErrTooLarge):
		respondError(w, http.StatusBadRequest, "validation", "uploaded file is too large")
	case errors.Is(err, upload.ErrBadType):
		respondError(w, http.StatusBadRequest, "validation", "only jpeg and png images are accepted")
	default:
		respondError(w, http.StatusInternalServerError, "internal", "internal server error")
	}
}
