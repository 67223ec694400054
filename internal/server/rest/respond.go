package rest

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/dmitrijs2005/carekeeper/internal/common"
)

// errorBody is the uniform error envelope: {"error": "..."}.
type errorBody struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeErrorMsg(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorBody{Error: msg})
}

// writeError maps sentinel errors to HTTP statuses. Anything unrecognized
// becomes a generic 500 with no internals exposed.
func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, common.ErrorValidation):
		writeErrorMsg(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, common.ErrorUnauthorized):
		writeErrorMsg(w, http.StatusUnauthorized, "invalid email or password")
	case errors.Is(err, common.ErrorConflict):
		writeErrorMsg(w, http.StatusConflict, "user with this email already exists")
	case errors.Is(err, common.ErrorNotFound):
		writeErrorMsg(w, http.StatusNotFound, "not found")
	default:
		writeErrorMsg(w, http.StatusInternalServerError, "internal server error")
	}
}

// decodeJSON unmarshals the request body into v, answering 400 itself on
// malformed input. Returns false when the caller should stop.
func decodeJSON(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		writeErrorMsg(w, http.StatusBadRequest, "invalid json")
		return false
	}
	return true
}
