package rest

import (
	"net/http"

	"github.com/dmitrijs2005/carekeeper/internal/models"
)

type userBody struct {
	User models.User `json:"user"`
}

func (s *HTTPServer) handleGetProfile(w http.ResponseWriter, r *http.Request) {
	user, err := s.users.Get(r.Context(), userIDFrom(r.Context()))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, userBody{User: *user})
}

func (s *HTTPServer) handleUpdateProfile(w http.ResponseWriter, r *http.Request) {
	var patch models.UserPatch
	if !decodeJSON(w, r, &patch) {
		return
	}

	user, err := s.users.UpdateProfile(r.Context(), userIDFrom(r.Context()), patch)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, userBody{User: *user})
}
