package server

import (
	"net/http"
	"strconv"
)

// handleAdminLogin exists for the admin UI's login flow; the middleware has
// already validated the basic auth credentials by the time it runs.
func (s *Server) handleAdminLogin(w http.ResponseWriter, r *http.Request) {
	username, _, _ := r.BasicAuth()
	respondJSON(w, http.StatusOK, map[string]string{"message": "login successful", "username": username})
}

func (s *Server) handleAdminListDonors(w http.ResponseWriter, r *http.Request) {
	donors, err := s.storage.ListDonors(r.Context())
	if err != nil {
		respondStorageError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, donors)
}

func (s *Server) handleAdminListRecipients(w http.ResponseWriter, r *http.Request) {
	recipients, err := s.storage.ListRecipients(r.Context())
	if err != nil {
		respondStorageError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, recipients)
}

func (s *Server) handleAdminListVolunteers(w http.ResponseWriter, r *http.Request) {
	volunteers, err := s.storage.ListVolunteers(r.Context())
	if err != nil {
		respondStorageError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, volunteers)
}

func (s *Server) handleAdminListLive(w http.ResponseWriter, r *http.Request) {
	donations, err := s.storage.ListAllLive(r.Context())
	if err != nil {
		respondStorageError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, donations)
}

func (s *Server) handleAdminListAccepted(w http.ResponseWriter, r *http.Request) {
	donations, err := s.storage.ListAllAccepted(r.Context())
	if err != nil {
		respondStorageError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, viewAcceptedList(donations))
}

func (s *Server) handleAdminListExpired(w http.ResponseWriter, r *http.Request) {
	donations, err := s.storage.ListAllExpired(r.Context())
	if err != nil {
		respondStorageError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, donations)
}

func (s *Server) handleAdminStats(w http.ResponseWriter, r *http.Request) {
	stats, err := s.storage.DashboardStats(r.Context())
	if err != nil {
		respondStorageError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, stats)
}

func (s *Server) handleAdminActivity(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			respondError(w, http.StatusBadRequest, "validation", "invalid value for 'limit' parameter")
			return
		}
		limit = n
	}

	activity, err := s.storage.RecentActivity(r.Context(), limit)
	if err != nil {
		respondStorageError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, activity)
}
