package server

import (
	"net/http"

	"github.com/gorilla/mux"
)

func (s *Server) handleOpportunities(w http.ResponseWriter, r *http.Request) {
	if _, ok := s.requireVolunteer(w, r); !ok {
		return
	}

	donations, err := s.storage.ListOpportunities(r.Context())
	if err != nil {
		respondStorageError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, donations)
}

func (s *Server) handleClaimOpportunity(w http.ResponseWriter, r *http.Request) {
	volunteer, ok := s.requireVolunteer(w, r)
	if !ok {
		return
	}
	donationID := mux.Vars(r)["donationId"]

	donation, err := s.storage.ClaimOpportunity(r.Context(), donationID, volunteer)
	if err != nil {
		respondStorageError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, donation)
}

func (s *Server) handlePendingDeliveries(w http.ResponseWriter, r *http.Request) {
	if _, ok := s.requireVolunteer(w, r); !ok {
		return
	}

	donations, err := s.storage.ListPendingDeliveries(r.Context())
	if err != nil {
		respondStorageError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, viewAcceptedList(donations))
}

func (s *Server) handleAcceptDelivery(w http.ResponseWriter, r *http.Request) {
	volunteer, ok := s.requireVolunteer(w, r)
	if !ok {
		return
	}
	acceptedID := mux.Vars(r)["acceptedDonationId"]

	accepted, err := s.storage.AcceptDelivery(r.Context(), acceptedID, volunteer)
	if err != nil {
		respondStorageError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, viewAccepted(accepted))
}

func (s *Server) handleCompleteDelivery(w http.ResponseWriter, r *http.Request) {
	volunteer, ok := s.requireVolunteer(w, r)
	if !ok {
		return
	}
	acceptedID := mux.Vars(r)["acceptedDonationId"]

	final, err := s.storage.CompleteDelivery(r.Context(), acceptedID, volunteer)
	if err != nil {
		respondStorageError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, final)
}

func (s *Server) handleVolunteerHistory(w http.ResponseWriter, r *http.Request) {
	volunteer, ok := s.requireVolunteer(w, r)
	if !ok {
		return
	}

	donations, err := s.storage.VolunteerHistory(r.Context(), volunteer.ID)
	if err != nil {
		respondStorageError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, viewAcceptedList(donations))
}
