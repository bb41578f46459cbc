package server

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/kindmeals/backend/internal/repository"
	"github.com/kindmeals/backend/internal/storage"
)

// acceptedView decorates an accepted donation with the legacy "deliveredby"
// string older clients key on.
type acceptedView struct {
	*repository.AcceptedDonation
	DeliveredBy string `json:"deliveredby"`
}

func viewAccepted(d *repository.AcceptedDonation) acceptedView {
	return acceptedView{AcceptedDonation: d, DeliveredBy: storage.DeliveredBy(d)}
}

func viewAcceptedList(ds []*repository.AcceptedDonation) []acceptedView {
	out := make([]acceptedView, 0, len(ds))
	for _, d := range ds {
		out = append(out, viewAccepted(d))
	}
	return out
}

func (s *Server) handleCreateDonation(w http.ResponseWriter, r *http.Request) {
	donor, ok := s.requireDonor(w, r)
	if !ok {
		return
	}

	if err := r.ParseMultipartForm(multipartMemoryLimit); err != nil {
		respondError(w, http.StatusBadRequest, "validation", "expected multipart form data")
		return
	}

	foodImage, err := s.saveOptionalImage(r, "foodImage")
	if err != nil {
		respondStorageError(w, err)
		return
	}

	quantity, err := strconv.Atoi(r.FormValue("quantity"))
	if err != nil || quantity <= 0 {
		respondError(w, http.StatusBadRequest, "validation", "quantity must be a positive integer")
		return
	}

	expiry, err := time.Parse(time.RFC3339, r.FormValue("expiryDateTime"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "validation", "expiryDateTime must be RFC3339")
		return
	}
	if !expiry.After(time.Now()) {
		respondError(w, http.StatusBadRequest, "validation", "expiryDateTime is in the past")
		return
	}

	foodType := r.FormValue("foodType")
	if !storage.ValidFoodType(foodType) {
		respondError(w, http.StatusBadRequest, "validation", "foodType must be veg, nonveg or jain")
		return
	}

	input := storage.CreateDonationInput{
		FoodName:       r.FormValue("foodName"),
		Quantity:       quantity,
		Description:    r.FormValue("description"),
		FoodType:       foodType,
		ImageURL:       foodImage,
		Address:        r.FormValue("address"),
		NeedsVolunteer: r.FormValue("needsVolunteer") == "true",
		ExpiryAt:       expiry.UTC(),
	}
	if input.FoodName == "" {
		respondError(w, http.StatusBadRequest, "validation", "foodName is required")
		return
	}
	if raw := r.FormValue("latitude"); raw != "" {
		lat, err := parseCoord(raw)
		if err != nil {
			respondError(w, http.StatusBadRequest, "validation", "latitude must be a number")
			return
		}
		input.Latitude = &lat
	}
	if raw := r.FormValue("longitude"); raw != "" {
		long, err := parseCoord(raw)
		if err != nil {
			respondError(w, http.StatusBadRequest, "validation", "longitude must be a number")
			return
		}
		input.Longitude = &long
	}

	donation, err := s.storage.CreateDonation(r.Context(), donor, input)
	if err != nil {
		respondStorageError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, donation)
}

func (s *Server) handleListLiveDonations(w http.ResponseWriter, r *http.Request) {
	donations, err := s.storage.ListLiveDonations(r.Context())
	if err != nil {
		respondStorageError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, donations)
}

func (s *Server) handleAcceptDonation(w http.ResponseWriter, r *http.Request) {
	recipient, ok := s.requireRecipient(w, r)
	if !ok {
		return
	}
	donationID := mux.Vars(r)["donationId"]

	// An absent or unparsable body means "keep the donor's preference".
	var override *bool
	var body struct {
		NeedsVolunteer *bool `json:"needsVolunteer"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err == nil {
		override = body.NeedsVolunteer
	}

	accepted, err := s.storage.AcceptDonation(r.Context(), donationID, recipient, override)
	if err != nil {
		respondStorageError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, viewAccepted(accepted))
}

func (s *Server) handleAddFeedback(w http.ResponseWriter, r *http.Request) {
	recipient, ok := s.requireRecipient(w, r)
	if !ok {
		return
	}
	acceptedID := mux.Vars(r)["acceptedDonationId"]

	var body struct {
		Feedback string `json:"feedback"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil || body.Feedback == "" {
		respondError(w, http.StatusBadRequest, "validation", "feedback is required")
		return
	}

	accepted, err := s.storage.AddFeedback(r.Context(), acceptedID, recipient.ID, body.Feedback)
	if err != nil {
		respondStorageError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, viewAccepted(accepted))
}

func (s *Server) handleRateVolunteer(w http.ResponseWriter, r *http.Request) {
	recipient, ok := s.requireRecipient(w, r)
	if !ok {
		return
	}
	acceptedID := mux.Vars(r)["acceptedDonationId"]

	var body struct {
		Rating float64 `json:"rating"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		respondError(w, http.StatusBadRequest, "validation", "rating is required")
		return
	}

	if err := s.storage.RateVolunteer(r.Context(), acceptedID, recipient.ID, body.Rating); err != nil {
		respondStorageError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"message": "rating recorded"})
}

// handleCleanup triggers an expiry sweep outside the hourly schedule. Any
// authenticated caller may poke it; the sweep itself is idempotent.
func (s *Server) handleCleanup(w http.ResponseWriter, r *http.Request) {
	if _, ok := s.identity(w, r); !ok {
		return
	}

	moved, err := s.storage.SweepExpired(r.Context(), time.Now().UTC())
	if err != nil {
		respondStorageError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]int{"expired": moved})
}

func (s *Server) handleDonorDonations(w http.ResponseWriter, r *http.Request) {
	donor, ok := s.requireDonor(w, r)
	if !ok {
		return
	}

	donations, err := s.storage.DonorDonations(r.Context(), donor.ID)
	if err != nil {
		respondStorageError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, donations)
}

func (s *Server) handleRecipientDonations(w http.ResponseWriter, r *http.Request) {
	recipient, ok := s.requireRecipient(w, r)
	if !ok {
		return
	}

	donations, err := s.storage.RecipientDonations(r.Context(), recipient.ID)
	if err != nil {
		respondStorageError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, viewAcceptedList(donations))
}
