package server

import (
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/kindmeals/backend/internal/auth"
	"github.com/kindmeals/backend/internal/repository"
)

const multipartMemoryLimit = 10 << 20

// identity pulls the resolved caller out of the request context. The auth
// middleware always sets it on /api routes.
func (s *Server) identity(w http.ResponseWriter, r *http.Request) (*auth.Identity, bool) {
	id, ok := auth.IdentityFrom(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "unauthenticated", "missing identity")
		return nil, false
	}
	return id, true
}

func (s *Server) requireDonor(w http.ResponseWriter, r *http.Request) (*repository.Donor, bool) {
	id, ok := s.identity(w, r)
	if !ok {
		return nil, false
	}
	if id.Role != auth.RoleDonor {
		respondError(w, http.StatusForbidden, "forbidden", "a donor profile is required")
		return nil, false
	}
	return id.Donor, true
}

func (s *Server) requireRecipient(w http.ResponseWriter, r *http.Request) (*repository.Recipient, bool) {
	id, ok := s.identity(w, r)
	if !ok {
		return nil, false
	}
	if id.Role != auth.RoleRecipient {
		respondError(w, http.StatusForbidden, "forbidden", "a recipient profile is required")
		return nil, false
	}
	return id.Recipient, true
}

func (s *Server) requireVolunteer(w http.ResponseWriter, r *http.Request) (*repository.Volunteer, bool) {
	id, ok := s.identity(w, r)
	if !ok {
		return nil, false
	}
	if id.Role != auth.RoleVolunteer {
		respondError(w, http.StatusForbidden, "forbidden", "a volunteer profile is required")
		return nil, false
	}
	return id.Volunteer, true
}

func (s *Server) handleProfile(w http.ResponseWriter, r *http.Request) {
	id, ok := s.identity(w, r)
	if !ok {
		return
	}

	switch id.Role {
	case auth.RoleDonor:
		respondJSON(w, http.StatusOK, map[string]interface{}{"role": id.Role, "profile": id.Donor})
	case auth.RoleRecipient:
		respondJSON(w, http.StatusOK, map[string]interface{}{"role": id.Role, "profile": id.Recipient})
	case auth.RoleVolunteer:
		respondJSON(w, http.StatusOK, map[string]interface{}{"role": id.Role, "profile": id.Volunteer})
	default:
		respondError(w, http.StatusNotFound, "not_found", "no profile registered for this account")
	}
}

// saveOptionalImage stores the named multipart file if present and returns
// its public path, or "" when the field was omitted.
func (s *Server) saveOptionalImage(r *http.Request, field string) (string, error) {
	file, header, err := r.FormFile(field)
	if err == http.ErrMissingFile {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	defer file.Close()
	return s.uploads.Save(file, header)
}

// parseCoord treats an absent coordinate as zero; anything present must be a
// number.
func parseCoord(value string) (float64, error) {
	if value == "" {
		return 0, nil
	}
	return strconv.ParseFloat(value, 64)
}

// coordFields reads the optional latitude/longitude pair, writing a
// field-specific validation error on malformed input.
func coordFields(w http.ResponseWriter, r *http.Request) (lat, long float64, ok bool) {
	lat, err := parseCoord(r.FormValue("latitude"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "validation", "latitude must be a number")
		return 0, 0, false
	}
	long, err = parseCoord(r.FormValue("longitude"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "validation", "longitude must be a number")
		return 0, 0, false
	}
	return lat, long, true
}

func (s *Server) handleRegisterDonor(w http.ResponseWriter, r *http.Request) {
	id, ok := s.identity(w, r)
	if !ok {
		return
	}

	if err := r.ParseMultipartForm(multipartMemoryLimit); err != nil {
		respondError(w, http.StatusBadRequest, "validation", "expected multipart form data")
		return
	}

	profileImage, err := s.saveOptionalImage(r, "profileImage")
	if err != nil {
		respondStorageError(w, err)
		return
	}

	lat, long, ok := coordFields(w, r)
	if !ok {
		return
	}

	donor := &repository.Donor{
		ID:               uuid.NewString(),
		FirebaseUID:      id.UID,
		Email:            r.FormValue("email"),
		ProfileImage:     profileImage,
		Name:             r.FormValue("donorname"),
		OrgName:          r.FormValue("orgName"),
		IdentificationID: r.FormValue("identificationId"),
		Address:          r.FormValue("donoraddress"),
		Contact:          r.FormValue("donorcontact"),
		OrgType:          r.FormValue("type"),
		About:            r.FormValue("donorabout"),
		Latitude:         lat,
		Longitude:        long,
		CreatedAt:        time.Now().UTC(),
	}
	if donor.Name == "" || donor.Contact == "" {
		respondError(w, http.StatusBadRequest, "validation", "donorname and donorcontact are required")
		return
	}

	if err := s.storage.CreateDonorProfile(r.Context(), donor); err != nil {
		respondStorageError(w, err)
		return
	}

	s.resolver.Invalidate(id.UID)
	respondJSON(w, http.StatusCreated, donor)
}

func (s *Server) handleRegisterRecipient(w http.ResponseWriter, r *http.Request) {
	id, ok := s.identity(w, r)
	if !ok {
		return
	}

	if err := r.ParseMultipartForm(multipartMemoryLimit); err != nil {
		respondError(w, http.StatusBadRequest, "validation", "expected multipart form data")
		return
	}

	profileImage, err := s.saveOptionalImage(r, "profileImage")
	if err != nil {
		respondStorageError(w, err)
		return
	}

	lat, long, ok := coordFields(w, r)
	if !ok {
		return
	}

	recipient := &repository.Recipient{
		ID:           uuid.NewString(),
		FirebaseUID:  id.UID,
		Email:        r.FormValue("email"),
		ProfileImage: profileImage,
		Name:         r.FormValue("reciname"),
		NGOName:      r.FormValue("ngoName"),
		NGOID:        r.FormValue("ngoId"),
		Address:      r.FormValue("reciaddress"),
		Contact:      r.FormValue("recicontact"),
		OrgType:      r.FormValue("type"),
		About:        r.FormValue("reciabout"),
		Latitude:     lat,
		Longitude:    long,
		CreatedAt:    time.Now().UTC(),
	}
	if recipient.Name == "" || recipient.Contact == "" {
		respondError(w, http.StatusBadRequest, "validation", "reciname and recicontact are required")
		return
	}

	if err := s.storage.CreateRecipientProfile(r.Context(), recipient); err != nil {
		respondStorageError(w, err)
		return
	}

	s.resolver.Invalidate(id.UID)
	respondJSON(w, http.StatusCreated, recipient)
}

func (s *Server) handleRegisterVolunteer(w http.ResponseWriter, r *http.Request) {
	id, ok := s.identity(w, r)
	if !ok {
		return
	}

	if err := r.ParseMultipartForm(multipartMemoryLimit); err != nil {
		respondError(w, http.StatusBadRequest, "validation", "expected multipart form data")
		return
	}

	profileImage, err := s.saveOptionalImage(r, "profileImage")
	if err != nil {
		respondStorageError(w, err)
		return
	}
	licenseImage, err := s.saveOptionalImage(r, "drivingLicenseImage")
	if err != nil {
		respondStorageError(w, err)
		return
	}

	lat, long, ok := coordFields(w, r)
	if !ok {
		return
	}

	volunteer := &repository.Volunteer{
		ID:                  uuid.NewString(),
		FirebaseUID:         id.UID,
		Email:               r.FormValue("email"),
		ProfileImage:        profileImage,
		Name:                r.FormValue("volunteerName"),
		AadharID:            r.FormValue("aadharID"),
		Address:             r.FormValue("volunteeraddress"),
		Contact:             r.FormValue("volunteercontact"),
		About:               r.FormValue("volunteerabout"),
		HasVehicle:          r.FormValue("hasVehicle") == "true",
		VehicleType:         r.FormValue("vehicleType"),
		VehicleNumber:       r.FormValue("vehicleNumber"),
		DrivingLicenseImage: licenseImage,
		Latitude:            lat,
		Longitude:           long,
		CreatedAt:           time.Now().UTC(),
	}
	if volunteer.Name == "" || volunteer.Contact == "" {
		respondError(w, http.StatusBadRequest, "validation", "volunteerName and volunteercontact are required")
		return
	}

	if err := s.storage.CreateVolunteerProfile(r.Context(), volunteer); err != nil {
		respondStorageError(w, err)
		return
	}

	s.resolver.Invalidate(id.UID)
	respondJSON(w, http.StatusCreated, volunteer)
}

func (s *Server) handleNotifications(w http.ResponseWriter, r *http.Request) {
	id, ok := s.identity(w, r)
	if !ok {
		return
	}
	if id.Role == auth.RoleNone {
		respondError(w, http.StatusForbidden, "forbidden", "a profile is required")
		return
	}

	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			respondError(w, http.StatusBadRequest, "validation", "invalid value for 'limit' parameter")
			return
		}
		limit = n
	}

	notifications, err := s.storage.Notifications(r.Context(), profileID(id), limit)
	if err != nil {
		respondStorageError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, notifications)
}

func (s *Server) handleMarkNotificationRead(w http.ResponseWriter, r *http.Request) {
	id, ok := s.identity(w, r)
	if !ok {
		return
	}
	if id.Role == auth.RoleNone {
		respondError(w, http.StatusForbidden, "forbidden", "a profile is required")
		return
	}

	notificationID := mux.Vars(r)["id"]
	if err := s.storage.MarkNotificationRead(r.Context(), notificationID, profileID(id)); err != nil {
		respondStorageError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"message": "notification marked as read"})
}

// profileID returns the role profile's ID, which is what notifications and
// donation records reference.
func profileID(id *auth.Identity) string {
	switch id.Role {
	case auth.RoleDonor:
		return id.Donor.ID
	case auth.RoleRecipient:
		return id.Recipient.ID
	case auth.RoleVolunteer:
		return id.Volunteer.ID
	default:
		return ""
	}
}
