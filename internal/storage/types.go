package storage

import (
	"time"

	"github.com/kindmeals/backend/internal/repository"
)

// Legacy "deliveredby" sentinels. The database stores the tagged
// delivery_status instead; these strings exist only for API compatibility
// with the pre-rewrite clients.
const (
	DeliveredByNeedsVolunteer = "Needs volunteer"
	DeliveredBySelfPickup     = "Self-pickup"
)

// DeliveredBy renders the legacy sentinel for an accepted donation.
func DeliveredBy(d *repository.AcceptedDonation) string {
	switch d.DeliveryStatus {
	case repository.DeliverySelfPickup:
		return DeliveredBySelfPickup
	case repository.DeliveryAssigned, repository.DeliveryDelivered:
		if d.VolunteerName != nil {
			return *d.VolunteerName
		}
		return DeliveredByNeedsVolunteer
	default:
		return DeliveredByNeedsVolunteer
	}
}

// CreateDonationInput carries the donor-supplied fields of a new donation.
type CreateDonationInput struct {
	FoodName       string
	Quantity       int
	Description    string
	FoodType       string
	ImageURL       string
	Address        string
	Latitude       *float64
	Longitude      *float64
	NeedsVolunteer bool
	ExpiryAt       time.Time
}

// DonorDonations groups a donor's records across all lifecycle stages,
// plus a combined newest-first timeline.
type DonorDonations struct {
	Active   []*repository.LiveDonation     `json:"active"`
	Accepted []*repository.AcceptedDonation `json:"accepted"`
	Expired  []*repository.ExpiredDonation  `json:"expired"`
	Combined []ActivityEntry                `json:"combined"`
}

// ActivityEntry is one row of a mixed-stage timeline.
type ActivityEntry struct {
	Kind       string      `json:"kind"`
	OccurredAt time.Time   `json:"occurred_at"`
	Record     interface{} `json:"record"`
}

// DashboardStats is the admin overview projection.
type DashboardStats struct {
	Donors             int `json:"donors"`
	Recipients         int `json:"recipients"`
	Volunteers         int `json:"volunteers"`
	LiveDonations      int `json:"live_donations"`
	AcceptedDonations  int `json:"accepted_donations"`
	ExpiredDonations   int `json:"expired_donations"`
	DeliveredDonations int `json:"delivered_donations"`
}

var validFoodTypes = map[string]bool{"veg": true, "nonveg": true, "jain": true}

// ValidFoodType reports whether t is one of the accepted food categories.
func ValidFoodType(t string) bool {
	return validFoodTypes[t]
}
