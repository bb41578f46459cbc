package repository

import (
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrObjectNotFound = errors.New("not found")
	ErrDuplicate      = errors.New("already exists")
)

// DeliveryStatus is the tagged replacement for the legacy free-form
// "deliveredby" string. The legacy sentinels are rendered only at the API
// boundary.
type DeliveryStatus string

const (
	DeliveryNeedsVolunteer DeliveryStatus = "needs_volunteer"
	DeliverySelfPickup     DeliveryStatus = "self_pickup"
	DeliveryAssigned       DeliveryStatus = "assigned"
	DeliveryDelivered      DeliveryStatus = "delivered"
)

type LiveDonation struct {
	ID               string     `db:"id"`
	DonorID          string     `db:"donor_id"`
	DonorName        string     `db:"donor_name"`
	FoodName         string     `db:"food_name"`
	Quantity         int        `db:"quantity"`
	Description      string     `db:"description"`
	FoodType         string     `db:"food_type"`
	ImageURL         string     `db:"image_url"`
	Address          string     `db:"address"`
	Latitude         *float64   `db:"latitude"`
	Longitude        *float64   `db:"longitude"`
	NeedsVolunteer   bool       `db:"needs_volunteer"`
	VolunteerID      *string    `db:"volunteer_id"`
	VolunteerName    *string    `db:"volunteer_name"`
	VolunteerContact *string    `db:"volunteer_contact"`
	AssignedAt       *time.Time `db:"assigned_at"`
	ExpiryAt         time.Time  `db:"expiry_at"`
	UploadedAt       time.Time  `db:"uploaded_at"`
	Version          int        `db:"version"`
}

type AcceptedDonation struct {
	ID                 string         `db:"id"`
	OriginalDonationID string         `db:"original_donation_id"`
	DonorID            string         `db:"donor_id"`
	DonorName          string         `db:"donor_name"`
	AcceptedBy         string         `db:"accepted_by"`
	RecipientName      string         `db:"recipient_name"`
	RecipientContact   string         `db:"recipient_contact"`
	RecipientAddress   string         `db:"recipient_address"`
	FoodName           string         `db:"food_name"`
	Quantity           int            `db:"quantity"`
	Description        string         `db:"description"`
	FoodType           string         `db:"food_type"`
	ImageURL           string         `db:"image_url"`
	DeliveryStatus     DeliveryStatus `db:"delivery_status"`
	VolunteerID        *string        `db:"volunteer_id"`
	VolunteerName      *string        `db:"volunteer_name"`
	VolunteerContact   *string        `db:"volunteer_contact"`
	AssignedAt         *time.Time     `db:"assigned_at"`
	Feedback           string         `db:"feedback"`
	ExpiryAt           time.Time      `db:"expiry_at"`
	UploadedAt         time.Time      `db:"uploaded_at"`
	AcceptedAt         time.Time      `db:"accepted_at"`
	Version            int            `db:"version"`
}

type ExpiredDonation struct {
	ID                 string    `db:"id"`
	OriginalDonationID string    `db:"original_donation_id"`
	DonorID            string    `db:"donor_id"`
	DonorName          string    `db:"donor_name"`
	FoodName           string    `db:"food_name"`
	Quantity           int       `db:"quantity"`
	Description        string    `db:"description"`
	FoodType           string    `db:"food_type"`
	ImageURL           string    `db:"image_url"`
	Address            string    `db:"address"`
	Latitude           *float64  `db:"latitude"`
	Longitude          *float64  `db:"longitude"`
	NeedsVolunteer     bool      `db:"needs_volunteer"`
	Status             string    `db:"status"`
	ExpiryAt           time.Time `db:"expiry_at"`
	UploadedAt         time.Time `db:"uploaded_at"`
	ExpiredAt          time.Time `db:"expired_at"`
}

type FinalDonation struct {
	ID                 string    `db:"id"`
	OriginalDonationID string    `db:"original_donation_id"`
	AcceptedDonationID string    `db:"accepted_donation_id"`
	DonorID            string    `db:"donor_id"`
	DonorName          string    `db:"donor_name"`
	DonorContact       string    `db:"donor_contact"`
	RecipientID        string    `db:"recipient_id"`
	RecipientName      string    `db:"recipient_name"`
	RecipientContact   string    `db:"recipient_contact"`
	RecipientAddress   string    `db:"recipient_address"`
	VolunteerID        string    `db:"volunteer_id"`
	VolunteerName      string    `db:"volunteer_name"`
	VolunteerContact   string    `db:"volunteer_contact"`
	FoodName           string    `db:"food_name"`
	FoodType           string    `db:"food_type"`
	Quantity           int       `db:"quantity"`
	Description        string    `db:"description"`
	ImageURL           string    `db:"image_url"`
	PickedUpAt         time.Time `db:"picked_up_at"`
	DeliveredAt        time.Time `db:"delivered_at"`
	CreatedAt          time.Time `db:"created_at"`
}

type Donor struct {
	ID               string    `db:"id"`
	FirebaseUID      string    `db:"firebase_uid"`
	Email            string    `db:"email"`
	ProfileImage     string    `db:"profile_image"`
	Name             string    `db:"name"`
	OrgName          string    `db:"org_name"`
	IdentificationID string    `db:"identification_id"`
	Address          string    `db:"address"`
	Contact          string    `db:"contact"`
	OrgType          string    `db:"org_type"`
	About            string    `db:"about"`
	Latitude         float64   `db:"latitude"`
	Longitude        float64   `db:"longitude"`
	CreatedAt        time.Time `db:"created_at"`
}

type Recipient struct {
	ID           string    `db:"id"`
	FirebaseUID  string    `db:"firebase_uid"`
	Email        string    `db:"email"`
	ProfileImage string    `db:"profile_image"`
	Name         string    `db:"name"`
	NGOName      string    `db:"ngo_name"`
	NGOID        string    `db:"ngo_id"`
	Address      string    `db:"address"`
	Contact      string    `db:"contact"`
	OrgType      string    `db:"org_type"`
	About        string    `db:"about"`
	Latitude     float64   `db:"latitude"`
	Longitude    float64   `db:"longitude"`
	CreatedAt    time.Time `db:"created_at"`
}

type Volunteer struct {
	ID                  string    `db:"id"`
	FirebaseUID         string    `db:"firebase_uid"`
	Email               string    `db:"email"`
	ProfileImage        string    `db:"profile_image"`
	Name                string    `db:"name"`
	AadharID            string    `db:"aadhar_id"`
	Address             string    `db:"address"`
	Contact             string    `db:"contact"`
	About               string    `db:"about"`
	HasVehicle          bool      `db:"has_vehicle"`
	VehicleType         string    `db:"vehicle_type"`
	VehicleNumber       string    `db:"vehicle_number"`
	DrivingLicenseImage string    `db:"driving_license_image"`
	Rating              float64   `db:"rating"`
	TotalRatings        int       `db:"total_ratings"`
	Deliveries          int       `db:"deliveries"`
	Latitude            float64   `db:"latitude"`
	Longitude           float64   `db:"longitude"`
	CreatedAt           time.Time `db:"created_at"`
}

type Notification struct {
	ID                string    `db:"id"`
	UserID            string    `db:"user_id"`
	UserType          string    `db:"user_type"`
	Title             string    `db:"title"`
	Message           string    `db:"message"`
	Kind              string    `db:"kind"`
	RelatedDonationID *string   `db:"related_donation_id"`
	IsRead            bool      `db:"is_read"`
	CreatedAt         time.Time `db:"created_at"`
}

type TaskStatus string

const (
	TaskStatusCreated    TaskStatus = "CREATED"
	TaskStatusProcessing TaskStatus = "PROCESSING"
	TaskStatusFailed     TaskStatus = "FAILED"
	TaskStatusDone       TaskStatus = "DONE"
)

type OutboxTask struct {
	ID          uuid.UUID       `db:"id"`
	Status      TaskStatus      `db:"status"`
	Payload     json.RawMessage `db:"payload"`
	Topic       string          `db:"topic"`
	Attempts    int             `db:"attempts"`
	LastError   *string         `db:"last_error"`
	CreatedAt   time.Time       `db:"created_at"`
	UpdatedAt   time.Time       `db:"updated_at"`
	CompletedAt *time.Time      `db:"completed_at"`
}

// DonationEventPayload is the message body published for lifecycle events.
type DonationEventPayload struct {
	Event       string    `json:"event"`
	DonationID  string    `json:"donation_id"`
	DonorID     string    `json:"donor_id,omitempty"`
	RecipientID string    `json:"recipient_id,omitempty"`
	VolunteerID string    `json:"volunteer_id,omitempty"`
	FoodName    string    `json:"food_name,omitempty"`
	Timestamp   time.Time `json:"timestamp"`
}
