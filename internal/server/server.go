//go:generate mockgen -source ./server.go -destination=./mocks/server.go -package=server_mocks
package server

import (
	"context"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/kindmeals/backend/internal/auth"
	"github.com/kindmeals/backend/internal/repository"
	"github.com/kindmeals/backend/internal/storage"
	"github.com/kindmeals/backend/internal/upload"
)

// Storage is the donation store surface the handlers call.
type Storage interface {
	CreateDonorProfile(ctx context.Context, d *repository.Donor) error
	CreateRecipientProfile(ctx context.Context, r *repository.Recipient) error
	CreateVolunteerProfile(ctx context.Context, v *repository.Volunteer) error

	CreateDonation(ctx context.Context, donor *repository.Donor, input storage.CreateDonationInput) (*repository.LiveDonation, error)
	ListLiveDonations(ctx context.Context) ([]*repository.LiveDonation, error)
	AcceptDonation(ctx context.Context, donationID string, recipient *repository.Recipient, needsVolunteerOverride *bool) (*repository.AcceptedDonation, error)
	AddFeedback(ctx context.Context, acceptedID, recipientID, feedback string) (*repository.AcceptedDonation, error)
	SweepExpired(ctx context.Context, now time.Time) (int, error)
	DonorDonations(ctx context.Context, donorID string) (*storage.DonorDonations, error)
	RecipientDonations(ctx context.Context, recipientID string) ([]*repository.AcceptedDonation, error)

	ListOpportunities(ctx context.Context) ([]*repository.LiveDonation, error)
	ClaimOpportunity(ctx context.Context, donationID string, volunteer *repository.Volunteer) (*repository.LiveDonation, error)
	ListPendingDeliveries(ctx context.Context) ([]*repository.AcceptedDonation, error)
	AcceptDelivery(ctx context.Context, acceptedID string, volunteer *repository.Volunteer) (*repository.AcceptedDonation, error)
	CompleteDelivery(ctx context.Context, acceptedID string, volunteer *repository.Volunteer) (*repository.FinalDonation, error)
	VolunteerHistory(ctx context.Context, volunteerID string) ([]*repository.AcceptedDonation, error)
	RateVolunteer(ctx context.Context, acceptedID, recipientID string, rating float64) error

	Notifications(ctx context.Context, userID string, limit int) ([]*repository.Notification, error)
	MarkNotificationRead(ctx context.Context, id, userID string) error

	ValidateAdmin(ctx context.Context, username, password string) (bool, error)
	ListDonors(ctx context.Context) ([]*repository.Donor, error)
	ListRecipients(ctx context.Context) ([]*repository.Recipient, error)
	ListVolunteers(ctx context.Context) ([]*repository.Volunteer, error)
	ListAllLive(ctx context.Context) ([]*repository.LiveDonation, error)
	ListAllAccepted(ctx context.Context) ([]*repository.AcceptedDonation, error)
	ListAllExpired(ctx context.Context) ([]*repository.ExpiredDonation, error)
	DashboardStats(ctx context.Context) (*storage.DashboardStats, error)
	RecentActivity(ctx context.Context, limit int) ([]storage.ActivityEntry, error)
}

// Resolver maps a verified user ID to its role profile.
type Resolver interface {
	Resolve(ctx context.Context, uid string) (*auth.Identity, error)
	Invalidate(uid string)
}

type Server struct {
	storage  Storage
	verifier auth.Verifier
	resolver Resolver
	uploads  *upload.Store
	logger   *zap.Logger
	server   *http.Server
}

func New(store Storage, verifier auth.Verifier, resolver Resolver, uploads *upload.Store, logger *zap.Logger) *Server {
	return &Server{
		storage:  store,
		verifier: verifier,
		resolver: resolver,
		uploads:  uploads,
		logger:   logger,
	}
}

func (s *Server) Run(ctx context.Context, addr string) error {
	s.server = &http.Server{
		Addr:         addr,
		Handler:      s.Routes(),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	s.logger.Info("http server starting", zap.String("addr", addr))
	if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

func (s *Server) Shutdown(ctx context.Context) error {
	if s.server == nil {
		return nil
	}
	s.logger.Info("http server shutting down")
	return s.server.Shutdown(ctx)
}

// Routes builds the full router. Exposed for handler tests.
func (s *Server) Routes() http.Handler {
	r := mux.NewRouter()

	r.HandleFunc("/", s.handleHealth).Methods(http.MethodGet)
	r.HandleFunc("/api/health", s.handleHealth).Methods(http.MethodGet)
	// Registered ahead of the /api subrouter so the live listing stays
	// public.
	r.HandleFunc("/api/donations/live", s.handleListLiveDonations).Methods(http.MethodGet)
	r.Handle("/metrics", promhttp.Handler()).Methods(http.MethodGet)
	r.PathPrefix("/uploads/").Handler(
		http.StripPrefix("/uploads/", http.FileServer(http.Dir(s.uploads.Dir())))).Methods(http.MethodGet)

	api := r.PathPrefix("/api").Subrouter()
	api.Use(s.authMiddleware)

	api.HandleFunc("/profile", s.handleProfile).Methods(http.MethodGet)
	api.HandleFunc("/donor/register", s.handleRegisterDonor).Methods(http.MethodPost)
	api.HandleFunc("/recipient/register", s.handleRegisterRecipient).Methods(http.MethodPost)
	api.HandleFunc("/volunteer/register", s.handleRegisterVolunteer).Methods(http.MethodPost)

	api.HandleFunc("/donations/create", s.handleCreateDonation).Methods(http.MethodPost)
	api.HandleFunc("/donations/accept/{donationId}", s.handleAcceptDonation).Methods(http.MethodPost)
	api.HandleFunc("/donations/feedback/{acceptedDonationId}", s.handleAddFeedback).Methods(http.MethodPost)
	api.HandleFunc("/donations/rate/{acceptedDonationId}", s.handleRateVolunteer).Methods(http.MethodPost)
	api.HandleFunc("/donations/cleanup", s.handleCleanup).Methods(http.MethodPost)

	api.HandleFunc("/donor/donations", s.handleDonorDonations).Methods(http.MethodGet)
	api.HandleFunc("/recipient/donations", s.handleRecipientDonations).Methods(http.MethodGet)

	api.HandleFunc("/volunteer/opportunities", s.handleOpportunities).Methods(http.MethodGet)
	api.HandleFunc("/volunteer/donations/accept/{donationId}", s.handleClaimOpportunity).Methods(http.MethodPost)
	api.HandleFunc("/volunteer/donations/pending", s.handlePendingDeliveries).Methods(http.MethodGet)
	api.HandleFunc("/volunteer/accept-delivery/{acceptedDonationId}", s.handleAcceptDelivery).Methods(http.MethodPost)
	api.HandleFunc("/volunteer/complete-delivery/{acceptedDonationId}", s.handleCompleteDelivery).Methods(http.MethodPost)
	api.HandleFunc("/volunteer/donations/history", s.handleVolunteerHistory).Methods(http.MethodGet)

	api.HandleFunc("/notifications", s.handleNotifications).Methods(http.MethodGet)
	api.HandleFunc("/notifications/{id}/read", s.handleMarkNotificationRead).Methods(http.MethodPost)

	admin := r.PathPrefix("/admin").Subrouter()
	admin.Use(s.adminAuthMiddleware)

	admin.HandleFunc("/login", s.handleAdminLogin).Methods(http.MethodPost)
	admin.HandleFunc("/donors", s.handleAdminListDonors).Methods(http.MethodGet)
	admin.HandleFunc("/recipients", s.handleAdminListRecipients).Methods(http.MethodGet)
	admin.HandleFunc("/volunteers", s.handleAdminListVolunteers).Methods(http.MethodGet)
	admin.HandleFunc("/donations/live", s.handleAdminListLive).Methods(http.MethodGet)
	admin.HandleFunc("/donations/accepted", s.handleAdminListAccepted).Methods(http.MethodGet)
	admin.HandleFunc("/donations/expired", s.handleAdminListExpired).Methods(http.MethodGet)
	admin.HandleFunc("/dashboard/stats", s.handleAdminStats).Methods(http.MethodGet)
	admin.HandleFunc("/dashboard/activity", s.handleAdminActivity).Methods(http.MethodGet)

	return r
}

// authMiddleware verifies the bearer token and resolves the caller's role.
// A bad token is rejected here; a good token with no profile passes through
// with RoleNone so registration endpoints can run.
func (s *Server) authMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := auth.BearerToken(r.Header.Get("Authorization"))
		if token == "" {
			respondError(w, http.StatusUnauthorized, "unauthenticated", "missing bearer token")
			return
		}

		uid, err := s.verifier.Verify(r.Context(), token)
		if err != nil {
			respondError(w, http.StatusUnauthorized, "unauthenticated", "invalid bearer token")
			return
		}

		identity, err := s.resolver.Resolve(r.Context(), uid)
		if err != nil {
			s.logger.Error("identity resolution failed", zap.Error(err))
			respondError(w, http.StatusInternalServerError, "internal", "could not resolve identity")
			return
		}

		next.ServeHTTP(w, r.WithContext(auth.WithIdentity(r.Context(), identity)))
	})
}

func (s *Server) adminAuthMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		username, password, ok := r.BasicAuth()
		if !ok {
			w.Header().Set("WWW-Authenticate", `Basic realm="kindmeals-admin"`)
			respondError(w, http.StatusUnauthorized, "unauthenticated", "admin credentials required")
			return
		}

		valid, err := s.storage.ValidateAdmin(r.Context(), username, password)
		if err != nil {
			s.logger.Error("admin validation failed", zap.Error(err))
			respondError(w, http.StatusInternalServerError, "internal", "could not validate credentials")
			return
		}
		if !valid {
			w.Header().Set("WWW-Authenticate", `Basic realm="kindmeals-admin"`)
			respondError(w, http.StatusUnauthorized, "unauthenticated", "invalid admin credentials")
			return
		}

		next.ServeHTTP(w, r)
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
