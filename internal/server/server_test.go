package server

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"

	"github.com/kindmeals/backend/internal/auth"
	"github.com/kindmeals/backend/internal/repository"
	server_mocks "github.com/kindmeals/backend/internal/server/mocks"
	"github.com/kindmeals/backend/internal/storage"
	"github.com/kindmeals/backend/internal/upload"
)

func newTestServer(t *testing.T, ctrl *gomock.Controller) (*Server, *server_mocks.MockStorage, *server_mocks.MockResolver) {
	t.Helper()
	mockStorage := server_mocks.NewMockStorage(ctrl)
	mockResolver := server_mocks.NewMockResolver(ctrl)
	uploads, err := upload.NewStore(t.TempDir(), 5<<20)
	require.NoError(t, err)
	srv := New(mockStorage, auth.PassthroughVerifier{}, mockResolver, uploads, zap.NewNop())
	return srv, mockStorage, mockResolver
}

func donorIdentity() *auth.Identity {
	return &auth.Identity{
		UID:   "donor-uid",
		Role:  auth.RoleDonor,
		Donor: &repository.Donor{ID: "donor-1", FirebaseUID: "donor-uid", Name: "Bakery", Contact: "111", Address: "Main St"},
	}
}

func recipientIdentity() *auth.Identity {
	return &auth.Identity{
		UID:       "rec-uid",
		Role:      auth.RoleRecipient,
		Recipient: &repository.Recipient{ID: "rec-1", FirebaseUID: "rec-uid", Name: "Shelter", Contact: "222"},
	}
}

func volunteerIdentity() *auth.Identity {
	return &auth.Identity{
		UID:       "vol-uid",
		Role:      auth.RoleVolunteer,
		Volunteer: &repository.Volunteer{ID: "vol-1", FirebaseUID: "vol-uid", Name: "Rider", Contact: "333"},
	}
}

func TestAuthMiddleware(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	srv, mockStorage, mockResolver := newTestServer(t, ctrl)
	router := srv.Routes()

	t.Run("missing token", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/profile", nil)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})

	t.Run("verified token with no profile gets 404 profile", func(t *testing.T) {
		mockResolver.EXPECT().
			Resolve(gomock.Any(), "stranger").
			Return(&auth.Identity{UID: "stranger", Role: auth.RoleNone}, nil)

		req := httptest.NewRequest(http.MethodGet, "/api/profile", nil)
		req.Header.Set("Authorization", "Bearer stranger")
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusNotFound, rr.Code)
	})

	t.Run("live listing needs no token", func(t *testing.T) {
		mockStorage.EXPECT().
			ListLiveDonations(gomock.Any()).
			Return([]*repository.LiveDonation{}, nil)

		req := httptest.NewRequest(http.MethodGet, "/api/donations/live", nil)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
	})
}

func TestHandleAcceptDonation(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	srv, mockStorage, mockResolver := newTestServer(t, ctrl)
	router := srv.Routes()

	volunteerName := "Rider"
	tests := []struct {
		name           string
		identity       *auth.Identity
		setupMocks     func()
		expectedStatus int
		checkBody      func(t *testing.T, body []byte)
	}{
		{
			name:     "recipient accepts, donor preference kept",
			identity: recipientIdentity(),
			setupMocks: func() {
				mockStorage.EXPECT().
					AcceptDonation(gomock.Any(), "don-1", gomock.Any(), nil).
					Return(&repository.AcceptedDonation{
						ID:             "acc-1",
						DeliveryStatus: repository.DeliveryNeedsVolunteer,
					}, nil)
			},
			expectedStatus: http.StatusOK,
			checkBody: func(t *testing.T, body []byte) {
				var got map[string]interface{}
				require.NoError(t, json.Unmarshal(body, &got))
				assert.Equal(t, storage.DeliveredByNeedsVolunteer, got["deliveredby"])
			},
		},
		{
			name:     "assigned donation renders volunteer name",
			identity: recipientIdentity(),
			setupMocks: func() {
				mockStorage.EXPECT().
					AcceptDonation(gomock.Any(), "don-1", gomock.Any(), nil).
					Return(&repository.AcceptedDonation{
						ID:             "acc-2",
						DeliveryStatus: repository.DeliveryAssigned,
						VolunteerName:  &volunteerName,
					}, nil)
			},
			expectedStatus: http.StatusOK,
			checkBody: func(t *testing.T, body []byte) {
				var got map[string]interface{}
				require.NoError(t, json.Unmarshal(body, &got))
				assert.Equal(t, "Rider", got["deliveredby"])
			},
		},
		{
			name:     "expired donation conflicts",
			identity: recipientIdentity(),
			setupMocks: func() {
				mockStorage.EXPECT().
					AcceptDonation(gomock.Any(), "don-1", gomock.Any(), nil).
					Return(nil, storage.ErrExpired)
			},
			expectedStatus: http.StatusConflict,
		},
		{
			name:     "unknown donation",
			identity: recipientIdentity(),
			setupMocks: func() {
				mockStorage.EXPECT().
					AcceptDonation(gomock.Any(), "don-1", gomock.Any(), nil).
					Return(nil, storage.ErrNotFound)
			},
			expectedStatus: http.StatusNotFound,
		},
		{
			name:           "donor may not accept",
			identity:       donorIdentity(),
			setupMocks:     func() {},
			expectedStatus: http.StatusForbidden,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			tc.setupMocks()
			mockResolver.EXPECT().
				Resolve(gomock.Any(), tc.identity.UID).
				Return(tc.identity, nil)

			req := httptest.NewRequest(http.MethodPost, "/api/donations/accept/don-1", nil)
			req.Header.Set("Authorization", "Bearer "+tc.identity.UID)
			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code)
			if tc.checkBody != nil {
				tc.checkBody(t, rr.Body.Bytes())
			}
		})
	}
}

func TestHandleAcceptDonationOverride(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	srv, mockStorage, mockResolver := newTestServer(t, ctrl)
	router := srv.Routes()

	identity := recipientIdentity()
	mockResolver.EXPECT().Resolve(gomock.Any(), identity.UID).Return(identity, nil)
	mockStorage.EXPECT().
		AcceptDonation(gomock.Any(), "don-1", gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ interface{}, _ string, _ *repository.Recipient, override *bool) (*repository.AcceptedDonation, error) {
			require.NotNil(t, override)
			assert.True(t, *override)
			return &repository.AcceptedDonation{ID: "acc-1", DeliveryStatus: repository.DeliveryNeedsVolunteer}, nil
		})

	body := bytes.NewBufferString(`{"needsVolunteer": true}`)
	req := httptest.NewRequest(http.MethodPost, "/api/donations/accept/don-1", body)
	req.Header.Set("Authorization", "Bearer "+identity.UID)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
}

func TestHandleCreateDonation(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	srv, mockStorage, mockResolver := newTestServer(t, ctrl)
	router := srv.Routes()

	newRequest := func(fields map[string]string) *http.Request {
		var buf bytes.Buffer
		mw := multipart.NewWriter(&buf)
		for k, v := range fields {
			require.NoError(t, mw.WriteField(k, v))
		}
		require.NoError(t, mw.Close())
		req := httptest.NewRequest(http.MethodPost, "/api/donations/create", &buf)
		req.Header.Set("Content-Type", mw.FormDataContentType())
		req.Header.Set("Authorization", "Bearer donor-uid")
		return req
	}

	t.Run("success", func(t *testing.T) {
		identity := donorIdentity()
		mockResolver.EXPECT().Resolve(gomock.Any(), identity.UID).Return(identity, nil)
		mockStorage.EXPECT().
			CreateDonation(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ interface{}, donor *repository.Donor, input storage.CreateDonationInput) (*repository.LiveDonation, error) {
				assert.Equal(t, "donor-1", donor.ID)
				assert.Equal(t, "Rice", input.FoodName)
				assert.Equal(t, 4, input.Quantity)
				assert.True(t, input.NeedsVolunteer)
				return &repository.LiveDonation{ID: "don-1", FoodName: input.FoodName}, nil
			})

		req := newRequest(map[string]string{
			"foodName":       "Rice",
			"quantity":       "4",
			"foodType":       "veg",
			"needsVolunteer": "true",
			"expiryDateTime": time.Now().Add(6 * time.Hour).Format(time.RFC3339),
		})
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusCreated, rr.Code)
	})

	t.Run("bad food type", func(t *testing.T) {
		identity := donorIdentity()
		mockResolver.EXPECT().Resolve(gomock.Any(), identity.UID).Return(identity, nil)

		req := newRequest(map[string]string{
			"foodName":       "Rice",
			"quantity":       "4",
			"foodType":       "sushi",
			"expiryDateTime": time.Now().Add(6 * time.Hour).Format(time.RFC3339),
		})
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("expiry in the past", func(t *testing.T) {
		identity := donorIdentity()
		mockResolver.EXPECT().Resolve(gomock.Any(), identity.UID).Return(identity, nil)

		req := newRequest(map[string]string{
			"foodName":       "Rice",
			"quantity":       "4",
			"foodType":       "veg",
			"expiryDateTime": time.Now().Add(-time.Hour).Format(time.RFC3339),
		})
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("malformed latitude", func(t *testing.T) {
		identity := donorIdentity()
		mockResolver.EXPECT().Resolve(gomock.Any(), identity.UID).Return(identity, nil)

		req := newRequest(map[string]string{
			"foodName":       "Rice",
			"quantity":       "4",
			"foodType":       "veg",
			"expiryDateTime": time.Now().Add(6 * time.Hour).Format(time.RFC3339),
			"latitude":       "north-ish",
		})
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Contains(t, rr.Body.String(), "latitude")
	})
}

func TestHandleClaimOpportunity(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	srv, mockStorage, mockResolver := newTestServer(t, ctrl)
	router := srv.Routes()

	tests := []struct {
		name           string
		setupMocks     func()
		expectedStatus int
	}{
		{
			name: "claim succeeds",
			setupMocks: func() {
				mockStorage.EXPECT().
					ClaimOpportunity(gomock.Any(), "don-1", gomock.Any()).
					Return(&repository.LiveDonation{ID: "don-1"}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name: "already claimed",
			setupMocks: func() {
				mockStorage.EXPECT().
					ClaimOpportunity(gomock.Any(), "don-1", gomock.Any()).
					Return(nil, storage.ErrAlreadyAssigned)
			},
			expectedStatus: http.StatusConflict,
		},
		{
			name: "self pickup donation",
			setupMocks: func() {
				mockStorage.EXPECT().
					ClaimOpportunity(gomock.Any(), "don-1", gomock.Any()).
					Return(nil, storage.ErrNoVolunteerNeeded)
			},
			expectedStatus: http.StatusConflict,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			tc.setupMocks()
			identity := volunteerIdentity()
			mockResolver.EXPECT().Resolve(gomock.Any(), identity.UID).Return(identity, nil)

			req := httptest.NewRequest(http.MethodPost, "/api/volunteer/donations/accept/don-1", nil)
			req.Header.Set("Authorization", "Bearer "+identity.UID)
			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code)
		})
	}
}

func TestHandleRegisterDonor(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	srv, mockStorage, mockResolver := newTestServer(t, ctrl)
	router := srv.Routes()

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	require.NoError(t, mw.WriteField("donorname", "Bakery"))
	require.NoError(t, mw.WriteField("donorcontact", "111"))
	require.NoError(t, mw.WriteField("orgName", "Daily Bread"))
	require.NoError(t, mw.Close())

	mockResolver.EXPECT().
		Resolve(gomock.Any(), "fresh-uid").
		Return(&auth.Identity{UID: "fresh-uid", Role: auth.RoleNone}, nil)
	mockStorage.EXPECT().
		CreateDonorProfile(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ interface{}, d *repository.Donor) error {
			assert.Equal(t, "fresh-uid", d.FirebaseUID)
			assert.Equal(t, "Bakery", d.Name)
			assert.NotEmpty(t, d.ID)
			return nil
		})
	mockResolver.EXPECT().Invalidate("fresh-uid")

	req := httptest.NewRequest(http.MethodPost, "/api/donor/register", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	req.Header.Set("Authorization", "Bearer fresh-uid")
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusCreated, rr.Code)
}

func TestHandleRegisterDonorBadCoordinate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	srv, _, mockResolver := newTestServer(t, ctrl)
	router := srv.Routes()

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	require.NoError(t, mw.WriteField("donorname", "Bakery"))
	require.NoError(t, mw.WriteField("donorcontact", "111"))
	require.NoError(t, mw.WriteField("longitude", "12,97"))
	require.NoError(t, mw.Close())

	mockResolver.EXPECT().
		Resolve(gomock.Any(), "fresh-uid").
		Return(&auth.Identity{UID: "fresh-uid", Role: auth.RoleNone}, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/donor/register", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	req.Header.Set("Authorization", "Bearer fresh-uid")
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Contains(t, rr.Body.String(), "longitude")
}

func TestHandleRegisterDonorConflict(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	srv, mockStorage, mockResolver := newTestServer(t, ctrl)
	router := srv.Routes()

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	require.NoError(t, mw.WriteField("donorname", "Bakery"))
	require.NoError(t, mw.WriteField("donorcontact", "111"))
	require.NoError(t, mw.Close())

	identity := donorIdentity()
	mockResolver.EXPECT().Resolve(gomock.Any(), identity.UID).Return(identity, nil)
	mockStorage.EXPECT().
		CreateDonorProfile(gomock.Any(), gomock.Any()).
		Return(storage.ErrAlreadyExists)

	req := httptest.NewRequest(http.MethodPost, "/api/donor/register", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	req.Header.Set("Authorization", "Bearer "+identity.UID)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusConflict, rr.Code)
}

func TestAdminEndpoints(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	srv, mockStorage, _ := newTestServer(t, ctrl)
	router := srv.Routes()

	t.Run("missing credentials", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/admin/dashboard/stats", nil)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})

	t.Run("wrong credentials", func(t *testing.T) {
		mockStorage.EXPECT().
			ValidateAdmin(gomock.Any(), "admin", "wrong").
			Return(false, nil)

		req := httptest.NewRequest(http.MethodGet, "/admin/dashboard/stats", nil)
		req.SetBasicAuth("admin", "wrong")
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})

	t.Run("stats", func(t *testing.T) {
		mockStorage.EXPECT().
			ValidateAdmin(gomock.Any(), "admin", "secret").
			Return(true, nil)
		mockStorage.EXPECT().
			DashboardStats(gomock.Any()).
			Return(&storage.DashboardStats{Donors: 2, LiveDonations: 1}, nil)

		req := httptest.NewRequest(http.MethodGet, "/admin/dashboard/stats", nil)
		req.SetBasicAuth("admin", "secret")
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		var stats storage.DashboardStats
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &stats))
		assert.Equal(t, 2, stats.Donors)
	})
}

func TestHandleNotifications(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	srv, mockStorage, mockResolver := newTestServer(t, ctrl)
	router := srv.Routes()

	identity := recipientIdentity()
	mockResolver.EXPECT().Resolve(gomock.Any(), identity.UID).Return(identity, nil)
	mockStorage.EXPECT().
		Notifications(gomock.Any(), "rec-1", 0).
		Return([]*repository.Notification{{ID: "n1", UserID: "rec-1", Kind: "donation_accepted"}}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/notifications", nil)
	req.Header.Set("Authorization", "Bearer "+identity.UID)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
}

func TestHandleHealth(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	srv, _, _ := newTestServer(t, ctrl)
	router := srv.Routes()

	for _, path := range []string{"/", "/api/health"} {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.JSONEq(t, `{"status":"ok"}`, rr.Body.String())
	}
}
