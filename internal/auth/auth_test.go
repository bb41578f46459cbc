package auth

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kindmeals/backend/internal/repository"
	"github.com/kindmeals/backend/internal/storage"
)

type fakeProfiles struct {
	donors     map[string]*repository.Donor
	recipients map[string]*repository.Recipient
	volunteers map[string]*repository.Volunteer
	lookups    int
}

func (f *fakeProfiles) DonorByFirebaseUID(_ context.Context, uid string) (*repository.Donor, error) {
	f.lookups++
	if d, ok := f.donors[uid]; ok {
		return d, nil
	}
	return nil, storage.ErrNotFound
}

func (f *fakeProfiles) RecipientByFirebaseUID(_ context.Context, uid string) (*repository.Recipient, error) {
	f.lookups++
	if r, ok := f.recipients[uid]; ok {
		return r, nil
	}
	return nil, storage.ErrNotFound
}

func (f *fakeProfiles) VolunteerByFirebaseUID(_ context.Context, uid string) (*repository.Volunteer, error) {
	f.lookups++
	if v, ok := f.volunteers[uid]; ok {
		return v, nil
	}
	return nil, storage.ErrNotFound
}

func newFakeProfiles() *fakeProfiles {
	return &fakeProfiles{
		donors:     map[string]*repository.Donor{},
		recipients: map[string]*repository.Recipient{},
		volunteers: map[string]*repository.Volunteer{},
	}
}

func TestBearerToken(t *testing.T) {
	assert.Equal(t, "abc", BearerToken("Bearer abc"))
	assert.Equal(t, "abc", BearerToken("abc"))
	assert.Equal(t, "abc", BearerToken("  Bearer abc  "))
	assert.Equal(t, "", BearerToken(""))
}

func TestPassthroughVerifier(t *testing.T) {
	uid, err := PassthroughVerifier{}.Verify(context.Background(), "user-1")
	require.NoError(t, err)
	assert.Equal(t, "user-1", uid)

	_, err = PassthroughVerifier{}.Verify(context.Background(), "   ")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestDirectoryResolvesRoles(t *testing.T) {
	profiles := newFakeProfiles()
	profiles.donors["d1"] = &repository.Donor{ID: "donor-1", FirebaseUID: "d1"}
	profiles.recipients["r1"] = &repository.Recipient{ID: "rec-1", FirebaseUID: "r1"}
	profiles.volunteers["v1"] = &repository.Volunteer{ID: "vol-1", FirebaseUID: "v1"}

	dir := NewDirectory(profiles, time.Minute)
	ctx := context.Background()

	id, err := dir.Resolve(ctx, "d1")
	require.NoError(t, err)
	assert.Equal(t, RoleDonor, id.Role)
	require.NotNil(t, id.Donor)
	assert.Equal(t, "donor-1", id.Donor.ID)

	id, err = dir.Resolve(ctx, "r1")
	require.NoError(t, err)
	assert.Equal(t, RoleRecipient, id.Role)

	id, err = dir.Resolve(ctx, "v1")
	require.NoError(t, err)
	assert.Equal(t, RoleVolunteer, id.Role)

	id, err = dir.Resolve(ctx, "nobody")
	require.NoError(t, err)
	assert.Equal(t, RoleNone, id.Role)
}

func TestDirectoryPrefersDonorOnCollision(t *testing.T) {
	profiles := newFakeProfiles()
	profiles.donors["u1"] = &repository.Donor{ID: "donor-1", FirebaseUID: "u1"}
	profiles.volunteers["u1"] = &repository.Volunteer{ID: "vol-1", FirebaseUID: "u1"}

	dir := NewDirectory(profiles, time.Minute)

	id, err := dir.Resolve(context.Background(), "u1")
	require.NoError(t, err)
	assert.Equal(t, RoleDonor, id.Role)
	assert.Nil(t, id.Volunteer)
}

func TestDirectoryCachesAndInvalidates(t *testing.T) {
	profiles := newFakeProfiles()
	profiles.donors["d1"] = &repository.Donor{ID: "donor-1", FirebaseUID: "d1"}

	dir := NewDirectory(profiles, time.Minute)
	ctx := context.Background()

	_, err := dir.Resolve(ctx, "d1")
	require.NoError(t, err)
	first := profiles.lookups

	_, err = dir.Resolve(ctx, "d1")
	require.NoError(t, err)
	assert.Equal(t, first, profiles.lookups, "second resolve should hit the cache")

	// A user registers after resolving to RoleNone; invalidation makes the
	// new role visible immediately.
	id, err := dir.Resolve(ctx, "fresh")
	require.NoError(t, err)
	assert.Equal(t, RoleNone, id.Role)

	profiles.recipients["fresh"] = &repository.Recipient{ID: "rec-9", FirebaseUID: "fresh"}
	dir.Invalidate("fresh")

	id, err = dir.Resolve(ctx, "fresh")
	require.NoError(t, err)
	assert.Equal(t, RoleRecipient, id.Role)
}

func TestIdentityContextRoundTrip(t *testing.T) {
	_, ok := IdentityFrom(context.Background())
	assert.False(t, ok)

	want := &Identity{UID: "u1", Role: RoleDonor}
	ctx := WithIdentity(context.Background(), want)
	got, ok := IdentityFrom(ctx)
	require.True(t, ok)
	assert.Equal(t, want, got)
}
