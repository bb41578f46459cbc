package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/kindmeals/backend/internal/cache"
	"github.com/kindmeals/backend/internal/metrics"
	"github.com/kindmeals/backend/internal/repository"
	"github.com/kindmeals/backend/internal/storage"
)

// Identity is the resolved caller: which role the user ID maps to and the
// matching profile. A verified token with no profile resolves to RoleNone;
// that request may still register a profile.
type Identity struct {
	UID       string
	Role      Role
	Donor     *repository.Donor
	Recipient *repository.Recipient
	Volunteer *repository.Volunteer
}

// ProfileStore is the slice of the donation store the directory reads.
type ProfileStore interface {
	DonorByFirebaseUID(ctx context.Context, uid string) (*repository.Donor, error)
	RecipientByFirebaseUID(ctx context.Context, uid string) (*repository.Recipient, error)
	VolunteerByFirebaseUID(ctx context.Context, uid string) (*repository.Volunteer, error)
}

// Directory resolves user IDs to identities. Lookups always probe the
// collections in the fixed order donor, recipient, volunteer, so a user ID
// present in more than one collection resolves the same way every time.
// Resolutions are cached; Invalidate must be called when a profile is
// created for a cached ID.
type Directory struct {
	store ProfileStore
	cache *cache.TTLCache[*Identity]
}

func NewDirectory(store ProfileStore, ttl time.Duration) *Directory {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	return &Directory{
		store: store,
		cache: cache.NewTTL[*Identity](ttl),
	}
}

func (d *Directory) Resolve(ctx context.Context, uid string) (*Identity, error) {
	if id, found := d.cache.Get(uid); found {
		return id, nil
	}

	id, err := d.lookup(ctx, uid)
	if err != nil {
		return nil, err
	}

	d.cache.Set(uid, id)
	metrics.ProfileCacheItems.Set(float64(d.cache.Len()))
	return id, nil
}

// Invalidate drops the cached resolution for uid. Called after profile
// registration so the next request sees the new role.
func (d *Directory) Invalidate(uid string) {
	d.cache.Delete(uid)
	metrics.ProfileCacheItems.Set(float64(d.cache.Len()))
}

func (d *Directory) lookup(ctx context.Context, uid string) (*Identity, error) {
	donor, err := d.store.DonorByFirebaseUID(ctx, uid)
	if err == nil {
		return &Identity{UID: uid, Role: RoleDonor, Donor: donor}, nil
	}
	if !errors.Is(err, storage.ErrNotFound) {
		return nil, fmt.Errorf("resolve donor: %w", err)
	}

	recipient, err := d.store.RecipientByFirebaseUID(ctx, uid)
	if err == nil {
		return &Identity{UID: uid, Role: RoleRecipient, Recipient: recipient}, nil
	}
	if !errors.Is(err, storage.ErrNotFound) {
		return nil, fmt.Errorf("resolve recipient: %w", err)
	}

	volunteer, err := d.store.VolunteerByFirebaseUID(ctx, uid)
	if err == nil {
		return &Identity{UID: uid, Role: RoleVolunteer, Volunteer: volunteer}, nil
	}
	if !errors.Is(err, storage.ErrNotFound) {
		return nil, fmt.Errorf("resolve volunteer: %w", err)
	}

	return &Identity{UID: uid, Role: RoleNone}, nil
}
