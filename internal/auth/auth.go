package auth

import (
	"context"
	"errors"
	"strings"
)

type Role string

const (
	RoleNone      Role = "none"
	RoleDonor     Role = "donor"
	RoleRecipient Role = "recipient"
	RoleVolunteer Role = "volunteer"
)

// ErrInvalidToken is returned by a Verifier for tokens that fail
// verification outright, as opposed to valid tokens with no profile.
var ErrInvalidToken = errors.New("invalid auth token")

// Verifier checks a bearer token against the identity provider and returns
// the stable user ID it encodes.
type Verifier interface {
	Verify(ctx context.Context, token string) (uid string, err error)
}

// PassthroughVerifier treats the bearer token itself as the user ID. It is
// meant for deployments where a gateway has already verified the token and
// replaced it with the subject, and for tests.
type PassthroughVerifier struct{}

func (PassthroughVerifier) Verify(_ context.Context, token string) (string, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return "", ErrInvalidToken
	}
	return token, nil
}

type ctxKey struct{}

// WithIdentity returns a context carrying the resolved identity.
func WithIdentity(ctx context.Context, id *Identity) context.Context {
	return context.WithValue(ctx, ctxKey{}, id)
}

// IdentityFrom extracts the identity set by the auth middleware. The second
// return is false on requests that never passed through it.
func IdentityFrom(ctx context.Context) (*Identity, bool) {
	id, ok := ctx.Value(ctxKey{}).(*Identity)
	return id, ok
}

// BearerToken pulls the token out of an Authorization header value. It
// accepts both "Bearer <token>" and a bare token.
func BearerToken(header string) string {
	header = strings.TrimSpace(header)
	if h, ok := strings.CutPrefix(header, "Bearer "); ok {
		return strings.TrimSpace(h)
	}
	return header
}
