package identity

import (
	"context"
	"errors"
	"fmt"
)

// Identity is the minimal view of an authenticated principal.
// Every authentication backend can provide it; only some also carry claims.
type Identity interface {
	// Name is the display name of the principal.
	Name() string
	// AuthenticationType names the mechanism that produced the identity (e.g. "jwt").
	AuthenticationType() string
	// IsAuthenticated reports whether the identity was authenticated at all.
	IsAuthenticated() bool
}

// ClaimsCarrier is an Identity that also exposes an ordered claim set.
//
// Identity is effectively a two-variant union:
//   - Basic: implements Identity only
//   - ClaimsCapable: implements ClaimsCarrier
//
// Accessors branch on this capability rather than on concrete types.
type ClaimsCarrier interface {
	Identity

	// Claims returns the identity's claims in enumeration order.
	// Implementations must not hand out their backing slice.
	Claims() Claims
}

// ErrInvalidArgument is matched by every ArgumentError.
var ErrInvalidArgument = errors.New("invalid argument")

// ArgumentError reports a required argument that was nil.
type ArgumentError struct {
	Param string // name of the offending parameter
}

func (e *ArgumentError) Error() string {
	return fmt.Sprintf("%v: %s must not be nil", ErrInvalidArgument, e.Param)
}

// Is makes errors.Is(err, ErrInvalidArgument) hold for any ArgumentError.
func (e *ArgumentError) Is(target error) bool {
	return target == ErrInvalidArgument
}

// IsNil reports whether id is absent: a nil interface, or a nil pointer to
// one of this package's identity types.
//
// Nil pointers of other Identity implementations are not detected and are
// treated as present, so their methods must be safe on a nil receiver.
func IsNil(id Identity) bool {
	switch v := id.(type) {
	case nil:
		return true
	case *ClaimsIdentity:
		return v == nil
	case *BasicIdentity:
		return v == nil
	}
	return false
}

// RequireIdentity returns an ArgumentError naming "identity" when id is absent.
// Absence is decided by IsNil; see its note on other implementations.
func RequireIdentity(id Identity) error {
	if IsNil(id) {
		return &ArgumentError{Param: "identity"}
	}
	return nil
}

// BasicIdentity is an identity without a claim set.
type BasicIdentity struct {
	name     string
	authType string
}

// NewBasicIdentity creates an identity that carries only a name and an authentication type.
func NewBasicIdentity(name, authType string) *BasicIdentity {
	return &BasicIdentity{name: name, authType: authType}
}

func (b *BasicIdentity) Name() string {
	if b == nil {
		return ""
	}
	return b.name
}

func (b *BasicIdentity) AuthenticationType() string {
	if b == nil {
		return ""
	}
	return b.authType
}

func (b *BasicIdentity) IsAuthenticated() bool {
	return b.AuthenticationType() != ""
}

type identityCtxKey struct{}

// NewContext returns a copy of ctx carrying id.
func NewContext(ctx context.Context, id Identity) context.Context {
	return context.WithValue(ctx, identityCtxKey{}, id)
}

// FromContext returns the identity stored by NewContext, if any.
func FromContext(ctx context.Context) (Identity, bool) {
	id, ok := ctx.Value(identityCtxKey{}).(Identity)
	if !ok || IsNil(id) {
		return nil, false
	}
	return id, true
}
