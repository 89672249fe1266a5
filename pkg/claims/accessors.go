// Package claims reads user information out of claims-based identities.
//
// Every function here is a read-only lookup: it never mutates the identity
// and keeps no state, so it is safe to call concurrently.
//
// Missing data is reported through an ok result rather than an error. Errors
// are reserved for absent arguments (identity.ErrInvalidArgument) and for
// claim values that a Parser rejects.
package claims

import (
	"github.com/alechenninger/identity/pkg/identity"
)

// UserID returns the value of the identity's first name identifier claim.
func UserID(id identity.Identity) (string, bool, error) {
	return UserClaim(id, identity.ClaimTypeNameIdentifier)
}

// UserIDAs returns the user id converted by parse.
//
// When the identity has no name identifier claim, or carries no claims at
// all, the zero T is returned with a nil error: absence and zero are not
// distinguished here. Use NameIdentifier.Get when the difference matters.
// A nil parse panics, but only after id has been checked.
func UserIDAs[T any](id identity.Identity, parse Parser[T]) (T, error) {
	if err := identity.RequireIdentity(id); err != nil {
		var zero T
		return zero, err
	}
	v, _, err := Of(identity.ClaimTypeNameIdentifier, parse).Get(id)
	return v, err
}

// UserName returns the identity's Name.
// Identities that carry no claims yield ("", false, nil) and their Name is not consulted.
func UserName(id identity.Identity) (string, bool, error) {
	if err := identity.RequireIdentity(id); err != nil {
		return "", false, err
	}
	if _, ok := id.(identity.ClaimsCarrier); !ok {
		return "", false, nil
	}
	return id.Name(), true, nil
}

// FindFirstValue returns the value of the first claim whose type is exactly claimType.
// An empty claimType matches nothing.
func FindFirstValue(id identity.ClaimsCarrier, claimType string) (string, bool, error) {
	if err := identity.RequireIdentity(id); err != nil {
		return "", false, err
	}
	if claimType == "" {
		return "", false, nil
	}
	if ci, ok := id.(*identity.ClaimsIdentity); ok {
		// avoids copying the claim set
		c, found := ci.FindFirst(claimType)
		return c.Value, found, nil
	}
	c, found := id.Claims().FindFirst(claimType)
	return c.Value, found, nil
}

// Values returns every value of claimType, in claim order.
// Identities that carry no claims yield nil.
func Values(id identity.Identity, claimType string) ([]string, error) {
	if err := identity.RequireIdentity(id); err != nil {
		return nil, err
	}
	carrier, ok := id.(identity.ClaimsCarrier)
	if !ok || claimType == "" {
		return nil, nil
	}
	return carrier.Claims().Values(claimType), nil
}

// Roles returns the identity's role claim values.
// A *identity.ClaimsIdentity is read through its configured role claim type;
// other carriers through identity.ClaimTypeRole.
func Roles(id identity.Identity) ([]string, error) {
	roleType := identity.ClaimTypeRole
	if ci, ok := id.(*identity.ClaimsIdentity); ok && ci != nil {
		roleType = ci.RoleClaimType()
	}
	return Values(id, roleType)
}
