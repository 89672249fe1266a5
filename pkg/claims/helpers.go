package claims

import (
	"strconv"

	"github.com/google/uuid"

	"github.com/alechenninger/identity/pkg/identity"
)

// Parser converts a raw claim value into T.
// Its error is returned to callers unchanged.
type Parser[T any] func(string) (T, error)

// String returns the claim value as is.
func String(s string) (string, error) {
	return s, nil
}

// Int parses a base-10 int.
func Int(s string) (int, error) {
	return strconv.Atoi(s)
}

// Int64 parses a base-10 int64.
func Int64(s string) (int64, error) {
	return strconv.ParseInt(s, 10, 64)
}

// Uint64 parses a base-10 uint64.
func Uint64(s string) (uint64, error) {
	return strconv.ParseUint(s, 10, 64)
}

// Bool parses the forms accepted by strconv.ParseBool.
func Bool(s string) (bool, error) {
	return strconv.ParseBool(s)
}

// UUID parses a UUID in any form accepted by uuid.Parse.
func UUID(s string) (uuid.UUID, error) {
	return uuid.Parse(s)
}

// Claim is a typed view of one claim type.
// Example: Of("tenant", Int64).Get(id) reads the first "tenant" claim as an int64.
type Claim[T any] struct {
	Type  string
	Parse Parser[T]
}

// Of creates a typed claim for claimType.
func Of[T any](claimType string, parse Parser[T]) Claim[T] {
	if parse == nil {
		panic("claims.Of requires a parser")
	}
	return Claim[T]{Type: claimType, Parse: parse}
}

// Get reads the first claim of c.Type from id.
// ok is false when id carries no claims or has no such claim; in that case
// the zero T is returned with a nil error.
func (c Claim[T]) Get(id identity.Identity) (value T, ok bool, err error) {
	raw, ok, err := UserClaim(id, c.Type)
	if err != nil || !ok {
		return value, false, err
	}
	value, err = c.Parse(raw)
	return value, true, err
}

// UserClaim returns the first value of claimType on any identity.
// Identities that carry no claims yield ("", false, nil).
func UserClaim(id identity.Identity, claimType string) (string, bool, error) {
	if err := identity.RequireIdentity(id); err != nil {
		return "", false, err
	}
	carrier, ok := id.(identity.ClaimsCarrier)
	if !ok {
		return "", false, nil
	}
	return FindFirstValue(carrier, claimType)
}
