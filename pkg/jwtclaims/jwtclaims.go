// Package jwtclaims builds claims identities from already-parsed JWT claim sets.
//
// Nothing here verifies signatures or validates exp/nbf/aud; callers hand in
// tokens they have already accepted.
package jwtclaims

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"maps"
	"math"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/go-logr/logr"
	jwt "github.com/golang-jwt/jwt/v5"
	jwxjwt "github.com/lestrrat-go/jwx/v2/jwt"

	"github.com/alechenninger/identity/pkg/identity"
)

// DefaultAuthenticationType is used when Options.AuthenticationType is empty.
const DefaultAuthenticationType = "jwt"

// Options controls how a claim set is turned into an identity.
// The zero value is ready to use.
type Options struct {
	// AuthenticationType of the resulting identity. Defaults to DefaultAuthenticationType.
	AuthenticationType string

	// NameClaim and RoleClaim pick the claim types backing Name and IsInRole.
	// Short JWT names are mapped like claim keys unless KeepShortNames is set.
	NameClaim string
	RoleClaim string

	// KeepShortNames disables the inbound claim type map.
	KeepShortNames bool

	// Logger receives V(1) messages about claims that were skipped.
	Logger logr.Logger
}

// inboundClaimTypes maps registered and OIDC claim names onto the
// well-known claim types read by package claims.
var inboundClaimTypes = map[string]string{
	"sub":         identity.ClaimTypeNameIdentifier,
	"name":        identity.ClaimTypeName,
	"unique_name": identity.ClaimTypeName,
	"email":       identity.ClaimTypeEmail,
	"role":        identity.ClaimTypeRole,
	"roles":       identity.ClaimTypeRole,
	"given_name":  identity.ClaimTypeGivenName,
	"family_name": identity.ClaimTypeSurname,
	"amr":         identity.ClaimTypeAuthenticationMethod,
}

func (o Options) claimType(key string) string {
	if o.KeepShortNames {
		return key
	}
	if t, ok := inboundClaimTypes[key]; ok {
		return t
	}
	return key
}

// FromMapClaims converts mc into a claims identity.
// Keys are processed in sorted order so the resulting claim order is stable.
func FromMapClaims(mc jwt.MapClaims, opts Options) *identity.ClaimsIdentity {
	issuer := identity.DefaultIssuer
	if iss, ok := mc["iss"].(string); ok && iss != "" {
		issuer = iss
	}

	var out identity.Claims
	for _, key := range slices.Sorted(maps.Keys(mc)) {
		out = appendClaims(out, opts, opts.claimType(key), issuer, mc[key])
	}

	authType := opts.AuthenticationType
	if authType == "" {
		authType = DefaultAuthenticationType
	}
	var nameType, roleType string
	if opts.NameClaim != "" {
		nameType = opts.claimType(opts.NameClaim)
	}
	if opts.RoleClaim != "" {
		roleType = opts.claimType(opts.RoleClaim)
	}
	return identity.NewClaimsIdentityWithTypes(authType, nameType, roleType, out...)
}

// FromClaims converts any golang-jwt claim set. MapClaims are used directly;
// other claim structs (including ones embedding jwt.RegisteredClaims) go
// through their JSON form.
func FromClaims(c jwt.Claims, opts Options) (*identity.ClaimsIdentity, error) {
	switch v := c.(type) {
	case nil:
		return nil, &identity.ArgumentError{Param: "claims"}
	case jwt.MapClaims:
		return FromMapClaims(v, opts), nil
	case *jwt.MapClaims:
		if v == nil {
			return nil, &identity.ArgumentError{Param: "claims"}
		}
		return FromMapClaims(*v, opts), nil
	}

	raw, err := json.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("jwtclaims: encoding claims: %w", err)
	}
	mc := jwt.MapClaims{}
	if err := decodeJSON(raw, &mc); err != nil {
		return nil, fmt.Errorf("jwtclaims: decoding claims: %w", err)
	}
	return FromMapClaims(mc, opts), nil
}

// FromToken converts the claims of a token parsed with golang-jwt.
func FromToken(tok *jwt.Token, opts Options) (*identity.ClaimsIdentity, error) {
	if tok == nil {
		return nil, &identity.ArgumentError{Param: "token"}
	}
	return FromClaims(tok.Claims, opts)
}

// FromJWX converts the claims of a token parsed with lestrrat-go/jwx.
func FromJWX(ctx context.Context, tok jwxjwt.Token, opts Options) (*identity.ClaimsIdentity, error) {
	if tok == nil {
		return nil, &identity.ArgumentError{Param: "token"}
	}
	m, err := tok.AsMap(ctx)
	if err != nil {
		return nil, fmt.Errorf("jwtclaims: reading token claims: %w", err)
	}
	return FromMapClaims(jwt.MapClaims(m), opts), nil
}

// appendClaims appends one claim per scalar in v.
func appendClaims(out identity.Claims, opts Options, claimType, issuer string, v any) identity.Claims {
	add := func(value, valueType string) identity.Claims {
		return append(out, identity.NewClaim(claimType, value).WithValueType(valueType).WithIssuer(issuer))
	}

	switch x := v.(type) {
	case nil:
		opts.Logger.V(1).Info("skipping null claim", "claim", claimType)
		return out
	case string:
		return add(x, identity.ValueTypeString)
	case bool:
		return add(strconv.FormatBool(x), identity.ValueTypeBoolean)
	case float64:
		if x == math.Trunc(x) && math.Abs(x) < 1<<53 {
			return add(strconv.FormatInt(int64(x), 10), identity.ValueTypeInteger)
		}
		return add(strconv.FormatFloat(x, 'g', -1, 64), identity.ValueTypeDouble)
	case json.Number:
		if strings.ContainsAny(x.String(), ".eE") {
			return add(x.String(), identity.ValueTypeDouble)
		}
		return add(x.String(), identity.ValueTypeInteger)
	case int:
		return add(strconv.Itoa(x), identity.ValueTypeInteger)
	case int32:
		return add(strconv.FormatInt(int64(x), 10), identity.ValueTypeInteger)
	case int64:
		return add(strconv.FormatInt(x, 10), identity.ValueTypeInteger)
	case uint:
		return add(strconv.FormatUint(uint64(x), 10), identity.ValueTypeInteger)
	case uint32:
		return add(strconv.FormatUint(uint64(x), 10), identity.ValueTypeInteger)
	case uint64:
		return add(strconv.FormatUint(x, 10), identity.ValueTypeInteger)
	case time.Time:
		return add(strconv.FormatInt(x.Unix(), 10), identity.ValueTypeInteger)
	case *jwt.NumericDate:
		if x == nil {
			opts.Logger.V(1).Info("skipping null claim", "claim", claimType)
			return out
		}
		return add(strconv.FormatInt(x.Unix(), 10), identity.ValueTypeInteger)
	case jwt.ClaimStrings:
		for _, s := range x {
			out = add(s, identity.ValueTypeString)
		}
		return out
	case []string:
		for _, s := range x {
			out = add(s, identity.ValueTypeString)
		}
		return out
	case []any:
		for _, e := range x {
			out = appendClaims(out, opts, claimType, issuer, e)
		}
		return out
	}

	// Library-specific types (string lists, date wrappers, objects) are
	// normalised through their JSON form. Objects stay JSON.
	raw, err := json.Marshal(v)
	if err != nil {
		opts.Logger.V(1).Info("skipping claim that cannot be encoded", "claim", claimType, "error", err.Error())
		return out
	}
	var decoded any
	if err := decodeJSON(raw, &decoded); err != nil {
		opts.Logger.V(1).Info("skipping claim that cannot be decoded", "claim", claimType, "error", err.Error())
		return out
	}
	if _, isObject := decoded.(map[string]any); isObject {
		return add(string(raw), identity.ValueTypeJSON)
	}
	return appendClaims(out, opts, claimType, issuer, decoded)
}

// decodeJSON keeps numbers as json.Number so integers above 2^53 survive.
func decodeJSON(raw []byte, v any) error {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	return dec.Decode(v)
}
