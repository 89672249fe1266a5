package identity

import "slices"

// ClaimsIdentity is an identity backed by an ordered, immutable claim set.
// Its name and roles are read from claims of configurable types.
type ClaimsIdentity struct {
	authType      string
	nameClaimType string
	roleClaimType string
	claims        Claims
}

var _ ClaimsCarrier = (*ClaimsIdentity)(nil)

// NewClaimsIdentity creates a claims identity using ClaimTypeName and
// ClaimTypeRole as its name and role claim types.
// An empty authType yields an unauthenticated identity.
func NewClaimsIdentity(authType string, claims ...Claim) *ClaimsIdentity {
	return NewClaimsIdentityWithTypes(authType, "", "", claims...)
}

// NewClaimsIdentityWithTypes is like NewClaimsIdentity but overrides which
// claim types supply Name and IsInRole. Empty types fall back to the defaults.
func NewClaimsIdentityWithTypes(authType, nameClaimType, roleClaimType string, claims ...Claim) *ClaimsIdentity {
	if nameClaimType == "" {
		nameClaimType = ClaimTypeName
	}
	if roleClaimType == "" {
		roleClaimType = ClaimTypeRole
	}
	return &ClaimsIdentity{
		authType:      authType,
		nameClaimType: nameClaimType,
		roleClaimType: roleClaimType,
		claims:        slices.Clone(claims),
	}
}

// Name returns the value of the first name claim, or "" if there is none.
func (c *ClaimsIdentity) Name() string {
	if c == nil {
		return ""
	}
	cl, _ := c.claims.FindFirst(c.nameClaimType)
	return cl.Value
}

func (c *ClaimsIdentity) AuthenticationType() string {
	if c == nil {
		return ""
	}
	return c.authType
}

func (c *ClaimsIdentity) IsAuthenticated() bool {
	return c.AuthenticationType() != ""
}

// Claims returns a copy of the claim set.
func (c *ClaimsIdentity) Claims() Claims {
	if c == nil {
		return nil
	}
	return slices.Clone(c.claims)
}

func (c *ClaimsIdentity) NameClaimType() string {
	if c == nil {
		return ClaimTypeName
	}
	return c.nameClaimType
}

func (c *ClaimsIdentity) RoleClaimType() string {
	if c == nil {
		return ClaimTypeRole
	}
	return c.roleClaimType
}

// FindFirst returns the first claim of the given type.
func (c *ClaimsIdentity) FindFirst(claimType string) (Claim, bool) {
	if c == nil {
		return Claim{}, false
	}
	return c.claims.FindFirst(claimType)
}

// FindAll returns every claim of the given type.
func (c *ClaimsIdentity) FindAll(claimType string) Claims {
	if c == nil {
		return nil
	}
	return c.claims.FindAll(claimType)
}

func (c *ClaimsIdentity) HasClaim(claimType, value string) bool {
	if c == nil {
		return false
	}
	return c.claims.HasClaim(claimType, value)
}

// IsInRole reports whether a role claim with exactly this value exists.
func (c *ClaimsIdentity) IsInRole(role string) bool {
	if c == nil {
		return false
	}
	return c.claims.HasClaim(c.roleClaimType, role)
}
