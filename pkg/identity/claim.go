package identity

// DefaultIssuer is the issuer assigned to claims created without one.
const DefaultIssuer = "LOCAL AUTHORITY"

// Claim is a single statement about a principal.
// It is a value type; the With* methods return modified copies.
type Claim struct {
	Type           string
	Value          string
	ValueType      string
	Issuer         string
	OriginalIssuer string
}

// NewClaim creates a string-typed claim issued by DefaultIssuer.
func NewClaim(claimType, value string) Claim {
	return Claim{
		Type:           claimType,
		Value:          value,
		ValueType:      ValueTypeString,
		Issuer:         DefaultIssuer,
		OriginalIssuer: DefaultIssuer,
	}
}

// WithIssuer sets both Issuer and OriginalIssuer. An empty issuer keeps the current one.
func (c Claim) WithIssuer(issuer string) Claim {
	if issuer == "" {
		return c
	}
	c.Issuer = issuer
	c.OriginalIssuer = issuer
	return c
}

// WithValueType sets ValueType. An empty value type keeps the current one.
func (c Claim) WithValueType(valueType string) Claim {
	if valueType == "" {
		return c
	}
	c.ValueType = valueType
	return c
}

// Claims is an ordered claim set. The zero value is an empty set.
type Claims []Claim

// FindFirst returns the first claim whose type equals claimType exactly.
func (cs Claims) FindFirst(claimType string) (Claim, bool) {
	for _, c := range cs { // Safe even if cs is nil
		if c.Type == claimType {
			return c, true
		}
	}
	return Claim{}, false
}

// FindAll returns every claim of the given type, in order.
func (cs Claims) FindAll(claimType string) Claims {
	var out Claims
	for _, c := range cs {
		if c.Type == claimType {
			out = append(out, c)
		}
	}
	return out
}

// HasClaim reports whether a claim with exactly this type and value exists.
func (cs Claims) HasClaim(claimType, value string) bool {
	for _, c := range cs {
		if c.Type == claimType && c.Value == value {
			return true
		}
	}
	return false
}

// Values returns the values of every claim of the given type, in order.
func (cs Claims) Values(claimType string) []string {
	var out []string
	for _, c := range cs {
		if c.Type == claimType {
			out = append(out, c.Value)
		}
	}
	return out
}
