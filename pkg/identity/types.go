package identity

// Well-known claim types.
// These follow the WS-* URIs used by claims-based identity frameworks, so
// identities built from those frameworks' tokens can be read unchanged.
const (
	ClaimTypeNameIdentifier       = "http://schemas.xmlsoap.org/ws/2005/05/identity/claims/nameidentifier"
	ClaimTypeName                 = "http://schemas.xmlsoap.org/ws/2005/05/identity/claims/name"
	ClaimTypeEmail                = "http://schemas.xmlsoap.org/ws/2005/05/identity/claims/emailaddress"
	ClaimTypeGivenName            = "http://schemas.xmlsoap.org/ws/2005/05/identity/claims/givenname"
	ClaimTypeSurname              = "http://schemas.xmlsoap.org/ws/2005/05/identity/claims/surname"
	ClaimTypeRole                 = "http://schemas.microsoft.com/ws/2008/06/identity/claims/role"
	ClaimTypeAuthenticationMethod = "http://schemas.microsoft.com/ws/2008/06/identity/claims/authenticationmethod"
	ClaimTypeSid                  = "http://schemas.microsoft.com/ws/2008/06/identity/claims/primarysid"

	// ClaimTypeSecurityStamp carries the stamp that changes whenever a user's credentials change.
	ClaimTypeSecurityStamp = "AspNet.Identity.SecurityStamp"
)

// Claim value types (XML Schema datatypes, plus JSON for structured values).
const (
	ValueTypeString  = "http://www.w3.org/2001/XMLSchema#string"
	ValueTypeInteger = "http://www.w3.org/2001/XMLSchema#integer"
	ValueTypeDouble  = "http://www.w3.org/2001/XMLSchema#double"
	ValueTypeBoolean = "http://www.w3.org/2001/XMLSchema#boolean"
	ValueTypeJSON    = "JSON"
)
