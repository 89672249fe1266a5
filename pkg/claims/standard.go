package claims

import "github.com/alechenninger/identity/pkg/identity"

// Standard claims for user identities.
// These use the well-known claim types from package identity.
var (
	// NameIdentifier is the unique user identifier
	NameIdentifier = Of(identity.ClaimTypeNameIdentifier, String)

	// Name is the human-readable user name claim
	Name = Of(identity.ClaimTypeName, String)

	// Email is the email address
	Email = Of(identity.ClaimTypeEmail, String)

	// GivenName is the user's first name
	GivenName = Of(identity.ClaimTypeGivenName, String)

	// Surname is the user's family name
	Surname = Of(identity.ClaimTypeSurname, String)

	// SecurityStamp changes whenever the user's credentials change
	SecurityStamp = Of(identity.ClaimTypeSecurityStamp, String)
)
