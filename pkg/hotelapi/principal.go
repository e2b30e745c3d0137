package hotelapi

import (
	"github.com/golang-jwt/jwt/v5"
)

// Claim keys carried by the access token.
const (
	ClaimNameIdentifier = "http://schemas.xmlsoap.org/ws/2005/05/identity/claims/nameidentifier"
	ClaimGivenName      = "http://schemas.xmlsoap.org/ws/2005/05/identity/claims/givenname"
	ClaimSurname        = "http://schemas.xmlsoap.org/ws/2005/05/identity/claims/surname"
	ClaimName           = "http://schemas.xmlsoap.org/ws/2005/05/identity/claims/name"
	ClaimRole           = "http://schemas.microsoft.com/ws/2008/06/identity/claims/role"
	ClaimPersonalCode   = "PersonalCode"
)

// Principal is the authenticated user's identity as derived from the access
// token claims. It is a read-only projection: recomputed whenever the token
// pair changes, never mutated.
type Principal struct {
	ID           string `json:"id"`
	FirstName    string `json:"firstName"`
	LastName     string `json:"lastName"`
	Email        string `json:"email"`
	PersonalCode string `json:"personalCode"`
	Role         string `json:"role"`
}

// Anonymous reports whether the principal carries no identity.
func (p Principal) Anonymous() bool {
	return p.ID == ""
}

// DecodePrincipal extracts the principal from a raw access token. The token
// signature is not verified here: the client does not hold the signing
// secret, and the claims are used for display and routing only — the backend
// re-validates the token on every call. Any decode failure degrades to the
// anonymous principal.
func DecodePrincipal(token string) Principal {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return Principal{}
	}

	str := func(key string) string {
		v, _ := claims[key].(string)
		return v
	}
	return Principal{
		ID:           str(ClaimNameIdentifier),
		FirstName:    str(ClaimGivenName),
		LastName:     str(ClaimSurname),
		Email:        str(ClaimName),
		PersonalCode: str(ClaimPersonalCode),
		Role:         str(ClaimRole),
	}
}
