package models

import "github.com/golang-jwt/jwt/v5"

// IdentityClaims are the claims of an access token issued by the external
// identity provider. The subject is the user's UUID.
type IdentityClaims struct {
	jwt.RegisteredClaims
	Email string `json:"email,omitempty"`
	Role  string `json:"role,omitempty"`
}
