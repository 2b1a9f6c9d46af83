package services

import (
	"errors"
	"fmt"
	"strings"

	"cryptofolio/internal/config"
	"cryptofolio/internal/models"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var (
	ErrInvalidToken      = errors.New("invalid token")
	ErrExpiredToken      = errors.New("token is expired")
	ErrInvalidSubject    = errors.New("token subject is not a user id")
	ErrEmptyToken        = errors.New("empty token")
	ErrInvalidAuthHeader = errors.New("invalid authorization header format")
)

// IdentityService verifies access tokens minted by the external identity
// provider. It never issues tokens.
type IdentityService struct {
	config.AuthConfig
}

func NewIdentityService(authConfig *config.AuthConfig) IdentityServiceInterface {
	return &IdentityService{
		AuthConfig: *authConfig,
	}
}

// ValidateAccessToken checks signature, expiry and, when configured, issuer
// and audience.
func (is *IdentityService) ValidateAccessToken(tokenString string) (*models.IdentityClaims, error) {
	if tokenString == "" {
		return nil, ErrEmptyToken
	}

	options := []jwt.ParserOption{
		jwt.WithValidMethods(is.validMethods()),
		jwt.WithExpirationRequired(),
	}
	if is.Issuer != "" {
		options = append(options, jwt.WithIssuer(is.Issuer))
	}
	if is.Audience != "" {
		options = append(options, jwt.WithAudience(is.Audience))
	}

	token, err := jwt.ParseWithClaims(tokenString, &models.IdentityClaims{}, is.keyFunc, options...)
	if err != nil {
		return nil, is.mapTokenError(err)
	}

	claims, ok := token.Claims.(*models.IdentityClaims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}

	return claims, nil
}

// UserIDFromClaims parses the subject claim as the user's UUID.
func (is *IdentityService) UserIDFromClaims(claims *models.IdentityClaims) (uuid.UUID, error) {
	if claims == nil {
		return uuid.Nil, ErrInvalidToken
	}

	userID, err := uuid.Parse(claims.Subject)
	if err != nil || userID == uuid.Nil {
		return uuid.Nil, ErrInvalidSubject
	}

	return userID, nil
}

// ExtractTokenFromHeader extracts the JWT token from the Authorization header
func (is *IdentityService) ExtractTokenFromHeader(authHeader string) (string, error) {
	if authHeader == "" {
		return "", ErrInvalidAuthHeader
	}

	const bearerPrefix = "bearer "
	if !strings.HasPrefix(strings.ToLower(authHeader), bearerPrefix) {
		return "", ErrInvalidAuthHeader
	}

	token := strings.TrimSpace(authHeader[len(bearerPrefix):])
	if token == "" {
		return "", ErrInvalidAuthHeader
	}

	return token, nil
}

// validMethods prefers RS256 when a public key is configured; otherwise the
// shared secret is used with HS256.
func (is *IdentityService) validMethods() []string {
	if is.PublicKey != nil {
		return []string{jwt.SigningMethodRS256.Alg()}
	}
	return []string{jwt.SigningMethodHS256.Alg()}
}

func (is *IdentityService) keyFunc(token *jwt.Token) (interface{}, error) {
	switch token.Method.(type) {
	case *jwt.SigningMethodRSA:
		if is.PublicKey == nil {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return is.PublicKey, nil
	case *jwt.SigningMethodHMAC:
		if is.JWTSecret == "" {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(is.JWTSecret), nil
	default:
		return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
	}
}

func (is *IdentityService) mapTokenError(err error) error {
	if errors.Is(err, jwt.ErrTokenExpired) {
		return ErrExpiredToken
	}
	return fmt.Errorf("%w: %v", ErrInvalidToken, err)
}
