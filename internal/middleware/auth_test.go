package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"cryptofolio/internal/config"
	"cryptofolio/internal/errors"
	"cryptofolio/internal/models"
	"cryptofolio/internal/services"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/suite"
)

const (
	testSecret   = "test-identity-secret-at-least-32-bytes"
	testIssuer   = "https://identity.example.com/auth/v1"
	testAudience = "authenticated"
)

func TestAuthMiddleware(t *testing.T) {
	suite.Run(t, new(AuthMiddlewareSuite))
}

type AuthMiddlewareSuite struct {
	suite.Suite
	identityService services.IdentityServiceInterface
	e               *echo.Echo
}

func (s *AuthMiddlewareSuite) SetupTest() {
	s.identityService = services.NewIdentityService(&config.AuthConfig{
		JWTSecret: testSecret,
		Issuer:    testIssuer,
		Audience:  testAudience,
	})
	s.e = echo.New()
}

func (s *AuthMiddlewareSuite) signToken(subject string, expiresAt time.Time) string {
	claims := models.IdentityClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			Issuer:    testIssuer,
			Audience:  jwt.ClaimStrings{testAudience},
			IssuedAt:  jwt.NewNumericDate(time.Now().Add(-time.Minute)),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
		Email: "holder@example.com",
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	s.Require().NoError(err)
	return token
}

func (s *AuthMiddlewareSuite) serve(authHeader string) (*httptest.ResponseRecorder, echo.Context, bool) {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/portfolio", nil)
	if authHeader != "" {
		req.Header.Set(echo.HeaderAuthorization, authHeader)
	}
	rec := httptest.NewRecorder()
	c := s.e.NewContext(req, rec)

	called := false
	handler := RequireAuth(s.identityService)(func(c echo.Context) error {
		called = true
		return c.String(http.StatusOK, "ok")
	})

	s.Require().NoError(handler(c))
	return rec, c, called
}

func (s *AuthMiddlewareSuite) errorCode(rec *httptest.ResponseRecorder) string {
	var resp errors.ErrorResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp.Error.Code
}

func (s *AuthMiddlewareSuite) TestRequireAuth_ValidToken() {
	userID := uuid.New()
	token := s.signToken(userID.String(), time.Now().Add(time.Hour))

	rec, c, called := s.serve("Bearer " + token)

	s.True(called)
	s.Equal(http.StatusOK, rec.Code)
	s.Equal(userID, c.Get("user_id"))
	s.Equal("holder@example.com", c.Get("user_email"))
}

func (s *AuthMiddlewareSuite) TestRequireAuth_MissingHeader() {
	rec, _, called := s.serve("")

	s.False(called)
	s.Equal(http.StatusUnauthorized, rec.Code)
	s.Equal(string(errors.AuthMissingToken), s.errorCode(rec))
}

func (s *AuthMiddlewareSuite) TestRequireAuth_MalformedHeader() {
	rec, _, called := s.serve("Token abc")

	s.False(called)
	s.Equal(http.StatusUnauthorized, rec.Code)
	s.Equal(string(errors.AuthInvalidTokenFormat), s.errorCode(rec))
}

func (s *AuthMiddlewareSuite) TestRequireAuth_ExpiredToken() {
	token := s.signToken(uuid.NewString(), time.Now().Add(-time.Minute))

	rec, _, called := s.serve("Bearer " + token)

	s.False(called)
	s.Equal(string(errors.AuthExpiredToken), s.errorCode(rec))
}

func (s *AuthMiddlewareSuite) TestRequireAuth_WrongSecret() {
	claims := jwt.RegisteredClaims{
		Subject:   uuid.NewString(),
		Issuer:    testIssuer,
		Audience:  jwt.ClaimStrings{testAudience},
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("another-secret-entirely-32-bytes!!"))
	s.Require().NoError(err)

	rec, _, called := s.serve("Bearer " + token)

	s.False(called)
	s.Equal(string(errors.AuthInvalidToken), s.errorCode(rec))
}

func (s *AuthMiddlewareSuite) TestRequireAuth_NonUUIDSubject() {
	token := s.signToken("auth0|12345", time.Now().Add(time.Hour))

	rec, _, called := s.serve("Bearer " + token)

	s.False(called)
	s.Equal(http.StatusUnauthorized, rec.Code)
	s.Equal(string(errors.AuthInvalidToken), s.errorCode(rec))
}
