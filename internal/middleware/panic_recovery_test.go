package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"cryptofolio/internal/errors"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/suite"
)

type PanicRecoveryTestSuite struct {
	suite.Suite
	echo *echo.Echo
}

func (s *PanicRecoveryTestSuite) SetupTest() {
	s.echo = echo.New()
}

func TestPanicRecoveryTestSuite(t *testing.T) {
	suite.Run(t, new(PanicRecoveryTestSuite))
}

func (s *PanicRecoveryTestSuite) serve(traceID string, handler echo.HandlerFunc) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/sync", nil)
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(req, rec)
	if traceID != "" {
		c.Set(TraceIDContextKey, traceID)
	}

	s.NotPanics(func() {
		_ = PanicRecovery()(handler)(c)
	})
	return rec
}

func (s *PanicRecoveryTestSuite) decode(rec *httptest.ResponseRecorder) errors.ErrorResponse {
	var body errors.ErrorResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func (s *PanicRecoveryTestSuite) TestPanicRecovery_AnswersSystemError() {
	rec := s.serve("sync-trace", func(c echo.Context) error {
		var adapters map[string]func()
		adapters["gemini"]()
		return nil
	})

	s.Equal(http.StatusInternalServerError, rec.Code)
	body := s.decode(rec)
	s.Equal("SYSTEM_001", body.Error.Code)
	s.Equal("sync-trace", body.Error.TraceID)
}

func (s *PanicRecoveryTestSuite) TestPanicRecovery_UnknownTraceID() {
	rec := s.serve("", func(c echo.Context) error {
		panic("boom")
	})

	s.Equal("unknown", s.decode(rec).Error.TraceID)
}

func (s *PanicRecoveryTestSuite) TestPanicRecovery_PassThrough() {
	rec := s.serve("sync-trace", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "synced"})
	})

	s.Equal(http.StatusOK, rec.Code)
	s.Contains(rec.Body.String(), "synced")
}

func (s *PanicRecoveryTestSuite) TestPanicRecovery_CommittedResponseUntouched() {
	rec := s.serve("sync-trace", func(c echo.Context) error {
		_ = c.String(http.StatusAccepted, "partial")
		panic("after write")
	})

	s.Equal(http.StatusAccepted, rec.Code)
	s.Equal("partial", rec.Body.String())
}

func (s *PanicRecoveryTestSuite) TestPanicRecovery_PanicValues() {
	values := map[string]interface{}{
		"error":  errors.ErrorCode("SYSTEM_005"),
		"int":    42,
		"struct": struct{ provider string }{"ledger"},
	}

	for name, value := range values {
		s.Run(name, func() {
			rec := s.serve("sync-trace", func(c echo.Context) error {
				panic(value)
			})
			s.Equal(http.StatusInternalServerError, rec.Code)
		})
	}
}

func (s *PanicRecoveryTestSuite) TestPanicRecovery_AbortHandlerRepanics() {
	c := s.echo.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())

	handler := PanicRecovery()(func(c echo.Context) error {
		panic(http.ErrAbortHandler)
	})

	s.Panics(func() {
		_ = handler(c)
	})
}
