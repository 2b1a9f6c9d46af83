package models

import (
	"errors"
	"fmt"
)

// Failure kinds surfaced by the connection and sync core. Callers match them
// with errors.Is; wrapping adds provider or storage context.
var (
	ErrAuthRequired        = errors.New("authentication required")
	ErrNotConnected        = errors.New("provider not connected")
	ErrInvalidCredentials  = errors.New("invalid provider credentials")
	ErrReconnectRequired   = errors.New("token expired and no refresh token available")
	ErrRefreshFailed       = errors.New("failed to refresh token")
	ErrRefreshDenied       = errors.New("refresh token rejected by provider")
	ErrRemoteUnavailable   = errors.New("provider request failed")
	ErrParse               = errors.New("malformed import file")
	ErrPersistence         = errors.New("failed to persist data")
	ErrNotFound            = errors.New("connection not found")
	ErrUnsupportedProvider = errors.New("unsupported provider")
	ErrPayloadMismatch     = errors.New("credential payload does not match provider")
	ErrNoBalances          = errors.New("no balances found")
)

// ParseError describes why an import file was rejected. It matches ErrParse.
type ParseError struct {
	Line   int
	Reason string
}

func (e *ParseError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("%s: line %d: %s", ErrParse.Error(), e.Line, e.Reason)
	}
	return fmt.Sprintf("%s: %s", ErrParse.Error(), e.Reason)
}

func (e *ParseError) Is(target error) bool {
	return target == ErrParse
}

// ProviderError carries the upstream status of a failed provider call.
type ProviderError struct {
	Provider   Provider
	StatusCode int
	Message    string
	Kind       error
	Original   error
}

func (e *ProviderError) Error() string {
	msg := fmt.Sprintf("%s: %s", e.Provider, e.Kind.Error())
	if e.StatusCode != 0 {
		msg += fmt.Sprintf(" (status %d)", e.StatusCode)
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Original != nil {
		msg += ": " + e.Original.Error()
	}
	return msg
}

func (e *ProviderError) Is(target error) bool {
	return target == e.Kind
}

func (e *ProviderError) Unwrap() error {
	return e.Original
}
