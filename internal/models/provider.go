package models

import (
	"fmt"
	"strings"
)

// Provider identifies one external account source.
type Provider string

const (
	ProviderCoinbase Provider = "coinbase"
	ProviderGemini   Provider = "gemini"
	ProviderLedger   Provider = "ledger"
)

// AllProviders lists every supported provider in display order.
func AllProviders() []Provider {
	return []Provider{ProviderCoinbase, ProviderGemini, ProviderLedger}
}

func (p Provider) IsValid() bool {
	switch p {
	case ProviderCoinbase, ProviderGemini, ProviderLedger:
		return true
	}
	return false
}

// DisplayName returns the provider name with its first letter upper-cased.
func (p Provider) DisplayName() string {
	s := string(p)
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

func (p Provider) String() string {
	return string(p)
}

// ParseProvider converts a path or form value into a Provider.
func ParseProvider(value string) (Provider, error) {
	p := Provider(strings.ToLower(strings.TrimSpace(value)))
	if !p.IsValid() {
		return "", fmt.Errorf("%w: %q", ErrUnsupportedProvider, value)
	}
	return p, nil
}
