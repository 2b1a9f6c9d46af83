package dto

import (
	"time"

	"cryptofolio/internal/models"
)

// Connection Request DTOs

// ConnectGeminiRequest represents the request payload for linking a gemini API key
type ConnectGeminiRequest struct {
	APIKey    string `json:"api_key" validate:"required,min=8,max=128,api_credential"`
	APISecret string `json:"api_secret" validate:"required,min=8,max=256,api_credential"`
}

// Connection Response DTOs

// AuthorizeURLResponse carries the coinbase consent URL and the state echoed back on callback
type AuthorizeURLResponse struct {
	URL   string `json:"url"`
	State string `json:"state"`
}

// ConnectionResponse is returned after a provider has been linked or unlinked
type ConnectionResponse struct {
	Provider models.Provider `json:"provider"`
	Message  string          `json:"message"`
}

// ProviderConnection is one entry of the connection status list
type ProviderConnection struct {
	Provider       models.Provider `json:"provider"`
	Connected      bool            `json:"connected"`
	LinkedAt       *time.Time      `json:"linked_at,omitempty"`
	SourceFilename string          `json:"source_filename,omitempty"`
	ImportedAt     *time.Time      `json:"imported_at,omitempty"`
}

// ConnectionStatusResponse lists every supported provider in display order
type ConnectionStatusResponse struct {
	Connections []ProviderConnection `json:"connections"`
}

// NewConnectionStatusResponse flattens the status map into display order.
func NewConnectionStatusResponse(status models.ConnectionStatus) ConnectionStatusResponse {
	connections := make([]ProviderConnection, 0, len(status))
	for _, provider := range models.AllProviders() {
		entry := status[provider]
		connections = append(connections, ProviderConnection{
			Provider:       provider,
			Connected:      entry.Connected,
			LinkedAt:       entry.LinkedAt,
			SourceFilename: entry.SourceFilename,
			ImportedAt:     entry.ImportedAt,
		})
	}
	return ConnectionStatusResponse{Connections: connections}
}
