package models

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CredentialPayload is the provider-specific secret material of a Credential.
// Exactly one concrete payload type exists per provider.
type CredentialPayload interface {
	Provider() Provider
}

// OAuthTokenPayload holds tokens obtained through the coinbase OAuth flow.
type OAuthTokenPayload struct {
	AccessToken  string     `json:"access_token"`
	RefreshToken string     `json:"refresh_token"`
	ExpiresAt    *time.Time `json:"expires_at"`
}

func (p *OAuthTokenPayload) Provider() Provider { return ProviderCoinbase }

// IsExpired reports whether the access token expires within buffer of now.
// A token without a recorded expiry is treated as live.
func (p *OAuthTokenPayload) IsExpired(now time.Time, buffer time.Duration) bool {
	if p.ExpiresAt == nil {
		return false
	}
	return p.ExpiresAt.Add(-buffer).Before(now)
}

func (p *OAuthTokenPayload) HasRefreshToken() bool {
	return p.RefreshToken != ""
}

// APIKeyPayload holds a gemini API key pair.
type APIKeyPayload struct {
	APIKey    string `json:"api_key"`
	APISecret string `json:"api_secret"`
}

func (p *APIKeyPayload) Provider() Provider { return ProviderGemini }

// FileImportPayload records an uploaded ledger export. Content keeps the raw
// CSV so later syncs can recompute totals without a new upload.
type FileImportPayload struct {
	SourceFilename string    `json:"source_filename"`
	ImportedAt     time.Time `json:"imported_at"`
	Content        string    `json:"content"`
}

func (p *FileImportPayload) Provider() Provider { return ProviderLedger }

// Credential is the persisted connection of one user to one provider.
// Payload is stored encrypted in the payload column.
type Credential struct {
	ID               uuid.UUID         `gorm:"type:uuid;primary_key" json:"id"`
	UserID           uuid.UUID         `gorm:"type:uuid;not null;uniqueIndex:idx_credentials_user_provider" json:"user_id"`
	Provider         Provider          `gorm:"type:varchar(32);not null;uniqueIndex:idx_credentials_user_provider" json:"provider"`
	EncryptedPayload string            `gorm:"column:payload;type:text;not null" json:"-"`
	Payload          CredentialPayload `gorm:"-" json:"-"`
	CreatedAt        time.Time         `gorm:"not null" json:"created_at"`
	UpdatedAt        time.Time         `gorm:"not null" json:"updated_at"`
}

func (c *Credential) TableName() string {
	return "credentials"
}

func (c *Credential) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}

// Validate checks that the payload variant matches the provider tag.
func (c *Credential) Validate() error {
	if c.UserID == uuid.Nil {
		return fmt.Errorf("user ID is required")
	}
	if !c.Provider.IsValid() {
		return fmt.Errorf("%w: %q", ErrUnsupportedProvider, c.Provider)
	}
	if c.Payload == nil || c.Payload.Provider() != c.Provider {
		return ErrPayloadMismatch
	}
	return nil
}

// OAuthToken returns the payload as OAuth tokens, or ErrPayloadMismatch.
func (c *Credential) OAuthToken() (*OAuthTokenPayload, error) {
	p, ok := c.Payload.(*OAuthTokenPayload)
	if !ok {
		return nil, ErrPayloadMismatch
	}
	return p, nil
}

// EncodeCredentialPayload serializes a payload to its JSON storage form.
func EncodeCredentialPayload(payload CredentialPayload) ([]byte, error) {
	if payload == nil {
		return nil, ErrPayloadMismatch
	}
	return json.Marshal(payload)
}

// DecodeCredentialPayload selects the payload variant by provider tag.
func DecodeCredentialPayload(provider Provider, data []byte) (CredentialPayload, error) {
	var payload CredentialPayload

	switch provider {
	case ProviderCoinbase:
		payload = &OAuthTokenPayload{}
	case ProviderGemini:
		payload = &APIKeyPayload{}
	case ProviderLedger:
		payload = &FileImportPayload{}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedProvider, provider)
	}

	if err := json.Unmarshal(data, payload); err != nil {
		return nil, fmt.Errorf("failed to decode %s credential payload: %w", provider, err)
	}

	return payload, nil
}
