package repositories

import (
	"context"
	"errors"
	"fmt"

	"cryptofolio/internal/models"
	"cryptofolio/internal/secrets"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var (
	ErrCredentialNotFound = errors.New("credential not found")
)

// CredentialRepository persists credentials with their payload encrypted at rest.
type CredentialRepository struct {
	db     *gorm.DB
	cipher secrets.CipherInterface
}

func NewCredentialRepository(db *gorm.DB, cipher secrets.CipherInterface) CredentialRepositoryInterface {
	return &CredentialRepository{
		db:     db,
		cipher: cipher,
	}
}

// Get returns the decrypted credential for (userID, provider).
func (r *CredentialRepository) Get(ctx context.Context, userID uuid.UUID, provider models.Provider) (*models.Credential, error) {
	var credential models.Credential

	err := r.db.WithContext(ctx).
		Where("user_id = ? AND provider = ?", userID, provider).
		First(&credential).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCredentialNotFound
		}
		return nil, fmt.Errorf("failed to get credential: %w", err)
	}

	if err := r.open(&credential); err != nil {
		return nil, err
	}

	return &credential, nil
}

// Exists reports whether a credential is stored for (userID, provider)
// without loading its payload.
func (r *CredentialRepository) Exists(ctx context.Context, userID uuid.UUID, provider models.Provider) (bool, error) {
	var count int64

	err := r.db.WithContext(ctx).
		Model(&models.Credential{}).
		Where("user_id = ? AND provider = ?", userID, provider).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("failed to check credential: %w", err)
	}

	return count > 0, nil
}

// Upsert inserts the credential or replaces the payload of the existing one
// for the same (user, provider). On return ID and CreatedAt reflect the stored row.
func (r *CredentialRepository) Upsert(ctx context.Context, credential *models.Credential) error {
	if credential == nil {
		return errors.New("credential cannot be nil")
	}

	if err := credential.Validate(); err != nil {
		return err
	}

	if err := r.seal(credential); err != nil {
		return err
	}

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}, {Name: "provider"}},
			DoUpdates: clause.AssignmentColumns([]string{"payload", "updated_at"}),
		}).Create(credential).Error
		if err != nil {
			return fmt.Errorf("failed to upsert credential: %w", err)
		}

		var stored models.Credential
		err = tx.Select("id", "created_at", "updated_at").
			Where("user_id = ? AND provider = ?", credential.UserID, credential.Provider).
			First(&stored).Error
		if err != nil {
			return fmt.Errorf("failed to reload credential: %w", err)
		}

		credential.ID = stored.ID
		credential.CreatedAt = stored.CreatedAt
		credential.UpdatedAt = stored.UpdatedAt
		return nil
	})
}

// Delete removes the credential for (userID, provider).
func (r *CredentialRepository) Delete(ctx context.Context, userID uuid.UUID, provider models.Provider) error {
	result := r.db.WithContext(ctx).
		Where("user_id = ? AND provider = ?", userID, provider).
		Delete(&models.Credential{})

	if result.Error != nil {
		return fmt.Errorf("failed to delete credential: %w", result.Error)
	}

	if result.RowsAffected == 0 {
		return ErrCredentialNotFound
	}

	return nil
}

// ListByUser returns every decrypted credential of a user ordered by provider.
func (r *CredentialRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]*models.Credential, error) {
	var credentials []*models.Credential

	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("provider ASC").
		Find(&credentials).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list credentials for user: %w", err)
	}

	for _, credential := range credentials {
		if err := r.open(credential); err != nil {
			return nil, err
		}
	}

	return credentials, nil
}

// ListAll returns the (user, provider) keys of every stored credential.
// Payloads are neither loaded nor decrypted.
func (r *CredentialRepository) ListAll(ctx context.Context) ([]*models.Credential, error) {
	var credentials []*models.Credential

	err := r.db.WithContext(ctx).
		Select("id", "user_id", "provider", "created_at", "updated_at").
		Order("user_id ASC, provider ASC").
		Find(&credentials).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list credentials: %w", err)
	}

	return credentials, nil
}

func (r *CredentialRepository) DeleteAllForUser(ctx context.Context, userID uuid.UUID) (int64, error) {
	result := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Delete(&models.Credential{})

	if result.Error != nil {
		return 0, fmt.Errorf("failed to delete credentials for user: %w", result.Error)
	}

	return result.RowsAffected, nil
}

func (r *CredentialRepository) seal(credential *models.Credential) error {
	plaintext, err := models.EncodeCredentialPayload(credential.Payload)
	if err != nil {
		return fmt.Errorf("failed to encode credential payload: %w", err)
	}

	sealed, err := r.cipher.Encrypt(plaintext)
	if err != nil {
		return fmt.Errorf("failed to encrypt credential payload: %w", err)
	}

	credential.EncryptedPayload = sealed
	return nil
}

func (r *CredentialRepository) open(credential *models.Credential) error {
	plaintext, err := r.cipher.Decrypt(credential.EncryptedPayload)
	if err != nil {
		return fmt.Errorf("failed to decrypt %s credential: %w", credential.Provider, err)
	}

	payload, err := models.DecodeCredentialPayload(credential.Provider, plaintext)
	if err != nil {
		return err
	}

	credential.Payload = payload
	return nil
}
