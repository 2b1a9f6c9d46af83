package repositories

import (
	"context"

	"cryptofolio/internal/models"

	"github.com/google/uuid"
)

// CredentialRepositoryInterface stores one encrypted credential per (user, provider).
// Every read and write is scoped to an explicit user ID except ListAll, which
// serves the background scheduler and never loads payloads.
type CredentialRepositoryInterface interface {
	Get(ctx context.Context, userID uuid.UUID, provider models.Provider) (*models.Credential, error)
	Exists(ctx context.Context, userID uuid.UUID, provider models.Provider) (bool, error)
	Upsert(ctx context.Context, credential *models.Credential) error
	Delete(ctx context.Context, userID uuid.UUID, provider models.Provider) error
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*models.Credential, error)
	ListAll(ctx context.Context) ([]*models.Credential, error)
	DeleteAllForUser(ctx context.Context, userID uuid.UUID) (int64, error)
}

// BalanceRepositoryInterface stores the latest fetched amount per (user, provider, currency).
type BalanceRepositoryInterface interface {
	UpsertBatch(ctx context.Context, balances []*models.Balance) error
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*models.Balance, error)
	ListByUserAndProviders(ctx context.Context, userID uuid.UUID, providers []models.Provider) ([]*models.Balance, error)
	DeleteByUserAndProvider(ctx context.Context, userID uuid.UUID, provider models.Provider) (int64, error)
	DeleteAllForUser(ctx context.Context, userID uuid.UUID) (int64, error)
}
