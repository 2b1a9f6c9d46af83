package repositories

import (
	"context"
	"fmt"

	"cryptofolio/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const balanceBatchSize = 500

type BalanceRepository struct {
	db *gorm.DB
}

func NewBalanceRepository(db *gorm.DB) BalanceRepositoryInterface {
	return &BalanceRepository{
		db: db,
	}
}

// UpsertBatch writes all rows in one transaction keyed by
// (user_id, provider, currency). Existing rows get the new amount; rows for
// currencies missing from the batch are left as they are.
func (r *BalanceRepository) UpsertBatch(ctx context.Context, balances []*models.Balance) error {
	if len(balances) == 0 {
		return nil
	}

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}, {Name: "provider"}, {Name: "currency"}},
			DoUpdates: clause.AssignmentColumns([]string{"amount", "updated_at"}),
		}).CreateInBatches(balances, balanceBatchSize).Error
		if err != nil {
			return fmt.Errorf("failed to upsert balances: %w", err)
		}
		return nil
	})
}

func (r *BalanceRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]*models.Balance, error) {
	var balances []*models.Balance

	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("provider ASC, currency ASC").
		Find(&balances).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list balances for user: %w", err)
	}

	return balances, nil
}

// ListByUserAndProviders returns only rows belonging to the given providers.
// An empty provider list yields no rows.
func (r *BalanceRepository) ListByUserAndProviders(ctx context.Context, userID uuid.UUID, providers []models.Provider) ([]*models.Balance, error) {
	balances := []*models.Balance{}
	if len(providers) == 0 {
		return balances, nil
	}

	err := r.db.WithContext(ctx).
		Where("user_id = ? AND provider IN ?", userID, providers).
		Order("provider ASC, currency ASC").
		Find(&balances).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list balances for providers: %w", err)
	}

	return balances, nil
}

func (r *BalanceRepository) DeleteByUserAndProvider(ctx context.Context, userID uuid.UUID, provider models.Provider) (int64, error) {
	result := r.db.WithContext(ctx).
		Where("user_id = ? AND provider = ?", userID, provider).
		Delete(&models.Balance{})

	if result.Error != nil {
		return 0, fmt.Errorf("failed to delete balances for provider: %w", result.Error)
	}

	return result.RowsAffected, nil
}

func (r *BalanceRepository) DeleteAllForUser(ctx context.Context, userID uuid.UUID) (int64, error) {
	result := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Delete(&models.Balance{})

	if result.Error != nil {
		return 0, fmt.Errorf("failed to delete balances for user: %w", result.Error)
	}

	return result.RowsAffected, nil
}
