package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/finora/liability-service/internal/domain/model"
	pkgpostgres "github.com/finora/liability-service/pkg/postgres"
)

// SettlementRepo implements port.SettlementExecutor.
type SettlementRepo struct {
	pool *pgxpool.Pool
}

// NewSettlementRepo creates a new PostgreSQL-backed settlement executor.
func NewSettlementRepo(pool *pgxpool.Pool) *SettlementRepo {
	return &SettlementRepo{pool: pool}
}

// ExecuteSettlement writes the ledger movements and deletes the liability
// with its installments in one transaction. On any failure the transaction
// rolls back and the error wraps model.ErrStorageFailure so callers can
// treat it as retryable with the liability intact.
func (r *SettlementRepo) ExecuteSettlement(ctx context.Context, liabilityID string, movements []model.AccountMovement) error {
	err := pkgpostgres.WithTransaction(ctx, r.pool, func(tx pgx.Tx) error {
		movementQuery := `
			INSERT INTO account_movements (
				id, account_id, liability_id, kind, amount, currency, note, occurred_at
			) VALUES ($1,$2,$3,$4,$5,$6,$7,$8)
		`
		for _, m := range movements {
			if _, err := tx.Exec(ctx, movementQuery,
				m.ID, m.AccountID, m.LiabilityID, m.Kind.String(),
				m.Amount, m.Currency, m.Note, m.OccurredAt,
			); err != nil {
				return fmt.Errorf("insert movement %s: %w", m.ID, err)
			}
		}

		if _, err := tx.Exec(ctx,
			`DELETE FROM liability_installments WHERE liability_id = $1`, liabilityID,
		); err != nil {
			return fmt.Errorf("delete installments: %w", err)
		}

		tag, err := tx.Exec(ctx, `DELETE FROM liabilities WHERE id = $1`, liabilityID)
		if err != nil {
			return fmt.Errorf("delete liability: %w", err)
		}
		if tag.RowsAffected() == 0 {
			return model.ErrLiabilityNotFound
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, model.ErrLiabilityNotFound) {
			return err
		}
		return fmt.Errorf("%w: %v", model.ErrStorageFailure, err)
	}
	return nil
}
