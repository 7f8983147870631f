package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/finora/liability-service/internal/domain/port"
)

// LedgerRepo implements port.LedgerReader over the account_movements table.
type LedgerRepo struct {
	pool *pgxpool.Pool
}

// NewLedgerRepo creates a new PostgreSQL-backed ledger reader.
func NewLedgerRepo(pool *pgxpool.Pool) *LedgerRepo {
	return &LedgerRepo{pool: pool}
}

// LiabilityFunds sums the liability-tagged movements per account. Accounts
// with a positive balance come back largest first; drained accounts are
// omitted.
func (r *LedgerRepo) LiabilityFunds(ctx context.Context, liabilityID string) ([]port.AccountFunds, error) {
	query := `
		SELECT account_id, SUM(amount) AS balance
		FROM account_movements
		WHERE liability_id = $1 AND account_id <> ''
		GROUP BY account_id
		HAVING SUM(amount) > 0
		ORDER BY balance DESC, account_id
	`
	rows, err := r.pool.Query(ctx, query, liabilityID)
	if err != nil {
		return nil, fmt.Errorf("query liability funds: %w", err)
	}
	defer rows.Close()

	var funds []port.AccountFunds
	for rows.Next() {
		var f port.AccountFunds
		if err := rows.Scan(&f.AccountID, &f.Balance); err != nil {
			return nil, fmt.Errorf("scan liability funds: %w", err)
		}
		funds = append(funds, f)
	}
	return funds, rows.Err()
}
