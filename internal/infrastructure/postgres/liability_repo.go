package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/finora/liability-service/internal/domain/model"
	"github.com/finora/liability-service/internal/domain/valueobject"
	pkgpostgres "github.com/finora/liability-service/pkg/postgres"
)

// LiabilityRepo implements port.LiabilityRepository.
type LiabilityRepo struct {
	pool *pgxpool.Pool
}

// NewLiabilityRepo creates a new PostgreSQL-backed liability repository.
func NewLiabilityRepo(pool *pgxpool.Pool) *LiabilityRepo {
	return &LiabilityRepo{pool: pool}
}

// Save persists a liability and its full installment schedule in one
// transaction. The schedule is written as a whole set: redistribution and
// regeneration change many rows at once and either all of them land or none.
func (r *LiabilityRepo) Save(ctx context.Context, liability model.Liability) error {
	return pkgpostgres.WithTransaction(ctx, r.pool, func(tx pgx.Tx) error {
		liabilityQuery := `
			INSERT INTO liabilities (
				id, user_id, name, currency,
				original_amount, current_balance, interest_rate_apy, interest_type,
				periodical_payment, start_date, targeted_payoff_date,
				status, version, created_at, updated_at
			) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15)
			ON CONFLICT (id) DO UPDATE SET
				name                 = EXCLUDED.name,
				original_amount      = EXCLUDED.original_amount,
				current_balance      = EXCLUDED.current_balance,
				interest_rate_apy    = EXCLUDED.interest_rate_apy,
				periodical_payment   = EXCLUDED.periodical_payment,
				targeted_payoff_date = EXCLUDED.targeted_payoff_date,
				status               = EXCLUDED.status,
				version              = liabilities.version + 1,
				updated_at           = EXCLUDED.updated_at
			WHERE liabilities.version = $13
		`
		tag, err := tx.Exec(ctx, liabilityQuery,
			liability.ID(), liability.UserID(), liability.Name(), liability.Currency(),
			liability.OriginalAmount(), liability.CurrentBalance(), liability.InterestRateAPY(), liability.InterestType().String(),
			liability.PeriodicalPayment(), liability.StartDate(), liability.TargetedPayoffDate(),
			liability.Status().String(), liability.Version(), liability.CreatedAt(), liability.UpdatedAt(),
		)
		if err != nil {
			return fmt.Errorf("save liability: %w", err)
		}
		if tag.RowsAffected() == 0 {
			return errors.New("optimistic locking conflict on liability")
		}

		if _, err := tx.Exec(ctx,
			`DELETE FROM liability_installments WHERE liability_id = $1`, liability.ID(),
		); err != nil {
			return fmt.Errorf("clear installments: %w", err)
		}

		installmentQuery := `
			INSERT INTO liability_installments (
				id, liability_id, due_date, amount, status,
				principal_component, interest_component,
				payment_number, total_payments
			) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)
		`
		for _, inst := range liability.Schedule() {
			if _, err := tx.Exec(ctx, installmentQuery,
				inst.ID(), inst.LiabilityID(), inst.DueDate(), inst.Amount(), inst.Status().String(),
				inst.PrincipalComponent(), inst.InterestComponent(),
				inst.PaymentNumber(), inst.TotalPayments(),
			); err != nil {
				return fmt.Errorf("save installment %d: %w", inst.PaymentNumber(), err)
			}
		}

		return nil
	})
}

// FindByID retrieves a liability and its schedule by ID.
func (r *LiabilityRepo) FindByID(ctx context.Context, id string) (model.Liability, error) {
	query := selectLiability + ` WHERE id = $1`
	row := r.pool.QueryRow(ctx, query, id)
	rec, err := scanLiabilityRow(row)
	if err != nil {
		return model.Liability{}, err
	}
	return r.withSchedule(ctx, rec)
}

// FindByUserID retrieves all liabilities of one user, newest first.
func (r *LiabilityRepo) FindByUserID(ctx context.Context, userID string) ([]model.Liability, error) {
	query := selectLiability + ` WHERE user_id = $1 ORDER BY created_at DESC`
	return r.queryMany(ctx, query, userID)
}

// FindWithInstallmentsDueBefore retrieves liabilities that still have
// pending installments past the cutoff. Used by the overdue sweep.
func (r *LiabilityRepo) FindWithInstallmentsDueBefore(ctx context.Context, cutoff time.Time) ([]model.Liability, error) {
	query := selectLiability + `
		WHERE id IN (
			SELECT DISTINCT liability_id
			FROM liability_installments
			WHERE status = 'PENDING' AND due_date < $1
		)
	`
	return r.queryMany(ctx, query, cutoff)
}

// ---------------------------------------------------------------------------
// internal helpers
// ---------------------------------------------------------------------------

const selectLiability = `
	SELECT id, user_id, name, currency,
	       original_amount, current_balance, interest_rate_apy, interest_type,
	       periodical_payment, start_date, targeted_payoff_date,
	       status, version, created_at, updated_at
	FROM liabilities
`

// liabilityRecord is a scanned row before the schedule is attached.
type liabilityRecord struct {
	id, userID, name, currency     string
	originalAmount, currentBalance decimal.Decimal
	interestRateAPY                decimal.Decimal
	interestType                   valueobject.InterestType
	periodicalPayment              decimal.Decimal
	startDate, targetedPayoffDate  time.Time
	status                         valueobject.LiabilityStatus
	version                        int
	createdAt, updatedAt           time.Time
}

type scannable interface {
	Scan(dest ...any) error
}

func scanLiabilityRow(s scannable) (liabilityRecord, error) {
	var (
		rec                        liabilityRecord
		interestTypeStr, statusStr string
	)
	err := s.Scan(
		&rec.id, &rec.userID, &rec.name, &rec.currency,
		&rec.originalAmount, &rec.currentBalance, &rec.interestRateAPY, &interestTypeStr,
		&rec.periodicalPayment, &rec.startDate, &rec.targetedPayoffDate,
		&statusStr, &rec.version, &rec.createdAt, &rec.updatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return liabilityRecord{}, model.ErrLiabilityNotFound
		}
		return liabilityRecord{}, fmt.Errorf("scan liability: %w", err)
	}

	rec.interestType, err = valueobject.NewInterestType(interestTypeStr)
	if err != nil {
		return liabilityRecord{}, fmt.Errorf("parse interest type: %w", err)
	}
	rec.status, err = valueobject.NewLiabilityStatus(statusStr)
	if err != nil {
		return liabilityRecord{}, fmt.Errorf("parse liability status: %w", err)
	}
	return rec, nil
}

func (r *LiabilityRepo) queryMany(ctx context.Context, query string, args ...any) ([]model.Liability, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query liabilities: %w", err)
	}
	defer rows.Close()

	var records []liabilityRecord
	for rows.Next() {
		rec, err := scanLiabilityRow(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate liabilities: %w", err)
	}

	liabilities := make([]model.Liability, 0, len(records))
	for _, rec := range records {
		liability, err := r.withSchedule(ctx, rec)
		if err != nil {
			return nil, err
		}
		liabilities = append(liabilities, liability)
	}
	return liabilities, nil
}

func (r *LiabilityRepo) withSchedule(ctx context.Context, rec liabilityRecord) (model.Liability, error) {
	installments, err := r.loadInstallments(ctx, rec.id)
	if err != nil {
		return model.Liability{}, err
	}
	return model.ReconstructLiability(
		rec.id, rec.userID, rec.name, rec.currency,
		rec.originalAmount, rec.currentBalance, rec.interestRateAPY,
		rec.interestType, rec.periodicalPayment,
		rec.startDate, rec.targetedPayoffDate,
		rec.status, installments,
		rec.version, rec.createdAt, rec.updatedAt,
	), nil
}

func (r *LiabilityRepo) loadInstallments(ctx context.Context, liabilityID string) ([]model.Installment, error) {
	query := `
		SELECT id, liability_id, due_date, amount, status,
		       principal_component, interest_component,
		       payment_number, total_payments
		FROM liability_installments
		WHERE liability_id = $1
		ORDER BY due_date, payment_number
	`
	rows, err := r.pool.Query(ctx, query, liabilityID)
	if err != nil {
		return nil, fmt.Errorf("query installments: %w", err)
	}
	defer rows.Close()

	var installments []model.Installment
	for rows.Next() {
		var (
			id, lid, statusStr           string
			dueDate                      time.Time
			amount, principal, interest  decimal.Decimal
			paymentNumber, totalPayments int
		)
		if err := rows.Scan(
			&id, &lid, &dueDate, &amount, &statusStr,
			&principal, &interest, &paymentNumber, &totalPayments,
		); err != nil {
			return nil, fmt.Errorf("scan installment: %w", err)
		}
		status, err := valueobject.NewInstallmentStatus(statusStr)
		if err != nil {
			return nil, fmt.Errorf("parse installment status: %w", err)
		}
		installments = append(installments, model.ReconstructInstallment(
			id, lid, dueDate, amount, status, principal, interest, paymentNumber, totalPayments,
		))
	}
	return installments, rows.Err()
}
