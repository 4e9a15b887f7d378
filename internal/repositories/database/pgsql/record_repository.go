package pgsql

import (
	"context"
	"fmt"

	"github.com/SscSPs/homeledger/internal/core/domain"
	portsrepo "github.com/SscSPs/homeledger/internal/core/ports/repositories"
	"github.com/SscSPs/homeledger/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PgxRecordRepository upserts household records into PostgreSQL.
type PgxRecordRepository struct {
	BaseRepository
}

// newPgxRecordRepository creates a repository writing household records.
func newPgxRecordRepository(pool *pgxpool.Pool) portsrepo.RemoteRecordRepositoryWithTx {
	return &PgxRecordRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.RemoteRecordRepositoryWithTx = (*PgxRecordRepository)(nil)

// UpsertExpense inserts or replaces an expense row.
func (r *PgxRecordRepository) UpsertExpense(ctx context.Context, record domain.ExpenseRecord) error {
	m := mapping.ToModelExpense(record)
	query := `
		INSERT INTO expenses (id, amount, description, payer, group_id, timestamp, category, split_between, settled)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (id) DO UPDATE SET
			amount = EXCLUDED.amount,
			description = EXCLUDED.description,
			payer = EXCLUDED.payer,
			group_id = EXCLUDED.group_id,
			timestamp = EXCLUDED.timestamp,
			category = EXCLUDED.category,
			split_between = EXCLUDED.split_between,
			settled = EXCLUDED.settled;
	`
	_, err := r.Pool.Exec(ctx, query,
		m.ID,
		m.Amount,
		m.Description,
		m.Payer,
		m.GroupID,
		m.Timestamp,
		m.Category,
		m.SplitBetween,
		m.Settled,
	)
	if err != nil {
		return fmt.Errorf("failed to upsert expense %s: %w", m.ID, err)
	}
	return nil
}

// UpsertRoommate inserts or replaces a roommate row.
func (r *PgxRecordRepository) UpsertRoommate(ctx context.Context, record domain.RoommateRecord) error {
	m := mapping.ToModelRoommate(record)
	query := `
		INSERT INTO roommates (id, name, email, group_id, balance)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (id) DO UPDATE SET
			name = EXCLUDED.name,
			email = EXCLUDED.email,
			group_id = EXCLUDED.group_id,
			balance = EXCLUDED.balance;
	`
	_, err := r.Pool.Exec(ctx, query, m.ID, m.Name, m.Email, m.GroupID, m.Balance)
	if err != nil {
		return fmt.Errorf("failed to upsert roommate %s: %w", m.ID, err)
	}
	return nil
}

// UpsertGroup replaces the group's member list and points the member rows at
// the group, in one transaction. created_at is kept from the first insert.
func (r *PgxRecordRepository) UpsertGroup(ctx context.Context, record domain.GroupRecord) error {
	m := mapping.ToModelGroup(record)
	query := `
		INSERT INTO groups (id, name, members, created_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (id) DO UPDATE SET
			name = EXCLUDED.name,
			members = EXCLUDED.members;
	`
	return r.WithTx(ctx, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, query, m.ID, m.Name, m.Members, m.CreatedAt); err != nil {
			return fmt.Errorf("failed to upsert group %s: %w", m.ID, err)
		}
		if _, err := tx.Exec(ctx, `UPDATE roommates SET group_id = $1 WHERE id = ANY($2);`, m.ID, m.Members); err != nil {
			return fmt.Errorf("failed to attach members to group %s: %w", m.ID, err)
		}
		return nil
	})
}
