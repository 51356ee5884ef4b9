package postgresql

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/learnhub-center/backoffice/internal/domain/directory"
	"github.com/learnhub-center/backoffice/internal/domain/leave"
	"github.com/learnhub-center/backoffice/internal/pkg/database"
)

const leaveBalanceCollection = "leave_balances"

type leaveBalanceRepositoryImpl struct {
	db *database.DB
}

func NewLeaveBalanceRepository(db *database.DB) leave.LeaveBalanceRepository {
	return &leaveBalanceRepositoryImpl{db: db}
}

// Get implements leave.LeaveBalanceRepository.
func (r *leaveBalanceRepositoryImpl) Get(ctx context.Context, staffID string, year int) (leave.LeaveBalance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, staff_id, year, quota, used, pending, remaining, updated_at
		FROM leave_balances
		WHERE id = $1
	`

	var b leave.LeaveBalance
	err := q.QueryRow(ctx, query, leave.BalanceID(staffID, year)).Scan(
		&b.ID,
		&b.StaffID,
		&b.Year,
		&b.Quota,
		&b.Used,
		&b.Pending,
		&b.Remaining,
		&b.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return leave.LeaveBalance{}, directory.ErrNotFound
		}
		return leave.LeaveBalance{}, directory.Wrap(leaveBalanceCollection, "get", err)
	}
	return b, nil
}

// Put implements leave.LeaveBalanceRepository. The stored row is replaced as a whole.
func (r *leaveBalanceRepositoryImpl) Put(ctx context.Context, balance leave.LeaveBalance) error {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO leave_balances (id, staff_id, year, quota, used, pending, remaining, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (id) DO UPDATE SET
			quota = EXCLUDED.quota,
			used = EXCLUDED.used,
			pending = EXCLUDED.pending,
			remaining = EXCLUDED.remaining,
			updated_at = EXCLUDED.updated_at
	`
	_, err := q.Exec(ctx, query,
		leave.BalanceID(balance.StaffID, balance.Year),
		balance.StaffID,
		balance.Year,
		balance.Quota,
		balance.Used,
		balance.Pending,
		balance.Remaining,
		balance.UpdatedAt,
	)
	return directory.Wrap(leaveBalanceCollection, "put", err)
}
