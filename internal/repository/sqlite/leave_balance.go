package sqlite

import (
	"context"
	"database/sql"
	"errors"

	"github.com/learnhub-center/backoffice/internal/domain/directory"
	"github.com/learnhub-center/backoffice/internal/domain/leave"
)

const leaveBalanceCollection = "leave_balances"

type leaveBalanceRepository struct {
	db *sql.DB
}

// Get implements leave.LeaveBalanceRepository.
func (r leaveBalanceRepository) Get(ctx context.Context, staffID string, year int) (leave.LeaveBalance, error) {
	var (
		b         leave.LeaveBalance
		updatedAt string
	)
	err := r.db.QueryRowContext(ctx, `
		SELECT id, staff_id, year, quota, used, pending, remaining, updated_at
		FROM leave_balances
		WHERE id = ?
	`, leave.BalanceID(staffID, year)).Scan(
		&b.ID,
		&b.StaffID,
		&b.Year,
		&b.Quota,
		&b.Used,
		&b.Pending,
		&b.Remaining,
		&updatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return leave.LeaveBalance{}, directory.ErrNotFound
		}
		return leave.LeaveBalance{}, directory.Wrap(leaveBalanceCollection, "get", err)
	}
	if b.UpdatedAt, err = parseTime(updatedAt); err != nil {
		return leave.LeaveBalance{}, directory.Wrap(leaveBalanceCollection, "get", err)
	}
	return b, nil
}

// Put implements leave.LeaveBalanceRepository. The stored row is replaced as a whole.
func (r leaveBalanceRepository) Put(ctx context.Context, balance leave.LeaveBalance) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO leave_balances (id, staff_id, year, quota, used, pending, remaining, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT (id) DO UPDATE SET
			quota = excluded.quota,
			used = excluded.used,
			pending = excluded.pending,
			remaining = excluded.remaining,
			updated_at = excluded.updated_at
	`,
		leave.BalanceID(balance.StaffID, balance.Year),
		balance.StaffID,
		balance.Year,
		balance.Quota,
		balance.Used,
		balance.Pending,
		balance.Remaining,
		formatTime(balance.UpdatedAt),
	)
	return directory.Wrap(leaveBalanceCollection, "put", err)
}
