package sqlite

import (
	"context"
	"database/sql"
	"errors"

	"github.com/learnhub-center/backoffice/internal/domain/directory"
	"github.com/learnhub-center/backoffice/internal/domain/staff"
)

const staffCollection = "staff"

type staffRepository struct {
	db *sql.DB
}

// GetByID implements staff.StaffRepository.
func (r staffRepository) GetByID(ctx context.Context, id string) (staff.Staff, error) {
	var (
		s                    staff.Staff
		role                 sql.NullString
		quota                sql.NullInt64
		createdAt, updatedAt string
	)
	err := r.db.QueryRowContext(ctx, `
		SELECT id, name, position, role, leave_quota, created_at, updated_at
		FROM staff
		WHERE id = ?
	`, id).Scan(&s.ID, &s.Name, &s.Position, &role, &quota, &createdAt, &updatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return staff.Staff{}, directory.ErrNotFound
		}
		return staff.Staff{}, directory.Wrap(staffCollection, "get", err)
	}

	s.Role = nullStringPtr(role)
	if quota.Valid {
		q := int(quota.Int64)
		s.LeaveQuota = &q
	}
	if s.CreatedAt, err = parseTime(createdAt); err != nil {
		return staff.Staff{}, directory.Wrap(staffCollection, "get", err)
	}
	if s.UpdatedAt, err = parseTime(updatedAt); err != nil {
		return staff.Staff{}, directory.Wrap(staffCollection, "get", err)
	}
	return s, nil
}
