package postgresql

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/learnhub-center/backoffice/internal/domain/directory"
	"github.com/learnhub-center/backoffice/internal/domain/staff"
	"github.com/learnhub-center/backoffice/internal/pkg/database"
)

const staffCollection = "staff"

type staffRepositoryImpl struct {
	db *database.DB
}

func NewStaffRepository(db *database.DB) staff.StaffRepository {
	return &staffRepositoryImpl{db: db}
}

// GetByID implements staff.StaffRepository.
func (r *staffRepositoryImpl) GetByID(ctx context.Context, id string) (staff.Staff, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, name, position, role, leave_quota, created_at, updated_at
		FROM staff
		WHERE id = $1
	`

	var s staff.Staff
	err := q.QueryRow(ctx, query, id).Scan(
		&s.ID,
		&s.Name,
		&s.Position,
		&s.Role,
		&s.LeaveQuota,
		&s.CreatedAt,
		&s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return staff.Staff{}, directory.ErrNotFound
		}
		return staff.Staff{}, directory.Wrap(staffCollection, "get", err)
	}
	return s, nil
}

// Upsert writes a staff record. Used for seeding; the leave core never calls it.
func (r *staffRepositoryImpl) Upsert(ctx context.Context, s staff.Staff) error {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO staff (id, name, position, role, leave_quota, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, now(), now())
		ON CONFLICT (id) DO UPDATE SET
			name = EXCLUDED.name,
			position = EXCLUDED.position,
			role = EXCLUDED.role,
			leave_quota = EXCLUDED.leave_quota,
			updated_at = now()
	`
	_, err := q.Exec(ctx, query, s.ID, s.Name, s.Position, s.Role, s.LeaveQuota)
	return directory.Wrap(staffCollection, "upsert", err)
}

// SeedStaff upserts records in one transaction.
func SeedStaff(ctx context.Context, db *database.DB, records []staff.Staff) error {
	repo := &staffRepositoryImpl{db: db}
	return WithTransaction(ctx, db, func(ctx context.Context) error {
		for _, s := range records {
			if err := repo.Upsert(ctx, s); err != nil {
				return err
			}
		}
		return nil
	})
}
