package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/learnhub-center/backoffice/internal/domain/directory"
	"github.com/learnhub-center/backoffice/internal/domain/leave"
	"github.com/learnhub-center/backoffice/internal/pkg/database"
)

const leaveRequestCollection = "leave_requests"

const leaveRequestColumns = `
	id, staff_id, staff_name, start_date, end_date, category, reason,
	status, approved_by, approver_name, approved_at, rejection_reason,
	created_at, updated_at
`

type leaveRequestRepositoryImpl struct {
	db *database.DB
}

func NewLeaveRequestRepository(db *database.DB) leave.LeaveRequestRepository {
	return &leaveRequestRepositoryImpl{db: db}
}

func scanLeaveRequest(row pgx.Row) (leave.LeaveRequest, error) {
	var lr leave.LeaveRequest
	err := row.Scan(
		&lr.ID,
		&lr.StaffID,
		&lr.StaffName,
		&lr.StartDate,
		&lr.EndDate,
		&lr.Category,
		&lr.Reason,
		&lr.Status,
		&lr.ApprovedBy,
		&lr.ApproverName,
		&lr.ApprovedAt,
		&lr.RejectionReason,
		&lr.CreatedAt,
		&lr.UpdatedAt,
	)
	return lr, err
}

func (r *leaveRequestRepositoryImpl) query(ctx context.Context, op string, where string, args ...interface{}) ([]leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := "SELECT " + leaveRequestColumns + " FROM leave_requests " + where + " ORDER BY start_date DESC, created_at DESC"

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, directory.Wrap(leaveRequestCollection, op, err)
	}
	defer rows.Close()

	var requests []leave.LeaveRequest
	for rows.Next() {
		lr, err := scanLeaveRequest(rows)
		if err != nil {
			return nil, directory.Wrap(leaveRequestCollection, op, err)
		}
		requests = append(requests, lr)
	}
	if err := rows.Err(); err != nil {
		return nil, directory.Wrap(leaveRequestCollection, op, err)
	}

	return requests, nil
}

// Create implements leave.LeaveRequestRepository.
func (r *leaveRequestRepositoryImpl) Create(ctx context.Context, request leave.LeaveRequest) (leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO leave_requests (
			id, staff_id, staff_name,
			start_date, end_date, category, reason,
			status, created_at, updated_at
		) VALUES (
			$1, $2, $3,
			$4, $5, $6, $7,
			$8, $9, $10
		)
		RETURNING ` + leaveRequestColumns

	created, err := scanLeaveRequest(q.QueryRow(ctx, query,
		request.ID,
		request.StaffID,
		request.StaffName,
		request.StartDate,
		request.EndDate,
		request.Category,
		request.Reason,
		request.Status,
		request.CreatedAt,
		request.UpdatedAt,
	))
	if err != nil {
		return leave.LeaveRequest{}, directory.Wrap(leaveRequestCollection, "create", err)
	}
	return created, nil
}

// GetByID implements leave.LeaveRequestRepository.
func (r *leaveRequestRepositoryImpl) GetByID(ctx context.Context, id string) (leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := "SELECT " + leaveRequestColumns + " FROM leave_requests WHERE id = $1"

	lr, err := scanLeaveRequest(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return leave.LeaveRequest{}, directory.ErrNotFound
		}
		return leave.LeaveRequest{}, directory.Wrap(leaveRequestCollection, "get", err)
	}
	return lr, nil
}

// GetByStaffID implements leave.LeaveRequestRepository.
func (r *leaveRequestRepositoryImpl) GetByStaffID(ctx context.Context, staffID string) ([]leave.LeaveRequest, error) {
	return r.query(ctx, "list by staff", "WHERE staff_id = $1", staffID)
}

// GetByStatus implements leave.LeaveRequestRepository.
func (r *leaveRequestRepositoryImpl) GetByStatus(ctx context.Context, status leave.LeaveRequestStatus) ([]leave.LeaveRequest, error) {
	return r.query(ctx, "list by status", "WHERE status = $1", status)
}

// List implements leave.LeaveRequestRepository.
func (r *leaveRequestRepositoryImpl) List(ctx context.Context, filter leave.LeaveRequestFilter) ([]leave.LeaveRequest, error) {
	var (
		conditions []string
		args       []interface{}
	)

	if filter.StaffID != "" {
		args = append(args, filter.StaffID)
		conditions = append(conditions, fmt.Sprintf("staff_id = $%d", len(args)))
	}
	if filter.Status != "" {
		args = append(args, filter.Status)
		conditions = append(conditions, fmt.Sprintf("status = $%d", len(args)))
	}

	where := ""
	if len(conditions) > 0 {
		where = "WHERE " + strings.Join(conditions, " AND ")
	}
	return r.query(ctx, "list", where, args...)
}

// Update implements leave.LeaveRequestRepository.
func (r *leaveRequestRepositoryImpl) Update(ctx context.Context, request leave.LeaveRequest) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE leave_requests SET
			start_date = $2,
			end_date = $3,
			category = $4,
			reason = $5,
			status = $6,
			approved_by = $7,
			approver_name = $8,
			approved_at = $9,
			rejection_reason = $10,
			updated_at = $11
		WHERE id = $1
	`
	commandTag, err := q.Exec(ctx, query,
		request.ID,
		request.StartDate,
		request.EndDate,
		request.Category,
		request.Reason,
		request.Status,
		request.ApprovedBy,
		request.ApproverName,
		request.ApprovedAt,
		request.RejectionReason,
		request.UpdatedAt,
	)
	if err != nil {
		return directory.Wrap(leaveRequestCollection, "update", err)
	}
	if commandTag.RowsAffected() == 0 {
		return directory.ErrNotFound
	}
	return nil
}

// Delete implements leave.LeaveRequestRepository.
func (r *leaveRequestRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)
	query := `
		DELETE FROM leave_requests
		WHERE id = $1
	`
	commandTag, err := q.Exec(ctx, query, id)
	if err != nil {
		return directory.Wrap(leaveRequestCollection, "delete", err)
	}
	if commandTag.RowsAffected() != 1 {
		return directory.ErrNotFound
	}
	return nil
}
