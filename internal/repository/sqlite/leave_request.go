package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/learnhub-center/backoffice/internal/domain/directory"
	"github.com/learnhub-center/backoffice/internal/domain/leave"
)

const leaveRequestCollection = "leave_requests"

const leaveRequestColumns = `
	id, staff_id, staff_name, start_date, end_date, category, reason,
	status, approved_by, approver_name, approved_at, rejection_reason,
	created_at, updated_at
`

type leaveRequestRepository struct {
	db *sql.DB
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanLeaveRequest(row rowScanner) (leave.LeaveRequest, error) {
	var (
		lr           leave.LeaveRequest
		startDate    string
		endDate      string
		approvedBy   sql.NullString
		approverName sql.NullString
		approvedAt   sql.NullString
		rejected     sql.NullString
		createdAt    string
		updatedAt    string
	)
	err := row.Scan(
		&lr.ID,
		&lr.StaffID,
		&lr.StaffName,
		&startDate,
		&endDate,
		&lr.Category,
		&lr.Reason,
		&lr.Status,
		&approvedBy,
		&approverName,
		&approvedAt,
		&rejected,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return leave.LeaveRequest{}, err
	}

	if lr.StartDate, err = leave.ParseDate(startDate); err != nil {
		return leave.LeaveRequest{}, err
	}
	if lr.EndDate, err = leave.ParseDate(endDate); err != nil {
		return leave.LeaveRequest{}, err
	}
	if lr.ApprovedAt, err = parseNullTime(approvedAt); err != nil {
		return leave.LeaveRequest{}, err
	}
	if lr.CreatedAt, err = parseTime(createdAt); err != nil {
		return leave.LeaveRequest{}, err
	}
	if lr.UpdatedAt, err = parseTime(updatedAt); err != nil {
		return leave.LeaveRequest{}, err
	}
	lr.ApprovedBy = nullStringPtr(approvedBy)
	lr.ApproverName = nullStringPtr(approverName)
	lr.RejectionReason = nullStringPtr(rejected)
	return lr, nil
}

func (r leaveRequestRepository) query(ctx context.Context, op string, where string, args ...any) ([]leave.LeaveRequest, error) {
	query := "SELECT " + leaveRequestColumns + " FROM leave_requests " + where + " ORDER BY start_date DESC, created_at DESC, id DESC"

	rows, err := r.db.QueryContext(ctx, query, args...)
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
func (r leaveRequestRepository) Create(ctx context.Context, request leave.LeaveRequest) (leave.LeaveRequest, error) {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO leave_requests (
			id, staff_id, staff_name,
			start_date, end_date, category, reason,
			status, created_at, updated_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`,
		request.ID,
		request.StaffID,
		request.StaffName,
		request.StartDate.Format(leave.DateLayout),
		request.EndDate.Format(leave.DateLayout),
		request.Category,
		request.Reason,
		request.Status,
		formatTime(request.CreatedAt),
		formatTime(request.UpdatedAt),
	)
	if err != nil {
		return leave.LeaveRequest{}, directory.Wrap(leaveRequestCollection, "create", err)
	}
	return r.GetByID(ctx, request.ID)
}

// GetByID implements leave.LeaveRequestRepository.
func (r leaveRequestRepository) GetByID(ctx context.Context, id string) (leave.LeaveRequest, error) {
	row := r.db.QueryRowContext(ctx, "SELECT "+leaveRequestColumns+" FROM leave_requests WHERE id = ?", id)

	lr, err := scanLeaveRequest(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return leave.LeaveRequest{}, directory.ErrNotFound
		}
		return leave.LeaveRequest{}, directory.Wrap(leaveRequestCollection, "get", err)
	}
	return lr, nil
}

// GetByStaffID implements leave.LeaveRequestRepository.
func (r leaveRequestRepository) GetByStaffID(ctx context.Context, staffID string) ([]leave.LeaveRequest, error) {
	return r.query(ctx, "list by staff", "WHERE staff_id = ?", staffID)
}

// GetByStatus implements leave.LeaveRequestRepository.
func (r leaveRequestRepository) GetByStatus(ctx context.Context, status leave.LeaveRequestStatus) ([]leave.LeaveRequest, error) {
	return r.query(ctx, "list by status", "WHERE status = ?", status)
}

// List implements leave.LeaveRequestRepository.
func (r leaveRequestRepository) List(ctx context.Context, filter leave.LeaveRequestFilter) ([]leave.LeaveRequest, error) {
	var (
		conditions []string
		args       []any
	)
	if filter.StaffID != "" {
		conditions = append(conditions, "staff_id = ?")
		args = append(args, filter.StaffID)
	}
	if filter.Status != "" {
		conditions = append(conditions, "status = ?")
		args = append(args, filter.Status)
	}

	where := ""
	if len(conditions) > 0 {
		where = "WHERE " + strings.Join(conditions, " AND ")
	}
	return r.query(ctx, "list", where, args...)
}

// Update implements leave.LeaveRequestRepository.
func (r leaveRequestRepository) Update(ctx context.Context, request leave.LeaveRequest) error {
	result, err := r.db.ExecContext(ctx, `
		UPDATE leave_requests SET
			start_date = ?,
			end_date = ?,
			category = ?,
			reason = ?,
			status = ?,
			approved_by = ?,
			approver_name = ?,
			approved_at = ?,
			rejection_reason = ?,
			updated_at = ?
		WHERE id = ?
	`,
		request.StartDate.Format(leave.DateLayout),
		request.EndDate.Format(leave.DateLayout),
		request.Category,
		request.Reason,
		request.Status,
		request.ApprovedBy,
		request.ApproverName,
		formatNullTime(request.ApprovedAt),
		request.RejectionReason,
		formatTime(request.UpdatedAt),
		request.ID,
	)
	if err != nil {
		return directory.Wrap(leaveRequestCollection, "update", err)
	}
	return expectOneRow(result, "update")
}

// Delete implements leave.LeaveRequestRepository.
func (r leaveRequestRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, "DELETE FROM leave_requests WHERE id = ?", id)
	if err != nil {
		return directory.Wrap(leaveRequestCollection, "delete", err)
	}
	return expectOneRow(result, "delete")
}

func expectOneRow(result sql.Result, op string) error {
	n, err := result.RowsAffected()
	if err != nil {
		return directory.Wrap(leaveRequestCollection, op, err)
	}
	if n == 0 {
		return directory.ErrNotFound
	}
	return nil
}
