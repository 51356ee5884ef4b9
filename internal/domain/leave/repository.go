package leave

import (
	"context"
)

// LeaveRequestRepository - leave request documents in the Directory.
// Missing documents are reported as directory.ErrNotFound.
type LeaveRequestRepository interface {
	Create(ctx context.Context, request LeaveRequest) (LeaveRequest, error)
	GetByID(ctx context.Context, id string) (LeaveRequest, error)
	GetByStaffID(ctx context.Context, staffID string) ([]LeaveRequest, error)
	GetByStatus(ctx context.Context, status LeaveRequestStatus) ([]LeaveRequest, error)
	List(ctx context.Context, filter LeaveRequestFilter) ([]LeaveRequest, error)
	Update(ctx context.Context, request LeaveRequest) error
	Delete(ctx context.Context, id string) error
}

// LeaveBalanceRepository - balance documents keyed by BalanceID.
// Put overwrites the whole document.
type LeaveBalanceRepository interface {
	Get(ctx context.Context, staffID string, year int) (LeaveBalance, error)
	Put(ctx context.Context, balance LeaveBalance) error
}
