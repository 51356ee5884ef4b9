package leave

import (
	"context"
)

type LeaveService interface {
	// Balance
	GetBalance(ctx context.Context, staffID string, year int) (LeaveBalance, error)
	RecalculateBalance(ctx context.Context, staffID string, year int) (LeaveBalance, error)
	CheckBalance(ctx context.Context, staffID string, req BalanceCheckRequest) (BalanceCheck, error)
	// Request
	SubmitLeaveRequest(ctx context.Context, req SubmitLeaveRequest) (LeaveRequest, error)
	UpdateLeaveRequest(ctx context.Context, req UpdateLeaveRequest) (LeaveRequest, error)
	ApproveLeaveRequest(ctx context.Context, requestID string, approver Approver) (LeaveRequest, error)
	RejectLeaveRequest(ctx context.Context, req RejectLeaveRequest, approver Approver) (LeaveRequest, error)
	DeleteLeaveRequest(ctx context.Context, requestID string) error
	GetLeaveRequest(ctx context.Context, requestID string) (LeaveRequest, error)
	ListLeaveRequests(ctx context.Context, filter LeaveRequestFilter) ([]LeaveRequest, error)
}
