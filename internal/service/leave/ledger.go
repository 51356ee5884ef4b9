package leave

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/learnhub-center/backoffice/internal/domain/directory"
	"github.com/learnhub-center/backoffice/internal/domain/leave"
	"github.com/learnhub-center/backoffice/internal/domain/staff"
)

// Ledger derives paid-leave balances from the full set of a staff member's
// requests. Balances are recomputed from scratch and overwritten; they are
// never incremented or decremented.
type Ledger struct {
	staff.StaffRepository
	leave.LeaveRequestRepository
	leave.LeaveBalanceRepository
	defaultQuota int
	now          func() time.Time
}

func NewLedger(staffRepository staff.StaffRepository, requestRepository leave.LeaveRequestRepository, balanceRepository leave.LeaveBalanceRepository, defaultQuota int) *Ledger {
	return &Ledger{
		StaffRepository:        staffRepository,
		LeaveRequestRepository: requestRepository,
		LeaveBalanceRepository: balanceRepository,
		defaultQuota:           defaultQuota,
		now:                    time.Now,
	}
}

// ComputeBalance folds requests into the balance of staffID for year.
// Only paid-leave requests of staffID overlapping year count; each counts
// its full inclusive day span.
func ComputeBalance(staffID string, year, quota int, requests []leave.LeaveRequest) leave.LeaveBalance {
	var used, pending int
	for _, r := range requests {
		if r.StaffID != staffID || !r.Category.ConsumesQuota() || !r.OverlapsYear(year) {
			continue
		}
		switch r.Status {
		case leave.LeaveRequestStatusApproved:
			used += r.Days()
		case leave.LeaveRequestStatusPending:
			pending += r.Days()
		}
	}

	return leave.LeaveBalance{
		ID:        leave.BalanceID(staffID, year),
		StaffID:   staffID,
		Year:      year,
		Quota:     quota,
		Used:      used,
		Pending:   pending,
		Remaining: quota - used - pending,
	}
}

// quota returns the staff member's configured allowance, or the default
// when the staff record does not exist.
func (l *Ledger) quota(ctx context.Context, staffID string) (int, error) {
	s, err := l.StaffRepository.GetByID(ctx, staffID)
	if err != nil {
		if errors.Is(err, directory.ErrNotFound) {
			slog.Debug("Staff record not found, using default leave quota", "staff_id", staffID)
			return l.defaultQuota, nil
		}
		return 0, fmt.Errorf("failed to get staff by ID: %w", err)
	}
	return s.QuotaOr(l.defaultQuota), nil
}

// GetOrCreateBalance returns the stored balance, creating an empty one at
// full quota when none exists.
func (l *Ledger) GetOrCreateBalance(ctx context.Context, staffID string, year int) (leave.LeaveBalance, error) {
	balance, err := l.LeaveBalanceRepository.Get(ctx, staffID, year)
	if err == nil {
		return balance, nil
	}
	if !errors.Is(err, directory.ErrNotFound) {
		return leave.LeaveBalance{}, fmt.Errorf("failed to get leave balance: %w", err)
	}

	quota, err := l.quota(ctx, staffID)
	if err != nil {
		return leave.LeaveBalance{}, err
	}

	balance = leave.LeaveBalance{
		ID:        leave.BalanceID(staffID, year),
		StaffID:   staffID,
		Year:      year,
		Quota:     quota,
		Used:      0,
		Pending:   0,
		Remaining: quota,
		UpdatedAt: l.now(),
	}
	if err := l.LeaveBalanceRepository.Put(ctx, balance); err != nil {
		return leave.LeaveBalance{}, fmt.Errorf("failed to create leave balance: %w", err)
	}

	slog.Info("Created leave balance", "staff_id", staffID, "year", year, "quota", quota)
	return balance, nil
}

// Snapshot computes the current balance without persisting it. Requests
// whose ID is in exclude are left out.
func (l *Ledger) Snapshot(ctx context.Context, staffID string, year int, exclude ...string) (leave.LeaveBalance, error) {
	quota, err := l.quota(ctx, staffID)
	if err != nil {
		return leave.LeaveBalance{}, err
	}

	requests, err := l.LeaveRequestRepository.GetByStaffID(ctx, staffID)
	if err != nil {
		return leave.LeaveBalance{}, fmt.Errorf("failed to get leave requests by staff ID: %w", err)
	}
	if len(exclude) > 0 {
		kept := requests[:0:0]
		for _, r := range requests {
			if !containsID(exclude, r.ID) {
				kept = append(kept, r)
			}
		}
		requests = kept
	}

	return ComputeBalance(staffID, year, quota, requests), nil
}

// Recalculate recomputes the balance of staffID for year from every request
// and overwrites the stored document.
func (l *Ledger) Recalculate(ctx context.Context, staffID string, year int) (leave.LeaveBalance, error) {
	balance, err := l.Snapshot(ctx, staffID, year)
	if err != nil {
		return leave.LeaveBalance{}, err
	}
	balance.UpdatedAt = l.now()

	if err := l.LeaveBalanceRepository.Put(ctx, balance); err != nil {
		return leave.LeaveBalance{}, fmt.Errorf("failed to save leave balance: %w", err)
	}

	slog.Debug("Recalculated leave balance",
		"staff_id", staffID,
		"year", year,
		"quota", balance.Quota,
		"used", balance.Used,
		"pending", balance.Pending,
		"remaining", balance.Remaining,
	)
	return balance, nil
}

// HasEnoughBalance checks a prospective request for start..end against the
// remaining balance of year. Categories that do not consume quota always
// fit; Remaining still reports the year's paid balance.
func (l *Ledger) HasEnoughBalance(ctx context.Context, staffID string, year int, start, end time.Time, category leave.Category) (leave.BalanceCheck, error) {
	return l.hasEnoughBalance(ctx, staffID, year, start, end, category)
}

func (l *Ledger) hasEnoughBalance(ctx context.Context, staffID string, year int, start, end time.Time, category leave.Category, exclude ...string) (leave.BalanceCheck, error) {
	requested := leave.CalculateDays(start, end)

	balance, err := l.Snapshot(ctx, staffID, year, exclude...)
	if err != nil {
		return leave.BalanceCheck{}, err
	}

	return leave.BalanceCheck{
		Year:       year,
		HasBalance: !category.ConsumesQuota() || balance.Remaining >= requested,
		Remaining:  balance.Remaining,
		Requested:  requested,
	}, nil
}

// CheckRange runs the balance check for every year start..end touches. It
// returns the first year that falls short, otherwise the start year's check.
func (l *Ledger) CheckRange(ctx context.Context, staffID string, start, end time.Time, category leave.Category, exclude ...string) (leave.BalanceCheck, error) {
	var first leave.BalanceCheck
	for year := start.Year(); year <= end.Year(); year++ {
		check, err := l.hasEnoughBalance(ctx, staffID, year, start, end, category, exclude...)
		if err != nil {
			return leave.BalanceCheck{}, err
		}
		if !check.HasBalance {
			return check, nil
		}
		if year == start.Year() {
			first = check
		}
	}
	return first, nil
}

// RecalculateRange recalculates every year touched by start..end.
func (l *Ledger) RecalculateRange(ctx context.Context, staffID string, start, end time.Time) error {
	for year := start.Year(); year <= end.Year(); year++ {
		if _, err := l.Recalculate(ctx, staffID, year); err != nil {
			return err
		}
	}
	return nil
}

// WithClock replaces the time source used for timestamps.
func (l *Ledger) WithClock(now func() time.Time) *Ledger {
	l.now = now
	return l
}

func containsID(ids []string, id string) bool {
	for _, candidate := range ids {
		if candidate == id {
			return true
		}
	}
	return false
}
