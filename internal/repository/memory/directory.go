// Package memory is an in-process Directory for development and tests.
package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/learnhub-center/backoffice/internal/domain/directory"
	"github.com/learnhub-center/backoffice/internal/domain/leave"
	"github.com/learnhub-center/backoffice/internal/domain/staff"
)

const (
	staffCollection        = "staff"
	leaveRequestCollection = "leave_requests"
	leaveBalanceCollection = "leave_balances"
)

// Directory keeps every collection in maps guarded by one lock. Writes are
// last-write-wins per document.
type Directory struct {
	mu       sync.RWMutex
	staff    map[string]staff.Staff
	requests map[string]leave.LeaveRequest
	balances map[string]leave.LeaveBalance
	failures map[string]error
}

func NewDirectory() *Directory {
	return &Directory{
		staff:    make(map[string]staff.Staff),
		requests: make(map[string]leave.LeaveRequest),
		balances: make(map[string]leave.LeaveBalance),
		failures: make(map[string]error),
	}
}

// FailWith makes every operation on collection return err until cleared
// with a nil err.
func (d *Directory) FailWith(collection string, err error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if err == nil {
		delete(d.failures, collection)
		return
	}
	d.failures[collection] = err
}

func (d *Directory) failure(collection, op string) error {
	if err, ok := d.failures[collection]; ok {
		return directory.Wrap(collection, op, err)
	}
	return nil
}

// PutStaff stores or replaces a staff record.
func (d *Directory) PutStaff(s staff.Staff) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.staff[s.ID] = s
}

func (d *Directory) Staff() staff.StaffRepository {
	return staffRepository{d}
}

func (d *Directory) LeaveRequests() leave.LeaveRequestRepository {
	return leaveRequestRepository{d}
}

func (d *Directory) LeaveBalances() leave.LeaveBalanceRepository {
	return leaveBalanceRepository{d}
}

type staffRepository struct {
	d *Directory
}

func (r staffRepository) GetByID(_ context.Context, id string) (staff.Staff, error) {
	r.d.mu.RLock()
	defer r.d.mu.RUnlock()

	if err := r.d.failure(staffCollection, "get"); err != nil {
		return staff.Staff{}, err
	}
	s, ok := r.d.staff[id]
	if !ok {
		return staff.Staff{}, directory.ErrNotFound
	}
	return s, nil
}

type leaveRequestRepository struct {
	d *Directory
}

func (r leaveRequestRepository) Create(_ context.Context, request leave.LeaveRequest) (leave.LeaveRequest, error) {
	r.d.mu.Lock()
	defer r.d.mu.Unlock()

	if err := r.d.failure(leaveRequestCollection, "create"); err != nil {
		return leave.LeaveRequest{}, err
	}
	r.d.requests[request.ID] = request
	return request, nil
}

func (r leaveRequestRepository) GetByID(_ context.Context, id string) (leave.LeaveRequest, error) {
	r.d.mu.RLock()
	defer r.d.mu.RUnlock()

	if err := r.d.failure(leaveRequestCollection, "get"); err != nil {
		return leave.LeaveRequest{}, err
	}
	request, ok := r.d.requests[id]
	if !ok {
		return leave.LeaveRequest{}, directory.ErrNotFound
	}
	return request, nil
}

func (r leaveRequestRepository) GetByStaffID(ctx context.Context, staffID string) ([]leave.LeaveRequest, error) {
	return r.list("list by staff", leave.LeaveRequestFilter{StaffID: staffID})
}

func (r leaveRequestRepository) GetByStatus(ctx context.Context, status leave.LeaveRequestStatus) ([]leave.LeaveRequest, error) {
	return r.list("list by status", leave.LeaveRequestFilter{Status: string(status)})
}

func (r leaveRequestRepository) List(_ context.Context, filter leave.LeaveRequestFilter) ([]leave.LeaveRequest, error) {
	return r.list("list", filter)
}

// list returns matching requests newest start date first, like the SQL store.
func (r leaveRequestRepository) list(op string, filter leave.LeaveRequestFilter) ([]leave.LeaveRequest, error) {
	r.d.mu.RLock()
	defer r.d.mu.RUnlock()

	if err := r.d.failure(leaveRequestCollection, op); err != nil {
		return nil, err
	}

	var result []leave.LeaveRequest
	for _, request := range r.d.requests {
		if filter.Matches(request) {
			result = append(result, request)
		}
	}
	sort.Slice(result, func(i, j int) bool {
		if !result[i].StartDate.Equal(result[j].StartDate) {
			return result[i].StartDate.After(result[j].StartDate)
		}
		if !result[i].CreatedAt.Equal(result[j].CreatedAt) {
			return result[i].CreatedAt.After(result[j].CreatedAt)
		}
		return result[i].ID > result[j].ID
	})
	return result, nil
}

func (r leaveRequestRepository) Update(_ context.Context, request leave.LeaveRequest) error {
	r.d.mu.Lock()
	defer r.d.mu.Unlock()

	if err := r.d.failure(leaveRequestCollection, "update"); err != nil {
		return err
	}
	if _, ok := r.d.requests[request.ID]; !ok {
		return directory.ErrNotFound
	}
	r.d.requests[request.ID] = request
	return nil
}

func (r leaveRequestRepository) Delete(_ context.Context, id string) error {
	r.d.mu.Lock()
	defer r.d.mu.Unlock()

	if err := r.d.failure(leaveRequestCollection, "delete"); err != nil {
		return err
	}
	if _, ok := r.d.requests[id]; !ok {
		return directory.ErrNotFound
	}
	delete(r.d.requests, id)
	return nil
}

type leaveBalanceRepository struct {
	d *Directory
}

func (r leaveBalanceRepository) Get(_ context.Context, staffID string, year int) (leave.LeaveBalance, error) {
	r.d.mu.RLock()
	defer r.d.mu.RUnlock()

	if err := r.d.failure(leaveBalanceCollection, "get"); err != nil {
		return leave.LeaveBalance{}, err
	}
	balance, ok := r.d.balances[leave.BalanceID(staffID, year)]
	if !ok {
		return leave.LeaveBalance{}, directory.ErrNotFound
	}
	return balance, nil
}

func (r leaveBalanceRepository) Put(_ context.Context, balance leave.LeaveBalance) error {
	r.d.mu.Lock()
	defer r.d.mu.Unlock()

	if err := r.d.failure(leaveBalanceCollection, "put"); err != nil {
		return err
	}
	balance.ID = leave.BalanceID(balance.StaffID, balance.Year)
	r.d.balances[balance.ID] = balance
	return nil
}
