package leave

import (
	"fmt"
	"time"
)

// DateLayout is the calendar-date format used for leave dates.
const DateLayout = "2006-01-02"

// Category of leave. Only CategoryPaid consumes quota.
type Category string

const (
	CategoryPaid     Category = "paid"
	CategorySick     Category = "sick"
	CategoryPersonal Category = "personal"
	CategoryUnpaid   Category = "unpaid"
)

var AllCategories = []Category{CategoryPaid, CategorySick, CategoryPersonal, CategoryUnpaid}

func (c Category) Valid() bool {
	switch c {
	case CategoryPaid, CategorySick, CategoryPersonal, CategoryUnpaid:
		return true
	default:
		return false
	}
}

// ConsumesQuota reports whether requests of this category count against the balance.
func (c Category) ConsumesQuota() bool {
	return c == CategoryPaid
}

type LeaveRequestStatus string

const (
	LeaveRequestStatusPending  LeaveRequestStatus = "pending"
	LeaveRequestStatusApproved LeaveRequestStatus = "approved"
	LeaveRequestStatusRejected LeaveRequestStatus = "rejected"
)

func (s LeaveRequestStatus) Valid() bool {
	switch s {
	case LeaveRequestStatusPending, LeaveRequestStatusApproved, LeaveRequestStatusRejected:
		return true
	default:
		return false
	}
}

// IsTerminal reports whether no transition leaves this status.
func (s LeaveRequestStatus) IsTerminal() bool {
	return s == LeaveRequestStatusApproved || s == LeaveRequestStatusRejected
}

// LeaveRequest entity
type LeaveRequest struct {
	ID        string
	StaffID   string
	StaffName string

	// Inclusive calendar dates, stored at midnight UTC.
	StartDate time.Time
	EndDate   time.Time

	Category Category
	Reason   string

	Status          LeaveRequestStatus
	ApprovedBy      *string // approver staff ID, set on approve and reject
	ApproverName    *string
	ApprovedAt      *time.Time
	RejectionReason *string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Days returns the inclusive day count of the request.
func (r LeaveRequest) Days() int {
	return CalculateDays(r.StartDate, r.EndDate)
}

func (r LeaveRequest) IsPending() bool {
	return r.Status == LeaveRequestStatusPending
}

// OverlapsYear reports whether the request touches any day of year.
func (r LeaveRequest) OverlapsYear(year int) bool {
	first := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	last := time.Date(year, time.December, 31, 0, 0, 0, 0, time.UTC)
	return !r.StartDate.After(last) && !r.EndDate.Before(first)
}

// LeaveBalance is the derived paid-leave state of one staff member for one year.
// Remaining always equals Quota - Used - Pending.
type LeaveBalance struct {
	ID        string // staffId_year
	StaffID   string
	Year      int
	Quota     int
	Used      int
	Pending   int
	Remaining int

	UpdatedAt time.Time
}

// BalanceID is the composite document key of a balance.
func BalanceID(staffID string, year int) string {
	return fmt.Sprintf("%s_%d", staffID, year)
}

// BalanceCheck is the outcome of checking a prospective request against the balance.
type BalanceCheck struct {
	Year       int
	HasBalance bool
	Remaining  int
	Requested  int
}

// Approver identifies who decided a request.
type Approver struct {
	ID   string
	Name string
}

// ParseDate parses a YYYY-MM-DD date into midnight UTC.
func ParseDate(s string) (time.Time, error) {
	return time.Parse(DateLayout, s)
}

// TruncateDate drops the time of day, keeping t's local calendar date.
func TruncateDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// CalculateDays returns the number of calendar days from start to end,
// both inclusive. A range ending before it starts has zero days.
func CalculateDays(start, end time.Time) int {
	s, e := TruncateDate(start), TruncateDate(end)
	if e.Before(s) {
		return 0
	}
	return int(dayNumber(e)-dayNumber(s)) + 1
}

// DaysBetween returns the whole calendar days from a to b; negative when b is before a.
func DaysBetween(a, b time.Time) int {
	return int(dayNumber(TruncateDate(b)) - dayNumber(TruncateDate(a)))
}

// dayNumber counts days since the Unix epoch for a UTC midnight. Unlike
// time.Duration it does not saturate within the YYYY-MM-DD range.
func dayNumber(t time.Time) int64 {
	return t.Unix() / secondsPerDay
}

const secondsPerDay = 24 * 60 * 60
