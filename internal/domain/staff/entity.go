package staff

import "time"

// Staff is the read-only view of a staff profile held in the Directory.
type Staff struct {
	ID       string
	Name     string
	Position string  // free-text job title
	Role     *string // explicit role code, takes precedence over Position
	// LeaveQuota overrides the center's default annual paid-leave allowance.
	LeaveQuota *int

	CreatedAt time.Time
	UpdatedAt time.Time
}

// QuotaOr returns the staff member's leave quota override, or fallback.
func (s Staff) QuotaOr(fallback int) int {
	if s.LeaveQuota != nil && *s.LeaveQuota >= 0 {
		return *s.LeaveQuota
	}
	return fallback
}
