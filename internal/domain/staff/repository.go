package staff

import "context"

// StaffRepository reads staff records. The core never writes them.
type StaffRepository interface {
	GetByID(ctx context.Context, id string) (Staff, error)
}
