package memory

import (
	"github.com/learnhub-center/backoffice/internal/domain/staff"
)

// Seed loads staff records into the directory.
func (d *Directory) Seed(records []staff.Staff) {
	for _, s := range records {
		d.PutStaff(s)
	}
}
