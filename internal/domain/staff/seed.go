package staff

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ParseSeed parses staff records written as id:name:position[:role[:quota]],
// separated by semicolons. Empty entries are skipped.
func ParseSeed(seed string, now time.Time) ([]Staff, error) {
	var records []Staff

	for i, entry := range strings.Split(seed, ";") {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}

		fields := strings.Split(entry, ":")
		if len(fields) < 3 || len(fields) > 5 {
			return nil, fmt.Errorf("staff seed entry %d: want id:name:position[:role[:quota]], got %q", i+1, entry)
		}
		for j := range fields {
			fields[j] = strings.TrimSpace(fields[j])
		}
		if fields[0] == "" {
			return nil, fmt.Errorf("staff seed entry %d: id is required", i+1)
		}

		s := Staff{
			ID:        fields[0],
			Name:      fields[1],
			Position:  fields[2],
			CreatedAt: now,
			UpdatedAt: now,
		}
		if len(fields) > 3 && fields[3] != "" {
			role := fields[3]
			s.Role = &role
		}
		if len(fields) > 4 && fields[4] != "" {
			quota, err := strconv.Atoi(fields[4])
			if err != nil {
				return nil, fmt.Errorf("staff seed entry %d: invalid quota %q: %w", i+1, fields[4], err)
			}
			s.LeaveQuota = &quota
		}
		records = append(records, s)
	}
	return records, nil
}
