package params

import (
	"fmt"
	"time"
)

// DateRange bounds a query by meeting start time. Both bounds are inclusive
// and optional.
type DateRange struct {
	StartDate *time.Time
	EndDate   *time.Time
}

// ParseDateRange parses optional RFC3339 bounds. Timestamps without an
// explicit offset are rejected.
func ParseDateRange(startStr, endStr string) (DateRange, error) {
	var dr DateRange

	if startStr != "" {
		t, err := time.Parse(time.RFC3339, startStr)
		if err != nil {
			return dr, fmt.Errorf("invalid start_date format, expected RFC3339 (e.g. 2025-12-01T10:00:00+00:00)")
		}
		dr.StartDate = &t
	}

	if endStr != "" {
		t, err := time.Parse(time.RFC3339, endStr)
		if err != nil {
			return dr, fmt.Errorf("invalid end_date format, expected RFC3339 (e.g. 2025-12-01T10:00:00+00:00)")
		}
		dr.EndDate = &t
	}

	return dr, nil
}
