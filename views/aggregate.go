// Package views derives display values from fetched attendance data. All
// functions are pure: they take the record collection a view fetched, never
// mutate it, and are recomputed on every call. Source lists are small and
// refetched wholesale, so there is no caching to invalidate.
package views

import (
	"sort"
	"strconv"
	"strings"
	"time"

	v1 "churchtrack.com/churchtrack/churchtrack/v1"
	"churchtrack.com/churchtrack/utils"
)

type Stats struct {
	Total   int `json:"total"`
	Present int `json:"present"`
	Late    int `json:"late"`
	Absent  int `json:"absent"`
}

// ComputeStats counts records by status. Total is the full input length;
// a record with an unrecognized status still counts toward Total but lands
// in no bucket.
func ComputeStats(records []v1.AttendanceRecord) Stats {
	stats := Stats{Total: len(records)}
	for _, r := range records {
		switch r.Status {
		case v1.StatusPresent:
			stats.Present++
		case v1.StatusLate:
			stats.Late++
		case v1.StatusAbsent:
			stats.Absent++
		}
	}
	return stats
}

// RecentN returns the n most recent records, newest first. The sort is
// stable, so records with equal timestamps keep their fetch order. Records
// whose CheckedAt cannot be parsed are treated as earliest and sort last.
func RecentN(records []v1.AttendanceRecord, n int) []v1.AttendanceRecord {
	sorted := make([]v1.AttendanceRecord, len(records))
	copy(sorted, records)

	sort.SliceStable(sorted, func(i, j int) bool {
		return checkedAt(sorted[i]).After(checkedAt(sorted[j]))
	})

	if n < 0 {
		n = 0
	}
	if n < len(sorted) {
		sorted = sorted[:n]
	}
	return sorted
}

func checkedAt(r v1.AttendanceRecord) time.Time {
	t, err := utils.ParseISOTime(r.CheckedAt)
	if err != nil {
		return time.Time{}
	}
	return *t
}

// AllServices matches every record when used as Criteria.ServiceID.
const AllServices = "all"

type Criteria struct {
	ServiceID     string
	NameSubstring string
}

// Filter projects records through both criteria, ANDed. An empty result is
// a valid outcome, distinct from "not yet loaded" (nil).
func Filter(records []v1.AttendanceRecord, c Criteria) []v1.AttendanceRecord {
	name := strings.ToLower(strings.TrimSpace(c.NameSubstring))
	return utils.Filter(records, func(r v1.AttendanceRecord) bool {
		if c.ServiceID != "" && c.ServiceID != AllServices &&
			strconv.FormatInt(r.ServiceID, 10) != c.ServiceID {
			return false
		}
		return name == "" || strings.Contains(strings.ToLower(r.UserName), name)
	})
}

var statusLabels = map[string]string{
	v1.StatusPresent: "Present",
	v1.StatusLate:    "Late",
	v1.StatusAbsent:  "Absent",
}

// StatusLabel maps the three known statuses to display labels. Anything
// else passes through unchanged as its own label.
func StatusLabel(status string) string {
	if label, ok := statusLabels[status]; ok {
		return label
	}
	return status
}
