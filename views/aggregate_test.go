package views

import (
	"testing"

	v1 "churchtrack.com/churchtrack/churchtrack/v1"
	"github.com/stretchr/testify/assert"
)

func record(id int64, name string, serviceID int64, status, checkedAt string) v1.AttendanceRecord {
	return v1.AttendanceRecord{
		ID:        id,
		UserName:  name,
		ServiceID: serviceID,
		Status:    status,
		CheckedAt: checkedAt,
	}
}

func TestComputeStats(t *testing.T) {
	records := []v1.AttendanceRecord{
		record(1, "Kim", 1, v1.StatusPresent, "2025-10-12T11:00:00"),
		record(2, "Park", 1, v1.StatusPresent, "2025-10-12T11:05:00"),
		record(3, "Lee", 1, v1.StatusLate, "2025-10-12T11:20:00"),
		record(4, "Choi", 2, v1.StatusAbsent, "2025-10-12T12:00:00"),
		record(5, "Jung", 2, "EXCUSED", "2025-10-12T12:01:00"),
	}

	stats := ComputeStats(records)

	assert.Equal(t, len(records), stats.Total, "total is the full input length")
	assert.Equal(t, 2, stats.Present)
	assert.Equal(t, 1, stats.Late)
	assert.Equal(t, 1, stats.Absent)
	// The unrecognized status counts toward total but lands in no bucket.
	assert.Less(t, stats.Present+stats.Late+stats.Absent, stats.Total)
}

func TestComputeStatsEmpty(t *testing.T) {
	assert.Equal(t, Stats{}, ComputeStats(nil))
}

func TestRecentNOrdersNewestFirst(t *testing.T) {
	records := []v1.AttendanceRecord{
		record(1, "Kim", 1, v1.StatusPresent, "2025-10-12T10:00:00"),
		record(2, "Park", 1, v1.StatusPresent, "2025-10-12T12:00:00"),
		record(3, "Lee", 1, v1.StatusPresent, "2025-10-12T11:00:00"),
	}

	recent := RecentN(records, 2)

	assert.Len(t, recent, 2)
	assert.Equal(t, int64(2), recent[0].ID)
	assert.Equal(t, int64(3), recent[1].ID)

	// Input order is untouched.
	assert.Equal(t, int64(1), records[0].ID)
	assert.Equal(t, int64(2), records[1].ID)
}

func TestRecentNTiesKeepFetchOrder(t *testing.T) {
	records := []v1.AttendanceRecord{
		record(1, "Kim", 1, v1.StatusPresent, "2025-10-12T11:00:00"),
		record(2, "Park", 1, v1.StatusPresent, "2025-10-12T11:00:00"),
		record(3, "Lee", 1, v1.StatusPresent, "2025-10-12T11:00:00"),
	}

	recent := RecentN(records, 3)

	assert.Equal(t, int64(1), recent[0].ID)
	assert.Equal(t, int64(2), recent[1].ID)
	assert.Equal(t, int64(3), recent[2].ID)
}

func TestRecentNIsIdempotentOnSortedInput(t *testing.T) {
	records := []v1.AttendanceRecord{
		record(2, "Park", 1, v1.StatusPresent, "2025-10-12T12:00:00"),
		record(3, "Lee", 1, v1.StatusPresent, "2025-10-12T11:00:00"),
		record(1, "Kim", 1, v1.StatusPresent, "2025-10-12T10:00:00"),
	}

	once := RecentN(records, len(records))
	twice := RecentN(once, len(once))

	assert.Equal(t, once, twice)
}

func TestRecentNLargerThanInputReturnsAll(t *testing.T) {
	records := []v1.AttendanceRecord{
		record(1, "Kim", 1, v1.StatusPresent, "2025-10-12T10:00:00"),
		record(2, "Park", 1, v1.StatusPresent, "2025-10-12T12:00:00"),
	}

	recent := RecentN(records, 10)

	assert.Len(t, recent, 2)
	assert.Equal(t, int64(2), recent[0].ID)
}

func TestRecentNMalformedCheckedAtSortsLast(t *testing.T) {
	records := []v1.AttendanceRecord{
		record(1, "Kim", 1, v1.StatusPresent, "garbage"),
		record(2, "Park", 1, v1.StatusPresent, "2025-10-12T12:00:00"),
		record(3, "Lee", 1, v1.StatusPresent, ""),
		record(4, "Choi", 1, v1.StatusPresent, "2025-10-12T09:00:00"),
	}

	recent := RecentN(records, len(records))

	assert.Equal(t, int64(2), recent[0].ID)
	assert.Equal(t, int64(4), recent[1].ID)
	// Unparsable timestamps sort last, in fetch order.
	assert.Equal(t, int64(1), recent[2].ID)
	assert.Equal(t, int64(3), recent[3].ID)
}

func TestFilterIdentity(t *testing.T) {
	records := []v1.AttendanceRecord{
		record(1, "Kim", 1, v1.StatusPresent, "2025-10-12T10:00:00"),
		record(2, "Park", 2, v1.StatusLate, "2025-10-12T11:00:00"),
	}

	assert.Equal(t, records, Filter(records, Criteria{ServiceID: AllServices, NameSubstring: ""}))
	assert.Equal(t, records, Filter(records, Criteria{}))
}

func TestFilterByServiceAndName(t *testing.T) {
	records := []v1.AttendanceRecord{
		record(1, "Kim Minsu", 1, v1.StatusPresent, "2025-10-12T10:00:00"),
		record(2, "Park Jiyeon", 1, v1.StatusLate, "2025-10-12T11:00:00"),
		record(3, "Kim Minsu", 2, v1.StatusPresent, "2025-10-12T12:00:00"),
	}

	tests := []struct {
		name     string
		criteria Criteria
		wantIDs  []int64
	}{
		{
			name:     "service only",
			criteria: Criteria{ServiceID: "1"},
			wantIDs:  []int64{1, 2},
		},
		{
			name:     "name is case-insensitive substring",
			criteria: Criteria{ServiceID: AllServices, NameSubstring: "minSU"},
			wantIDs:  []int64{1, 3},
		},
		{
			name:     "both predicates ANDed",
			criteria: Criteria{ServiceID: "2", NameSubstring: "kim"},
			wantIDs:  []int64{3},
		},
		{
			name:     "empty result is valid",
			criteria: Criteria{ServiceID: "2", NameSubstring: "park"},
			wantIDs:  []int64{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Filter(records, tt.criteria)
			ids := make([]int64, 0, len(got))
			for _, r := range got {
				ids = append(ids, r.ID)
			}
			assert.Equal(t, tt.wantIDs, ids)
			assert.NotNil(t, got, "filtered result must be distinct from not-yet-loaded")
		})
	}
}

func TestStatusLabel(t *testing.T) {
	assert.Equal(t, "Present", StatusLabel(v1.StatusPresent))
	assert.Equal(t, "Late", StatusLabel(v1.StatusLate))
	assert.Equal(t, "Absent", StatusLabel(v1.StatusAbsent))
	assert.Equal(t, "EXCUSED", StatusLabel("EXCUSED"), "unknown statuses pass through unchanged")
}
