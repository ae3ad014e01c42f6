package v1

import (
	"encoding/json"
	"fmt"
)

const (
	StatusPresent = "PRESENT"
	StatusLate    = "LATE"
	StatusAbsent  = "ABSENT"
)

// AttendanceRecord mirrors the backend's attendance response. Attendance
// determination (geofencing, late cutoffs) happens server-side; the console
// only reads the result. CheckedAt stays a string on the wire and is parsed
// where ordering matters.
type AttendanceRecord struct {
	ID          int64    `json:"id"`
	UserID      int64    `json:"userId"`
	UserName    string   `json:"userName"`
	ServiceID   int64    `json:"serviceId"`
	ServiceName string   `json:"serviceName"`
	Status      string   `json:"status"`
	Latitude    *float64 `json:"latitude,omitempty"`
	Longitude   *float64 `json:"longitude,omitempty"`
	Distance    *float64 `json:"distance,omitempty"` // meters from the venue
	CheckedAt   string   `json:"checkedAt"`
	Notes       *string  `json:"notes,omitempty"`
}

type AttendanceEndpoint struct {
	transport *Transport
}

func (ep *AttendanceEndpoint) All() ([]AttendanceRecord, error) {
	resp, err := ep.transport.Get("/attendance/all", nil)
	if err != nil {
		return nil, err
	}

	var records []AttendanceRecord
	if err := json.Unmarshal(resp.Data, &records); err != nil {
		return nil, err
	}
	return records, nil
}

func (ep *AttendanceEndpoint) ByService(serviceID int64) ([]AttendanceRecord, error) {
	resp, err := ep.transport.Get(fmt.Sprintf("/attendance/service/%d", serviceID), nil)
	if err != nil {
		return nil, err
	}

	var records []AttendanceRecord
	if err := json.Unmarshal(resp.Data, &records); err != nil {
		return nil, err
	}
	return records, nil
}
