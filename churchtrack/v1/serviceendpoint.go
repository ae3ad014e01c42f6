package v1

import "encoding/json"

type Service struct {
	ID                 int64  `json:"id"`
	Name               string `json:"name"`
	ServiceTime        string `json:"serviceTime"`
	Type               string `json:"type"`
	Active             bool   `json:"active"`
	CanCheckAttendance *bool  `json:"canCheckAttendance,omitempty"`
}

type ServiceEndpoint struct {
	transport *Transport
}

// All returns every registered service, active or not.
func (ep *ServiceEndpoint) All() ([]Service, error) {
	return ep.fetch("/services/all")
}

// Active returns only services currently open for attendance.
func (ep *ServiceEndpoint) Active() ([]Service, error) {
	return ep.fetch("/services")
}

func (ep *ServiceEndpoint) fetch(path string) ([]Service, error) {
	resp, err := ep.transport.Get(path, nil)
	if err != nil {
		return nil, err
	}

	var services []Service
	if err := json.Unmarshal(resp.Data, &services); err != nil {
		return nil, err
	}
	return services, nil
}
