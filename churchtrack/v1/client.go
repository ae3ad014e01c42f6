package v1

import "churchtrack.com/churchtrack/session"

type ChurchTrackClient struct {
	Transport    *Transport
	Auth         *AuthEndpoint
	Attendance   *AttendanceEndpoint
	Services     *ServiceEndpoint
	PendingUsers *PendingUserEndpoint
}

// NewChurchTrackClient initializes the API client. All endpoints share one
// transport, so the bearer token and the unauthenticated teardown behave
// the same on every call.
func NewChurchTrackClient(baseURL string, sessions *session.Store, onUnauthenticated func()) *ChurchTrackClient {
	t := NewTransport(baseURL, sessions, onUnauthenticated)
	return &ChurchTrackClient{
		Transport:    t,
		Auth:         &AuthEndpoint{transport: t, sessions: sessions},
		Attendance:   &AttendanceEndpoint{transport: t},
		Services:     &ServiceEndpoint{transport: t},
		PendingUsers: &PendingUserEndpoint{transport: t},
	}
}
