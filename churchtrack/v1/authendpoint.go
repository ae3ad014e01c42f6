package v1

import (
	"encoding/json"

	"churchtrack.com/churchtrack/session"
)

type LoginResponse struct {
	Token    string `json:"token"`
	Username string `json:"username"`
	Name     string `json:"name"`
	Role     string `json:"role"`
}

type AuthEndpoint struct {
	transport *Transport
	sessions  *session.Store
}

// Login authenticates against the backend and establishes the console
// session. The role check happens client-side before any session state is
// written: a non-ADMIN account gets *session.InvalidRoleError and the store
// stays empty.
func (ep *AuthEndpoint) Login(username, password string) (*LoginResponse, error) {
	payload := map[string]string{"username": username, "password": password}

	resp, err := ep.transport.Post("/auth/login", payload, nil)
	if err != nil {
		return nil, err
	}

	var result LoginResponse
	if err := json.Unmarshal(resp.Data, &result); err != nil {
		return nil, err
	}

	if err := ep.sessions.Establish(session.Session{
		Token: result.Token,
		User:  session.User{Name: result.Name, Role: result.Role},
	}); err != nil {
		return nil, err
	}

	return &result, nil
}

// Logout clears the persisted session. Purely local; the backend token is
// simply abandoned.
func (ep *AuthEndpoint) Logout() {
	ep.sessions.Teardown()
}
