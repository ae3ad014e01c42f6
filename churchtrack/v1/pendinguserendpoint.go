package v1

import (
	"encoding/json"
	"fmt"
)

// PendingUser is a pre-registration roster entry: someone expected to
// enroll who has no full account yet.
type PendingUser struct {
	ID        int64   `json:"id"`
	Name      string  `json:"name"`
	Phone     *string `json:"phone,omitempty"`
	Email     *string `json:"email,omitempty"`
	Notes     *string `json:"notes,omitempty"`
	Active    *bool   `json:"active,omitempty"`
	CreatedAt string  `json:"createdAt"`
	UpdatedAt string  `json:"updatedAt,omitempty"`
}

type PendingUserRequest struct {
	Name  string `json:"name"`
	Phone string `json:"phone,omitempty"`
	Email string `json:"email,omitempty"`
	Notes string `json:"notes,omitempty"`
}

type PendingUserEndpoint struct {
	transport *Transport
}

func (ep *PendingUserEndpoint) List() ([]PendingUser, error) {
	resp, err := ep.transport.Get("/pending-users", nil)
	if err != nil {
		return nil, err
	}

	var users []PendingUser
	if err := json.Unmarshal(resp.Data, &users); err != nil {
		return nil, err
	}
	return users, nil
}

func (ep *PendingUserEndpoint) Create(req PendingUserRequest) (*PendingUser, error) {
	resp, err := ep.transport.Post("/pending-users", req, nil)
	if err != nil {
		return nil, err
	}

	var created PendingUser
	if err := json.Unmarshal(resp.Data, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (ep *PendingUserEndpoint) Delete(id int64) error {
	_, err := ep.transport.Delete(fmt.Sprintf("/pending-users/%d", id), nil)
	return err
}
