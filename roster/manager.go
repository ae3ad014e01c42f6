// Package roster manages the pre-registration list: members awaiting full
// enrollment, created and deleted by explicit admin action. The backend is
// the sole source of truth for generated fields, so every mutation is
// followed by a full list reload instead of patching local state.
package roster

import (
	"fmt"
	"strings"

	v1 "churchtrack.com/churchtrack/churchtrack/v1"
)

type Form struct {
	Name  string
	Phone string
	Email string
	Notes string
}

type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// Confirmer approves destructive roster operations before the request is
// issued. The web console passes through the browser's confirmation; tests
// inject a canned answer.
type Confirmer interface {
	Confirm(prompt string) bool
}

type ConfirmerFunc func(prompt string) bool

func (f ConfirmerFunc) Confirm(prompt string) bool {
	return f(prompt)
}

// Validate runs entirely before any network call. Name is required, and at
// least one of phone or email must be supplied; whitespace-only values
// count as empty.
func Validate(form Form) error {
	if strings.TrimSpace(form.Name) == "" {
		return &ValidationError{Field: "name", Message: "name is required"}
	}
	if strings.TrimSpace(form.Phone) == "" && strings.TrimSpace(form.Email) == "" {
		return &ValidationError{Field: "contact", Message: "either phone or email is required"}
	}
	return nil
}

type Manager struct {
	endpoint *v1.PendingUserEndpoint
	confirm  Confirmer
}

func NewManager(endpoint *v1.PendingUserEndpoint, confirm Confirmer) *Manager {
	return &Manager{endpoint: endpoint, confirm: confirm}
}

func (m *Manager) List() ([]v1.PendingUser, error) {
	return m.endpoint.List()
}

// Create validates, submits, then reloads the full list. Nothing is
// inserted locally; the returned list is whatever the backend now holds.
func (m *Manager) Create(form Form) ([]v1.PendingUser, error) {
	if err := Validate(form); err != nil {
		return nil, err
	}

	req := v1.PendingUserRequest{
		Name:  strings.TrimSpace(form.Name),
		Phone: strings.TrimSpace(form.Phone),
		Email: strings.TrimSpace(form.Email),
		Notes: strings.TrimSpace(form.Notes),
	}
	if _, err := m.endpoint.Create(req); err != nil {
		return nil, err
	}
	return m.endpoint.List()
}

// Delete asks for confirmation before issuing the destructive call. A
// declined prompt returns the current list untouched with no request sent;
// a failed delete also leaves the prior list in place and surfaces the
// error. Success reloads the full list.
func (m *Manager) Delete(current []v1.PendingUser, id int64) ([]v1.PendingUser, error) {
	if !m.confirm.Confirm(fmt.Sprintf("delete pending user %d?", id)) {
		return current, nil
	}
	if err := m.endpoint.Delete(id); err != nil {
		return current, err
	}
	return m.endpoint.List()
}
