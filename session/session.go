package session

import (
	"encoding/json"
	"fmt"
)

const RoleAdmin = "ADMIN"

// Fixed storage keys, matching the console's persisted-state contract.
const (
	tokenKey    = "token"
	userInfoKey = "userInfo"
)

type User struct {
	Name string `json:"name"`
	Role string `json:"role"`
}

// Session is the authenticated-admin context: the backend token plus the
// identity it was issued for.
type Session struct {
	Token string
	User  User
}

// InvalidRoleError is returned when a non-administrator account tries to
// establish a console session. It never reaches the network-failure path;
// the rejection happens before anything is persisted.
type InvalidRoleError struct {
	Role string
}

func (e *InvalidRoleError) Error() string {
	return fmt.Sprintf("administrator access required, account role is %q", e.Role)
}

// Store is the single source of truth for "is a session active". It is
// written only by Establish and Teardown; everything else reads.
type Store struct {
	kv KeyValue
}

func NewStore(kv KeyValue) *Store {
	return &Store{kv: kv}
}

// Establish persists a new session, unconditionally replacing any prior one.
// Accounts without the ADMIN role are rejected before any state is written.
func (s *Store) Establish(sess Session) error {
	if sess.User.Role != RoleAdmin {
		return &InvalidRoleError{Role: sess.User.Role}
	}
	info, err := json.Marshal(sess.User)
	if err != nil {
		return err
	}
	if err := s.kv.Set(tokenKey, sess.Token); err != nil {
		return err
	}
	return s.kv.Set(userInfoKey, string(info))
}

// Current returns the active session, or nil when none is established.
func (s *Store) Current() *Session {
	token, ok := s.kv.Get(tokenKey)
	if !ok || token == "" {
		return nil
	}
	sess := &Session{Token: token}
	if raw, ok := s.kv.Get(userInfoKey); ok {
		_ = json.Unmarshal([]byte(raw), &sess.User)
	}
	return sess
}

// Token reports the bearer token of the active session, if any.
func (s *Store) Token() (string, bool) {
	token, ok := s.kv.Get(tokenKey)
	return token, ok && token != ""
}

// Teardown clears all persisted session state. Calling it with no active
// session is a no-op.
func (s *Store) Teardown() {
	_ = s.kv.Delete(tokenKey)
	_ = s.kv.Delete(userInfoKey)
}
