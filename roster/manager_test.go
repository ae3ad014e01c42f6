package roster

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	v1 "churchtrack.com/churchtrack/churchtrack/v1"
	"churchtrack.com/churchtrack/session"
	"github.com/stretchr/testify/assert"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name      string
		form      Form
		wantField string
	}{
		{
			name:      "empty name rejected",
			form:      Form{Name: "", Phone: "010-0000-0000"},
			wantField: "name",
		},
		{
			name:      "whitespace-only name rejected",
			form:      Form{Name: "   ", Phone: "010-0000-0000"},
			wantField: "name",
		},
		{
			name:      "no contact rejected",
			form:      Form{Name: "Kim", Phone: "", Email: ""},
			wantField: "contact",
		},
		{
			name:      "whitespace-only contact rejected",
			form:      Form{Name: "Kim", Phone: "  ", Email: " "},
			wantField: "contact",
		},
		{
			name: "email alone accepted",
			form: Form{Name: "Kim", Phone: "", Email: "a@b.com"},
		},
		{
			name: "phone alone accepted",
			form: Form{Name: "Kim", Phone: "010-1234-5678"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(tt.form)
			if tt.wantField == "" {
				assert.NoError(t, err)
				return
			}
			var vErr *ValidationError
			assert.ErrorAs(t, err, &vErr)
			assert.Equal(t, tt.wantField, vErr.Field)
		})
	}
}

// rosterBackend is a fake pending-users backend that counts mutations.
type rosterBackend struct {
	users   []v1.PendingUser
	creates int
	deletes int
	lists   int
}

func (b *rosterBackend) handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /pending-users", func(w http.ResponseWriter, r *http.Request) {
		b.lists++
		json.NewEncoder(w).Encode(b.users)
	})
	mux.HandleFunc("POST /pending-users", func(w http.ResponseWriter, r *http.Request) {
		b.creates++
		var req v1.PendingUserRequest
		json.NewDecoder(r.Body).Decode(&req)
		created := v1.PendingUser{ID: int64(len(b.users) + 1), Name: req.Name}
		b.users = append(b.users, created)
		json.NewEncoder(w).Encode(created)
	})
	mux.HandleFunc("DELETE /pending-users/{id}", func(w http.ResponseWriter, r *http.Request) {
		b.deletes++
		w.WriteHeader(http.StatusNoContent)
	})
	return mux
}

func newTestManager(t *testing.T, backend *rosterBackend, confirmed bool) (*Manager, *httptest.Server) {
	t.Helper()
	server := httptest.NewServer(backend.handler())
	t.Cleanup(server.Close)

	store := session.NewStore(session.NewMemoryStore())
	err := store.Establish(session.Session{
		Token: "tok",
		User:  session.User{Name: "Administrator", Role: session.RoleAdmin},
	})
	assert.NoError(t, err)

	client := v1.NewChurchTrackClient(server.URL, store, nil)
	manager := NewManager(client.PendingUsers, ConfirmerFunc(func(string) bool {
		return confirmed
	}))
	return manager, server
}

func TestCreateValidatesBeforeAnyNetworkCall(t *testing.T) {
	backend := &rosterBackend{}
	manager, _ := newTestManager(t, backend, true)

	_, err := manager.Create(Form{Name: "", Phone: "010-0000-0000"})

	var vErr *ValidationError
	assert.ErrorAs(t, err, &vErr)
	assert.Equal(t, 0, backend.creates, "validation failures must not reach the network")
	assert.Equal(t, 0, backend.lists)
}

func TestCreateReloadsListAfterSubmit(t *testing.T) {
	backend := &rosterBackend{}
	manager, _ := newTestManager(t, backend, true)

	users, err := manager.Create(Form{Name: "Kim", Email: "kim@example.com"})
	assert.NoError(t, err)

	assert.Equal(t, 1, backend.creates)
	assert.Equal(t, 1, backend.lists, "a successful create triggers a full reload")
	assert.Len(t, users, 1)
	assert.Equal(t, "Kim", users[0].Name)
}

func TestDeleteDeclinedIsNoOp(t *testing.T) {
	existing := []v1.PendingUser{{ID: 42, Name: "Kim"}}
	backend := &rosterBackend{users: existing}
	manager, _ := newTestManager(t, backend, false)

	users, err := manager.Delete(existing, 42)

	assert.NoError(t, err)
	assert.Equal(t, existing, users, "declined delete leaves the list unchanged")
	assert.Equal(t, 0, backend.deletes, "declined delete must not issue the request")
	assert.Equal(t, 0, backend.lists)
}

func TestDeleteConfirmedIssuesDeleteThenReload(t *testing.T) {
	existing := []v1.PendingUser{{ID: 42, Name: "Kim"}}
	backend := &rosterBackend{users: existing}
	manager, _ := newTestManager(t, backend, true)

	_, err := manager.Delete(existing, 42)

	assert.NoError(t, err)
	assert.Equal(t, 1, backend.deletes)
	assert.Equal(t, 1, backend.lists, "a successful delete triggers a full reload")
}

func TestDeleteFailureKeepsPriorList(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"message":"backend down"}`))
	}))
	t.Cleanup(server.Close)

	store := session.NewStore(session.NewMemoryStore())
	assert.NoError(t, store.Establish(session.Session{
		Token: "tok",
		User:  session.User{Name: "Administrator", Role: session.RoleAdmin},
	}))
	client := v1.NewChurchTrackClient(server.URL, store, nil)
	manager := NewManager(client.PendingUsers, ConfirmerFunc(func(string) bool { return true }))

	existing := []v1.PendingUser{{ID: 42, Name: "Kim"}}
	users, err := manager.Delete(existing, 42)

	var reqErr *v1.RequestFailedError
	assert.ErrorAs(t, err, &reqErr)
	assert.Equal(t, existing, users, "failed delete surfaces the error and keeps the prior list")
}
