package middlewares

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"churchtrack.com/churchtrack/guard"
	"churchtrack.com/churchtrack/session"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func newRouter(g *guard.Guard) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/login", LoginOnly(g), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	r.GET("/dashboard", RequireAuth(g), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	return r
}

func get(r *gin.Engine, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	r.ServeHTTP(w, req)
	return w
}

func TestUnauthenticatedVisitorRedirectsToLogin(t *testing.T) {
	g := guard.New(session.NewStore(session.NewMemoryStore()))
	r := newRouter(g)

	w := get(r, "/dashboard")
	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, guard.LoginPath, w.Header().Get("Location"))

	assert.Equal(t, http.StatusOK, get(r, "/login").Code)
}

func TestAuthenticatedVisitorBouncesOffLogin(t *testing.T) {
	store := session.NewStore(session.NewMemoryStore())
	assert.NoError(t, store.Establish(session.Session{
		Token: "tok",
		User:  session.User{Name: "Administrator", Role: session.RoleAdmin},
	}))
	g := guard.New(store)
	r := newRouter(g)

	w := get(r, "/login")
	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, guard.DefaultPath, w.Header().Get("Location"))

	assert.Equal(t, http.StatusOK, get(r, "/dashboard").Code)
}
