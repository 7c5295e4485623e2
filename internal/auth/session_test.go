package auth

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupStore(t *testing.T) (*SessionStore, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	return NewSessionStore(client), mr
}

func TestSessionStore(t *testing.T) {
	store, mr := setupStore(t)
	ctx := context.Background()

	t.Run("round-trips a session", func(t *testing.T) {
		id, err := store.Create(ctx, "a@x.edu", RoleStudent)
		require.NoError(t, err)
		require.NotEmpty(t, id)

		sess, err := store.Get(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, "a@x.edu", sess.Email)
		assert.Equal(t, RoleStudent, sess.Role)
	})

	t.Run("unknown id maps to ErrSessionNotFound", func(t *testing.T) {
		_, err := store.Get(ctx, "nope")
		assert.ErrorIs(t, err, ErrSessionNotFound)
	})

	t.Run("expires after the TTL", func(t *testing.T) {
		id, err := store.Create(ctx, "a@x.edu", RoleStudent)
		require.NoError(t, err)

		mr.FastForward(SessionTTL + 1)

		_, err = store.Get(ctx, id)
		assert.ErrorIs(t, err, ErrSessionNotFound)
	})

	t.Run("delete removes the session", func(t *testing.T) {
		id, err := store.Create(ctx, "a@x.edu", RoleStudent)
		require.NoError(t, err)

		require.NoError(t, store.Delete(ctx, id))
		_, err = store.Get(ctx, id)
		assert.ErrorIs(t, err, ErrSessionNotFound)
	})
}

func TestRoleFor(t *testing.T) {
	h := NewHandler(nil, []string{"m.shaikh@aischool.net"}, false)

	assert.Equal(t, RoleStudent, h.RoleFor("a@x.edu"))
	assert.Equal(t, RoleTeacher, h.RoleFor("teacher.smith@x.edu"))
	assert.Equal(t, RoleTeacher, h.RoleFor("Teacher1@x.edu"))
	assert.Equal(t, RoleTeacher, h.RoleFor("M.Shaikh@aischool.net"))
}

func loginRouter(t *testing.T) (*gin.Engine, *SessionStore) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	store, _ := setupStore(t)
	h := NewHandler(store, nil, false)

	r := gin.New()
	h.Register(r.Group("/api/auth"))
	r.GET("/api/me", RequireSession(store), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"email": c.GetString(CtxEmail), "role": c.GetString(CtxRole)})
	})
	r.GET("/api/teacher/ping", RequireSession(store), RequireTeacher(), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})
	return r, store
}

func doLogin(t *testing.T, r *gin.Engine, email string) *http.Cookie {
	t.Helper()
	body, _ := json.Marshal(gin.H{"email": email})
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	for _, c := range w.Result().Cookies() {
		if c.Name == CookieName {
			return c
		}
	}
	t.Fatal("session cookie not set")
	return nil
}

func TestLoginFlow(t *testing.T) {
	r, _ := loginRouter(t)

	t.Run("rejects malformed emails", func(t *testing.T) {
		body, _ := json.Marshal(gin.H{"email": "not-an-email"})
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/auth/login", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("issues a session cookie and resolves it", func(t *testing.T) {
		cookie := doLogin(t, r, "a@x.edu")

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/me", nil)
		req.AddCookie(cookie)
		r.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"a@x.edu"`)
		assert.Contains(t, w.Body.String(), RoleStudent)
	})

	t.Run("missing session gets 401", func(t *testing.T) {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/me", nil))
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("students get 403 on teacher routes", func(t *testing.T) {
		cookie := doLogin(t, r, "a@x.edu")

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/teacher/ping", nil)
		req.AddCookie(cookie)
		r.ServeHTTP(w, req)
		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("teachers pass the role gate", func(t *testing.T) {
		cookie := doLogin(t, r, "teacher.lee@x.edu")

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/teacher/ping", nil)
		req.AddCookie(cookie)
		r.ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("logout invalidates the session", func(t *testing.T) {
		cookie := doLogin(t, r, "a@x.edu")

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/auth/logout", nil)
		req.AddCookie(cookie)
		r.ServeHTTP(w, req)
		require.Equal(t, http.StatusOK, w.Code)

		w = httptest.NewRecorder()
		req = httptest.NewRequest(http.MethodGet, "/api/me", nil)
		req.AddCookie(cookie)
		r.ServeHTTP(w, req)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}
