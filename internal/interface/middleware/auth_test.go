package middleware

import (
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inkpress/inkpress/pkg/helpers"
)

func newAuthRouter(t *testing.T) (*gin.Engine, *helpers.JWTManager) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	jwt := helpers.NewJWTManager("test-secret", time.Hour)

	r := gin.New()
	authed := r.Group("/", Authenticate(jwt))
	authed.GET("/me", func(c *gin.Context) {
		c.String(http.StatusOK, strconv.FormatUint(uint64(UserID(c)), 10))
	})
	admin := r.Group("/admin", Authenticate(jwt), RequireRole("ADMIN"))
	admin.GET("/ping", func(c *gin.Context) { c.String(http.StatusOK, "pong") })
	return r, jwt
}

func TestAuthenticateMissingHeader(t *testing.T) {
	r, _ := newAuthRouter(t)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthenticateMalformedHeader(t *testing.T) {
	r, jwt := newAuthRouter(t)
	token, _, err := jwt.Generate(7, "a@b.c", "USER")
	require.NoError(t, err)

	for _, header := range []string{"Token " + token, token, "Bearer"} {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/me", nil)
		req.Header.Set("Authorization", header)
		r.ServeHTTP(w, req)
		assert.Equal(t, http.StatusUnauthorized, w.Code, "header %q", header)
	}
}

func TestAuthenticateInvalidToken(t *testing.T) {
	r, _ := newAuthRouter(t)
	foreign := helpers.NewJWTManager("other-secret", time.Hour)
	token, _, err := foreign.Generate(7, "a@b.c", "USER")
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthenticateValidToken(t *testing.T) {
	r, jwt := newAuthRouter(t)
	token, _, err := jwt.Generate(7, "a@b.c", "USER")
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", "bearer "+token) // scheme is case-insensitive
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "7", w.Body.String())
}

func TestRequireRole(t *testing.T) {
	r, jwt := newAuthRouter(t)

	userToken, _, err := jwt.Generate(7, "a@b.c", "USER")
	require.NoError(t, err)
	adminToken, _, err := jwt.Generate(8, "root@b.c", "ADMIN")
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/admin/ping", nil)
	req.Header.Set("Authorization", "Bearer "+userToken)
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/admin/ping", nil)
	req.Header.Set("Authorization", "Bearer "+adminToken)
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRateLimitFailsOpenWithoutRedis(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/ping", RateLimit(nil, 1, time.Minute, KeyByIP()), func(c *gin.Context) {
		c.String(http.StatusOK, "pong")
	})

	for i := 0; i < 5; i++ {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))
		assert.Equal(t, http.StatusOK, w.Code)
	}
}
