package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"anaesthesia-staffing-service/pkg/utils"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newRouter() *gin.Engine {
	r := gin.New()
	r.GET("/read", AuthMiddleware(), func(c *gin.Context) {
		c.String(http.StatusOK, Actor(c))
	})
	r.POST("/write", AuthMiddleware(), RequireAdmin(), func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})
	return r
}

func token(t *testing.T, role string) string {
	t.Helper()
	tok, err := utils.GenerateAccessToken("user-1", "user@health.gov.lk", role, time.Minute)
	require.NoError(t, err)
	return "Bearer " + tok
}

func TestAuthMiddleware(t *testing.T) {
	utils.InitJWT("middleware-secret")
	r := newRouter()

	tests := []struct {
		name   string
		method string
		path   string
		header string
		status int
	}{
		{"missing header", http.MethodGet, "/read", "", http.StatusUnauthorized},
		{"wrong scheme", http.MethodGet, "/read", "Basic abc", http.StatusUnauthorized},
		{"garbage token", http.MethodGet, "/read", "Bearer not.a.jwt", http.StatusUnauthorized},
		{"viewer reads", http.MethodGet, "/read", token(t, "VIEWER"), http.StatusOK},
		{"viewer cannot write", http.MethodPost, "/write", token(t, "VIEWER"), http.StatusForbidden},
		{"admin writes", http.MethodPost, "/write", token(t, utils.RoleAdmin), http.StatusOK},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.path, nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()

			r.ServeHTTP(w, req)

			assert.Equal(t, tt.status, w.Code)
		})
	}
}

func TestAuthMiddlewareSetsActor(t *testing.T) {
	utils.InitJWT("middleware-secret")
	r := newRouter()

	req := httptest.NewRequest(http.MethodGet, "/read", nil)
	req.Header.Set("Authorization", token(t, "VIEWER"))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, "user@health.gov.lk", w.Body.String())
}

func TestRequireAdminWithoutAuth(t *testing.T) {
	r := gin.New()
	r.POST("/write", RequireAdmin(), func(c *gin.Context) { c.Status(http.StatusOK) })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/write", nil))

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestCORS(t *testing.T) {
	r := gin.New()
	r.Use(CORS([]string{"https://staffing.example"}))
	r.GET("/health", func(c *gin.Context) { c.Status(http.StatusOK) })

	req := httptest.NewRequest(http.MethodOptions, "/health", nil)
	req.Header.Set("Origin", "https://staffing.example")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "https://staffing.example", w.Header().Get("Access-Control-Allow-Origin"))

	req = httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set("Origin", "https://evil.example")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
}

func TestRequestLogger(t *testing.T) {
	log, hook := test.NewNullLogger()
	r := gin.New()
	r.Use(RequestLogger(log))
	r.GET("/health", func(c *gin.Context) { c.Status(http.StatusTeapot) })

	req := httptest.NewRequest(http.MethodGet, "/health?x=1", nil)
	req.Header.Set(RequestIDHeader, "req-42")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, "req-42", w.Header().Get(RequestIDHeader))
	entry := hook.LastEntry()
	require.NotNil(t, entry)
	assert.Equal(t, "request complete", entry.Message)
	assert.Equal(t, "req-42", entry.Data["req_id"])
	assert.Equal(t, http.StatusTeapot, entry.Data["resp_status"])
	assert.Equal(t, "/health?x=1", entry.Data["uri"])

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Len(t, w.Header().Get(RequestIDHeader), 36, "generated ids are uuids")
}
