package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"car-rental-backend/internal/models"
	"car-rental-backend/internal/utils"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const testSecret = "test-secret"

func token(t *testing.T, id uint, role string, ttl time.Duration) string {
	tok, err := utils.GenerateJWT(id, role, testSecret, ttl)
	require.NoError(t, err)
	return "Bearer " + tok
}

func newRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(RequestLogger(zap.NewNop()), PrometheusMiddleware())
	admin := r.Group("/admin", JWTAuth(testSecret), RequireRole(models.RoleAdmin))
	admin.GET("", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"id": AccountID(c), "role": Role(c)})
	})
	return r
}

func TestAuthMiddleware(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		header     string
		wantStatus int
	}{
		{name: "missing token", header: "", wantStatus: http.StatusUnauthorized},
		{name: "malformed header", header: "Token abc", wantStatus: http.StatusUnauthorized},
		{name: "garbage token", header: "Bearer abc.def.ghi", wantStatus: http.StatusUnauthorized},
		{name: "expired token", header: token(t, 1, models.RoleAdmin, -time.Minute), wantStatus: http.StatusUnauthorized},
		{name: "client on admin route", header: token(t, 2, models.RoleClient, time.Hour), wantStatus: http.StatusForbidden},
		{name: "admin", header: token(t, 1, models.RoleAdmin, time.Hour), wantStatus: http.StatusOK},
	}

	r := newRouter()
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			req := httptest.NewRequest(http.MethodGet, "/admin", http.NoBody)
			if tt.header != "" {
				req.Header.Set(AuthorizationHeader, tt.header)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			require.Equal(t, tt.wantStatus, w.Code)
			if tt.wantStatus == http.StatusOK {
				require.JSONEq(t, `{"id":1,"role":"admin"}`, w.Body.String())
			} else {
				require.Contains(t, w.Body.String(), `"success":false`)
			}
		})
	}
}

func TestRateLimiter(t *testing.T) {
	t.Parallel()
	gin.SetMode(gin.TestMode)

	limiter := NewRateLimiter(1, 2)
	now := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	limiter.now = func() time.Time { return now }

	r := gin.New()
	r.POST("/login", limiter.Middleware(), func(c *gin.Context) { c.Status(http.StatusOK) })

	do := func() int {
		req := httptest.NewRequest(http.MethodPost, "/login", http.NoBody)
		req.RemoteAddr = "10.0.0.1:1234"
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w.Code
	}

	require.Equal(t, http.StatusOK, do())
	require.Equal(t, http.StatusOK, do())
	require.Equal(t, http.StatusTooManyRequests, do())

	now = now.Add(time.Second)
	require.Equal(t, http.StatusOK, do())
}
