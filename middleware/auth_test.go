package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/campusconnect/campus-events-backend/config"
)

const testSecret = "test-secret"

func signToken(t *testing.T, method jwt.SigningMethod, claims jwt.MapClaims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(method, claims).SignedString([]byte(testSecret))
	if err != nil {
		t.Fatalf("signing token: %v", err)
	}
	return token
}

func authRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	cfg := &config.Config{JWTAccessSecret: testSecret}

	r := gin.New()
	r.GET("/whoami", AuthMiddleware(cfg), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"user_id": UserID(c), "org_id": OrgID(c)})
	})
	r.GET("/admin", AuthMiddleware(cfg), RequireAdmin(), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})
	return r
}

func doRequest(r *gin.Engine, path, authHeader string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuthMiddlewareValidToken(t *testing.T) {
	r := authRouter()
	token := signToken(t, jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": 7, "org_id": 1, "role": "member",
	})

	w := doRequest(r, "/whoami", "Bearer "+token)
	if w.Code != http.StatusOK {
		t.Errorf("status = %d, want 200 (body %s)", w.Code, w.Body.String())
	}
}

func TestAuthMiddlewareRejects(t *testing.T) {
	r := authRouter()

	tests := []struct {
		name   string
		header string
	}{
		{"missing header", ""},
		{"not bearer", "Basic abc123"},
		{"garbage token", "Bearer not.a.token"},
		{"wrong secret", "Bearer " + func() string {
			token, _ := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
				"user_id": 7, "org_id": 1,
			}).SignedString([]byte("other-secret"))
			return token
		}()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doRequest(r, "/whoami", tt.header)
			if w.Code != http.StatusUnauthorized {
				t.Errorf("status = %d, want 401", w.Code)
			}
		})
	}
}

func TestAuthMiddlewareMissingClaims(t *testing.T) {
	r := authRouter()
	token := signToken(t, jwt.SigningMethodHS256, jwt.MapClaims{"role": "member"})

	w := doRequest(r, "/whoami", "Bearer "+token)
	if w.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", w.Code)
	}
}

func TestRequireAdmin(t *testing.T) {
	r := authRouter()

	memberToken := signToken(t, jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": 7, "org_id": 1, "role": "member",
	})
	w := doRequest(r, "/admin", "Bearer "+memberToken)
	if w.Code != http.StatusForbidden {
		t.Errorf("member status = %d, want 403", w.Code)
	}

	adminToken := signToken(t, jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": 7, "org_id": 1, "role": "admin",
	})
	w = doRequest(r, "/admin", "Bearer "+adminToken)
	if w.Code != http.StatusOK {
		t.Errorf("admin status = %d, want 200", w.Code)
	}
}
