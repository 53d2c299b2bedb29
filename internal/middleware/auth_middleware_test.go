package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/morada/morada/internal/app/models"
	"github.com/morada/morada/internal/pkg/auth"
)

func newTestRouter(t *testing.T, accessExp time.Duration) (*gin.Engine, *auth.JWTService) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	jwtService := auth.NewJWTService(auth.JWTConfig{
		SecretKey:       "test-secret",
		AccessTokenExp:  accessExp,
		RefreshTokenExp: time.Hour,
		TokenIssuer:     "morada.test",
	})
	m := NewAuthMiddleware(jwtService)

	router := gin.New()
	router.GET("/protected", m.JWTAuth(), func(c *gin.Context) {
		userID, ok := GetUserID(c)
		if !ok {
			c.Status(http.StatusInternalServerError)
			return
		}
		c.JSON(http.StatusOK, gin.H{"userID": userID})
	})
	router.GET("/admin", m.JWTAuth(), m.RoleRequired(models.RoleAdministrator), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	return router, jwtService
}

func issueToken(t *testing.T, jwtService *auth.JWTService, role string) string {
	t.Helper()
	accessToken, _, _, _, err := jwtService.GenerateTokenPair(7, "ana@example.com", role)
	if err != nil {
		t.Fatalf("GenerateTokenPair: %v", err)
	}
	return accessToken
}

func TestJWTAuthMissingHeader(t *testing.T) {
	router, _ := newTestRouter(t, time.Hour)

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/protected", nil))

	if recorder.Code != http.StatusUnauthorized {
		t.Errorf("status: got %d, want %d", recorder.Code, http.StatusUnauthorized)
	}
}

func TestJWTAuthValidToken(t *testing.T) {
	router, jwtService := newTestRouter(t, time.Hour)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+issueToken(t, jwtService, "RESIDENT"))

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	if recorder.Code != http.StatusOK {
		t.Errorf("status: got %d, want %d, body %s", recorder.Code, http.StatusOK, recorder.Body)
	}
}

func TestJWTAuthExpiredToken(t *testing.T) {
	router, jwtService := newTestRouter(t, -time.Minute)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+issueToken(t, jwtService, "RESIDENT"))

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	if recorder.Code != http.StatusUnauthorized {
		t.Errorf("status: got %d, want %d", recorder.Code, http.StatusUnauthorized)
	}
}

func TestJWTAuthGarbageToken(t *testing.T) {
	router, _ := newTestRouter(t, time.Hour)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer not.a.jwt")

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	if recorder.Code != http.StatusUnauthorized {
		t.Errorf("status: got %d, want %d", recorder.Code, http.StatusUnauthorized)
	}
}

func TestRoleRequired(t *testing.T) {
	router, jwtService := newTestRouter(t, time.Hour)

	tests := []struct {
		name       string
		role       string
		wantStatus int
	}{
		{"administrator allowed", "ADMINISTRATOR", http.StatusOK},
		{"resident forbidden", "RESIDENT", http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/admin", nil)
			req.Header.Set("Authorization", "Bearer "+issueToken(t, jwtService, tt.role))

			recorder := httptest.NewRecorder()
			router.ServeHTTP(recorder, req)

			if recorder.Code != tt.wantStatus {
				t.Errorf("status: got %d, want %d", recorder.Code, tt.wantStatus)
			}
		})
	}
}
