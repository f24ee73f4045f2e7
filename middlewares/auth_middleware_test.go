package middlewares

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Temur01/restaurant-server/utils"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
)

const testSecret = "test-secret"

func protectedRouter(secret string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(AuthMiddleware(secret))
	r.GET("/protected", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"username": c.GetString("username")})
	})
	return r
}

func expiredToken(t *testing.T) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"userId":   float64(1),
		"username": "alibek",
		"exp":      time.Now().Add(-time.Hour).Unix(),
	})
	signed, err := token.SignedString([]byte(testSecret))
	assert.NoError(t, err)
	return signed
}

func TestAuthMiddleware(t *testing.T) {
	valid, err := utils.GenerateJWT(testSecret, 1, "alibek")
	assert.NoError(t, err)

	testCases := []struct {
		name           string
		secret         string
		authHeader     string
		expectedStatus int
	}{
		{
			name:           "Valid token passes",
			secret:         testSecret,
			authHeader:     "Bearer " + valid,
			expectedStatus: http.StatusOK,
		},
		{
			name:           "Missing header",
			secret:         testSecret,
			authHeader:     "",
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "Not a bearer scheme",
			secret:         testSecret,
			authHeader:     "Basic abc123",
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "Tampered token",
			secret:         testSecret,
			authHeader:     "Bearer " + valid[:len(valid)-2] + "xx",
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "Expired token",
			secret:         testSecret,
			authHeader:     "Bearer " + expiredToken(t),
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "Signed with a different secret",
			secret:         "another-secret",
			authHeader:     "Bearer " + valid,
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "Secret not configured",
			secret:         "",
			authHeader:     "Bearer " + valid,
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			r := protectedRouter(tc.secret)

			req := httptest.NewRequest("GET", "/protected", nil)
			if tc.authHeader != "" {
				req.Header.Set("Authorization", tc.authHeader)
			}
			rec := httptest.NewRecorder()
			r.ServeHTTP(rec, req)

			assert.Equal(t, tc.expectedStatus, rec.Code)
			if tc.expectedStatus == http.StatusOK {
				assert.Contains(t, rec.Body.String(), "alibek")
			}
		})
	}
}
