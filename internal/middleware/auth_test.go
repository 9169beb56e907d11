package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/ginext"
)

const testSecret = "test-secret"

func signToken(t *testing.T, secret, subject, role string, expiresIn time.Duration) string {
	t.Helper()

	claims := Claims{
		Role: role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(expiresIn)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return token
}

func authTestRouter() http.Handler {
	r := ginext.New("test")

	whoami := func(c *ginext.Context) {
		userID, isAdmin := Identity(c)
		c.JSON(http.StatusOK, ginext.H{"user_id": userID, "is_admin": isAdmin})
	}

	r.GET("/private", Auth(testSecret), whoami)
	r.GET("/admin", Auth(testSecret), RequireAdmin(), whoami)
	r.GET("/public", OptionalAuth(testSecret), whoami)

	return r
}

func doAuth(r http.Handler, path, token string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	r.ServeHTTP(w, req)
	return w
}

func TestAuth_ValidToken(t *testing.T) {
	r := authTestRouter()

	token := signToken(t, testSecret, "u1", "user", time.Hour)
	w := doAuth(r, "/private", token)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"user_id":"u1"`)
	assert.Contains(t, w.Body.String(), `"is_admin":false`)
}

func TestAuth_MissingToken(t *testing.T) {
	r := authTestRouter()

	w := doAuth(r, "/private", "")

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuth_WrongSecret(t *testing.T) {
	r := authTestRouter()

	token := signToken(t, "other-secret", "u1", "user", time.Hour)
	w := doAuth(r, "/private", token)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuth_ExpiredToken(t *testing.T) {
	r := authTestRouter()

	token := signToken(t, testSecret, "u1", "user", -time.Hour)
	w := doAuth(r, "/private", token)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuth_MissingSubject(t *testing.T) {
	r := authTestRouter()

	token := signToken(t, testSecret, "", "user", time.Hour)
	w := doAuth(r, "/private", token)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequireAdmin_AdminRole(t *testing.T) {
	r := authTestRouter()

	token := signToken(t, testSecret, "admin-1", RoleAdmin, time.Hour)
	w := doAuth(r, "/admin", token)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"is_admin":true`)
}

func TestRequireAdmin_UserRole(t *testing.T) {
	r := authTestRouter()

	token := signToken(t, testSecret, "u1", "user", time.Hour)
	w := doAuth(r, "/admin", token)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestOptionalAuth_NoToken(t *testing.T) {
	r := authTestRouter()

	w := doAuth(r, "/public", "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"user_id":""`)
}

func TestOptionalAuth_InvalidTokenIgnored(t *testing.T) {
	r := authTestRouter()

	w := doAuth(r, "/public", "garbage")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"user_id":""`)
}

func TestOptionalAuth_ValidTokenPicksUpIdentity(t *testing.T) {
	r := authTestRouter()

	token := signToken(t, testSecret, "admin-1", RoleAdmin, time.Hour)
	w := doAuth(r, "/public", token)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"is_admin":true`)
}
