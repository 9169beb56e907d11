package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/wb-go/wbf/ginext"
)

const (
	userIDKey  = "user_id"
	isAdminKey = "is_admin"

	RoleAdmin = "admin"
)

// Claims is the token shape issued by the external auth service: subject is
// the user id, role distinguishes administrators.
type Claims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// Auth validates the bearer token and stores the caller's identity on the
// request context. Token issuance lives outside this service.
func Auth(secret string) ginext.HandlerFunc {
	return func(c *ginext.Context) {
		claims, err := bearerClaims(c, secret)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, ginext.H{"error": err.Error()})
			return
		}

		c.Set(userIDKey, claims.Subject)
		c.Set(isAdminKey, claims.Role == RoleAdmin)

		c.Next()
	}
}

// OptionalAuth picks up the caller's identity when a valid token is present
// but never rejects the request. Public listings use it to decide whether
// draft or inactive content is visible.
func OptionalAuth(secret string) ginext.HandlerFunc {
	return func(c *ginext.Context) {
		if claims, err := bearerClaims(c, secret); err == nil {
			c.Set(userIDKey, claims.Subject)
			c.Set(isAdminKey, claims.Role == RoleAdmin)
		}

		c.Next()
	}
}

// RequireAdmin must run after Auth.
func RequireAdmin() ginext.HandlerFunc {
	return func(c *ginext.Context) {
		if !c.GetBool(isAdminKey) {
			c.AbortWithStatusJSON(http.StatusForbidden, ginext.H{"error": "admin access required"})
			return
		}

		c.Next()
	}
}

// Identity returns the authenticated caller set by Auth.
func Identity(c *ginext.Context) (userID string, isAdmin bool) {
	return c.GetString(userIDKey), c.GetBool(isAdminKey)
}

func bearerClaims(c *ginext.Context, secret string) (*Claims, error) {
	header := c.GetHeader("Authorization")
	token, ok := strings.CutPrefix(header, "Bearer ")
	if !ok || token == "" {
		return nil, errors.New("missing bearer token")
	}

	claims := &Claims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return []byte(secret), nil
	})
	if err != nil || !parsed.Valid || claims.Subject == "" {
		return nil, errors.New("invalid token")
	}

	return claims, nil
}
