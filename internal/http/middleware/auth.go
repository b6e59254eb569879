package middleware

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"travely/internal/domain/models"
	"travely/internal/services"
)

const (
	currentUserKey = "current_user"
	sessionIDKey   = "session_id"

	// SessionCookie carries the session token for browser clients; API
	// clients use the Authorization header instead.
	SessionCookie = "travely_session"
)

// IssueSessionToken wraps a session id in a signed JWT.
func IssueSessionToken(secret []byte, sessionID string, ttl time.Duration) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sid": sessionID,
		"exp": time.Now().Add(ttl).Unix(),
	})
	return token.SignedString(secret)
}

// ParseSessionToken validates the token and extracts the session id.
func ParseSessionToken(secret []byte, raw string) (string, error) {
	token, err := jwt.Parse(raw, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return secret, nil
	})
	if err != nil {
		return "", err
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", errors.New("unexpected token claims")
	}
	sid, _ := claims["sid"].(string)
	if sid == "" {
		return "", errors.New("token carries no session id")
	}
	return sid, nil
}

// Auth resolves the current user from the session token, when one is present.
// Requests without a valid token pass through as anonymous; handlers decide
// whether authentication is required.
func Auth(secret []byte, identity services.IdentityService) gin.HandlerFunc {
	return func(c *gin.Context) {
		raw := tokenFromRequest(c)
		if raw == "" {
			c.Next()
			return
		}
		sid, err := ParseSessionToken(secret, raw)
		if err != nil {
			c.Next()
			return
		}
		c.Set(sessionIDKey, sid)
		if user, err := identity.CurrentUser(c.Request.Context(), sid); err == nil && user != nil {
			c.Set(currentUserKey, *user)
		}
		c.Next()
	}
}

func tokenFromRequest(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	if strings.HasPrefix(header, "Bearer ") {
		return strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
	}
	if cookie, err := c.Cookie(SessionCookie); err == nil {
		return cookie
	}
	return ""
}

// CurrentUser returns the authenticated user, nil when anonymous.
func CurrentUser(c *gin.Context) *models.User {
	if v, ok := c.Get(currentUserKey); ok {
		if u, ok := v.(models.User); ok {
			return &u
		}
	}
	return nil
}

// SessionID returns the session id resolved from the token, "" when absent.
func SessionID(c *gin.Context) string {
	if v, ok := c.Get(sessionIDKey); ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}
