package auth

import (
	"context"
	"strings"

	"github.com/gin-gonic/gin"
)

const CtxSession = "admin_session"

// Session is the authenticated admin for the current request. It is rebuilt
// from the bearer token on every protected call.
type Session struct {
	AdminID string
	Email   string
}

type sessionKey struct{}

func WithSession(ctx context.Context, s Session) context.Context {
	return context.WithValue(ctx, sessionKey{}, s)
}

// SessionFrom returns the session stored by WithSession.
func SessionFrom(ctx context.Context) (Session, bool) {
	s, ok := ctx.Value(sessionKey{}).(Session)
	return s, ok && s.AdminID != ""
}

// CurrentSession extracts the session set by the auth middleware from the Gin context.
func CurrentSession(c *gin.Context) (Session, bool) {
	v, ok := c.Get(CtxSession)
	if !ok {
		return Session{}, false
	}
	s, ok := v.(Session)
	return s, ok && s.AdminID != ""
}

// BearerToken extracts the token from an "Authorization: Bearer <token>" header value.
func BearerToken(header string) string {
	const prefix = "Bearer "
	if len(header) > len(prefix) && strings.EqualFold(header[:len(prefix)], prefix) {
		return strings.TrimSpace(header[len(prefix):])
	}
	return ""
}
