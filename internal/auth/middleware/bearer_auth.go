package middleware

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ecap-org/ecap-directory/internal/auth"
	"github.com/ecap-org/ecap-directory/internal/logging"
)

// TokenVerifier checks a bearer token and returns the admin claims it carries.
type TokenVerifier interface {
	Verify(token string) (*auth.Claims, bool)
}

// AdminLookup confirms that a token's admin still exists.
type AdminLookup interface {
	AdminExists(ctx context.Context, id string) (bool, error)
}

// RequireAdmin validates the bearer token and stores the admin session in
// both the Gin context and the request context. A nil lookup skips the
// existence check.
func RequireAdmin(tokens TokenVerifier, lookup AdminLookup) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := auth.BearerToken(c.GetHeader("Authorization"))
		if token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing authorization token"})
			return
		}

		claims, ok := tokens.Verify(token)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			return
		}

		if lookup != nil {
			exists, err := lookup.AdminExists(c.Request.Context(), claims.ID)
			if err != nil {
				logging.New(c.Request.Context()).Error("auth.require_admin", err)
				c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
				return
			}
			if !exists {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
				return
			}
		}

		s := auth.Session{AdminID: claims.ID, Email: claims.Email}
		c.Set(auth.CtxSession, s)
		c.Request = c.Request.WithContext(auth.WithSession(c.Request.Context(), s))

		c.Next()
	}
}
