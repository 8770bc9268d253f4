package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v4"
)

// DefaultTokenTTL is how long an admin token stays valid.
const DefaultTokenTTL = 7 * 24 * time.Hour

// Claims is the admin identity carried inside a token.
type Claims struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

type tokenClaims struct {
	AdminID string `json:"id"`
	Email   string `json:"email"`
	jwt.RegisteredClaims
}

// Tokens signs and verifies HS256 admin tokens.
type Tokens struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewTokens(secret string, ttl time.Duration) (*Tokens, error) {
	if secret == "" {
		return nil, errors.New("token secret is required")
	}
	if ttl <= 0 {
		ttl = DefaultTokenTTL
	}
	return &Tokens{secret: []byte(secret), ttl: ttl, now: time.Now}, nil
}

// Sign issues a token for c that expires after the configured TTL.
func (t *Tokens) Sign(c Claims) (string, error) {
	now := t.now()
	claims := tokenClaims{
		AdminID: c.ID,
		Email:   c.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(t.ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(t.secret)
}

// Verify returns the claims of a valid token. Expired, malformed or
// mis-signed tokens yield false.
func (t *Tokens) Verify(token string) (*Claims, bool) {
	if token == "" {
		return nil, false
	}

	parser := jwt.NewParser(jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	var claims tokenClaims
	parsed, err := parser.ParseWithClaims(token, &claims, func(*jwt.Token) (interface{}, error) {
		return t.secret, nil
	})
	if err != nil || !parsed.Valid {
		return nil, false
	}
	if claims.AdminID == "" {
		return nil, false
	}
	if claims.ExpiresAt == nil || !claims.ExpiresAt.Time.After(t.now()) {
		return nil, false
	}

	return &Claims{ID: claims.AdminID, Email: claims.Email}, true
}
