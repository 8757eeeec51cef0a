// Package auth issues and validates bearer tokens and hashes passwords.
package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// minKeyLen is the shortest HS256 secret accepted.
const minKeyLen = 32

var (
	ErrWeakKey       = errors.New("jwt key too weak")
	ErrInvalidIssuer = errors.New("invalid issuer")
)

// Claims are the JWT claims carried by an access token. Subject holds the user id.
type Claims struct {
	jwt.RegisteredClaims
	ReferenceID string `json:"reference_id"`
	Role        string `json:"role"`
}

// UserID returns the subject of the token.
func (c *Claims) UserID() string {
	return c.Subject
}

// Token is a signed access token and its expiry.
type Token struct {
	AccessToken string    `json:"access_token"`
	ExpiresAt   time.Time `json:"expires_at"`
}

// TokenManager signs and verifies HS256 tokens for one issuer.
type TokenManager struct {
	key    []byte
	issuer string
	ttl    time.Duration
	now    func() time.Time
}

// NewTokenManager returns a TokenManager. The key must be at least 32 bytes.
func NewTokenManager(key, issuer string, ttl time.Duration) (*TokenManager, error) {
	if len(key) < minKeyLen {
		return nil, ErrWeakKey
	}
	return &TokenManager{key: []byte(key), issuer: issuer, ttl: ttl, now: time.Now}, nil
}

// Generate signs a token for the given user.
func (m *TokenManager) Generate(userID, referenceID, role string) (*Token, error) {
	now := m.now()
	expiresAt := now.Add(m.ttl)
	claims := &Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			Issuer:    m.issuer,
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
		ReferenceID: referenceID,
		Role:        role,
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.key)
	if err != nil {
		return nil, err
	}
	return &Token{AccessToken: signed, ExpiresAt: expiresAt.UTC()}, nil
}

// Validate parses tokenStr and returns its claims when the signature,
// expiry and issuer all check out.
func (m *TokenManager) Validate(tokenStr string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing algorithm: %v", token.Header["alg"])
		}
		return m.key, nil
	}, jwt.WithTimeFunc(m.now))
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, jwt.ErrTokenInvalidClaims
	}
	if claims.Issuer != m.issuer {
		return nil, ErrInvalidIssuer
	}
	return claims, nil
}
