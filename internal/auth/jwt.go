package auth

import (
	"encoding/hex"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/blake2b"
)

// VisitorTokens issues and validates the signed visitor cookie value.
type VisitorTokens struct {
	secret []byte
	issuer string
	ttl    time.Duration
	now    func() time.Time
}

// NewVisitorTokens creates a new token manager.
// secret must be at least 32 characters for HS256 security.
func NewVisitorTokens(secret string, issuer string, ttl time.Duration) *VisitorTokens {
	return &VisitorTokens{
		secret: []byte(secret),
		issuer: issuer,
		ttl:    ttl,
		now:    time.Now,
	}
}

// Issue creates a signed HS256 JWT with the visitor ID as subject.
func (m *VisitorTokens) Issue(visitorID uuid.UUID) (string, error) {
	now := m.now()
	claims := jwt.RegisteredClaims{
		Subject:   visitorID.String(),
		Issuer:    m.issuer,
		ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
		IssuedAt:  jwt.NewNumericDate(now),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}

	return signed, nil
}

// Parse validates a visitor token and returns the visitor ID.
func (m *VisitorTokens) Parse(tokenString string) (uuid.UUID, error) {
	if tokenString == "" {
		return uuid.Nil, fmt.Errorf("token is empty")
	}

	claims := &jwt.RegisteredClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return m.secret, nil
	},
		jwt.WithIssuer(m.issuer),
		jwt.WithTimeFunc(m.now),
	)
	if err != nil {
		return uuid.Nil, fmt.Errorf("parse token: %w", err)
	}
	if !token.Valid {
		return uuid.Nil, fmt.Errorf("invalid token claims")
	}

	visitorID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return uuid.Nil, fmt.Errorf("invalid subject UUID: %w", err)
	}
	if visitorID == uuid.Nil {
		return uuid.Nil, fmt.Errorf("nil subject UUID")
	}

	return visitorID, nil
}

// Fingerprint hashes the client address and user agent into a stable hex
// digest.
func Fingerprint(ip, userAgent string) string {
	h := blake2b.Sum256([]byte(ip + "\x00" + userAgent))
	return hex.EncodeToString(h[:])
}
