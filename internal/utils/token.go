package utils

import (
	"errors" // Error values
	"time"   // Time for token expiration

	"github.com/golang-jwt/jwt/v5" // JWT library
)

// ErrInvalidToken is returned for any cookie value that fails verification
var ErrInvalidToken = errors.New("invalid session token")

// SessionClaims binds a signed cookie value to a server-side session id
type SessionClaims struct {
	SessionID            string `json:"sid"` // Server-side session id
	jwt.RegisteredClaims        // Standard JWT claims
}

// SignSessionID creates the cookie value for a session id
func SignSessionID(sessionID, secret string, ttl time.Duration) (string, error) {
	now := time.Now()
	// Set token claims
	claims := SessionClaims{
		SessionID: sessionID, // Session id carried by the cookie
		// Standard claims
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)), // Fixed lifetime, never extended
			IssuedAt:  jwt.NewNumericDate(now),          // Issued at current time
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims) // Create token with claims
	return token.SignedString([]byte(secret))                  // Sign the token with the secret
}

// ParseSessionID verifies a cookie value and returns its session id
func ParseSessionID(tokenStr, secret string) (string, error) {
	token, err := jwt.ParseWithClaims(tokenStr, &SessionClaims{}, func(token *jwt.Token) (any, error) {
		return []byte(secret), nil // Return the secret key for validation
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	// Check for parsing errors
	if err != nil {
		return "", errors.Join(ErrInvalidToken, err)
	}
	// Validate token and extract claims
	if claims, ok := token.Claims.(*SessionClaims); ok && token.Valid && claims.SessionID != "" {
		return claims.SessionID, nil
	}
	return "", ErrInvalidToken
}
