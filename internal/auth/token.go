package auth

import (
	"errors"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"
)

// TokenManager handles issuing and validating JWT tokens.
type TokenManager struct {
	secret   []byte
	ttl      time.Duration
	issuer   string
	audience string
}

// NewTokenManager builds a new manager. Empty issuer or audience disables that check.
func NewTokenManager(secret string, ttlMinutes int, issuer, audience string) *TokenManager {
	if ttlMinutes <= 0 {
		ttlMinutes = 60
	}
	return &TokenManager{
		secret:   []byte(secret),
		ttl:      time.Duration(ttlMinutes) * time.Minute,
		issuer:   issuer,
		audience: audience,
	}
}

// Claims describes JWT payload.
type Claims struct {
	Scope string `json:"scope,omitempty"`
	jwt.RegisteredClaims
}

// GenerateToken builds and signs a JWT for the subject.
func (tm *TokenManager) GenerateToken(subject, scope string) (string, time.Time, error) {
	now := time.Now()
	expiresAt := now.Add(tm.ttl)
	claims := &Claims{
		Scope: scope,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			Issuer:    tm.issuer,
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}
	if tm.audience != "" {
		claims.Audience = jwt.ClaimStrings{tm.audience}
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(tm.secret)
	if err != nil {
		return "", time.Time{}, err
	}
	return tokenString, expiresAt, nil
}

// ParseToken validates and returns claims. A missing subject is not an error here.
func (tm *TokenManager) ParseToken(tokenStr string) (*Claims, error) {
	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
	}
	if tm.issuer != "" {
		opts = append(opts, jwt.WithIssuer(tm.issuer))
	}
	if tm.audience != "" {
		opts = append(opts, jwt.WithAudience(tm.audience))
	}

	parsed, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		return tm.secret, nil
	}, opts...)
	if err != nil {
		return nil, err
	}

	claims, ok := parsed.Claims.(*Claims)
	if !ok || !parsed.Valid {
		return nil, errors.New("invalid token claims")
	}
	return claims, nil
}
