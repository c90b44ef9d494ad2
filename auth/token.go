package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var (
	ErrMissingToken = errors.New("token is required")
	ErrInvalidToken = errors.New("invalid token")
)

const tokenLifetime = 24 * time.Hour

// Claims carries the authenticated user's identifier as a signed claim.
type Claims struct {
	UUID string `json:"uuid"`
	jwt.RegisteredClaims
}

// TokenAuthenticator mints and verifies bearer tokens with a shared HS256
// secret. The secret is injected once at startup.
type TokenAuthenticator struct {
	secret []byte
}

func NewTokenAuthenticator(secret string) TokenAuthenticator {
	return TokenAuthenticator{secret: []byte(secret)}
}

// Generate creates a signed token for the given user.
func (a TokenAuthenticator) Generate(userUUID uuid.UUID) (string, error) {
	return a.GenerateWithExpiry(userUUID, time.Now().Add(tokenLifetime))
}

// GenerateWithExpiry creates a signed token with a custom expiry.
func (a TokenAuthenticator) GenerateWithExpiry(userUUID uuid.UUID, expiry time.Time) (string, error) {
	claims := Claims{
		UUID: userUUID.String(),
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expiry),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(a.secret)
}

// Verify checks the token's signature and expiry and returns the subject
// identifier. An empty token is ErrMissingToken; anything that fails
// verification is ErrInvalidToken.
func (a TokenAuthenticator) Verify(tokenString string) (uuid.UUID, error) {
	if tokenString == "" {
		return uuid.Nil, ErrMissingToken
	}

	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return a.secret, nil
	})
	if err != nil || !token.Valid {
		return uuid.Nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*Claims)
	if !ok {
		return uuid.Nil, ErrInvalidToken
	}

	subject, err := uuid.Parse(claims.UUID)
	if err != nil {
		return uuid.Nil, ErrInvalidToken
	}

	return subject, nil
}
