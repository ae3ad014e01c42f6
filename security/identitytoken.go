package security

import (
	"encoding/base64"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Identity is the claim set carried inside a ChurchTrack token.
type Identity struct {
	ID       int64  `json:"nameid"`
	Username string `json:"unique_name"`
	Name     string `json:"name"`
	Role     string `json:"role"`
	SID      string `json:"sid"`
}

type IdentityClaims struct {
	Identity
	jwt.RegisteredClaims
}

// CreateIdentityToken signs an HS256 token for the given identity. The
// secret is base64-encoded, matching how it is stored in configuration.
// Each token gets its own session id claim.
func CreateIdentityToken(identity *Identity, base64Secret string, expiresIn time.Duration) (string, error) {
	secretBytes, err := base64.StdEncoding.DecodeString(base64Secret)
	if err != nil {
		return "", err
	}

	claims := IdentityClaims{
		Identity: Identity{
			ID:       identity.ID,
			Username: identity.Username,
			Name:     identity.Name,
			Role:     identity.Role,
			SID:      uuid.NewString(),
		},
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    "churchtrack",
			Audience:  []string{"churchtrack.com"},
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(expiresIn)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secretBytes)
}

// ParseIdentityToken verifies the signature and expiry and returns the
// embedded identity.
func ParseIdentityToken(tokenStr string, base64Secret string) (*IdentityClaims, error) {
	secretBytes, err := base64.StdEncoding.DecodeString(base64Secret)
	if err != nil {
		return nil, err
	}

	claims := &IdentityClaims{}
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return secretBytes, nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}
	return claims, nil
}
