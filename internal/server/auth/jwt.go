// Package auth issues and verifies the signed bearer tokens that bind a
// request to a user identity. Verification is stateless: there is no list
// of issued tokens and no revocation before expiry.
package auth

import (
	"errors"
	"time"

	"github.com/dmitrijs2005/carekeeper/internal/common"
	"github.com/golang-jwt/jwt/v5"
)

// DefaultTokenValidity is how long an issued token stays usable.
const DefaultTokenValidity = 7 * 24 * time.Hour

// Claims includes the registered claims plus the asserted user identifier.
type Claims struct {
	jwt.RegisteredClaims
	UserID string
}

// GenerateToken produces an HS256-signed token asserting userID, valid for
// validityDuration from now.
func GenerateToken(userID string, secretKey []byte, validityDuration time.Duration) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(validityDuration)),
		},
		UserID: userID,
	})

	tokenString, err := token.SignedString(secretKey)
	if err != nil {
		return "", err
	}

	return tokenString, nil
}

// GetUserIDFromToken checks the signature and expiry of tokenString and
// returns the asserted user identifier. Expired tokens map to
// common.ErrTokenExpired; any other failure maps to common.ErrInvalidToken.
func GetUserIDFromToken(tokenString string, secretKey []byte) (string, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return secretKey, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", common.ErrTokenExpired
		}
		return "", common.ErrInvalidToken
	}

	if !token.Valid {
		return "", common.ErrInvalidToken
	}

	return claims.UserID, nil
}
