package token

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims defines the structure of the JWT claims the application uses.
type Claims struct {
	UserID uint `json:"user_id"`
	jwt.RegisteredClaims
}

// GenerateJWT creates a signed access token for the given user.
func GenerateJWT(userID uint, secretKey string, expiryMinutes int) (string, error) {
	if secretKey == "" {
		return "", errors.New("jwt secret key is empty")
	}

	claims := &Claims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Duration(expiryMinutes) * time.Minute)),
		},
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(secretKey))
}

// ValidateJWT parses, validates, and returns claims from a JWT string.
func ValidateJWT(tokenString string, secretKey string) (*Claims, error) {
	if tokenString == "" {
		return nil, errors.New("token string is empty")
	}
	if secretKey == "" {
		return nil, errors.New("jwt secret key is empty")
	}

	claims := &Claims{}

	t, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(secretKey), nil
	})

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, errors.New("token has expired")
		}
		if errors.Is(err, jwt.ErrSignatureInvalid) {
			return nil, errors.New("token signature is invalid")
		}
		return nil, fmt.Errorf("could not parse token: %w", err)
	}

	if !t.Valid {
		return nil, errors.New("token is invalid")
	}

	if claims.UserID == 0 {
		return nil, errors.New("user_id claim is missing or zero")
	}

	return claims, nil
}
