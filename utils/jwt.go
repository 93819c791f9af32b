package utils

import (
	"errors"
	"os"
	"time"

	"github.com/dcode-github/nestora/backend/models"
	"github.com/golang-jwt/jwt"
)

var (
	ErrInvalidToken = errors.New("invalid token")
	ErrTokenExpired = errors.New("token has expired")
	ErrNoSigningKey = errors.New("no token signing key configured")
)

type Claims struct {
	UserID string `json:"userID"`
	Email  string `json:"email"`
	Name   string `json:"name"`
	jwt.StandardClaims
}

func (c *Claims) Identity() models.Identity {
	return models.Identity{ID: c.UserID, Email: c.Email, Name: c.Name}
}

var (
	jwtKey   = []byte(os.Getenv("JWT_KEY"))
	tokenTTL = 15 * time.Minute
)

// SetJWTKey replaces the signing key read at startup; main calls it once
// the .env file has been loaded.
func SetJWTKey(key string) {
	jwtKey = []byte(key)
}

func GenerateJWT(identity models.Identity) (string, error) {
	if len(jwtKey) == 0 {
		return "", ErrNoSigningKey
	}
	now := time.Now()

	claims := &Claims{
		UserID: identity.ID,
		Email:  identity.Email,
		Name:   identity.Name,
		StandardClaims: jwt.StandardClaims{
			ExpiresAt: now.Add(tokenTTL).Unix(),
			IssuedAt:  now.Unix(),
			Issuer:    "nestora",
			Subject:   identity.ID,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(jwtKey)
}

// ValidateJWT never accepts a token while the signing key is empty.
func ValidateJWT(tokenStr string) (*Claims, error) {
	if len(jwtKey) == 0 {
		return nil, ErrInvalidToken
	}
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenStr, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return jwtKey, nil
	})
	if err != nil {
		var ve *jwt.ValidationError
		if errors.As(err, &ve) && ve.Errors&jwt.ValidationErrorExpired != 0 {
			return nil, ErrTokenExpired
		}
		return nil, ErrInvalidToken
	}

	if !token.Valid {
		return nil, ErrInvalidToken
	}

	return claims, nil
}
