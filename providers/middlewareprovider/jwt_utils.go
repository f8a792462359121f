package middlewareprovider

import (
	"fmt"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"
)

var (
	jwtSecretKey          = []byte(os.Getenv("SECRET_KEY"))
	refreshTokenSecretKey = []byte(os.Getenv("REFRESH_TOKEN"))
)

// GenerateJWT creates a new JWT access token carrying the caller's employee
// key and role.
func GenerateJWT(callerID, role string) (string, error) {
	claims := jwt.MapClaims{
		"sub":  callerID,
		"role": role,
		"typ":  "access",
		"exp":  time.Now().Add(15 * time.Minute).Unix(),
		"iat":  time.Now().Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(jwtSecretKey)
}

func GenerateRefreshToken(callerID string) (string, error) {
	claims := jwt.MapClaims{
		"sub": callerID,
		"typ": "refresh",
		"exp": time.Now().Add(7 * 24 * time.Hour).Unix(), // 7 days
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(refreshTokenSecretKey)
}

// ParseJWT validates and extracts the caller id and role from an access token.
func ParseJWT(tokenStr string) (string, string, error) {
	token, err := jwt.Parse(tokenStr, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method")
		}
		return jwtSecretKey, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))

	if err != nil || !token.Valid {
		return "", "", fmt.Errorf("invalid or expired token: %w", err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", "", errors.New("invalid token claims")
	}

	sub, ok := claims["sub"].(string)
	if !ok {
		return "", "", errors.New("invalid 'sub' claim")
	}

	role, ok := claims["role"].(string)
	if !ok {
		return "", "", errors.New("invalid 'role' claim")
	}

	return sub, role, nil
}

func ParseRefreshToken(tokenStr string) (string, error) {
	token, err := jwt.Parse(tokenStr, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method")
		}
		return refreshTokenSecretKey, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))

	if err != nil || !token.Valid {
		return "", fmt.Errorf("invalid or expired refresh token: %w", err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", errors.New("invalid token claims")
	}

	sub, ok := claims["sub"].(string)
	if !ok {
		return "", errors.New("invalid 'sub' claim")
	}
	return sub, nil
}
