package utils

import (
	"errors"
	"time"

	"dochouse/config"

	"github.com/golang-jwt/jwt"
)

// TokenTTL is how long an issued bearer token stays valid.
const TokenTTL = 2 * time.Hour

func secretKey() []byte {
	return []byte(config.AppConfig.JWTSecret)
}

// IssueToken creates a signed JWT token carrying the caller-supplied
// identity payload. The token expires after the specified duration.
func IssueToken(payload map[string]interface{}, duration time.Duration) (string, error) {
	claims := jwt.MapClaims{}
	for k, v := range payload {
		claims[k] = v
	}
	claims["iat"] = time.Now().Unix()
	claims["exp"] = time.Now().Add(duration).Unix()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secretKey())
}

// ValidateToken parses and validates a token string and returns the token if valid.
func ValidateToken(tokenString string) (*jwt.Token, error) {
	return jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		// Ensure that the token's signing method is HMAC.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return secretKey(), nil
	})
}

// ExtractEmailFromToken extracts the email claim from a valid JWT token string.
// Tokens issued by the /jwt endpoint carry it as either "email" or "userEmail".
func ExtractEmailFromToken(tokenString string) (string, error) {
	token, err := ValidateToken(tokenString)
	if err != nil {
		return "", err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return "", errors.New("invalid token")
	}

	for _, key := range []string{"email", "userEmail"} {
		if s, ok := claims[key].(string); ok && s != "" {
			return s, nil
		}
	}
	return "", errors.New("token does not contain a valid email claim")
}
