package utils

import (
	"fmt"
	"strings"
	"time"

	"storefront/models"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

// GenerateToken issues a bearer token bound to the signed-in account.
func GenerateToken(secret string, user models.SessionUser, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"user_id": user.ID,
		"email":   user.Email,
		"iat":     now.Unix(),
		"exp":     now.Add(ttl).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// ParseToken verifies the signature and expiry and returns the user id claim.
func ParseToken(secret, tokenString string) (string, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(secret), nil
	}, jwt.WithExpirationRequired())
	if err != nil || !token.Valid {
		return "", fmt.Errorf("token is invalid: %w", err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", fmt.Errorf("invalid token claims")
	}
	userID, _ := claims["user_id"].(string)
	if userID == "" {
		return "", fmt.Errorf("token has no user")
	}
	return userID, nil
}

// AuthMiddleware accepts a request only when its token names the account
// that currently holds the storefront session.
func AuthMiddleware(secret string, current func() *models.SessionUser) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(models.ErrorResponse("Unauthorized", "No Token Provided"))
		}

		tokenString, found := strings.CutPrefix(authHeader, "Bearer ")
		tokenString = strings.TrimSpace(tokenString)
		if !found || tokenString == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(models.ErrorResponse("Unauthorized", "Token format is invalid"))
		}

		userID, err := ParseToken(secret, tokenString)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(models.ErrorResponse("Unauthorized", "Token is invalid"))
		}

		session := current()
		if session == nil || session.ID != userID {
			return c.Status(fiber.StatusUnauthorized).JSON(models.ErrorResponse("Unauthorized", "Session has ended"))
		}

		c.Locals("user_id", userID)
		return c.Next()
	}
}
