package middleware

import (
	"strings"

	"bonded-wms/config"
	"bonded-wms/logger"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
)

// AuthMiddleware checks the bearer token when AUTH_ENABLED is set and
// stores the user_id claim in ctx.Locals("userID").
func AuthMiddleware(ctx *fiber.Ctx) error {
	if !config.AuthEnabled {
		return ctx.Next()
	}

	authHeader := ctx.Get(fiber.HeaderAuthorization)
	if authHeader == "" {
		return unauthorized(ctx, "Missing Authorization header")
	}

	tokenParts := strings.Split(authHeader, " ")
	if len(tokenParts) != 2 || strings.ToLower(tokenParts[0]) != "bearer" {
		return unauthorized(ctx, "Invalid Authorization header format")
	}

	token, err := jwt.Parse(tokenParts[1], func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fiber.NewError(fiber.StatusUnauthorized, "Unauthorized: Invalid signing method")
		}
		return []byte(config.JWTSecret), nil
	}, jwt.WithExpirationRequired())
	if err != nil || !token.Valid {
		logger.L().Debug("rejected token", zap.Error(err), zap.String("path", ctx.Path()))
		return unauthorized(ctx, "Unauthorized: Invalid token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return unauthorized(ctx, "Unauthorized: Invalid token")
	}
	userID, ok := claims["user_id"].(float64)
	if !ok {
		return unauthorized(ctx, "Unauthorized: Invalid user ID")
	}

	ctx.Locals("userID", userID)
	ctx.Locals("userData", claims)
	return ctx.Next()
}

func unauthorized(ctx *fiber.Ctx, message string) error {
	return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"success": false, "error": message})
}
