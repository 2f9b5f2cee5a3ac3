package auth

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/tripmates/messaging/pkg/internal/models"
	"github.com/tripmates/messaging/pkg/internal/services"
)

// Middleware resolves the bearer token into a local account mirror and
// stores it in locals for downstream handlers. Tokens may also arrive via
// the tk query parameter for the websocket gateway.
func Middleware(c *fiber.Ctx) error {
	raw := strings.TrimPrefix(c.Get(fiber.HeaderAuthorization), "Bearer ")
	if len(raw) == 0 {
		raw = c.Query("tk")
	}
	if len(raw) == 0 {
		return fiber.NewError(fiber.StatusUnauthorized, "authentication required")
	}

	claims, err := ParseToken(raw)
	if err != nil {
		return fiber.NewError(fiber.StatusUnauthorized, err.Error())
	}

	account, err := services.UpsertAccount(models.Account{
		Name:    claims.Name,
		Nick:    claims.Nick,
		Avatar:  claims.Avatar,
		Role:    claims.Role,
		IsAdmin: claims.IsAdmin,
	})
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	c.Locals("principal", account)

	return c.Next()
}
