package api

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tripmates/messaging/pkg/internal/models"
	"github.com/tripmates/messaging/pkg/internal/services"
	"github.com/tripmates/messaging/pkg/internal/web/exts"
)

// tripMiddleware resolves the :trip path segment into locals. The global
// alias addresses channels outside any trip.
func tripMiddleware(c *fiber.Ctx) error {
	alias := c.Params("trip")
	if alias != "global" {
		trip, err := services.GetTripWithAlias(alias)
		if err != nil {
			return fiber.NewError(fiber.StatusNotFound, err.Error())
		}
		c.Locals("trip", trip)
	}

	return c.Next()
}

func listTrip(c *fiber.Ctx) error {
	user := c.Locals("principal").(models.Account)

	trips, err := services.ListTrip(user)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return c.JSON(trips)
}

func createTrip(c *fiber.Ctx) error {
	user := c.Locals("principal").(models.Account)

	var data struct {
		Alias       string `json:"alias" validate:"required,lowercase,min=4,max=32"`
		Name        string `json:"name" validate:"required"`
		Description string `json:"description"`
	}

	if err := exts.BindAndValidate(c, &data); err != nil {
		return err
	}

	trip, err := services.NewTrip(models.Trip{
		Alias:       data.Alias,
		Name:        data.Name,
		Description: data.Description,
		AccountID:   user.ID,
	})
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	return c.JSON(trip)
}
