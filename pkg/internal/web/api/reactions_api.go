package api

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tripmates/messaging/pkg/internal/models"
	"github.com/tripmates/messaging/pkg/internal/services"
)

func listReactions(c *fiber.Ctx) error {
	user := c.Locals("principal").(models.Account)
	alias := c.Params("channel")
	messageId, _ := c.ParamsInt("messageId", 0)

	channel, member, err := services.GetChannelIdentity(alias, user)
	if err != nil {
		return fiber.NewError(fiber.StatusForbidden, err.Error())
	}

	message, err := services.GetMessage(channel, uint(messageId))
	if err != nil {
		return fiber.NewError(fiber.StatusNotFound, err.Error())
	}

	views, err := services.ListReactionViews(message, member)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return c.JSON(views)
}

func toggleReaction(c *fiber.Ctx) error {
	user := c.Locals("principal").(models.Account)
	alias := c.Params("channel")
	messageId, _ := c.ParamsInt("messageId", 0)
	kind := c.Params("kind")

	channel, member, err := services.GetChannelIdentity(alias, user)
	if err != nil {
		return fiber.NewError(fiber.StatusForbidden, err.Error())
	}

	message, err := services.GetMessage(channel, uint(messageId))
	if err != nil {
		return fiber.NewError(fiber.StatusNotFound, err.Error())
	}

	view, err := services.ToggleReaction(message, member, kind)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	return c.JSON(view)
}
