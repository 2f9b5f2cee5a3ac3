package api

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/tripmates/messaging/pkg/internal/models"
	"github.com/tripmates/messaging/pkg/internal/services"
)

func getUserinfo(c *fiber.Ctx) error {
	user := c.Locals("principal").(models.Account)
	return c.JSON(user)
}

// getOthersInfo looks a profile up by numeric id, or by name for anything
// that doesn't parse as one.
func getOthersInfo(c *fiber.Ctx) error {
	var account models.Account
	var err error
	if id, convErr := strconv.Atoi(c.Params("account")); convErr == nil {
		account, err = services.GetAccount(uint(id))
	} else {
		account, err = services.GetAccountWithName(c.Params("account"))
	}
	if err != nil {
		return fiber.NewError(fiber.StatusNotFound, err.Error())
	}

	return c.JSON(account)
}

func listNotification(c *fiber.Ctx) error {
	user := c.Locals("principal").(models.Account)
	take := c.QueryInt("take", 25)
	offset := c.QueryInt("offset", 0)

	notifications, err := services.ListNotification(user, take, offset)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return c.JSON(notifications)
}

func markAllNotificationsRead(c *fiber.Ctx) error {
	user := c.Locals("principal").(models.Account)

	affected, err := services.MarkNotificationAllRead(user)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return c.JSON(fiber.Map{"affected": affected})
}
