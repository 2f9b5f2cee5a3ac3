package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/samber/lo"

	"github.com/tripmates/messaging/pkg/internal/models"
	"github.com/tripmates/messaging/pkg/internal/services"
	"github.com/tripmates/messaging/pkg/internal/web/exts"
)

func listChannel(c *fiber.Ctx) error {
	user := c.Locals("principal").(models.Account)

	var err error
	var channels []models.Channel
	if trip, ok := c.Locals("trip").(models.Trip); ok {
		channels, err = services.ListChannel(trip.ID)
	} else {
		channels, err = services.ListChannel()
	}
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	channels = lo.Filter(channels, func(item models.Channel, index int) bool {
		return services.CheckChannelVisible(item, user)
	})

	return c.JSON(channels)
}

func listOwnedChannel(c *fiber.Ctx) error {
	user := c.Locals("principal").(models.Account)

	channels, err := services.ListOwnedChannel(user)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return c.JSON(channels)
}

func listAvailableChannel(c *fiber.Ctx) error {
	user := c.Locals("principal").(models.Account)

	channels, err := services.ListAvailableChannel(user)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return c.JSON(channels)
}

func getChannel(c *fiber.Ctx) error {
	user := c.Locals("principal").(models.Account)
	alias := c.Params("channel")

	channel, err := services.GetChannelWithAlias(alias)
	if err != nil {
		return fiber.NewError(fiber.StatusNotFound, err.Error())
	} else if !services.CheckChannelVisible(channel, user) {
		return fiber.NewError(fiber.StatusForbidden, "this channel is scoped to another role")
	}

	return c.JSON(channel)
}

func createChannel(c *fiber.Ctx) error {
	user := c.Locals("principal").(models.Account)

	var data struct {
		Alias           string `json:"alias" validate:"required,lowercase,min=4,max=32"`
		Name            string `json:"name" validate:"required"`
		Description     string `json:"description"`
		RoleName        string `json:"role_name"`
		IsPublic        bool   `json:"is_public"`
		DisablePayments bool   `json:"disable_payments"`
	}

	if err := exts.BindAndValidate(c, &data); err != nil {
		return err
	}

	channel := models.Channel{
		Alias:           data.Alias,
		Name:            data.Name,
		Description:     data.Description,
		RoleName:        data.RoleName,
		IsPublic:        data.IsPublic,
		DisablePayments: data.DisablePayments,
		AccountID:       user.ID,
	}
	if len(data.RoleName) > 0 {
		channel.Type = models.ChannelTypeRole
	}
	if trip, ok := c.Locals("trip").(models.Trip); ok {
		channel.TripID = &trip.ID
	}

	channel, err := services.NewChannel(channel, user)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	return c.JSON(channel)
}

func editChannel(c *fiber.Ctx) error {
	user := c.Locals("principal").(models.Account)
	channelId, _ := c.ParamsInt("channelId", 0)

	var data struct {
		Name            string `json:"name" validate:"required"`
		Description     string `json:"description"`
		IsPublic        bool   `json:"is_public"`
		DisablePayments bool   `json:"disable_payments"`
	}

	if err := exts.BindAndValidate(c, &data); err != nil {
		return err
	}

	var channel models.Channel
	channels, err := services.ListOwnedChannel(user)
	if err == nil {
		found, ok := lo.Find(channels, func(item models.Channel) bool {
			return item.ID == uint(channelId)
		})
		if !ok {
			return fiber.NewError(fiber.StatusNotFound, "channel was not found in your scope")
		}
		channel = found
	} else {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	channel.Name = data.Name
	channel.Description = data.Description
	channel.IsPublic = data.IsPublic
	channel.DisablePayments = data.DisablePayments

	channel, err = services.EditChannel(channel)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	return c.JSON(channel)
}

func deleteChannel(c *fiber.Ctx) error {
	user := c.Locals("principal").(models.Account)
	channelId, _ := c.ParamsInt("channelId", 0)

	channels, err := services.ListOwnedChannel(user)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	channel, ok := lo.Find(channels, func(item models.Channel) bool {
		return item.ID == uint(channelId)
	})
	if !ok {
		return fiber.NewError(fiber.StatusNotFound, "channel was not found in your scope")
	}

	if err := services.DeleteChannel(channel); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	return c.SendStatus(fiber.StatusOK)
}
