package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/samber/lo"

	"github.com/tripmates/messaging/pkg/internal/models"
	"github.com/tripmates/messaging/pkg/internal/services"
	"github.com/tripmates/messaging/pkg/internal/web/exts"
)

func listChannelMembers(c *fiber.Ctx) error {
	user := c.Locals("principal").(models.Account)
	alias := c.Params("channel")
	take := c.QueryInt("take", 100)
	offset := c.QueryInt("offset", 0)

	channel, err := services.GetChannelWithAlias(alias)
	if err != nil {
		return fiber.NewError(fiber.StatusNotFound, err.Error())
	} else if !services.CheckChannelVisible(channel, user) {
		return fiber.NewError(fiber.StatusForbidden, "this channel is scoped to another role")
	}

	count, err := services.CountChannelMember(channel.ID)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	members, err := services.ListChannelMember(channel.ID, take, offset)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return c.JSON(fiber.Map{
		"count": count,
		"data": lo.Map(members, func(item models.ChannelMember, index int) fiber.Map {
			return fiber.Map{
				"member": item,
				"online": services.CheckOnline(item.AccountID),
			}
		}),
	})
}

func getMyChannelMembership(c *fiber.Ctx) error {
	user := c.Locals("principal").(models.Account)
	alias := c.Params("channel")

	_, member, err := services.GetChannelIdentity(alias, user)
	if err != nil {
		return fiber.NewError(fiber.StatusNotFound, err.Error())
	}

	return c.JSON(member)
}

func editChannelNotifyLevel(c *fiber.Ctx) error {
	user := c.Locals("principal").(models.Account)
	alias := c.Params("channel")

	var data struct {
		NotifyLevel models.NotifyLevel `json:"notify_level" validate:"min=0,max=2"`
	}

	if err := exts.BindAndValidate(c, &data); err != nil {
		return err
	}

	_, member, err := services.GetChannelIdentity(alias, user)
	if err != nil {
		return fiber.NewError(fiber.StatusNotFound, err.Error())
	}

	member.Notify = data.NotifyLevel

	member, err = services.EditChannelMember(member)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	return c.JSON(member)
}

func joinChannel(c *fiber.Ctx) error {
	user := c.Locals("principal").(models.Account)
	alias := c.Params("channel")

	channel, err := services.GetChannelWithAlias(alias)
	if err != nil {
		return fiber.NewError(fiber.StatusNotFound, err.Error())
	}

	member, err := services.AddChannelMember(user, channel)
	if err != nil {
		return fiber.NewError(fiber.StatusForbidden, err.Error())
	}

	return c.JSON(member)
}

func leaveChannel(c *fiber.Ctx) error {
	user := c.Locals("principal").(models.Account)
	alias := c.Params("channel")

	channel, member, err := services.GetChannelIdentity(alias, user)
	if err != nil {
		return fiber.NewError(fiber.StatusNotFound, err.Error())
	}

	if err := services.RemoveChannelMember(member, channel); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	services.DropComposerSession(channel.ID, member.ID)

	return c.SendStatus(fiber.StatusOK)
}
