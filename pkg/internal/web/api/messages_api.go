package api

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tripmates/messaging/pkg/internal/chatkit"
	"github.com/tripmates/messaging/pkg/internal/models"
	"github.com/tripmates/messaging/pkg/internal/services"
	"github.com/tripmates/messaging/pkg/internal/web/exts"
)

func listMessage(c *fiber.Ctx) error {
	user := c.Locals("principal").(models.Account)
	alias := c.Params("channel")
	take := c.QueryInt("take", 50)
	offset := c.QueryInt("offset", 0)
	filter := c.Query("filter", chatkit.FilterAll)

	if !chatkit.IsValidFilter(filter) {
		return fiber.NewError(fiber.StatusBadRequest, "unknown message filter")
	}

	channel, _, err := services.GetChannelIdentity(alias, user)
	if err != nil {
		return fiber.NewError(fiber.StatusForbidden, "you need join the channel before you read the messages")
	}

	count := services.CountMessage(channel, filter)
	messages, err := services.ListMessage(channel, filter, take, offset)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return c.JSON(fiber.Map{
		"count": count,
		"data":  messages,
	})
}

func getMessage(c *fiber.Ctx) error {
	user := c.Locals("principal").(models.Account)
	alias := c.Params("channel")
	messageId, _ := c.ParamsInt("messageId", 0)

	channel, _, err := services.GetChannelIdentity(alias, user)
	if err != nil {
		return fiber.NewError(fiber.StatusForbidden, err.Error())
	}

	message, err := services.GetMessage(channel, uint(messageId))
	if err != nil {
		return fiber.NewError(fiber.StatusNotFound, err.Error())
	}

	return c.JSON(message)
}

// sendMessage runs the caller's composer draft through the state machine.
// Text in the request replaces the pending draft text before the send.
// Validation rejections come back as 422 so clients can tell a dropped
// send from a failing backend.
func sendMessage(c *fiber.Ctx) error {
	user := c.Locals("principal").(models.Account)
	alias := c.Params("channel")

	var data struct {
		Text      string                 `json:"text"`
		Broadcast bool                   `json:"broadcast"`
		Payment   *chatkit.PaymentDetail `json:"payment"`
	}

	if err := exts.BindAndValidate(c, &data); err != nil {
		return err
	}

	channel, member, err := services.GetChannelIdentity(alias, user)
	if err != nil {
		return fiber.NewError(fiber.StatusNotFound, err.Error())
	}

	if len(data.Text) > 0 {
		services.GetComposerSession(channel, member).SetText(data.Text)
	}

	message, err := services.SendDraft(channel, member, chatkit.SendOptions{
		Broadcast: data.Broadcast,
		Payment:   data.Payment,
	})
	if chatkit.IsRejection(err) {
		return fiber.NewError(fiber.StatusUnprocessableEntity, err.Error())
	} else if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return c.JSON(message)
}

func deleteMessage(c *fiber.Ctx) error {
	user := c.Locals("principal").(models.Account)
	alias := c.Params("channel")
	messageId, _ := c.ParamsInt("messageId", 0)

	channel, member, err := services.GetChannelIdentity(alias, user)
	if err != nil {
		return fiber.NewError(fiber.StatusNotFound, err.Error())
	}

	message, err := services.GetMessageWithPrincipal(channel, member, uint(messageId))
	if err != nil {
		return fiber.NewError(fiber.StatusNotFound, err.Error())
	}

	message, err = services.DeleteMessage(message)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	return c.JSON(message)
}
