package api

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tripmates/messaging/pkg/internal/chatkit"
	"github.com/tripmates/messaging/pkg/internal/models"
	"github.com/tripmates/messaging/pkg/internal/services"
	"github.com/tripmates/messaging/pkg/internal/web/exts"
)

// The draft endpoints expose one composer session per (channel, member).
// Drafts are process-local state, not persisted history.

func draftView(session *chatkit.Session) fiber.Map {
	return fiber.Map{
		"text":     session.Text(),
		"replying": session.Replying(),
		"reply":    session.Reply(),
		"filter":   session.Filter(),
	}
}

func getDraft(c *fiber.Ctx) error {
	user := c.Locals("principal").(models.Account)
	alias := c.Params("channel")

	channel, member, err := services.GetChannelIdentity(alias, user)
	if err != nil {
		return fiber.NewError(fiber.StatusNotFound, err.Error())
	}

	return c.JSON(draftView(services.GetComposerSession(channel, member)))
}

func setDraftText(c *fiber.Ctx) error {
	user := c.Locals("principal").(models.Account)
	alias := c.Params("channel")

	var data struct {
		Text string `json:"text"`
	}

	if err := exts.BindAndValidate(c, &data); err != nil {
		return err
	}

	channel, member, err := services.GetChannelIdentity(alias, user)
	if err != nil {
		return fiber.NewError(fiber.StatusNotFound, err.Error())
	}

	session := services.GetComposerSession(channel, member)
	session.SetText(data.Text)

	return c.JSON(draftView(session))
}

// setDraftReply snapshots the quoted message into the session. The excerpt
// is copied now; later edits or deletion of the original will not follow.
func setDraftReply(c *fiber.Ctx) error {
	user := c.Locals("principal").(models.Account)
	alias := c.Params("channel")

	var data struct {
		MessageID uint `json:"message_id" validate:"required"`
	}

	if err := exts.BindAndValidate(c, &data); err != nil {
		return err
	}

	channel, member, err := services.GetChannelIdentity(alias, user)
	if err != nil {
		return fiber.NewError(fiber.StatusNotFound, err.Error())
	}

	target, err := services.GetMessage(channel, data.MessageID)
	if err != nil {
		return fiber.NewError(fiber.StatusNotFound, err.Error())
	}

	body := services.DecodeMessageBody(target)
	excerpt := []rune(body.Text)
	if len(excerpt) > 120 {
		excerpt = excerpt[:120]
	}

	session := services.GetComposerSession(channel, member)
	session.SetReply(target.Uuid, string(excerpt), target.Sender.Nick)

	return c.JSON(draftView(session))
}

func clearDraftReply(c *fiber.Ctx) error {
	user := c.Locals("principal").(models.Account)
	alias := c.Params("channel")

	channel, member, err := services.GetChannelIdentity(alias, user)
	if err != nil {
		return fiber.NewError(fiber.StatusNotFound, err.Error())
	}

	session := services.GetComposerSession(channel, member)
	session.ClearReply()

	return c.JSON(draftView(session))
}

func setDraftFilter(c *fiber.Ctx) error {
	user := c.Locals("principal").(models.Account)
	alias := c.Params("channel")

	var data struct {
		Filter chatkit.Filter `json:"filter" validate:"required"`
	}

	if err := exts.BindAndValidate(c, &data); err != nil {
		return err
	} else if !chatkit.IsValidFilter(data.Filter) {
		return fiber.NewError(fiber.StatusBadRequest, "unknown message filter")
	}

	channel, member, err := services.GetChannelIdentity(alias, user)
	if err != nil {
		return fiber.NewError(fiber.StatusNotFound, err.Error())
	}

	session := services.GetComposerSession(channel, member)
	session.SetFilter(data.Filter)

	return c.JSON(draftView(session))
}
