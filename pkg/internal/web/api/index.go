package api

import (
	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"

	"github.com/tripmates/messaging/pkg/internal/auth"
)

func MapAPIs(app *fiber.App, baseURL string) {
	api := app.Group(baseURL).Name("API").Use(auth.Middleware)
	{
		api.Get("/users/me", getUserinfo)
		api.Get("/users/:account", getOthersInfo)

		api.Get("/notifications", listNotification)
		api.Put("/notifications/read", markAllNotificationsRead)

		api.Get("/trips", listTrip)
		api.Post("/trips", createTrip)

		channels := api.Group("/channels/:trip").Use(tripMiddleware).Name("Channels API")
		{
			channels.Get("/", listChannel)
			channels.Get("/me", listOwnedChannel)
			channels.Get("/me/available", listAvailableChannel)
			channels.Get("/:channel", getChannel)

			channels.Post("/", createChannel)
			channels.Put("/:channelId", editChannel)
			channels.Delete("/:channelId", deleteChannel)

			channels.Get("/:channel/members", listChannelMembers)
			channels.Get("/:channel/members/me", getMyChannelMembership)
			channels.Put("/:channel/members/me/notify", editChannelNotifyLevel)
			channels.Post("/:channel/members/me", joinChannel)
			channels.Delete("/:channel/members/me", leaveChannel)

			channels.Get("/:channel/messages", listMessage)
			channels.Get("/:channel/messages/:messageId", getMessage)
			channels.Post("/:channel/messages", sendMessage)
			channels.Delete("/:channel/messages/:messageId", deleteMessage)

			channels.Get("/:channel/messages/:messageId/reactions", listReactions)
			channels.Post("/:channel/messages/:messageId/reactions/:kind", toggleReaction)

			channels.Get("/:channel/draft", getDraft)
			channels.Put("/:channel/draft", setDraftText)
			channels.Put("/:channel/draft/reply", setDraftReply)
			channels.Delete("/:channel/draft/reply", clearDraftReply)
			channels.Put("/:channel/draft/filter", setDraftFilter)
		}

		api.Get("/unified", websocket.New(unifiedGateway))
	}
}
