package services_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tripmates/messaging/pkg/internal/chatkit"
	"github.com/tripmates/messaging/pkg/internal/models"
	"github.com/tripmates/messaging/pkg/internal/services"
)

func TestComposerSessionFollowsChannelPolicy(t *testing.T) {
	channel := models.Channel{BaseModel: models.BaseModel{ID: 301}}
	sender := models.ChannelMember{BaseModel: models.BaseModel{ID: 7}, Nick: "Alice"}
	defer services.DropComposerSession(channel.ID, sender.ID)

	session := services.GetComposerSession(channel, sender)
	session.SetText("keep this draft")

	// The channel turns payments off while the draft is pending.
	channel.DisablePayments = true
	again := services.GetComposerSession(channel, sender)
	require.Same(t, session, again)
	assert.Equal(t, "keep this draft", again.Text())

	_, err := again.Send(chatkit.Sender{ID: sender.ID, Name: sender.Nick}, chatkit.SendOptions{
		Payment: &chatkit.PaymentDetail{Currency: "USD", Amount: 30, SplitCount: 3, Method: "cash"},
	})
	assert.ErrorIs(t, err, chatkit.ErrPaymentNotAllowed)

	// And back on again.
	channel.DisablePayments = false
	_, err = services.GetComposerSession(channel, sender).Send(
		chatkit.Sender{ID: sender.ID, Name: sender.Nick},
		chatkit.SendOptions{Payment: &chatkit.PaymentDetail{Currency: "USD", Amount: 30, SplitCount: 3, Method: "cash"}},
	)
	assert.NoError(t, err)
}

func TestCheckOnlineTracksConnections(t *testing.T) {
	user := models.Account{BaseModel: models.BaseModel{ID: 905}}
	assert.False(t, services.CheckOnline(user.ID))

	services.ClientRegister(user, nil)
	assert.True(t, services.CheckOnline(user.ID))

	services.ClientUnregister(user, nil)
	assert.False(t, services.CheckOnline(user.ID))
}
