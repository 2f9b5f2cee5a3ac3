package chatkit_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tripmates/messaging/pkg/internal/chatkit"
)

var alice = chatkit.Sender{ID: 1, Name: "Alice"}

func TestSendPassesTextThroughVerbatim(t *testing.T) {
	s := chatkit.NewSession(chatkit.SessionPolicy{AllowPayments: true})
	s.SetText("  let's meet at the gate 🛫 ")

	msg, err := s.Send(alice, chatkit.SendOptions{})
	require.NoError(t, err)
	assert.Equal(t, "  let's meet at the gate 🛫 ", msg.Text)
	assert.Equal(t, chatkit.KindNormal, msg.Kind)
	assert.NotEmpty(t, msg.ID)
}

func TestSendRejectsEmptyInput(t *testing.T) {
	s := chatkit.NewSession(chatkit.SessionPolicy{AllowPayments: true})
	s.SetText("   \t ")

	_, err := s.Send(alice, chatkit.SendOptions{})
	assert.ErrorIs(t, err, chatkit.ErrEmptyMessage)
	assert.True(t, chatkit.IsRejection(err))
	assert.Equal(t, "   \t ", s.Text(), "failed send must not touch the input")
}

func TestSendClearsTextAndReply(t *testing.T) {
	s := chatkit.NewSession(chatkit.SessionPolicy{AllowPayments: true})
	s.SetReply("m1", "hello", "Alice")
	s.SetText("hi")

	msg, err := s.Send(chatkit.Sender{ID: 2, Name: "Bob"}, chatkit.SendOptions{})
	require.NoError(t, err)

	require.NotNil(t, msg.ReplyTo)
	assert.Equal(t, chatkit.ReplyRef{ID: "m1", Excerpt: "hello", SenderName: "Alice"}, *msg.ReplyTo)
	assert.Empty(t, s.Text())
	assert.False(t, s.Replying(), "session must return to idle after a send")
}

func TestClearReplyIsIdempotent(t *testing.T) {
	s := chatkit.NewSession(chatkit.SessionPolicy{})
	s.ClearReply()
	assert.False(t, s.Replying())

	s.SetReply("m1", "hello", "Alice")
	s.ClearReply()
	s.ClearReply()
	assert.False(t, s.Replying())
}

func TestPaymentSendAllowedWithEmptyInput(t *testing.T) {
	s := chatkit.NewSession(chatkit.SessionPolicy{AllowPayments: true})

	msg, err := s.Send(alice, chatkit.SendOptions{Payment: &chatkit.PaymentDetail{
		Description: "Dinner at the night market",
		Currency:    "USD",
		Amount:      90,
		SplitCount:  4,
		Method:      "Venmo",
	}})
	require.NoError(t, err)
	assert.Equal(t, chatkit.KindPayment, msg.Kind)
	assert.Equal(t, "Dinner at the night market - USD 90.00 (split 4 ways) • Pay me 22.50 via Venmo", msg.Text)
}

func TestPaymentSendBlockedByPolicy(t *testing.T) {
	s := chatkit.NewSession(chatkit.SessionPolicy{AllowPayments: false})
	s.SetText("split the cab?")

	_, err := s.Send(alice, chatkit.SendOptions{Payment: &chatkit.PaymentDetail{
		Currency: "USD", Amount: 30, SplitCount: 3, Method: "cash",
	}})
	assert.ErrorIs(t, err, chatkit.ErrPaymentNotAllowed)
	assert.Equal(t, "split the cab?", s.Text())
}

func TestSetPolicyAppliesToPendingDraft(t *testing.T) {
	s := chatkit.NewSession(chatkit.SessionPolicy{AllowPayments: true})
	s.SetText("dinner tab")

	s.SetPolicy(chatkit.SessionPolicy{AllowPayments: false})
	_, err := s.Send(alice, chatkit.SendOptions{Payment: &chatkit.PaymentDetail{
		Currency: "USD", Amount: 60, SplitCount: 2, Method: "Venmo",
	}})
	assert.ErrorIs(t, err, chatkit.ErrPaymentNotAllowed)
	assert.Equal(t, "dinner tab", s.Text(), "policy swap must not drop the draft")
}

func TestSetFilterIsIdempotent(t *testing.T) {
	s := chatkit.NewSession(chatkit.SessionPolicy{})
	s.SetFilter(chatkit.FilterBroadcast)
	once := s.Filter()
	s.SetFilter(chatkit.FilterBroadcast)
	assert.Equal(t, once, s.Filter())
}

func TestFilterSurvivesSends(t *testing.T) {
	s := chatkit.NewSession(chatkit.SessionPolicy{})
	s.SetFilter(chatkit.FilterPayments)
	s.SetText("heads up")

	_, err := s.Send(alice, chatkit.SendOptions{Broadcast: true})
	require.NoError(t, err)
	assert.Equal(t, chatkit.FilterPayments, s.Filter())
}
