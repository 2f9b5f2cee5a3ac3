package chatkit_test

import (
	"testing"

	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"

	"github.com/tripmates/messaging/pkg/internal/chatkit"
)

func sampleMessages() []chatkit.Message {
	return []chatkit.Message{
		{ID: "m1", Kind: chatkit.KindNormal, Text: "anyone up for ramen?"},
		{ID: "m2", Kind: chatkit.KindBroadcast, Text: "checkout is at 11"},
		{ID: "m3", Kind: chatkit.KindPayment, Text: "Taxi - USD 24.00 (split 2 ways) • Pay me 12.00 via cash"},
		{ID: "m4", Kind: chatkit.KindNormal, Text: "💳 Payment looks done"},
		{ID: "m5", Kind: chatkit.KindBroadcast, Text: "bus at 9 sharp"},
	}
}

func TestFilterAllIsIdentity(t *testing.T) {
	messages := sampleMessages()
	assert.Equal(t, messages, chatkit.FilterMessages(messages, chatkit.FilterAll))
}

func TestFilterBroadcastKeepsOrder(t *testing.T) {
	got := chatkit.FilterMessages(sampleMessages(), chatkit.FilterBroadcast)
	assert.Equal(t, []string{"m2", "m5"}, lo.Map(got, func(m chatkit.Message, _ int) string {
		return m.ID
	}))
}

func TestFilterPaymentsIgnoresTextSniffing(t *testing.T) {
	// m4 mentions a payment in its text but is a normal message; only the
	// kind discriminator counts.
	got := chatkit.FilterMessages(sampleMessages(), chatkit.FilterPayments)
	assert.Equal(t, []string{"m3"}, lo.Map(got, func(m chatkit.Message, _ int) string {
		return m.ID
	}))
}

func TestFilterDoesNotMutateInput(t *testing.T) {
	messages := sampleMessages()
	_ = chatkit.FilterMessages(messages, chatkit.FilterBroadcast)
	assert.Equal(t, sampleMessages(), messages)
}
