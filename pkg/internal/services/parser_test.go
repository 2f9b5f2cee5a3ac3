package services_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tripmates/messaging/pkg/internal/services"
)

func TestExtractLinks(t *testing.T) {
	text := "itinerary: https://example.com/trip and http://maps.example.com/x?q=1"
	assert.Equal(t, []string{
		"https://example.com/trip",
		"http://maps.example.com/x?q=1",
	}, services.ExtractLinks(text))

	assert.Empty(t, services.ExtractLinks("no links here"))
}

func TestExtractMentionNames(t *testing.T) {
	text := "@alice can you ping @bob_77? thanks @alice"
	assert.Equal(t, []string{"alice", "bob_77"}, services.ExtractMentionNames(text))
}
