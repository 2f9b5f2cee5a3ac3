package services_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tripmates/messaging/pkg/internal/chatkit"
	"github.com/tripmates/messaging/pkg/internal/services"
)

func TestKindForFilterScopesCountAndList(t *testing.T) {
	// Count and list both derive their kind clause from this mapping, so a
	// filtered page and its total always cover the same rows.
	kind, scoped := services.KindForFilter(chatkit.FilterBroadcast)
	assert.True(t, scoped)
	assert.Equal(t, chatkit.KindBroadcast, kind)

	kind, scoped = services.KindForFilter(chatkit.FilterPayments)
	assert.True(t, scoped)
	assert.Equal(t, chatkit.KindPayment, kind)

	_, scoped = services.KindForFilter(chatkit.FilterAll)
	assert.False(t, scoped)
}
