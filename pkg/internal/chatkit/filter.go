package chatkit

import "github.com/samber/lo"

// FilterMessages returns the subsequence of messages matching the filter,
// preserving the original order. The input slice is never mutated.
// Classification goes through the kind discriminator only.
func FilterMessages(messages []Message, f Filter) []Message {
	switch f {
	case FilterBroadcast:
		return lo.Filter(messages, func(m Message, _ int) bool {
			return m.Kind == KindBroadcast
		})
	case FilterPayments:
		return lo.Filter(messages, func(m Message, _ int) bool {
			return m.Kind == KindPayment
		})
	default:
		return messages
	}
}
