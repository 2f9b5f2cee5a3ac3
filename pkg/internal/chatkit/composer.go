package chatkit

import "strings"

// Filter selects which subset of a channel's messages a viewer sees.
type Filter = string

const (
	FilterAll       = Filter("all")
	FilterBroadcast = Filter("broadcast")
	FilterPayments  = Filter("payments")
)

func IsValidFilter(f Filter) bool {
	switch f {
	case FilterAll, FilterBroadcast, FilterPayments:
		return true
	}
	return false
}

// SessionPolicy carries caller-supplied capabilities for one composer scope.
// Event-scoped surfaces disable payments; this is policy, not a security
// boundary.
type SessionPolicy struct {
	AllowPayments bool
}

// Session is the live editing state for one chat surface. It moves between
// two states, idle and replying, which differ only in whether the next send
// carries a reply snapshot.
type Session struct {
	policy SessionPolicy

	text   string
	reply  *ReplyRef
	filter Filter
}

func NewSession(policy SessionPolicy) *Session {
	return &Session{policy: policy, filter: FilterAll}
}

// SetPolicy swaps the session's capabilities in place. Scope policy can
// change while a draft is pending; the draft itself survives.
func (s *Session) SetPolicy(policy SessionPolicy) {
	s.policy = policy
}

func (s *Session) Text() string     { return s.text }
func (s *Session) Filter() Filter   { return s.filter }
func (s *Session) Replying() bool   { return s.reply != nil }
func (s *Session) Reply() *ReplyRef { return s.reply }

func (s *Session) SetText(text string) {
	s.text = text
}

// SetReply moves the session into the replying state, storing a snapshot of
// the target message.
func (s *Session) SetReply(id, excerpt, senderName string) {
	s.reply = &ReplyRef{ID: id, Excerpt: excerpt, SenderName: senderName}
}

// ClearReply returns to the idle state. No-op when already idle.
func (s *Session) ClearReply() {
	s.reply = nil
}

// SetFilter is a pure state change and always succeeds. The filter survives
// sends; it is independent of the message list.
func (s *Session) SetFilter(f Filter) {
	s.filter = f
}

// Send validates the pending input, builds the message and resets the
// session back to idle. Rejected sends leave the session untouched:
// whitespace-only input on a non-payment send, or a payment send in a scope
// whose policy forbids payments. Payment sends with empty input are fine
// since their text is synthesized.
func (s *Session) Send(sender Sender, opts SendOptions) (Message, error) {
	if opts.Payment == nil && strings.TrimSpace(s.text) == "" {
		return Message{}, ErrEmptyMessage
	}
	if opts.Payment != nil && !s.policy.AllowPayments {
		return Message{}, ErrPaymentNotAllowed
	}

	msg, err := Compose(s.text, sender, s.reply, opts)
	if err != nil {
		return Message{}, err
	}

	s.text = ""
	s.reply = nil
	return msg, nil
}
