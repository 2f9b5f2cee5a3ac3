package chatkit

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"
)

// Kind discriminates message categories. It is the single source of truth
// for filtering; callers must not sniff message text to classify entries.
type Kind = string

const (
	KindNormal    = Kind("normal")
	KindBroadcast = Kind("broadcast")
	KindPayment   = Kind("payment")
)

var (
	ErrEmptyMessage      = errors.New("message text was empty")
	ErrInvalidSplitCount = errors.New("payment split count must be greater than zero")
	ErrPaymentNotAllowed = errors.New("payments are not allowed in this context")
)

// IsRejection reports whether an error is a validation rejection rather than
// an infrastructure failure, so callers can keep the two outcomes apart.
func IsRejection(err error) bool {
	return errors.Is(err, ErrEmptyMessage) ||
		errors.Is(err, ErrInvalidSplitCount) ||
		errors.Is(err, ErrPaymentNotAllowed)
}

// Sender identifies who authored a message.
type Sender struct {
	ID     uint   `json:"id"`
	Name   string `json:"name"`
	Avatar string `json:"avatar"`
}

// ReplyRef is a point-in-time copy of the message being replied to.
// It is a snapshot, never a live reference; when the original message is
// removed the snapshot stays as-is.
type ReplyRef struct {
	ID         string `json:"id"`
	Excerpt    string `json:"excerpt"`
	SenderName string `json:"sender_name"`
}

// PaymentDetail describes a bill split request attached to a payment send.
type PaymentDetail struct {
	Description string  `json:"description"`
	Currency    string  `json:"currency"`
	Amount      float64 `json:"amount"`
	SplitCount  int     `json:"split_count"`
	Method      string  `json:"method"`
}

// PerPerson returns the rounded per-head share of the bill.
func (d PaymentDetail) PerPerson() float64 {
	return math.Round(d.Amount/float64(d.SplitCount)*100) / 100
}

// Summary renders the human-readable line baked into payment messages.
func (d PaymentDetail) Summary() string {
	return fmt.Sprintf(
		"%s - %s %.2f (split %d ways) • Pay me %.2f via %s",
		d.Description, d.Currency, d.Amount, d.SplitCount, d.PerPerson(), d.Method,
	)
}

// Message is an immutable chat entry. Reactions are tracked outside the
// message itself, in the ledger.
type Message struct {
	ID        string         `json:"id"`
	Text      string         `json:"text"`
	Kind      Kind           `json:"kind"`
	Sender    Sender         `json:"sender"`
	ReplyTo   *ReplyRef      `json:"reply_to,omitempty"`
	Payment   *PaymentDetail `json:"payment,omitempty"`
	CreatedAt time.Time      `json:"created_at"`
}

// SendOptions selects the message category for a single send.
type SendOptions struct {
	Broadcast bool
	Payment   *PaymentDetail
}

// Compose builds a message from composer input. Payment sends synthesize
// their text from the payment detail and ignore the input text; everything
// else passes the input through verbatim. The reply snapshot is attached
// but not cleared here.
func Compose(text string, sender Sender, reply *ReplyRef, opts SendOptions) (Message, error) {
	msg := Message{
		ID:        uuid.NewString(),
		Kind:      KindNormal,
		Sender:    sender,
		ReplyTo:   reply,
		CreatedAt: time.Now(),
	}

	if opts.Payment != nil {
		if opts.Payment.SplitCount <= 0 {
			return Message{}, ErrInvalidSplitCount
		}
		detail := *opts.Payment
		msg.Kind = KindPayment
		msg.Payment = &detail
		msg.Text = detail.Summary()
		return msg, nil
	}

	if opts.Broadcast {
		msg.Kind = KindBroadcast
	}
	msg.Text = text
	return msg, nil
}
