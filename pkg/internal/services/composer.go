package services

import (
	"sync"

	"github.com/tripmates/messaging/pkg/internal/chatkit"
	"github.com/tripmates/messaging/pkg/internal/models"
)

// Server-held composer sessions, one per (channel, member). Drafts live in
// memory only; they are gone with the process, like an unsent input box.

type composerKey struct {
	ChannelID uint
	MemberID  uint
}

var composerSessions = make(map[composerKey]*chatkit.Session)
var composerLock sync.Mutex

func GetComposerSession(channel models.Channel, member models.ChannelMember) *chatkit.Session {
	composerLock.Lock()
	defer composerLock.Unlock()

	policy := chatkit.SessionPolicy{
		AllowPayments: !channel.DisablePayments,
	}

	key := composerKey{channel.ID, member.ID}
	if session, ok := composerSessions[key]; ok {
		// Keep a live draft in step with channel policy edits.
		session.SetPolicy(policy)
		return session
	}

	session := chatkit.NewSession(policy)
	composerSessions[key] = session
	return session
}

func DropComposerSession(channelId uint, memberId uint) {
	composerLock.Lock()
	defer composerLock.Unlock()
	delete(composerSessions, composerKey{channelId, memberId})
}

// SendDraft runs the composer state machine for one member and persists the
// outcome. Rejections bubble up unchanged so callers can tell them apart
// from storage failures via chatkit.IsRejection.
func SendDraft(channel models.Channel, member models.ChannelMember, opts chatkit.SendOptions) (models.Message, error) {
	session := GetComposerSession(channel, member)

	sender := chatkit.Sender{
		ID:     member.ID,
		Name:   member.Nick,
		Avatar: member.Avatar,
	}

	composed, err := session.Send(sender, opts)
	if err != nil {
		return models.Message{}, err
	}

	return NewMessage(composed, channel, member)
}
