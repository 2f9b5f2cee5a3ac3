package chatkit

// Default avatars assigned to members who never uploaded one. Known seed
// names map directly; anyone else lands on a stable fallback picked by a
// cheap rolling hash over the trimmed name.

import "strings"

var avatarTable = map[string]string{
	"TripMate Bot":  "avatars/bot.png",
	"Trip Support":  "avatars/support.png",
	"Announcements": "avatars/megaphone.png",
}

var fallbackAvatars = []string{
	"avatars/fallback-0.png",
	"avatars/fallback-1.png",
	"avatars/fallback-2.png",
	"avatars/fallback-3.png",
	"avatars/fallback-4.png",
	"avatars/fallback-5.png",
}

// ResolveAvatar maps a display name to an avatar reference. Deterministic
// and total: the same name always yields the same reference.
func ResolveAvatar(name string) string {
	name = strings.TrimSpace(name)
	if ref, ok := avatarTable[name]; ok {
		return ref
	}

	hash := uint(0)
	for _, ch := range name {
		hash = hash*31 + uint(ch)
	}
	return fallbackAvatars[hash%uint(len(fallbackAvatars))]
}
