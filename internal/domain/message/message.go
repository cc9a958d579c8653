package message

import "github.com/justdogsza/dog-training-api/internal/models"

// Addressed reports whether the message was sent TO this user: a direct
// message naming them, or an announcement whose target roles include theirs
// (an empty target list addresses every role). The sender is not addressed
// by their own message.
func Addressed(m models.Message, userID uint, role models.Role) bool {
	if m.SenderID == userID {
		return false
	}
	if m.RecipientID != nil && *m.RecipientID == userID {
		return true
	}
	if m.IsAnnouncement {
		return len(m.TargetRoles) == 0 || m.TargetRoles.Contains(role)
	}
	return false
}

// VisibleTo reports whether the message belongs in this user's message list:
// anything they sent plus everything addressed to them.
func VisibleTo(m models.Message, userID uint, role models.Role) bool {
	if m.SenderID == userID {
		return true
	}
	return Addressed(m, userID, role)
}
