package message

import (
	"context"
	"strings"

	domain "github.com/justdogsza/dog-training-api/internal/domain/message"
	"github.com/justdogsza/dog-training-api/internal/models"
)

type Inbox struct {
	repo domain.Repository
}

func NewInbox(
	repo domain.Repository,
) *Inbox {
	return &Inbox{
		repo: repo,
	}
}

// List returns the user's messages, optionally narrowed by a
// case-insensitive substring match over subject and content. An empty term
// returns the whole collection.
func (uc *Inbox) List(
	ctx context.Context,
	userID uint,
	role models.Role,
	term string,
) ([]models.Message, error) {

	msgs, err := uc.repo.ListForUser(ctx, userID, role)
	if err != nil {
		return nil, err
	}

	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return msgs, nil
	}

	out := make([]models.Message, 0, len(msgs))
	for _, m := range msgs {
		if strings.Contains(strings.ToLower(m.Subject), term) ||
			strings.Contains(strings.ToLower(m.Content), term) {
			out = append(out, m)
		}
	}
	return out, nil
}

func (uc *Inbox) Unread(
	ctx context.Context,
	userID uint,
	role models.Role,
) ([]models.Message, error) {
	return uc.repo.ListUnread(ctx, userID, role)
}
