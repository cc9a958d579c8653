package message

import (
	"context"

	domain "github.com/justdogsza/dog-training-api/internal/domain/message"
	"github.com/justdogsza/dog-training-api/internal/httperr"
	"github.com/justdogsza/dog-training-api/internal/models"
)

// Notifier pushes a freshly created message to live subscribers.
type Notifier interface {
	Publish(ctx context.Context, m models.Message)
}

// ======================================================
// INPUT
// ======================================================

type SendMessageInput struct {
	SenderID uint

	RecipientID *uint
	Subject     string
	Content     string

	IsAnnouncement bool
	TargetRoles    []string
}

// ======================================================
// USE CASE
// ======================================================

type SendMessage struct {
	repo   domain.Repository
	notify Notifier
}

func NewSendMessage(
	repo domain.Repository,
	notify Notifier,
) *SendMessage {
	return &SendMessage{
		repo:   repo,
		notify: notify,
	}
}

func (uc *SendMessage) Execute(
	ctx context.Context,
	in SendMessageInput,
) (*models.Message, error) {

	m := &models.Message{
		SenderID:       in.SenderID,
		Subject:        in.Subject,
		Content:        in.Content,
		IsAnnouncement: in.IsAnnouncement,
	}

	if in.IsAnnouncement {
		for _, r := range in.TargetRoles {
			role, ok := models.ParseRole(r)
			if !ok {
				return nil, httperr.ErrBusiness("invalid_target_role")
			}
			m.TargetRoles = append(m.TargetRoles, role)
		}
	} else {
		if in.RecipientID == nil {
			return nil, httperr.ErrBusiness("missing_recipient")
		}
		if _, err := uc.repo.GetUser(ctx, *in.RecipientID); err != nil {
			return nil, httperr.ErrBusiness("recipient_not_found")
		}
		m.RecipientID = in.RecipientID
	}

	if err := uc.repo.Create(ctx, m); err != nil {
		return nil, err
	}

	uc.notify.Publish(ctx, *m)

	return m, nil
}
