package message

import (
	"context"

	domain "github.com/justdogsza/dog-training-api/internal/domain/message"
	"github.com/justdogsza/dog-training-api/internal/httperr"
	"github.com/justdogsza/dog-training-api/internal/models"
	"github.com/justdogsza/dog-training-api/internal/timezone"
)

type MarkRead struct {
	repo domain.Repository
}

func NewMarkRead(
	repo domain.Repository,
) *MarkRead {
	return &MarkRead{
		repo: repo,
	}
}

// Execute records when the addressee first read the message. Re-reading
// keeps the original timestamp.
func (uc *MarkRead) Execute(
	ctx context.Context,
	userID uint,
	role models.Role,
	messageID uint,
) (*models.Message, error) {

	m, err := uc.repo.GetByID(ctx, messageID)
	if err != nil {
		return nil, httperr.ErrBusiness("message_not_found")
	}

	if !domain.Addressed(*m, userID, role) {
		return nil, httperr.ErrBusiness("not_message_recipient")
	}

	if m.ReadAt == nil {
		now := timezone.Now()
		m.ReadAt = &now
		if err := uc.repo.Update(ctx, m); err != nil {
			return nil, err
		}
	}

	return m, nil
}
