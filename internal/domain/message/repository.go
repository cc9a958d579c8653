package message

import (
	"context"

	"github.com/justdogsza/dog-training-api/internal/models"
)

type Repository interface {
	GetUser(
		ctx context.Context,
		id uint,
	) (*models.User, error)

	Create(
		ctx context.Context,
		m *models.Message,
	) error

	GetByID(
		ctx context.Context,
		id uint,
	) (*models.Message, error)

	// ListForUser returns direct messages in either direction plus the
	// announcements visible to the user's role, newest first.
	ListForUser(
		ctx context.Context,
		userID uint,
		role models.Role,
	) ([]models.Message, error)

	ListUnread(
		ctx context.Context,
		userID uint,
		role models.Role,
	) ([]models.Message, error)

	Update(
		ctx context.Context,
		m *models.Message,
	) error

	Delete(
		ctx context.Context,
		id uint,
	) (bool, error)
}
