package repository

import (
	"context"

	"gorm.io/gorm"

	domain "github.com/justdogsza/dog-training-api/internal/domain/message"
	"github.com/justdogsza/dog-training-api/internal/models"
)

type MessageGormRepository struct {
	db *gorm.DB
}

func NewMessageGormRepository(db *gorm.DB) *MessageGormRepository {
	return &MessageGormRepository{db: db}
}

func (r *MessageGormRepository) GetUser(
	ctx context.Context,
	id uint,
) (*models.User, error) {

	var user models.User
	if err := r.db.WithContext(ctx).First(&user, id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *MessageGormRepository) Create(
	ctx context.Context,
	m *models.Message,
) error {
	return r.db.WithContext(ctx).Create(m).Error
}

func (r *MessageGormRepository) GetByID(
	ctx context.Context,
	id uint,
) (*models.Message, error) {

	var m models.Message
	if err := r.db.WithContext(ctx).First(&m, id).Error; err != nil {
		return nil, err
	}
	return &m, nil
}

// ListForUser pulls direct messages and announcements in one query; the role
// targeting of announcements is applied in Go since target_roles is a JSON
// column.
func (r *MessageGormRepository) ListForUser(
	ctx context.Context,
	userID uint,
	role models.Role,
) ([]models.Message, error) {

	var msgs []models.Message
	if err := r.db.WithContext(ctx).
		Where("sender_id = ? OR recipient_id = ? OR is_announcement = ?", userID, userID, true).
		Order("created_at DESC").
		Find(&msgs).Error; err != nil {
		return nil, err
	}

	out := make([]models.Message, 0, len(msgs))
	for _, m := range msgs {
		if domain.VisibleTo(m, userID, role) {
			out = append(out, m)
		}
	}
	return out, nil
}

func (r *MessageGormRepository) ListUnread(
	ctx context.Context,
	userID uint,
	role models.Role,
) ([]models.Message, error) {

	var msgs []models.Message
	if err := r.db.WithContext(ctx).
		Where("(recipient_id = ? OR is_announcement = ?) AND read_at IS NULL", userID, true).
		Order("created_at DESC").
		Find(&msgs).Error; err != nil {
		return nil, err
	}

	out := make([]models.Message, 0, len(msgs))
	for _, m := range msgs {
		if domain.Addressed(m, userID, role) {
			out = append(out, m)
		}
	}
	return out, nil
}

func (r *MessageGormRepository) Update(
	ctx context.Context,
	m *models.Message,
) error {
	return r.db.WithContext(ctx).Save(m).Error
}

func (r *MessageGormRepository) Delete(
	ctx context.Context,
	id uint,
) (bool, error) {

	res := r.db.WithContext(ctx).Delete(&models.Message{}, id)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

// Compile-time check
var _ domain.Repository = (*MessageGormRepository)(nil)
