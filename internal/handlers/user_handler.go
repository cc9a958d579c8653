package handlers

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/justdogsza/dog-training-api/internal/httperr"
	"github.com/justdogsza/dog-training-api/internal/httpresp"
	"github.com/justdogsza/dog-training-api/internal/models"
)

type UserHandler struct {
	db *gorm.DB
}

func NewUserHandler(db *gorm.DB) *UserHandler {
	return &UserHandler{db: db}
}

// List is admin-only and supports ?role= and ?query= (name or email).
func (h *UserHandler) List(c *gin.Context) {
	q := h.db.Model(&models.User{})

	if roleStr := c.Query("role"); roleStr != "" {
		role, ok := models.ParseRole(roleStr)
		if !ok {
			httperr.BadRequest(c, "invalid_role", "Unknown role filter.")
			return
		}
		q = q.Where("role = ?", role)
	}

	if term := c.Query("query"); term != "" {
		like := "%" + term + "%"
		q = q.Where("full_name ILIKE ? OR email ILIKE ?", like, like)
	}

	var users []models.User
	if err := q.Order("full_name asc").Find(&users).Error; err != nil {
		httperr.Internal(c, "failed_to_list_users", "Could not list users.")
		return
	}

	httpresp.List(c, users)
}

// Trainers returns staff a parent can book with. Open to every
// authenticated role so the booking form can populate its dropdown.
func (h *UserHandler) Trainers(c *gin.Context) {
	var users []models.User
	err := h.db.
		Where("role IN ?", []models.Role{models.RoleTrainer, models.RoleBehaviorist}).
		Order("full_name asc").
		Find(&users).Error
	if err != nil {
		httperr.Internal(c, "failed_to_list_trainers", "Could not list trainers.")
		return
	}

	httpresp.List(c, users)
}
