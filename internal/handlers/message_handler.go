package handlers

import (
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	domMessage "github.com/justdogsza/dog-training-api/internal/domain/message"
	"github.com/justdogsza/dog-training-api/internal/httperr"
	"github.com/justdogsza/dog-training-api/internal/httpresp"
	"github.com/justdogsza/dog-training-api/internal/models"
	"github.com/justdogsza/dog-training-api/internal/notify"
	ucMessage "github.com/justdogsza/dog-training-api/internal/usecase/message"
)

type MessageHandler struct {
	repo     domMessage.Repository
	hub      *notify.Hub
	send     *ucMessage.SendMessage
	inbox    *ucMessage.Inbox
	markRead *ucMessage.MarkRead
}

func NewMessageHandler(
	repo domMessage.Repository,
	hub *notify.Hub,
	send *ucMessage.SendMessage,
	inbox *ucMessage.Inbox,
	markRead *ucMessage.MarkRead,
) *MessageHandler {
	return &MessageHandler{
		repo:     repo,
		hub:      hub,
		send:     send,
		inbox:    inbox,
		markRead: markRead,
	}
}

// --------- Requests ---------

type SendMessageRequest struct {
	RecipientID *uint  `json:"recipient_id"`
	Subject     string `json:"subject" binding:"required"`
	Content     string `json:"content" binding:"required"`

	IsAnnouncement bool     `json:"is_announcement"`
	TargetRoles    []string `json:"target_roles"`
}

// --------- Handlers ---------

func (h *MessageHandler) Send(c *gin.Context) {
	var req SendMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	// Only admins broadcast announcements.
	if req.IsAnnouncement && currentUserRole(c) != models.RoleAdmin {
		httperr.Forbidden(c, "announcement_not_allowed",
			"Only administrators can send announcements.")
		return
	}

	m, err := h.send.Execute(c.Request.Context(), ucMessage.SendMessageInput{
		SenderID:       currentUserID(c),
		RecipientID:    req.RecipientID,
		Subject:        req.Subject,
		Content:        req.Content,
		IsAnnouncement: req.IsAnnouncement,
		TargetRoles:    req.TargetRoles,
	})
	if err != nil {
		writeError(c, err)
		return
	}

	httpresp.Created(c, m)
}

func (h *MessageHandler) List(c *gin.Context) {
	msgs, err := h.inbox.List(c.Request.Context(),
		currentUserID(c), currentUserRole(c), c.Query("query"))
	if err != nil {
		httperr.Internal(c, "failed_to_list_messages", "Could not list messages.")
		return
	}

	httpresp.List(c, msgs)
}

func (h *MessageHandler) Unread(c *gin.Context) {
	msgs, err := h.inbox.Unread(c.Request.Context(),
		currentUserID(c), currentUserRole(c))
	if err != nil {
		httperr.Internal(c, "failed_to_list_messages", "Could not list unread messages.")
		return
	}

	httpresp.List(c, msgs)
}

func (h *MessageHandler) MarkRead(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	m, err := h.markRead.Execute(c.Request.Context(),
		currentUserID(c), currentUserRole(c), id)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, m)
}

// Delete removes a message the caller sent; admins can remove anything.
func (h *MessageHandler) Delete(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	m, err := h.repo.GetByID(c.Request.Context(), id)
	if err != nil {
		httperr.NotFound(c, "message_not_found", "Message not found.")
		return
	}

	if currentUserRole(c) != models.RoleAdmin && m.SenderID != currentUserID(c) {
		httperr.Forbidden(c, "not_message_sender",
			"Only the sender can delete a message.")
		return
	}

	deleted, err := h.repo.Delete(c.Request.Context(), id)
	if err != nil {
		httperr.Internal(c, "failed_to_delete_message", "Could not delete the message.")
		return
	}
	if !deleted {
		httperr.NotFound(c, "message_not_found", "Message not found.")
		return
	}

	c.Status(http.StatusNoContent)
}

// Stream pushes new messages addressed to the caller over SSE. A comment
// heartbeat keeps intermediaries from closing the idle connection.
func (h *MessageHandler) Stream(c *gin.Context) {
	sub := h.hub.Subscribe(c.Request.Context(), currentUserID(c), currentUserRole(c))
	defer sub.Close()

	c.Writer.Header().Set("Cache-Control", "no-cache")
	c.Writer.Header().Set("Connection", "keep-alive")

	heartbeat := time.NewTicker(30 * time.Second)
	defer heartbeat.Stop()

	c.Stream(func(w io.Writer) bool {
		select {
		case m, open := <-sub.C:
			if !open {
				return false
			}
			c.SSEvent("message", m)
			return true
		case <-heartbeat.C:
			c.SSEvent("ping", time.Now().Unix())
			return true
		case <-c.Request.Context().Done():
			return false
		}
	})
}
