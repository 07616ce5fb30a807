package handler

import (
	"strconv"

	"social-platform/internal/service"
	"social-platform/pkg/response"
	"social-platform/pkg/token"

	"github.com/gin-gonic/gin"
)

// MessageHandler serves the REST side of direct messaging: send,
// history and the counterpart list. Live delivery runs over the
// websocket channel; this path shares the same service so a message
// sent here still reaches an open channel.
type MessageHandler struct {
	service *service.MessageService
}

func NewMessageHandler(s *service.MessageService) *MessageHandler {
	return &MessageHandler{service: s}
}

// Send persists a message and attempts live delivery.
func (h *MessageHandler) Send(c *gin.Context) {
	type req struct {
		ReceiverID    uint   `json:"receiver_id" binding:"required"`
		Content       string `json:"content" binding:"required"`
		AttachmentURL string `json:"attachment_url"`
	}
	var r req
	if err := c.ShouldBindJSON(&r); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	message, err := h.service.Send(token.GetUserID(c), r.ReceiverID, r.Content, r.AttachmentURL)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Created(c, "message sent", response.FilterMessageInfo(message))
}

// History returns the full conversation between the caller and the
// given user, oldest first. No pagination: the observed design always
// returns the whole conversation.
func (h *MessageHandler) History(c *gin.Context) {
	otherID, err := strconv.ParseUint(c.Param("user_id"), 10, 32)
	if err != nil {
		response.BadRequest(c, "invalid user id")
		return
	}

	messages, err := h.service.History(token.GetUserID(c), uint(otherID))
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, response.FilterMessageList(messages))
}

// Counterparts lists the users the caller has a conversation with.
func (h *MessageHandler) Counterparts(c *gin.Context) {
	counterparts, err := h.service.Counterparts(token.GetUserID(c))
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, counterparts)
}
