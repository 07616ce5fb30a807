package handler

import (
	"strconv"

	"social-platform/internal/service"
	"social-platform/pkg/response"

	"github.com/gin-gonic/gin"
)

// AdminHandler serves the moderation surface. Routes using it are
// mounted behind the admin middleware.
type AdminHandler struct {
	service *service.AdminService
}

func NewAdminHandler(s *service.AdminService) *AdminHandler {
	return &AdminHandler{service: s}
}

// Stats returns aggregate counts.
func (h *AdminHandler) Stats(c *gin.Context) {
	stats, err := h.service.GetStats()
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, stats)
}

// ListUsers returns every regular account.
func (h *AdminHandler) ListUsers(c *gin.Context) {
	users, err := h.service.ListUsers()
	if err != nil {
		response.FromError(c, err)
		return
	}

	out := make([]*response.UserInfo, 0, len(users))
	for _, u := range users {
		out = append(out, response.FilterUserInfo(u))
	}
	response.Success(c, out)
}

// SetBlocked blocks or unblocks an account.
func (h *AdminHandler) SetBlocked(c *gin.Context) {
	userID, err := strconv.ParseUint(c.Param("user_id"), 10, 32)
	if err != nil {
		response.BadRequest(c, "invalid user id")
		return
	}

	type req struct {
		Blocked *bool `json:"blocked" binding:"required"`
	}
	var r req
	if err := c.ShouldBindJSON(&r); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	if err := h.service.SetBlocked(uint(userID), *r.Blocked); err != nil {
		response.FromError(c, err)
		return
	}
	if *r.Blocked {
		response.SuccessWithMessage(c, "user blocked", nil)
	} else {
		response.SuccessWithMessage(c, "user unblocked", nil)
	}
}

// DeleteUser removes an account and everything it owns.
func (h *AdminHandler) DeleteUser(c *gin.Context) {
	userID, err := strconv.ParseUint(c.Param("user_id"), 10, 32)
	if err != nil {
		response.BadRequest(c, "invalid user id")
		return
	}

	if err := h.service.DeleteUser(uint(userID)); err != nil {
		response.FromError(c, err)
		return
	}
	response.SuccessWithMessage(c, "user deleted", nil)
}
