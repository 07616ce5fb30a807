package handler

import (
	"strconv"

	"social-platform/internal/service"
	"social-platform/pkg/response"
	"social-platform/pkg/token"

	"github.com/gin-gonic/gin"
)

// PostHandler serves the feed, posts, likes and comments.
type PostHandler struct {
	service *service.PostService
}

func NewPostHandler(s *service.PostService) *PostHandler {
	return &PostHandler{service: s}
}

// Feed lists every post newest first, annotated for the caller.
func (h *PostHandler) Feed(c *gin.Context) {
	items, err := h.service.Feed(token.GetUserID(c))
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, items)
}

// Create adds a post.
func (h *PostHandler) Create(c *gin.Context) {
	type req struct {
		Content  string `json:"content" binding:"required"`
		MediaURL string `json:"media_url"`
	}
	var r req
	if err := c.ShouldBindJSON(&r); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	post, err := h.service.Create(token.GetUserID(c), r.Content, r.MediaURL)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Created(c, "post created", post)
}

// Delete removes a post (owner or admin only).
func (h *PostHandler) Delete(c *gin.Context) {
	postID, err := strconv.ParseUint(c.Param("post_id"), 10, 32)
	if err != nil {
		response.BadRequest(c, "invalid post id")
		return
	}

	if err := h.service.Delete(uint(postID), token.GetUserID(c), token.IsAdmin(c)); err != nil {
		response.FromError(c, err)
		return
	}
	response.SuccessWithMessage(c, "post deleted", nil)
}

// ToggleLike flips the caller's like on a post.
func (h *PostHandler) ToggleLike(c *gin.Context) {
	postID, err := strconv.ParseUint(c.Param("post_id"), 10, 32)
	if err != nil {
		response.BadRequest(c, "invalid post id")
		return
	}

	liked, err := h.service.ToggleLike(token.GetUserID(c), uint(postID))
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, gin.H{"liked": liked})
}

// ListComments returns a post's comments oldest first.
func (h *PostHandler) ListComments(c *gin.Context) {
	postID, err := strconv.ParseUint(c.Param("post_id"), 10, 32)
	if err != nil {
		response.BadRequest(c, "invalid post id")
		return
	}

	comments, err := h.service.ListComments(uint(postID))
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, comments)
}

// AddComment appends a comment to a post.
func (h *PostHandler) AddComment(c *gin.Context) {
	postID, err := strconv.ParseUint(c.Param("post_id"), 10, 32)
	if err != nil {
		response.BadRequest(c, "invalid post id")
		return
	}

	type req struct {
		Content string `json:"content" binding:"required"`
	}
	var r req
	if err := c.ShouldBindJSON(&r); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	comment, err := h.service.AddComment(token.GetUserID(c), uint(postID), r.Content)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Created(c, "comment added", comment)
}
