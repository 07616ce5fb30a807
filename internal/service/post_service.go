package service

import (
	"fmt"
	"strings"

	"social-platform/internal/apperr"
	"social-platform/internal/model"
	"social-platform/internal/repository"
)

// PostService implements the feed, posts, likes and comments.
type PostService struct {
	repo *repository.PostRepository
}

func NewPostService(repo *repository.PostRepository) *PostService {
	return &PostService{repo: repo}
}

// Create adds a post to the feed.
func (s *PostService) Create(userID uint, content, mediaURL string) (*model.Post, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, fmt.Errorf("%w: content is required", apperr.ErrInvalidInput)
	}

	post := &model.Post{
		UserID:   userID,
		Content:  content,
		MediaURL: mediaURL,
	}
	if err := s.repo.Create(post); err != nil {
		return nil, err
	}
	return post, nil
}

// Feed returns every post newest first, annotated for the viewer.
func (s *PostService) Feed(viewerID uint) ([]*repository.FeedItem, error) {
	return s.repo.Feed(viewerID)
}

// Delete removes a post. Only the owner or an admin may delete.
func (s *PostService) Delete(postID, callerID uint, callerIsAdmin bool) error {
	post, err := s.repo.GetByID(postID)
	if err != nil {
		return err
	}
	if post.UserID != callerID && !callerIsAdmin {
		return apperr.ErrForbidden
	}
	return s.repo.Delete(postID)
}

// ToggleLike flips the caller's like on a post and returns the new
// state.
func (s *PostService) ToggleLike(userID, postID uint) (bool, error) {
	if _, err := s.repo.GetByID(postID); err != nil {
		return false, err
	}
	return s.repo.ToggleLike(userID, postID)
}

// AddComment appends a comment to a post.
func (s *PostService) AddComment(userID, postID uint, content string) (*model.Comment, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, fmt.Errorf("%w: content is required", apperr.ErrInvalidInput)
	}
	if _, err := s.repo.GetByID(postID); err != nil {
		return nil, err
	}

	comment := &model.Comment{
		UserID:  userID,
		PostID:  postID,
		Content: content,
	}
	if err := s.repo.CreateComment(comment); err != nil {
		return nil, err
	}
	return comment, nil
}

// ListComments returns a post's comments oldest first.
func (s *PostService) ListComments(postID uint) ([]*repository.CommentItem, error) {
	if _, err := s.repo.GetByID(postID); err != nil {
		return nil, err
	}
	return s.repo.ListComments(postID)
}
