package repository

import (
	"errors"
	"time"

	"social-platform/internal/apperr"
	"social-platform/internal/model"

	"gorm.io/gorm"
)

// FeedItem is a post joined with its author and like aggregates, as
// the feed endpoint returns it.
type FeedItem struct {
	ID         uint      `json:"id"`
	UserID     uint      `json:"user_id"`
	Content    string    `json:"content"`
	MediaURL   string    `json:"media_url,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
	AuthorName string    `json:"author_name"`
	AuthorPic  string    `json:"author_pic,omitempty"`
	LikeCount  int64     `json:"like_count"`
	Liked      bool      `json:"liked"`
}

// PostRepository is the data access layer for posts, likes and
// comments.
type PostRepository struct {
	db *gorm.DB
}

func NewPostRepository(db *gorm.DB) *PostRepository {
	return &PostRepository{db: db}
}

func (r *PostRepository) Create(post *model.Post) error {
	return r.db.Create(post).Error
}

func (r *PostRepository) GetByID(id uint) (*model.Post, error) {
	var p model.Post
	if err := r.db.First(&p, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.ErrNotFound
		}
		return nil, err
	}
	return &p, nil
}

// Feed returns all posts newest first, each with author fields, the
// like count and whether the viewer liked it.
func (r *PostRepository) Feed(viewerID uint) ([]*FeedItem, error) {
	likeCount := r.db.Table("post_like").
		Select("COUNT(*)").
		Where("post_like.post_id = post.id")
	viewerLiked := r.db.Table("post_like").
		Select("COUNT(*)").
		Where("post_like.post_id = post.id AND post_like.user_id = ?", viewerID)

	var items []*FeedItem
	err := r.db.Table("post").
		Select("post.id, post.user_id, post.content, post.media_url, post.created_at, "+
			"user.full_name AS author_name, user.profile_pic AS author_pic, "+
			"(?) AS like_count, (?) AS liked", likeCount, viewerLiked).
		Joins("JOIN user ON user.id = post.user_id").
		Order("post.created_at DESC, post.id DESC").
		Scan(&items).Error
	return items, err
}

// Delete removes a post together with its likes and comments.
func (r *PostRepository) Delete(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("post_id = ?", id).Delete(&model.Like{}).Error; err != nil {
			return err
		}
		if err := tx.Where("post_id = ?", id).Delete(&model.Comment{}).Error; err != nil {
			return err
		}
		return tx.Delete(&model.Post{}, id).Error
	})
}

// ToggleLike likes the post for the user, or removes the like if it
// already exists. Returns whether the post ends up liked.
func (r *PostRepository) ToggleLike(userID, postID uint) (bool, error) {
	var liked bool
	err := r.db.Transaction(func(tx *gorm.DB) error {
		res := tx.Where("user_id = ? AND post_id = ?", userID, postID).Delete(&model.Like{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected > 0 {
			liked = false
			return nil
		}
		liked = true
		return tx.Create(&model.Like{UserID: userID, PostID: postID}).Error
	})
	return liked, err
}

func (r *PostRepository) CreateComment(comment *model.Comment) error {
	return r.db.Create(comment).Error
}

// CommentItem is a comment joined with its author.
type CommentItem struct {
	ID         uint      `json:"id"`
	UserID     uint      `json:"user_id"`
	PostID     uint      `json:"post_id"`
	Content    string    `json:"content"`
	CreatedAt  time.Time `json:"created_at"`
	AuthorName string    `json:"author_name"`
	AuthorPic  string    `json:"author_pic,omitempty"`
}

// ListComments returns a post's comments oldest first.
func (r *PostRepository) ListComments(postID uint) ([]*CommentItem, error) {
	var items []*CommentItem
	err := r.db.Table("comment").
		Select("comment.id, comment.user_id, comment.post_id, comment.content, comment.created_at, "+
			"user.full_name AS author_name, user.profile_pic AS author_pic").
		Joins("JOIN user ON user.id = comment.user_id").
		Where("comment.post_id = ?", postID).
		Order("comment.created_at ASC, comment.id ASC").
		Scan(&items).Error
	return items, err
}

func (r *PostRepository) CountPosts() (int64, error) {
	var count int64
	err := r.db.Model(&model.Post{}).Count(&count).Error
	return count, err
}
