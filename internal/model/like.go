package model

// Like marks a post as liked by a user. The (user, post) pair is
// unique; liking twice toggles the like off at the service layer.
type Like struct {
	ID     uint `gorm:"primaryKey"`
	UserID uint `gorm:"not null;uniqueIndex:idx_like_user_post"`
	PostID uint `gorm:"not null;uniqueIndex:idx_like_user_post;index"`
}

// TableName avoids the reserved word LIKE so cross-driver queries
// need no identifier quoting.
func (Like) TableName() string { return "post_like" }
