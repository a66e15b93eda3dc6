package models

import "time"

// Like records that a user liked a post. The composite unique index is the
// store-level guarantee behind the one-like-per-pair rule; the service layer
// still checks first so the caller gets a clear error message.
type Like struct {
	ID        string    `json:"id" gorm:"primaryKey;type:varchar(36)"`
	UserID    string    `json:"user_id" gorm:"uniqueIndex:idx_likes_user_post;type:varchar(36)"`
	PostID    string    `json:"post_id" gorm:"uniqueIndex:idx_likes_user_post;type:varchar(36)"`
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
}
