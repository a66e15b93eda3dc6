package models

import "time"

// Comment is a user's message on a post. Deletion is keyed by the
// (user_id, post_id) pair, not by comment id.
type Comment struct {
	ID        string    `json:"id" gorm:"primaryKey;type:varchar(36)"`
	UserID    string    `json:"user_id" gorm:"index;type:varchar(36)"`
	PostID    string    `json:"post_id" gorm:"index;type:varchar(36)"`
	Message   string    `json:"message" validate:"required"`
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
}
