package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

// Tags is the ordered list of free-form tags on a post, stored as JSON.
type Tags []string

// Value implements driver.Valuer for database storage.
func (t Tags) Value() (driver.Value, error) {
	if t == nil {
		return "[]", nil
	}
	b, err := json.Marshal(t)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal tags: %w", err)
	}
	return string(b), nil
}

// Scan implements sql.Scanner for database retrieval.
func (t *Tags) Scan(value interface{}) error {
	if value == nil {
		*t = nil
		return nil
	}
	var data []byte
	switch v := value.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return fmt.Errorf("unsupported type for tags: %T", value)
	}
	return json.Unmarshal(data, t)
}

// Post represents a piece of shared content, optionally with an image stored
// in the owning user's bucket.
type Post struct {
	ID        string    `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	Title     string    `json:"title" validate:"required,max=200"`
	Body      string    `json:"body" validate:"required"`
	Tags      Tags      `json:"tags" gorm:"type:text"`
	Rating    float64   `json:"rating" validate:"gte=0,lte=5"`
	Location  string    `json:"location,omitempty"`
	ImagePath string    `json:"image_path,omitempty" gorm:"column:image_path"`
	UserID    string    `json:"user_id" gorm:"index;type:varchar(36)"`
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
}

// PostWithAuthor is the listing projection: a post joined with the owning
// user's username.
type PostWithAuthor struct {
	Post     `gorm:"embedded"`
	Username string `json:"username"`
}
