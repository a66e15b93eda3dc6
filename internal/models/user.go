package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

// Roles is the set of role tags attached to a user. Stored as a JSON array so
// the same column works on both PostgreSQL and SQLite.
type Roles []string

// Value implements driver.Valuer for database storage.
func (r Roles) Value() (driver.Value, error) {
	if r == nil {
		return "[]", nil
	}
	b, err := json.Marshal(r)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal roles: %w", err)
	}
	return string(b), nil
}

// Scan implements sql.Scanner for database retrieval.
func (r *Roles) Scan(value interface{}) error {
	if value == nil {
		*r = nil
		return nil
	}
	var data []byte
	switch v := value.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return fmt.Errorf("unsupported type for roles: %T", value)
	}
	return json.Unmarshal(data, r)
}

// Contains reports whether the role set includes the given role.
func (r Roles) Contains(role string) bool {
	for _, have := range r {
		if have == role {
			return true
		}
	}
	return false
}

// User represents a registered user. The password hash is never serialized.
type User struct {
	ID           string    `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	Username     string    `json:"username" gorm:"uniqueIndex;type:varchar(100)" validate:"required,min=3,max=100"`
	PasswordHash string    `json:"-" gorm:"column:password_hash;type:varchar(255)"`
	Roles        Roles     `json:"roles" gorm:"type:text"`
	CreatedAt    time.Time `json:"created_at" gorm:"autoCreateTime"`
}
