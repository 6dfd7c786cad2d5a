package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

type User struct {
	UserID    uuid.UUID  `gorm:"primaryKey;column:user_id;type:char(36)" json:"user_id"`
	FullName  string     `gorm:"column:full_name" json:"full_name"`
	Email     string     `gorm:"column:email;unique;size:255" json:"email"`
	CreatedAt time.Time  `gorm:"column:created_at" json:"created_at"`
	UpdatedAt time.Time  `gorm:"column:updated_at" json:"updated_at"`
	DeletedAt *time.Time `gorm:"column:deleted_at" json:"deleted_at,omitempty"`
}

func (User) TableName() string {
	return "users"
}

// DisplayName falls back to the e-mail address when no name is on file.
func (u *User) DisplayName() string {
	if u == nil {
		return ""
	}
	if name := strings.TrimSpace(u.FullName); name != "" {
		return name
	}
	return u.Email
}
