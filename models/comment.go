package models

import (
	"time"

	"github.com/google/uuid"
)

// ApplicationComment is an immutable remark on an application.
type ApplicationComment struct {
	CommentID     uuid.UUID `gorm:"primaryKey;column:comment_id;type:char(36)" json:"comment_id"`
	ApplicationID uuid.UUID `gorm:"column:application_id;type:char(36);not null;index" json:"application_id"`
	AuthorID      uuid.UUID `gorm:"column:author_id;type:char(36);not null" json:"author_id"`
	Content       string    `gorm:"column:content;type:text;not null" json:"content"`
	CreatedAt     time.Time `gorm:"column:created_at;index" json:"created_at"`

	Author *User `gorm:"foreignKey:AuthorID;references:UserID" json:"author,omitempty"`
}

func (ApplicationComment) TableName() string {
	return "application_comments"
}

// AllModels lists every table owned by the API, in migration order.
func AllModels() []interface{} {
	return []interface{}{
		&User{},
		&Organization{},
		&OrganizationMember{},
		&Opening{},
		&Application{},
		&ReviewSubmission{},
		&ApplicationComment{},
	}
}
