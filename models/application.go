package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Application is one applicant's submission to an opening. The owning
// organization is the opening's.
type Application struct {
	ApplicationID uuid.UUID         `gorm:"primaryKey;column:application_id;type:char(36)" json:"application_id"`
	OpeningID     uuid.UUID         `gorm:"column:opening_id;type:char(36);index" json:"opening_id"`
	ApplicantID   uuid.UUID         `gorm:"column:applicant_id;type:char(36);index" json:"applicant_id"`
	Status        string            `gorm:"column:status;size:32" json:"status"`
	FormResponses datatypes.JSONMap `gorm:"column:form_responses" json:"form_responses,omitempty"`
	SubmittedAt   *time.Time        `gorm:"column:submitted_at" json:"submitted_at,omitempty"`
	CreatedAt     time.Time         `gorm:"column:created_at" json:"created_at"`
	UpdatedAt     time.Time         `gorm:"column:updated_at" json:"updated_at"`
	DeletedAt     *time.Time        `gorm:"column:deleted_at" json:"deleted_at,omitempty"`

	Opening   *Opening `gorm:"foreignKey:OpeningID;references:OpeningID" json:"opening,omitempty"`
	Applicant *User    `gorm:"foreignKey:ApplicantID;references:UserID" json:"applicant,omitempty"`
}

func (Application) TableName() string {
	return "applications"
}
