package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// RubricCriterion is one named scoring dimension of an opening's rubric.
type RubricCriterion struct {
	Name     string  `json:"name"`
	MaxValue float64 `json:"max_val"`
}

type Opening struct {
	OpeningID      uuid.UUID                            `gorm:"primaryKey;column:opening_id;type:char(36)" json:"opening_id"`
	OrganizationID uuid.UUID                            `gorm:"column:organization_id;type:char(36);index" json:"organization_id"`
	Title          string                               `gorm:"column:title" json:"title"`
	Description    *string                              `gorm:"column:description" json:"description,omitempty"`
	Rubric         datatypes.JSONSlice[RubricCriterion] `gorm:"column:rubric" json:"rubric"`
	CreatedAt      time.Time                            `gorm:"column:created_at" json:"created_at"`
	UpdatedAt      time.Time                            `gorm:"column:updated_at" json:"updated_at"`
	DeletedAt      *time.Time                           `gorm:"column:deleted_at" json:"deleted_at,omitempty"`

	Organization *Organization `gorm:"foreignKey:OrganizationID;references:OrganizationID" json:"organization,omitempty"`
}

func (Opening) TableName() string {
	return "openings"
}

// Criteria returns the rubric as a plain slice.
func (o *Opening) Criteria() []RubricCriterion {
	if o == nil {
		return nil
	}
	return []RubricCriterion(o.Rubric)
}
