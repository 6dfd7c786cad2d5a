package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// ScoreMap holds one reviewer's score per rubric criterion name. A nil map
// is stored as SQL NULL.
type ScoreMap map[string]float64

func (m ScoreMap) Value() (driver.Value, error) {
	if m == nil {
		return nil, nil
	}
	b, err := json.Marshal(map[string]float64(m))
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

func (m *ScoreMap) Scan(value interface{}) error {
	var raw []byte
	switch v := value.(type) {
	case nil:
		*m = nil
		return nil
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		return fmt.Errorf("unsupported score map value %T", value)
	}
	if len(raw) == 0 || string(raw) == "null" {
		*m = nil
		return nil
	}
	var out map[string]float64
	if err := json.Unmarshal(raw, &out); err != nil {
		return fmt.Errorf("decode score map: %w", err)
	}
	*m = out
	return nil
}

// ReviewSubmission is a reviewer's scores and notes for one application.
// There is at most one row per (application, reviewer).
type ReviewSubmission struct {
	ReviewID      uuid.UUID `gorm:"primaryKey;column:review_id;type:char(36)" json:"review_id"`
	ApplicationID uuid.UUID `gorm:"column:application_id;type:char(36);not null;uniqueIndex:idx_review_application_reviewer" json:"application_id"`
	ReviewerID    uuid.UUID `gorm:"column:reviewer_id;type:char(36);not null;uniqueIndex:idx_review_application_reviewer" json:"reviewer_id"`
	Scores        ScoreMap  `gorm:"column:score_skills;type:text" json:"score_skills"`
	Notes         *string   `gorm:"column:notes;type:text" json:"notes"`
	CreatedAt     time.Time `gorm:"column:created_at" json:"created_at"`
	UpdatedAt     time.Time `gorm:"column:updated_at" json:"updated_at"`

	Reviewer *User `gorm:"foreignKey:ReviewerID;references:UserID" json:"reviewer,omitempty"`
}

func (ReviewSubmission) TableName() string {
	return "review_submissions"
}
