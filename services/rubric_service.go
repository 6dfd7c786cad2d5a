package services

import (
	"context"
	"math"
	"strings"
	"time"

	"owlrecruit-api/config"
	"owlrecruit-api/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type RubricService struct {
	db    *gorm.DB
	authz *AuthzService
	now   func() time.Time
}

func NewRubricService(db *gorm.DB) *RubricService {
	if db == nil {
		db = config.DB
	}
	return &RubricService{
		db:    db,
		authz: NewAuthzService(db),
		now:   time.Now,
	}
}

// ValidateRubric trims criterion names and checks that they are present and
// unique and that every maximum is a positive finite number.
func ValidateRubric(criteria []models.RubricCriterion) ([]models.RubricCriterion, error) {
	out := make([]models.RubricCriterion, 0, len(criteria))
	seen := make(map[string]struct{}, len(criteria))
	for i, c := range criteria {
		name := strings.TrimSpace(c.Name)
		if name == "" {
			return nil, validationError("rubric criterion %d has no name", i+1)
		}
		if _, dup := seen[name]; dup {
			return nil, validationError("duplicate rubric criterion %q", name)
		}
		if math.IsNaN(c.MaxValue) || math.IsInf(c.MaxValue, 0) || c.MaxValue <= 0 {
			return nil, validationError("rubric criterion %q must have max_val greater than 0", name)
		}
		seen[name] = struct{}{}
		out = append(out, models.RubricCriterion{Name: name, MaxValue: c.MaxValue})
	}
	return out, nil
}

// GetRubric returns the rubric of an opening in the request's organization.
func (s *RubricService) GetRubric(ctx context.Context, rc RequestContext, openingID uuid.UUID) ([]models.RubricCriterion, error) {
	if _, err := s.authz.RequireReviewer(ctx, rc); err != nil {
		return nil, err
	}
	opening, err := loadOpening(ctx, s.db, rc.OrgID, openingID)
	if err != nil {
		return nil, err
	}
	criteria := opening.Criteria()
	if criteria == nil {
		criteria = []models.RubricCriterion{}
	}
	return criteria, nil
}

// UpdateRubric replaces an opening's rubric. Only org admins may call it.
func (s *RubricService) UpdateRubric(ctx context.Context, rc RequestContext, openingID uuid.UUID, criteria []models.RubricCriterion) ([]models.RubricCriterion, error) {
	cleaned, err := ValidateRubric(criteria)
	if err != nil {
		return nil, err
	}
	if _, err := s.authz.RequireAdmin(ctx, rc); err != nil {
		return nil, err
	}
	opening, err := loadOpening(ctx, s.db, rc.OrgID, openingID)
	if err != nil {
		return nil, err
	}

	if err := s.db.WithContext(ctx).
		Model(&models.Opening{}).
		Where("opening_id = ?", opening.OpeningID).
		Updates(map[string]interface{}{
			"rubric":     datatypes.NewJSONSlice(cleaned),
			"updated_at": s.now().UTC(),
		}).Error; err != nil {
		return nil, storageError(err, "Opening not found")
	}

	config.Log.Info("rubric updated",
		zap.String("opening_id", opening.OpeningID.String()),
		zap.Int("criteria", len(cleaned)))
	return cleaned, nil
}
