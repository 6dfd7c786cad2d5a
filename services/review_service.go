package services

import (
	"context"
	"strings"
	"time"

	"owlrecruit-api/config"
	"owlrecruit-api/models"
	"owlrecruit-api/monitor"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ReviewInput carries the optional parts of a review submission. A nil field
// was not supplied and leaves the stored value untouched.
type ReviewInput struct {
	Scores models.ScoreMap
	Notes  *string
}

type ReviewService struct {
	db    *gorm.DB
	authz *AuthzService
	now   func() time.Time
}

func NewReviewService(db *gorm.DB) *ReviewService {
	if db == nil {
		db = config.DB
	}
	return &ReviewService{
		db:    db,
		authz: NewAuthzService(db),
		now:   time.Now,
	}
}

// SubmitReview creates or updates the caller's review of an application.
// The write is a single upsert keyed on (application_id, reviewer_id) that
// only assigns the fields present in input.
func (s *ReviewService) SubmitReview(ctx context.Context, rc RequestContext, applicationID uuid.UUID, input ReviewInput) (*models.ReviewSubmission, error) {
	if input.Scores == nil && input.Notes == nil {
		return nil, validationError("scoreSkills or notes is required")
	}
	for name := range input.Scores {
		if strings.TrimSpace(name) == "" {
			return nil, validationError("score criterion name must not be empty")
		}
	}

	if _, err := s.authz.RequireReviewer(ctx, rc); err != nil {
		return nil, err
	}
	if _, err := loadApplication(ctx, s.db, rc.OrgID, applicationID); err != nil {
		return nil, err
	}

	now := s.now().UTC()
	row := models.ReviewSubmission{
		ReviewID:      uuid.New(),
		ApplicationID: applicationID,
		ReviewerID:    rc.UserID,
		Scores:        input.Scores,
		Notes:         input.Notes,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	updateColumns := []string{"updated_at"}
	if input.Scores != nil {
		updateColumns = append(updateColumns, "score_skills")
	}
	if input.Notes != nil {
		updateColumns = append(updateColumns, "notes")
	}

	var saved models.ReviewSubmission
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "application_id"}, {Name: "reviewer_id"}},
			DoUpdates: clause.AssignmentColumns(updateColumns),
		}).Create(&row).Error; err != nil {
			return err
		}

		return tx.Preload("Reviewer").
			Where("application_id = ? AND reviewer_id = ?", applicationID, rc.UserID).
			First(&saved).Error
	})
	if err != nil {
		config.Log.Error("review upsert failed",
			zap.String("application_id", applicationID.String()),
			zap.String("reviewer_id", rc.UserID.String()),
			zap.Error(err))
		return nil, storageError(err, "Review not found")
	}

	monitor.ReviewsSubmitted.Inc()
	config.Log.Info("review submitted",
		zap.String("application_id", applicationID.String()),
		zap.String("reviewer_id", rc.UserID.String()),
		zap.Strings("columns", updateColumns))
	return &saved, nil
}

// ListReviews returns every review of an application, most recently updated first.
func (s *ReviewService) ListReviews(ctx context.Context, rc RequestContext, applicationID uuid.UUID) ([]models.ReviewSubmission, error) {
	if _, err := s.authz.RequireReviewer(ctx, rc); err != nil {
		return nil, err
	}
	if _, err := loadApplication(ctx, s.db, rc.OrgID, applicationID); err != nil {
		return nil, err
	}

	var reviews []models.ReviewSubmission
	if err := s.db.WithContext(ctx).
		Preload("Reviewer").
		Where("application_id = ?", applicationID).
		Order("updated_at DESC").
		Find(&reviews).Error; err != nil {
		return nil, storageError(err, "")
	}
	return reviews, nil
}

// GetApplicationSummary aggregates all review scores of an application
// against its opening's rubric.
func (s *ReviewService) GetApplicationSummary(ctx context.Context, rc RequestContext, applicationID uuid.UUID) (*RubricSummary, error) {
	if _, err := s.authz.RequireReviewer(ctx, rc); err != nil {
		return nil, err
	}
	app, err := loadApplication(ctx, s.db, rc.OrgID, applicationID)
	if err != nil {
		return nil, err
	}

	var reviews []models.ReviewSubmission
	if err := s.db.WithContext(ctx).
		Select("review_id", "score_skills").
		Where("application_id = ?", applicationID).
		Find(&reviews).Error; err != nil {
		return nil, storageError(err, "")
	}

	scores := make([]models.ScoreMap, len(reviews))
	for i, r := range reviews {
		scores[i] = r.Scores
	}

	summary := ComputeRubricSummary(app.Opening.Criteria(), scores)
	return &summary, nil
}
