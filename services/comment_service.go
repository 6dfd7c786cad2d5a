package services

import (
	"context"
	"time"
	"unicode/utf8"

	"owlrecruit-api/config"
	"owlrecruit-api/models"
	"owlrecruit-api/monitor"
	"owlrecruit-api/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const maxCommentLength = 10000

// CommentView is the shape of a comment returned to clients.
type CommentView struct {
	ID        uuid.UUID `json:"id"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt"`
	UserName  string    `json:"userName"`
}

func NewCommentView(c models.ApplicationComment) CommentView {
	return CommentView{
		ID:        c.CommentID,
		Content:   c.Content,
		CreatedAt: c.CreatedAt,
		UserName:  c.Author.DisplayName(),
	}
}

// CommentService appends to and reads application comment threads.
// Comments are never edited or deleted.
type CommentService struct {
	db       *gorm.DB
	authz    *AuthzService
	notifier CommentNotifier
	now      func() time.Time
}

// NewCommentService builds the service; notifier may be nil.
func NewCommentService(db *gorm.DB, notifier CommentNotifier) *CommentService {
	if db == nil {
		db = config.DB
	}
	return &CommentService{
		db:       db,
		authz:    NewAuthzService(db),
		notifier: notifier,
		now:      time.Now,
	}
}

func (s *CommentService) PostComment(ctx context.Context, rc RequestContext, applicationID uuid.UUID, content string) (*models.ApplicationComment, error) {
	content = utils.SanitizeInput(content)
	if content == "" {
		return nil, validationError("content is required")
	}
	if utf8.RuneCountInString(content) > maxCommentLength {
		return nil, validationError("content must be at most %d characters", maxCommentLength)
	}

	if _, err := s.authz.RequireReviewer(ctx, rc); err != nil {
		return nil, err
	}
	app, err := loadApplication(ctx, s.db, rc.OrgID, applicationID)
	if err != nil {
		return nil, err
	}

	comment := models.ApplicationComment{
		CommentID:     uuid.New(),
		ApplicationID: applicationID,
		AuthorID:      rc.UserID,
		Content:       content,
		CreatedAt:     s.now().UTC(),
	}
	if err := s.db.WithContext(ctx).Omit(clause.Associations).Create(&comment).Error; err != nil {
		return nil, storageError(err, "")
	}

	var author models.User
	if err := s.db.WithContext(ctx).Where("user_id = ?", rc.UserID).First(&author).Error; err == nil {
		comment.Author = &author
	}

	monitor.CommentsPosted.Inc()
	config.Log.Info("comment posted",
		zap.String("application_id", applicationID.String()),
		zap.String("comment_id", comment.CommentID.String()))

	if s.notifier != nil {
		s.notifier.CommentPosted(ctx, rc.OrgID, app, &comment)
	}
	return &comment, nil
}

// ListComments returns the thread newest first.
func (s *CommentService) ListComments(ctx context.Context, rc RequestContext, applicationID uuid.UUID) ([]CommentView, error) {
	if _, err := s.authz.RequireReviewer(ctx, rc); err != nil {
		return nil, err
	}
	if _, err := loadApplication(ctx, s.db, rc.OrgID, applicationID); err != nil {
		return nil, err
	}

	var comments []models.ApplicationComment
	if err := s.db.WithContext(ctx).
		Preload("Author").
		Where("application_id = ?", applicationID).
		Order("created_at DESC").
		Find(&comments).Error; err != nil {
		return nil, storageError(err, "")
	}

	views := make([]CommentView, 0, len(comments))
	for _, c := range comments {
		views = append(views, NewCommentView(c))
	}
	return views, nil
}
