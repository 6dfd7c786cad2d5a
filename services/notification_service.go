package services

import (
	"context"
	"fmt"
	"html"

	"owlrecruit-api/config"
	"owlrecruit-api/models"
	"owlrecruit-api/monitor"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// CommentNotifier is told about every comment after it has been stored.
type CommentNotifier interface {
	CommentPosted(ctx context.Context, orgID uuid.UUID, app *models.Application, comment *models.ApplicationComment)
}

// MailNotifier e-mails the organization's admins, except the author, when a
// comment is posted. Delivery runs in the background and failures are only
// logged.
type MailNotifier struct {
	db       *gorm.DB
	sendMail func(to []string, subject, body string) error
	enabled  func() bool
}

func NewMailNotifier(db *gorm.DB) *MailNotifier {
	if db == nil {
		db = config.DB
	}
	return &MailNotifier{
		db:       db,
		sendMail: config.SendMail,
		enabled: func() bool {
			return config.Current.SMTP.Host != "" && config.Current.SMTP.From != ""
		},
	}
}

func (n *MailNotifier) CommentPosted(ctx context.Context, orgID uuid.UUID, app *models.Application, comment *models.ApplicationComment) {
	if n == nil || !n.enabled() {
		return
	}

	subject := "New comment on an application"
	if app.Opening != nil && app.Opening.Title != "" {
		subject = fmt.Sprintf("New comment on an application for %s", app.Opening.Title)
	}
	body := fmt.Sprintf("<p>%s wrote:</p><blockquote>%s</blockquote>",
		html.EscapeString(comment.Author.DisplayName()),
		html.EscapeString(comment.Content))

	bgCtx := persistentContext(ctx)
	go func() {
		recipients, err := n.adminEmails(bgCtx, orgID, comment.AuthorID)
		if err == nil && len(recipients) > 0 {
			err = n.sendMail(recipients, subject, body)
		}
		if err != nil {
			monitor.NotificationFailures.Inc()
			config.Log.Warn("comment notification failed",
				zap.String("comment_id", comment.CommentID.String()),
				zap.Error(err))
		}
	}()
}

func (n *MailNotifier) adminEmails(ctx context.Context, orgID, authorID uuid.UUID) ([]string, error) {
	var emails []string
	err := n.db.WithContext(ctx).
		Model(&models.User{}).
		Joins("JOIN organization_members ON organization_members.user_id = users.user_id").
		Where("organization_members.organization_id = ? AND organization_members.role = ?", orgID, models.RoleAdmin).
		Where("users.user_id <> ? AND users.deleted_at IS NULL AND users.email <> ''", authorID).
		Pluck("users.email", &emails).Error
	return emails, err
}
