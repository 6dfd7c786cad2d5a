package services

import (
	"context"

	"owlrecruit-api/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// loadApplication fetches a live application together with its opening and
// reports not-found when it belongs to a different organization.
func loadApplication(ctx context.Context, db *gorm.DB, orgID, applicationID uuid.UUID) (*models.Application, error) {
	var app models.Application
	if err := db.WithContext(ctx).
		Preload("Opening").
		Where("application_id = ? AND deleted_at IS NULL", applicationID).
		First(&app).Error; err != nil {
		return nil, storageError(err, "Application not found")
	}
	if app.Opening == nil || app.Opening.DeletedAt != nil || app.Opening.OrganizationID != orgID {
		return nil, notFoundError("Application not found")
	}
	return &app, nil
}

func loadOpening(ctx context.Context, db *gorm.DB, orgID, openingID uuid.UUID) (*models.Opening, error) {
	var opening models.Opening
	if err := db.WithContext(ctx).
		Where("opening_id = ? AND organization_id = ? AND deleted_at IS NULL", openingID, orgID).
		First(&opening).Error; err != nil {
		return nil, storageError(err, "Opening not found")
	}
	return &opening, nil
}
