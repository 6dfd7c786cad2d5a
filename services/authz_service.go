package services

import (
	"context"

	"owlrecruit-api/config"
	"owlrecruit-api/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// RequestContext identifies who is calling and which organization the
// request is scoped to. Handlers build it explicitly for every call.
type RequestContext struct {
	UserID uuid.UUID
	OrgID  uuid.UUID
}

// AuthzService answers "what role does this user hold in this organization".
// Every entry point goes through it.
type AuthzService struct {
	db *gorm.DB
}

func NewAuthzService(db *gorm.DB) *AuthzService {
	if db == nil {
		db = config.DB
	}
	return &AuthzService{db: db}
}

// CheckRole returns the caller's role in orgID, or RoleNone when the user is
// not a member or holds an unrecognised role.
func (s *AuthzService) CheckRole(ctx context.Context, userID, orgID uuid.UUID) (models.Role, error) {
	var members []models.OrganizationMember
	if err := s.db.WithContext(ctx).
		Where("organization_id = ? AND user_id = ?", orgID, userID).
		Limit(1).
		Find(&members).Error; err != nil {
		return models.RoleNone, storageError(err, "")
	}
	if len(members) == 0 {
		return models.RoleNone, nil
	}
	return members[0].Role, nil
}

// RequireReviewer fails unless the caller may review in the request's
// organization.
func (s *AuthzService) RequireReviewer(ctx context.Context, rc RequestContext) (models.Role, error) {
	return s.require(ctx, rc, models.Role.CanReview, "Reviewer or admin access required")
}

// RequireAdmin fails unless the caller administers the request's organization.
func (s *AuthzService) RequireAdmin(ctx context.Context, rc RequestContext) (models.Role, error) {
	isAdmin := func(r models.Role) bool { return r == models.RoleAdmin }
	return s.require(ctx, rc, isAdmin, "Admin access required")
}

func (s *AuthzService) require(ctx context.Context, rc RequestContext, allowed func(models.Role) bool, denied string) (models.Role, error) {
	if rc.UserID == uuid.Nil {
		return models.RoleNone, &Error{Kind: KindAuthentication, Message: "Authentication required"}
	}
	if rc.OrgID == uuid.Nil {
		return models.RoleNone, notFoundError("Organization not found")
	}
	role, err := s.CheckRole(ctx, rc.UserID, rc.OrgID)
	if err != nil {
		return models.RoleNone, err
	}
	if !allowed(role) {
		return role, authorizationError(denied)
	}
	return role, nil
}
