package services

import (
	"context"
	"time"

	"owlrecruit-api/config"
	"owlrecruit-api/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// MemberService manages organization membership. All operations require the
// caller to be an admin of the organization.
type MemberService struct {
	db    *gorm.DB
	authz *AuthzService
	now   func() time.Time
}

func NewMemberService(db *gorm.DB) *MemberService {
	if db == nil {
		db = config.DB
	}
	return &MemberService{
		db:    db,
		authz: NewAuthzService(db),
		now:   time.Now,
	}
}

func (s *MemberService) ListMembers(ctx context.Context, rc RequestContext) ([]models.OrganizationMember, error) {
	if _, err := s.authz.RequireAdmin(ctx, rc); err != nil {
		return nil, err
	}

	var members []models.OrganizationMember
	if err := s.db.WithContext(ctx).
		Preload("User").
		Where("organization_id = ?", rc.OrgID).
		Order("created_at ASC").
		Find(&members).Error; err != nil {
		return nil, storageError(err, "")
	}
	return members, nil
}

// SetMember adds userID to the organization or changes their role.
func (s *MemberService) SetMember(ctx context.Context, rc RequestContext, userID uuid.UUID, role models.Role) (*models.OrganizationMember, error) {
	if role == models.RoleNone {
		return nil, validationError("role must be admin or reviewer")
	}
	if _, err := s.authz.RequireAdmin(ctx, rc); err != nil {
		return nil, err
	}

	var user models.User
	if err := s.db.WithContext(ctx).
		Where("user_id = ? AND deleted_at IS NULL", userID).
		First(&user).Error; err != nil {
		return nil, storageError(err, "User not found")
	}

	var saved models.OrganizationMember
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if role != models.RoleAdmin {
			if err := ensureOtherAdmin(tx, rc.OrgID, userID); err != nil {
				return err
			}
		}

		now := s.now().UTC()
		row := models.OrganizationMember{
			MemberID:       uuid.New(),
			OrganizationID: rc.OrgID,
			UserID:         userID,
			Role:           role,
			CreatedAt:      now,
			UpdatedAt:      now,
		}
		if err := tx.Omit(clause.Associations).Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "organization_id"}, {Name: "user_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"role", "updated_at"}),
		}).Create(&row).Error; err != nil {
			return err
		}

		return tx.Preload("User").
			Where("organization_id = ? AND user_id = ?", rc.OrgID, userID).
			First(&saved).Error
	})
	if err != nil {
		return nil, storageError(err, "Member not found")
	}

	config.Log.Info("organization member set",
		zap.String("organization_id", rc.OrgID.String()),
		zap.String("user_id", userID.String()),
		zap.Stringer("role", role))
	return &saved, nil
}

// RemoveMember drops userID from the organization.
func (s *MemberService) RemoveMember(ctx context.Context, rc RequestContext, userID uuid.UUID) error {
	if _, err := s.authz.RequireAdmin(ctx, rc); err != nil {
		return err
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := ensureOtherAdmin(tx, rc.OrgID, userID); err != nil {
			return err
		}
		res := tx.Where("organization_id = ? AND user_id = ?", rc.OrgID, userID).
			Delete(&models.OrganizationMember{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return notFoundError("Member not found")
		}
		return nil
	})
	if err != nil {
		return storageError(err, "Member not found")
	}

	config.Log.Info("organization member removed",
		zap.String("organization_id", rc.OrgID.String()),
		zap.String("user_id", userID.String()))
	return nil
}

// ensureOtherAdmin rejects a change that would leave the organization
// without an admin when userID is currently its only one.
func ensureOtherAdmin(tx *gorm.DB, orgID, userID uuid.UUID) error {
	var current []models.OrganizationMember
	if err := tx.Where("organization_id = ? AND user_id = ?", orgID, userID).
		Limit(1).
		Find(&current).Error; err != nil {
		return err
	}
	if len(current) == 0 || current[0].Role != models.RoleAdmin {
		return nil
	}

	var admins int64
	if err := tx.Model(&models.OrganizationMember{}).
		Where("organization_id = ? AND role = ?", orgID, models.RoleAdmin).
		Count(&admins).Error; err != nil {
		return err
	}
	if admins <= 1 {
		return validationError("an organization must keep at least one admin")
	}
	return nil
}
