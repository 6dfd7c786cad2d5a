package services

import (
	"testing"
	"time"

	"owlrecruit-api/models"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// fixture is a small organization with one opening and one application.
type fixture struct {
	db          *gorm.DB
	org         models.Organization
	otherOrg    models.Organization
	admin       models.User
	reviewer    models.User
	outsider    models.User
	opening     models.Opening
	application models.Application
	foreignApp  models.Application
}

func (f *fixture) rc(user models.User) RequestContext {
	return RequestContext{UserID: user.UserID, OrgID: f.org.OrganizationID}
}

var baseTime = time.Date(2026, time.March, 2, 9, 0, 0, 0, time.UTC)

func clockAt(ts time.Time) func() time.Time {
	return func() time.Time { return ts }
}

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:                                   logger.Default.LogMode(logger.Silent),
		DisableForeignKeyConstraintWhenMigrating: true,
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("sql db: %v", err)
	}
	// Every connection to ":memory:" is a fresh database; keep exactly one.
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	if err := db.AutoMigrate(models.AllModels()...); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func mustCreate(t *testing.T, db *gorm.DB, value interface{}) {
	t.Helper()
	if err := db.Create(value).Error; err != nil {
		t.Fatalf("create %T: %v", value, err)
	}
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	db := newTestDB(t)
	f := &fixture{db: db}

	f.org = models.Organization{OrganizationID: uuid.New(), Name: "Owl Club", CreatedAt: baseTime, UpdatedAt: baseTime}
	f.otherOrg = models.Organization{OrganizationID: uuid.New(), Name: "Hawk Club", CreatedAt: baseTime, UpdatedAt: baseTime}
	mustCreate(t, db, &f.org)
	mustCreate(t, db, &f.otherOrg)

	f.admin = models.User{UserID: uuid.New(), FullName: "Ada Admin", Email: "ada@example.com", CreatedAt: baseTime, UpdatedAt: baseTime}
	f.reviewer = models.User{UserID: uuid.New(), FullName: "Rory Reviewer", Email: "rory@example.com", CreatedAt: baseTime, UpdatedAt: baseTime}
	f.outsider = models.User{UserID: uuid.New(), FullName: "Olly Outsider", Email: "olly@example.com", CreatedAt: baseTime, UpdatedAt: baseTime}
	for _, u := range []*models.User{&f.admin, &f.reviewer, &f.outsider} {
		mustCreate(t, db, u)
	}

	addMember(t, db, f.org.OrganizationID, f.admin.UserID, models.RoleAdmin)
	addMember(t, db, f.org.OrganizationID, f.reviewer.UserID, models.RoleReviewer)
	addMember(t, db, f.otherOrg.OrganizationID, f.outsider.UserID, models.RoleAdmin)

	f.opening = models.Opening{
		OpeningID:      uuid.New(),
		OrganizationID: f.org.OrganizationID,
		Title:          "Design Lead",
		Rubric: datatypes.NewJSONSlice([]models.RubricCriterion{
			{Name: "Teamwork", MaxValue: 10},
			{Name: "Craft", MaxValue: 5},
		}),
		CreatedAt: baseTime,
		UpdatedAt: baseTime,
	}
	mustCreate(t, db, &f.opening)

	foreignOpening := models.Opening{
		OpeningID:      uuid.New(),
		OrganizationID: f.otherOrg.OrganizationID,
		Title:          "Treasurer",
		CreatedAt:      baseTime,
		UpdatedAt:      baseTime,
	}
	mustCreate(t, db, &foreignOpening)

	f.application = models.Application{
		ApplicationID: uuid.New(),
		OpeningID:     f.opening.OpeningID,
		ApplicantID:   f.outsider.UserID,
		Status:        "submitted",
		CreatedAt:     baseTime,
		UpdatedAt:     baseTime,
	}
	f.foreignApp = models.Application{
		ApplicationID: uuid.New(),
		OpeningID:     foreignOpening.OpeningID,
		ApplicantID:   f.reviewer.UserID,
		Status:        "submitted",
		CreatedAt:     baseTime,
		UpdatedAt:     baseTime,
	}
	mustCreate(t, db, &f.application)
	mustCreate(t, db, &f.foreignApp)

	return f
}

func addMember(t *testing.T, db *gorm.DB, orgID, userID uuid.UUID, role models.Role) {
	t.Helper()
	mustCreate(t, db, &models.OrganizationMember{
		MemberID:       uuid.New(),
		OrganizationID: orgID,
		UserID:         userID,
		Role:           role,
		CreatedAt:      baseTime,
		UpdatedAt:      baseTime,
	})
}

func countReviews(t *testing.T, db *gorm.DB, applicationID uuid.UUID) int64 {
	t.Helper()
	var n int64
	if err := db.Model(&models.ReviewSubmission{}).Where("application_id = ?", applicationID).Count(&n).Error; err != nil {
		t.Fatalf("count reviews: %v", err)
	}
	return n
}

func strPtr(s string) *string { return &s }
