package models

import (
	"database/sql/driver"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Role is a member's role inside an organization. The zero value means the
// user holds no role there.
type Role uint8

const (
	RoleNone Role = iota
	RoleReviewer
	RoleAdmin
)

var roleNames = map[Role]string{
	RoleReviewer: "reviewer",
	RoleAdmin:    "admin",
}

// ParseRole maps a stored or requested role name to a Role.
func ParseRole(s string) (Role, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "reviewer":
		return RoleReviewer, true
	case "admin":
		return RoleAdmin, true
	}
	return RoleNone, false
}

func (r Role) String() string {
	if name, ok := roleNames[r]; ok {
		return name
	}
	return "none"
}

// CanReview reports whether the role may score and comment on applications.
func (r Role) CanReview() bool {
	return r == RoleAdmin || r == RoleReviewer
}

func (r Role) MarshalText() ([]byte, error) {
	return []byte(r.String()), nil
}

func (r *Role) UnmarshalText(text []byte) error {
	parsed, ok := ParseRole(string(text))
	if !ok {
		return fmt.Errorf("unknown role %q", string(text))
	}
	*r = parsed
	return nil
}

// Value stores the role by name.
func (r Role) Value() (driver.Value, error) {
	if r == RoleNone {
		return nil, nil
	}
	return r.String(), nil
}

// Scan reads a stored role name. Unrecognised names scan as RoleNone.
func (r *Role) Scan(value interface{}) error {
	switch v := value.(type) {
	case nil:
		*r = RoleNone
	case string:
		*r, _ = ParseRole(v)
	case []byte:
		*r, _ = ParseRole(string(v))
	default:
		return fmt.Errorf("unsupported role value %T", value)
	}
	return nil
}

type Organization struct {
	OrganizationID uuid.UUID  `gorm:"primaryKey;column:organization_id;type:char(36)" json:"organization_id"`
	Name           string     `gorm:"column:name" json:"name"`
	CreatedAt      time.Time  `gorm:"column:created_at" json:"created_at"`
	UpdatedAt      time.Time  `gorm:"column:updated_at" json:"updated_at"`
	DeletedAt      *time.Time `gorm:"column:deleted_at" json:"deleted_at,omitempty"`
}

func (Organization) TableName() string {
	return "organizations"
}

// OrganizationMember links a user to an organization with a role.
type OrganizationMember struct {
	MemberID       uuid.UUID `gorm:"primaryKey;column:member_id;type:char(36)" json:"member_id"`
	OrganizationID uuid.UUID `gorm:"column:organization_id;type:char(36);uniqueIndex:idx_member_org_user" json:"organization_id"`
	UserID         uuid.UUID `gorm:"column:user_id;type:char(36);uniqueIndex:idx_member_org_user" json:"user_id"`
	Role           Role      `gorm:"column:role;type:varchar(20)" json:"role"`
	CreatedAt      time.Time `gorm:"column:created_at" json:"created_at"`
	UpdatedAt      time.Time `gorm:"column:updated_at" json:"updated_at"`

	User *User `gorm:"foreignKey:UserID;references:UserID" json:"user,omitempty"`
}

func (OrganizationMember) TableName() string {
	return "organization_members"
}
