package domain

import (
	"time"

	"github.com/google/uuid"
)

// Role is the dashboard scope a user operates under.
type Role string

const (
	RoleDayee         Role = "dayee"
	RoleMarkazAdmin   Role = "markazadmin"
	RoleDivisionAdmin Role = "divisionadmin"
	RoleCentralAdmin  Role = "centraladmin"
)

// AllRoles contains all valid roles
var AllRoles = []Role{RoleDayee, RoleMarkazAdmin, RoleDivisionAdmin, RoleCentralAdmin}

// IsValid checks if a role is valid
func (r Role) IsValid() bool {
	switch r {
	case RoleDayee, RoleMarkazAdmin, RoleDivisionAdmin, RoleCentralAdmin:
		return true
	}
	return false
}

// IsAdmin reports whether the role may review other users' data.
func (r Role) IsAdmin() bool {
	switch r {
	case RoleMarkazAdmin, RoleDivisionAdmin, RoleCentralAdmin:
		return true
	}
	return false
}

// String returns the string representation of the role
func (r Role) String() string {
	return string(r)
}

type User struct {
	ID           uuid.UUID `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Email        string    `json:"email" gorm:"uniqueIndex;not null"`
	PasswordHash string    `json:"-" gorm:"not null"`
	Name         string    `json:"name" gorm:"not null"`
	Phone        string    `json:"phone"`
	Role         Role      `json:"role" gorm:"type:varchar(20);not null;default:'dayee'"`
	Markaz       string    `json:"markaz"`
	Division     string    `json:"division"`
	District     string    `json:"district"`
	Approved     bool      `json:"approved" gorm:"not null;default:false"`

	// Single-active-session lock. At most one device/session pair is current
	// per user; claimed and released only through conditional updates.
	ActiveDeviceID  *string `json:"-" gorm:"type:varchar(64)"`
	ActiveSessionID *string `json:"-" gorm:"type:varchar(64)"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
