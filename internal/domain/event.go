package domain

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// CalendarEvent is an admin-published event shown on user dashboards.
// Audience lists the roles the event is visible to; empty means everyone.
type CalendarEvent struct {
	ID          uuid.UUID                   `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	CreatedBy   uuid.UUID                   `json:"createdBy" gorm:"type:uuid;not null"`
	Title       string                      `json:"title" gorm:"not null"`
	Description string                      `json:"description"`
	EventDate   time.Time                   `json:"eventDate" gorm:"not null;index"`
	Audience    datatypes.JSONSlice[string] `json:"audience"`
	CreatedAt   time.Time                   `json:"createdAt"`

	// Relations
	Creator *User `json:"creator,omitempty" gorm:"foreignKey:CreatedBy"`
}

// TableName returns the table name for GORM
func (CalendarEvent) TableName() string {
	return "calendar_events"
}

// VisibleTo reports whether the event should be shown to the given role.
func (e *CalendarEvent) VisibleTo(role Role) bool {
	if len(e.Audience) == 0 {
		return true
	}
	for _, a := range e.Audience {
		if Role(a) == role {
			return true
		}
	}
	return false
}
