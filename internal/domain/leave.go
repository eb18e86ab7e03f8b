package domain

import (
	"time"

	"github.com/google/uuid"
)

// LeaveStatus represents the review state of a leave request
type LeaveStatus string

const (
	LeaveStatusPending  LeaveStatus = "pending"
	LeaveStatusApproved LeaveStatus = "approved"
	LeaveStatusRejected LeaveStatus = "rejected"
)

// IsValid checks if a leave status is valid
func (s LeaveStatus) IsValid() bool {
	switch s {
	case LeaveStatusPending, LeaveStatusApproved, LeaveStatusRejected:
		return true
	}
	return false
}

// LeaveRequest is a Dayee's request to be excused from daily reporting.
type LeaveRequest struct {
	ID        uuid.UUID   `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	UserID    uuid.UUID   `json:"userId" gorm:"type:uuid;not null;index"`
	FromDate  time.Time   `json:"fromDate" gorm:"not null"`
	ToDate    time.Time   `json:"toDate" gorm:"not null"`
	Reason    string      `json:"reason" gorm:"not null"`
	Status    LeaveStatus `json:"status" gorm:"type:varchar(20);not null;default:'pending'"`
	DecidedBy *uuid.UUID  `json:"decidedBy" gorm:"type:uuid"`
	DecidedAt *time.Time  `json:"decidedAt"`
	CreatedAt time.Time   `json:"createdAt"`
	UpdatedAt time.Time   `json:"updatedAt"`

	// Relations
	User *User `json:"user,omitempty" gorm:"foreignKey:UserID"`
}

// TableName returns the table name for GORM
func (LeaveRequest) TableName() string {
	return "leave_requests"
}

// IsDecided reports whether the request has left the pending state.
func (l *LeaveRequest) IsDecided() bool {
	return l.Status != LeaveStatusPending
}
