package domain

import "errors"

// User and session errors
var (
	ErrInvalidRole    = errors.New("invalid role")
	ErrUserNotFound   = errors.New("user not found")
	ErrDeviceConflict = errors.New("already_logged_in_elsewhere")
)

// Report errors
var (
	ErrInvalidReportKind = errors.New("invalid report kind")
	ErrEmptyReport       = errors.New("report contains no data")
	ErrAlreadySubmitted  = errors.New("report already submitted for today")
	ErrReportNotFound    = errors.New("report not found")
)

// Leave errors
var (
	ErrLeaveNotFound     = errors.New("leave request not found")
	ErrLeaveDecided      = errors.New("leave request already decided")
	ErrInvalidLeaveRange = errors.New("leave end date is before start date")
)

// Event errors
var (
	ErrEventNotFound = errors.New("event not found")
)
