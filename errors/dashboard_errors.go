// errors/dashboard_errors.go
package errors

import "errors"

var (
	ErrDashboardNotFound    = errors.New("dashboard not found")
	ErrDashboardConflict    = errors.New("dashboard conflict")
	ErrInvalidDashboardData = errors.New("invalid dashboard data")

	ErrWidgetNotFound    = errors.New("widget not found")
	ErrUnknownWidgetType = errors.New("unknown widget type")
	ErrTemplateNotFound  = errors.New("dashboard template not found")

	ErrStoreUnavailable  = errors.New("configuration store unavailable")
	ErrDatabaseOperation = errors.New("database operation failed")
	ErrInternalServer    = errors.New("internal server error")
	ErrUnauthorized      = errors.New("unauthorized")
)
