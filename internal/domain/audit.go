package domain

import "time"

// AuditEntry records one mutation of the override layer. Entries are
// immutable once appended. FromDay or ToDay is empty when the action has no
// such side (a restore has no origin day).
type AuditEntry struct {
	ID          string
	VendorCode  string
	ClientCode  string
	Action      AuditAction
	FromDay     Weekday
	ToDay       Weekday
	OldPosition *int64
	NewPosition *int64
	Actor       string
	CreatedAt   time.Time
}
