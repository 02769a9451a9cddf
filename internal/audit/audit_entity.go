package audit

import "time"

// LifecycleAudit is the consumer-side record of a lifecycle event. RequestID +
// EventType is unique so redelivered messages collapse into one row.
type LifecycleAudit struct {
	ID               int64  `gorm:"primaryKey"`
	RequestID        string `gorm:"uniqueIndex:uq_lifecycle_audit_request_event,priority:1"`
	EventType        string `gorm:"uniqueIndex:uq_lifecycle_audit_request_event,priority:2"`
	BusinessEntityID int
	EffectiveDate    string
	Payload          []byte `gorm:"type:jsonb"`
	RecordedAt       time.Time
}

func (LifecycleAudit) TableName() string { return "employee_lifecycle_audits" }
