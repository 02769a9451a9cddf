package events

import "time"

const EmployeeLifecycleTopic = "employee-lifecycle"

const (
	EmployeeHiredEventType      = "employee_hired"
	EmployeeTerminatedEventType = "employee_terminated"
	EmployeeRehiredEventType    = "employee_rehired"
)

// EmployeeLifecycleEvent is published for every Hire/Terminate/Rehire
// transition through the outbox. EffectiveDate is the business date of the
// transition, OccurredAt the wall-clock time it was recorded.
type EmployeeLifecycleEvent struct {
	EventType        string    `json:"event_type"`
	RequestID        string    `json:"request_id"`
	BusinessEntityID int       `json:"business_entity_id"`
	EffectiveDate    string    `json:"effective_date"`
	DepartmentID     *int16    `json:"department_id,omitempty"`
	ShiftID          *int8     `json:"shift_id,omitempty"`
	OccurredAt       time.Time `json:"occurred_at"`
}
