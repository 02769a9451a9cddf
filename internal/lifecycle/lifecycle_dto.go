package lifecycle

import "github.com/shopspring/decimal"

type HireEmployeeRequest struct {
	HireDate              string          `json:"hire_date" binding:"required"`
	DepartmentID          int16           `json:"department_id" binding:"required"`
	ShiftID               int8            `json:"shift_id" binding:"required"`
	PayRate               decimal.Decimal `json:"pay_rate" binding:"required"`
	PayFrequency          int8            `json:"pay_frequency" binding:"required,oneof=1 2"`
	InitialVacationHours  *int16          `json:"initial_vacation_hours" binding:"omitempty,gte=0"`
	InitialSickLeaveHours *int16          `json:"initial_sick_leave_hours" binding:"omitempty,gte=0"`
}

type TerminateEmployeeRequest struct {
	TerminationDate string `json:"termination_date" binding:"required"`
	PayoutPto       bool   `json:"payout_pto"`
}

type RehireEmployeeRequest struct {
	RehireDate       string          `json:"rehire_date" binding:"required"`
	DepartmentID     int16           `json:"department_id" binding:"required"`
	ShiftID          int8            `json:"shift_id" binding:"required"`
	PayRate          decimal.Decimal `json:"pay_rate" binding:"required"`
	PayFrequency     int8            `json:"pay_frequency" binding:"required,oneof=1 2"`
	RestoreSeniority bool            `json:"restore_seniority"`
}

type TransitionResponse struct {
	BusinessEntityID int `json:"business_entity_id"`
}

// EmploymentStatusResponse is the derived point-in-time lifecycle view.
// Nullable fields stay null when the underlying history is absent; absence of
// data is distinct from zero.
type EmploymentStatusResponse struct {
	BusinessEntityID     int              `json:"business_entity_id"`
	EmploymentStatus     string           `json:"employment_status"`
	HireDate             string           `json:"hire_date,omitempty"`
	DaysEmployed         *int             `json:"days_employed"`
	CurrentDepartmentID  *int16           `json:"current_department_id"`
	CurrentShiftID       *int8            `json:"current_shift_id"`
	AssignmentStartDate  *string          `json:"assignment_start_date"`
	CurrentPayRate       *decimal.Decimal `json:"current_pay_rate"`
	PayFrequency         *int8            `json:"pay_frequency"`
	PayRateEffectiveDate *string          `json:"pay_rate_effective_date"`
	VacationHours        int16            `json:"vacation_hours"`
	SickLeaveHours       int16            `json:"sick_leave_hours"`
	RehireCount          int              `json:"rehire_count"`
	EligibleForRehire    bool             `json:"eligible_for_rehire"`
}

const (
	EmploymentStatusActive     = "Active"
	EmploymentStatusTerminated = "Terminated"
)
