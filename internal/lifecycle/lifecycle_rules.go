package lifecycle

import (
	"time"

	"go-erp/internal/employee"
	lifecycleerrors "go-erp/internal/lifecycle/errors"

	"github.com/shopspring/decimal"
)

const (
	// RehireCooldownDays is the mandatory waiting period after a
	// termination before the employee may be rehired. The boundary is
	// inclusive: rehiring exactly this many days later is allowed.
	RehireCooldownDays = 90

	// New-hire PTO balances applied on a rehire without restored seniority.
	DefaultVacationHours  int16 = 40
	DefaultSickLeaveHours int16 = 24
)

// The Apply* functions are the rule engine: pure state transitions over an
// in-memory aggregate, no I/O, the clock passed in. Every guard is evaluated
// before the first mutation, so a rejected transition leaves the aggregate
// untouched.

type HireDetails struct {
	HireDate              time.Time
	DepartmentID          int16
	ShiftID               int8
	PayRate               decimal.Decimal
	PayFrequency          int8
	InitialVacationHours  *int16
	InitialSickLeaveHours *int16
}

type TerminateDetails struct {
	TerminationDate time.Time
	PayoutPto       bool
}

type RehireDetails struct {
	RehireDate       time.Time
	DepartmentID     int16
	ShiftID          int8
	PayRate          decimal.Decimal
	PayFrequency     int8
	RestoreSeniority bool
}

// ApplyHire activates an inactive employee, seeds PTO balances and opens the
// first department and pay history rows of this employment stint.
func ApplyHire(e *employee.Employee, d HireDetails, now time.Time) error {
	if e.CurrentFlag {
		return lifecycleerrors.ErrAlreadyActive
	}

	e.CurrentFlag = true
	e.HireDate = d.HireDate
	e.VacationHours = valueOrZero(d.InitialVacationHours)
	e.SickLeaveHours = valueOrZero(d.InitialSickLeaveHours)

	appendAssignments(e, d.HireDate, d.DepartmentID, d.ShiftID, d.PayRate, d.PayFrequency, now)
	stamp(e, now)
	return nil
}

// ApplyTerminate deactivates an active employee and closes the open
// department assignment. An active employee without one is legal; closing is
// then a no-op, not an error.
func ApplyTerminate(e *employee.Employee, d TerminateDetails, now time.Time) error {
	if !e.CurrentFlag {
		return lifecycleerrors.ErrAlreadyTerminated
	}

	e.CurrentFlag = false
	if open := OpenAssignment(e); open != nil {
		end := d.TerminationDate
		open.EndDate = &end
		open.ModifiedDate = now
	}
	if d.PayoutPto {
		e.VacationHours = 0
		e.SickLeaveHours = 0
	}
	stamp(e, now)
	return nil
}

// ApplyRehire reactivates a terminated employee once the cooldown after the
// last termination has elapsed. Without a prior termination on record the
// cooldown check is skipped.
func ApplyRehire(e *employee.Employee, d RehireDetails, now time.Time) error {
	if e.CurrentFlag {
		return lifecycleerrors.ErrAlreadyActiveOnRehire
	}
	if last := LastTerminationDate(e); last != nil {
		earliest := last.AddDate(0, 0, RehireCooldownDays)
		if d.RehireDate.Before(earliest) {
			return lifecycleerrors.RehireTooSoon(earliest)
		}
	}

	e.CurrentFlag = true
	e.HireDate = d.RehireDate
	if !d.RestoreSeniority {
		e.VacationHours = DefaultVacationHours
		e.SickLeaveHours = DefaultSickLeaveHours
	}

	appendAssignments(e, d.RehireDate, d.DepartmentID, d.ShiftID, d.PayRate, d.PayFrequency, now)
	stamp(e, now)
	return nil
}

// OpenAssignment returns the department assignment currently in effect, nil
// when the employee has none.
func OpenAssignment(e *employee.Employee) *employee.DepartmentHistory {
	for i := range e.DepartmentHistory {
		if e.DepartmentHistory[i].IsOpen() {
			return &e.DepartmentHistory[i]
		}
	}
	return nil
}

// LastTerminationDate returns the latest EndDate across closed department
// assignments, nil when no termination is on record.
func LastTerminationDate(e *employee.Employee) *time.Time {
	var last *time.Time
	for i := range e.DepartmentHistory {
		end := e.DepartmentHistory[i].EndDate
		if end == nil {
			continue
		}
		if last == nil || end.After(*last) {
			last = end
		}
	}
	return last
}

// CurrentPay returns the pay history row with the latest RateChangeDate, nil
// when no pay history exists.
func CurrentPay(e *employee.Employee) *employee.PayHistory {
	var current *employee.PayHistory
	for i := range e.PayHistory {
		p := &e.PayHistory[i]
		if current == nil || p.RateChangeDate.After(current.RateChangeDate) {
			current = p
		}
	}
	return current
}

// ClosedAssignmentCount counts past terminations: one closed department
// assignment per employment stint that ended.
func ClosedAssignmentCount(e *employee.Employee) int {
	n := 0
	for i := range e.DepartmentHistory {
		if !e.DepartmentHistory[i].IsOpen() {
			n++
		}
	}
	return n
}

func appendAssignments(
	e *employee.Employee,
	effective time.Time,
	departmentID int16,
	shiftID int8,
	rate decimal.Decimal,
	payFrequency int8,
	now time.Time,
) {
	e.DepartmentHistory = append(e.DepartmentHistory, employee.DepartmentHistory{
		BusinessEntityID: e.BusinessEntityID,
		DepartmentID:     departmentID,
		ShiftID:          shiftID,
		StartDate:        effective,
		EndDate:          nil,
		ModifiedDate:     now,
	})
	e.PayHistory = append(e.PayHistory, employee.PayHistory{
		BusinessEntityID: e.BusinessEntityID,
		RateChangeDate:   effective,
		Rate:             rate,
		PayFrequency:     payFrequency,
		ModifiedDate:     now,
	})
}

func stamp(e *employee.Employee, now time.Time) {
	e.ModifiedDate = now
	if e.Person != nil {
		e.Person.ModifiedDate = now
	}
}

func valueOrZero(v *int16) int16 {
	if v == nil {
		return 0
	}
	return *v
}
