package lifecycle

import (
	"time"

	"go-erp/internal/employee"
)

// BuildEmploymentStatus reconstructs the lifecycle view from the aggregate's
// full history. Pure: the employee must be loaded with both histories and the
// clock is passed in.
func BuildEmploymentStatus(e *employee.Employee, now time.Time) EmploymentStatusResponse {
	resp := EmploymentStatusResponse{
		BusinessEntityID: e.BusinessEntityID,
		EmploymentStatus: EmploymentStatusTerminated,
		VacationHours:    e.VacationHours,
		SickLeaveHours:   e.SickLeaveHours,
	}
	if e.CurrentFlag {
		resp.EmploymentStatus = EmploymentStatusActive
	}
	if !e.HireDate.IsZero() {
		resp.HireDate = e.HireDate.Format("2006-01-02")
	}

	resp.DaysEmployed = daysEmployed(e, now)

	if open := OpenAssignment(e); open != nil {
		resp.CurrentDepartmentID = &open.DepartmentID
		resp.CurrentShiftID = &open.ShiftID
		start := open.StartDate.Format("2006-01-02")
		resp.AssignmentStartDate = &start
	}

	if pay := CurrentPay(e); pay != nil {
		resp.CurrentPayRate = &pay.Rate
		resp.PayFrequency = &pay.PayFrequency
		effective := pay.RateChangeDate.Format("2006-01-02")
		resp.PayRateEffectiveDate = &effective
	}

	resp.RehireCount = ClosedAssignmentCount(e)
	// An employee with zero closed assignments was never meaningfully
	// terminated, so it cannot be rehire-eligible either.
	resp.EligibleForRehire = !e.CurrentFlag && resp.RehireCount > 0

	return resp
}

// daysEmployed reports tenure in whole days. Active employees count from the
// most recent (re)hire until now; terminated employees until the latest
// closed assignment. Missing department history yields nil, not zero:
// tenure is unknown, not instantaneous.
func daysEmployed(e *employee.Employee, now time.Time) *int {
	if len(e.DepartmentHistory) == 0 {
		return nil
	}

	if e.CurrentFlag {
		days := wholeDays(e.HireDate, now)
		return &days
	}

	last := LastTerminationDate(e)
	if last == nil {
		return nil
	}
	days := wholeDays(e.HireDate, *last)
	return &days
}

func wholeDays(from, to time.Time) int {
	d := int(to.Sub(from).Hours() / 24)
	if d < 0 {
		return 0
	}
	return d
}
