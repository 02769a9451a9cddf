package lifecycle_test

import (
	"testing"

	"go-erp/internal/employee"
	"go-erp/internal/lifecycle"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildEmploymentStatus(t *testing.T) {
	t.Run("active employee", func(t *testing.T) {
		e := &employee.Employee{
			BusinessEntityID: 101,
			CurrentFlag:      true,
			HireDate:         date("2020-01-10"),
			VacationHours:    120,
			SickLeaveHours:   60,
			DepartmentHistory: []employee.DepartmentHistory{
				{DepartmentID: 5, ShiftID: 1, StartDate: date("2020-01-10")},
			},
			PayHistory: []employee.PayHistory{
				{RateChangeDate: date("2020-01-10"), Rate: decimal.RequireFromString("23.50"), PayFrequency: 2},
			},
		}

		resp := lifecycle.BuildEmploymentStatus(e, date("2020-01-20"))

		assert.Equal(t, 101, resp.BusinessEntityID)
		assert.Equal(t, lifecycle.EmploymentStatusActive, resp.EmploymentStatus)
		assert.Equal(t, "2020-01-10", resp.HireDate)
		require.NotNil(t, resp.DaysEmployed)
		assert.Equal(t, 10, *resp.DaysEmployed)

		require.NotNil(t, resp.CurrentDepartmentID)
		assert.Equal(t, int16(5), *resp.CurrentDepartmentID)
		require.NotNil(t, resp.CurrentShiftID)
		assert.Equal(t, int8(1), *resp.CurrentShiftID)
		require.NotNil(t, resp.AssignmentStartDate)
		assert.Equal(t, "2020-01-10", *resp.AssignmentStartDate)

		require.NotNil(t, resp.CurrentPayRate)
		assert.True(t, resp.CurrentPayRate.Equal(decimal.RequireFromString("23.50")))
		require.NotNil(t, resp.PayFrequency)
		assert.Equal(t, int8(2), *resp.PayFrequency)

		assert.Equal(t, 0, resp.RehireCount)
		assert.False(t, resp.EligibleForRehire)
	})

	t.Run("terminated employee counts tenure to last termination", func(t *testing.T) {
		e := terminatedEmployee("2020-01-10", "2024-10-31")

		resp := lifecycle.BuildEmploymentStatus(e, date("2026-08-29"))

		assert.Equal(t, lifecycle.EmploymentStatusTerminated, resp.EmploymentStatus)
		require.NotNil(t, resp.DaysEmployed)
		assert.Equal(t, 1756, *resp.DaysEmployed)

		assert.Nil(t, resp.CurrentDepartmentID)
		assert.Nil(t, resp.CurrentShiftID)
		assert.Nil(t, resp.AssignmentStartDate)

		assert.Equal(t, 1, resp.RehireCount)
		assert.True(t, resp.EligibleForRehire)
	})

	t.Run("never hired employee has unknown tenure", func(t *testing.T) {
		e := &employee.Employee{BusinessEntityID: 102}

		resp := lifecycle.BuildEmploymentStatus(e, date("2026-08-29"))

		assert.Equal(t, lifecycle.EmploymentStatusTerminated, resp.EmploymentStatus)
		assert.Empty(t, resp.HireDate)
		assert.Nil(t, resp.DaysEmployed)
		assert.Nil(t, resp.CurrentPayRate)
		assert.Equal(t, 0, resp.RehireCount)
		assert.False(t, resp.EligibleForRehire)
	})

	t.Run("latest pay history row wins", func(t *testing.T) {
		e := terminatedEmployee("2020-01-10", "2024-10-31")
		e.CurrentFlag = true
		e.PayHistory = append(e.PayHistory, employee.PayHistory{
			RateChangeDate: date("2025-01-29"),
			Rate:           decimal.RequireFromString("31.25"),
			PayFrequency:   1,
		})

		resp := lifecycle.BuildEmploymentStatus(e, date("2026-08-29"))

		require.NotNil(t, resp.CurrentPayRate)
		assert.True(t, resp.CurrentPayRate.Equal(decimal.RequireFromString("31.25")))
		require.NotNil(t, resp.PayFrequency)
		assert.Equal(t, int8(1), *resp.PayFrequency)
		require.NotNil(t, resp.PayRateEffectiveDate)
		assert.Equal(t, "2025-01-29", *resp.PayRateEffectiveDate)
	})

	t.Run("rehired employee counts from the new hire date", func(t *testing.T) {
		e := terminatedEmployee("2020-01-10", "2024-10-31")
		require.NoError(t, lifecycle.ApplyRehire(e, lifecycle.RehireDetails{
			RehireDate:   date("2025-01-29"),
			DepartmentID: 7,
			ShiftID:      2,
			PayRate:      decimal.RequireFromString("31.25"),
			PayFrequency: 2,
		}, date("2025-01-29")))

		resp := lifecycle.BuildEmploymentStatus(e, date("2025-02-08"))

		assert.Equal(t, lifecycle.EmploymentStatusActive, resp.EmploymentStatus)
		assert.Equal(t, "2025-01-29", resp.HireDate)
		require.NotNil(t, resp.DaysEmployed)
		assert.Equal(t, 10, *resp.DaysEmployed)
		assert.Equal(t, 1, resp.RehireCount)
		assert.False(t, resp.EligibleForRehire)
		require.NotNil(t, resp.CurrentDepartmentID)
		assert.Equal(t, int16(7), *resp.CurrentDepartmentID)
	})
}
