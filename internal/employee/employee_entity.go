package employee

import (
	"time"

	"github.com/shopspring/decimal"
)

// Employee is the aggregate root for the workforce domain. It owns both
// history collections outright; nothing else writes to them.
type Employee struct {
	BusinessEntityID int    `gorm:"primaryKey;column:business_entity_id"`
	NationalIDNumber string `gorm:"uniqueIndex"`
	LoginID          string `gorm:"uniqueIndex"`
	JobTitle         string
	BirthDate        time.Time
	MaritalStatus    string
	Gender           string
	HireDate         time.Time
	SalariedFlag     bool
	VacationHours    int16
	SickLeaveHours   int16
	CurrentFlag      bool // true while employed, false after termination
	ModifiedDate     time.Time

	Person            *Person             `gorm:"foreignKey:BusinessEntityID;references:BusinessEntityID"`
	DepartmentHistory []DepartmentHistory `gorm:"foreignKey:BusinessEntityID"`
	PayHistory        []PayHistory        `gorm:"foreignKey:BusinessEntityID"`
}

func (Employee) TableName() string { return "employees" }

// Person holds the identity attributes shared by every business entity that
// happens to be a natural person.
type Person struct {
	BusinessEntityID int `gorm:"primaryKey;column:business_entity_id"`
	FirstName        string
	MiddleName       string
	LastName         string
	ModifiedDate     time.Time
}

func (Person) TableName() string { return "persons" }

// DepartmentHistory is one department/shift tenure. A nil EndDate marks the
// assignment currently in effect; an employee holds at most one such row.
// Rows are closed on termination, never deleted.
type DepartmentHistory struct {
	ID               int `gorm:"primaryKey"`
	BusinessEntityID int `gorm:"index"`
	DepartmentID     int16
	ShiftID          int8
	StartDate        time.Time
	EndDate          *time.Time
	ModifiedDate     time.Time
}

func (DepartmentHistory) TableName() string { return "employee_department_history" }

// IsOpen reports whether this row is the currently effective assignment.
func (h DepartmentHistory) IsOpen() bool { return h.EndDate == nil }

// PayHistory is append-only: a raise or (re)hire adds a row, nothing mutates
// or removes one. The current rate is the row with the latest RateChangeDate.
type PayHistory struct {
	ID               int `gorm:"primaryKey"`
	BusinessEntityID int `gorm:"index"`
	RateChangeDate   time.Time
	Rate             decimal.Decimal `gorm:"type:numeric(19,4)"`
	PayFrequency     int8
	ModifiedDate     time.Time
}

func (PayHistory) TableName() string { return "employee_pay_history" }
