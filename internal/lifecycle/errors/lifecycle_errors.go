package lifecycleerrors

import (
	"fmt"
	"net/http"
	"time"

	"go-erp/internal/shared/apperror"
)

var (
	ErrEmployeeNotFound = apperror.New(
		apperror.CodeNotFound,
		"Employee not found",
		http.StatusNotFound,
	)
	ErrAlreadyActive = apperror.New(
		apperror.CodeInvalidState,
		"Employee is already active and cannot be hired",
		http.StatusConflict,
	)
	ErrAlreadyActiveOnRehire = apperror.New(
		apperror.CodeInvalidState,
		"Employee is already active; use a department transfer instead of a rehire",
		http.StatusConflict,
	)
	ErrAlreadyTerminated = apperror.New(
		apperror.CodeInvalidState,
		"Employee is already terminated",
		http.StatusConflict,
	)
	// ErrRehireTooSoon is the sentinel for errors.Is checks; the instance
	// handed to callers comes from RehireTooSoon and carries the earliest
	// eligible date.
	ErrRehireTooSoon = apperror.New(
		apperror.CodeInvalidState,
		"Employee cannot be rehired before the waiting period after termination has elapsed",
		http.StatusConflict,
	)
)

// RehireTooSoon builds the caller-facing rehire cooldown violation. The
// returned error unwraps to ErrRehireTooSoon.
func RehireTooSoon(earliestDate time.Time) *apperror.AppError {
	e := ErrRehireTooSoon.WithMessage(fmt.Sprintf(
		"Employee cannot be rehired before %s: the 90 day waiting period after termination has not elapsed",
		earliestDate.Format("2006-01-02"),
	))
	return e.WithDetails(map[string]string{
		"earliest_rehire_date": earliestDate.Format("2006-01-02"),
	})
}
