package employeeerrors

import (
	"go-erp/internal/shared/apperror"
	"net/http"
)

var (
	ErrEmployeeNotFound = apperror.New(
		apperror.CodeNotFound,
		"Employee not found",
		http.StatusNotFound,
	)
	ErrNationalIDAlreadyExists = apperror.New(
		apperror.CodeConflict,
		"An employee with the same national ID number already exists",
		http.StatusConflict,
	)
	ErrLoginIDAlreadyExists = apperror.New(
		apperror.CodeConflict,
		"An employee with the same login ID already exists",
		http.StatusConflict,
	)
	ErrInvalidEmployeeID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid employee ID",
		http.StatusBadRequest,
	)
)
