package addresserrors

import (
	"go-erp/internal/shared/apperror"
	"net/http"
)

var (
	ErrAddressNotFound = apperror.New(
		apperror.CodeNotFound,
		"Address not found",
		http.StatusNotFound,
	)
	ErrAddressAlreadyExists = apperror.New(
		apperror.CodeConflict,
		"Address already exists",
		http.StatusConflict,
	)
	ErrInvalidAddressID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid address ID",
		http.StatusBadRequest,
	)
)
