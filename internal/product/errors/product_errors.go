package producterrors

import (
	"go-erp/internal/shared/apperror"
	"net/http"
)

var (
	ErrProductNotFound = apperror.New(
		apperror.CodeNotFound,
		"Product not found",
		http.StatusNotFound,
	)
	ErrProductNumberAlreadyExists = apperror.New(
		apperror.CodeConflict,
		"Product number already exists",
		http.StatusConflict,
	)
	ErrInvalidProductID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid product ID",
		http.StatusBadRequest,
	)
	ErrInvalidPricing = apperror.New(
		apperror.CodeValidationFailed,
		"List price must not be below standard cost",
		http.StatusBadRequest,
	)
)
