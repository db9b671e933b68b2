package workforceerrors

import (
	"net/http"

	"github.com/AndreFCTeles/ElectrexAPI/internal/shared/apperror"
)

var (
	ErrWorkerNotFound = apperror.New(
		apperror.CodeNotFound,
		"Worker not found",
		http.StatusNotFound,
	)
	ErrEventNotFound = apperror.New(
		apperror.CodeNotFound,
		"Absence event not found",
		http.StatusNotFound,
	)
	ErrTitleRequired = apperror.New(
		apperror.CodeInvalidInput,
		"Worker title is required",
		http.StatusBadRequest,
	)
	ErrMissingAbsenceDates = apperror.New(
		apperror.CodeInvalidInput,
		"Absence start and end dates are required",
		http.StatusBadRequest,
	)
	ErrUnknownAbsenceType = apperror.New(
		apperror.CodeUnknownType,
		"Unknown absence type",
		http.StatusBadRequest,
	)
	ErrMalformedEventID = apperror.New(
		apperror.CodeInvalidInput,
		"Malformed absence event identifier",
		http.StatusBadRequest,
	)
	ErrPersistWorkers = apperror.New(
		apperror.CodePersistence,
		"Could not persist worker records",
		http.StatusInternalServerError,
	)
)
