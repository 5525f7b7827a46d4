package handlers

import (
	"errors"
	"net/http"

	"bp_analytics/internal/usecase"
	"bp_analytics/pkg"
)

var (
	errInvalidLoginPayload  = pkg.NewDomainErrorSimple("INVALID_LOGIN_INPUT", "Invalid login payload", http.StatusBadRequest)
	errInvalidFilterPayload = pkg.NewDomainErrorSimple("INVALID_FILTER", "Invalid filter parameters", http.StatusBadRequest)
	errMissingUploadFile    = pkg.NewDomainErrorSimple("MISSING_FILE", "Multipart field 'file' is required", http.StatusBadRequest)
	errUnauthorized         = pkg.NewDomainErrorSimple("UNAUTHORIZED", "Missing or invalid bearer token", http.StatusUnauthorized)
)

// mapAuthError translates auth usecase errors to boundary errors.
func mapAuthError(err error) *pkg.DomainError {
	switch {
	case errors.Is(err, usecase.ErrInvalidLoginInput):
		return errInvalidLoginPayload
	case errors.Is(err, usecase.ErrInvalidCredentials):
		return pkg.NewDomainErrorSimple("INVALID_CREDENTIALS", "Unknown user or wrong password", http.StatusUnauthorized)
	case errors.Is(err, usecase.ErrInvalidToken):
		return errUnauthorized
	default:
		return pkg.NewDomainErrorSimple("INTERNAL_ERROR", "Internal error", http.StatusInternalServerError)
	}
}

// mapDatasetError translates ingest/report usecase errors. The failure
// taxonomy mirrors the pipeline: bad input is the client's problem,
// everything else is a 500.
func mapDatasetError(err error) *pkg.DomainError {
	switch {
	case errors.Is(err, usecase.ErrEmptyUpload):
		return pkg.NewDomainErrorSimple("EMPTY_UPLOAD", "Uploaded file is empty", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrAmbiguousProviderColumn):
		return pkg.NewDomainErrorSimple("AMBIGUOUS_PROVIDER_COLUMN", "More than one provider column in the orders sheet", http.StatusConflict)
	case errors.Is(err, usecase.ErrMissingColumn):
		return pkg.NewDomainErrorSimple("MISSING_COLUMN", err.Error(), http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrUnreadableWorkbook):
		return pkg.NewDomainErrorSimple("INVALID_WORKBOOK", "File is not a readable two-sheet workbook", http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrInvalidDatasetID):
		return pkg.NewDomainErrorSimple("INVALID_DATASET_ID", "Invalid dataset id", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrDatasetNotFound):
		return pkg.NewDomainErrorSimple("DATASET_NOT_FOUND", "Dataset not found; upload the file again", http.StatusNotFound)
	case errors.Is(err, usecase.ErrUnknownDimension):
		return pkg.NewDomainErrorSimple("UNKNOWN_DIMENSION", err.Error(), http.StatusBadRequest)
	default:
		return pkg.NewDomainErrorSimple("INTERNAL_ERROR", "Internal error", http.StatusInternalServerError)
	}
}
