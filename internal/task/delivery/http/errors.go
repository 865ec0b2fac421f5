package http

import (
	"errors"
	"net/http"

	"task-console/internal/task"
	"task-console/internal/task/repository"
	pkgErrors "task-console/pkg/errors"
)

var errBadID = pkgErrors.NewHTTPError(http.StatusBadRequest, "id is required")

// mapError translates domain errors into HTTP errors. Unknown errors become 500.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, repository.ErrNotFound), errors.Is(err, task.ErrTaskNotFound):
		return pkgErrors.NewHTTPError(http.StatusNotFound, "task not found")
	case errors.Is(err, repository.ErrMissingID):
		return errBadID
	case errors.Is(err, task.ErrNoPendingDelete),
		errors.Is(err, task.ErrBulkDeleteRunning),
		errors.Is(err, task.ErrDraftNotLoaded),
		errors.Is(err, task.ErrSessionClosed):
		return pkgErrors.NewHTTPError(http.StatusConflict, err.Error())
	case errors.Is(err, task.ErrEmptySelection):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, err.Error())
	default:
		return pkgErrors.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
}
