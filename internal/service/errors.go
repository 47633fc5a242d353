package service

import (
	"errors"
	"net/http"

	"github.com/ashtabanjan/restaurant-api/internal/repository"
	apperrors "github.com/ashtabanjan/restaurant-api/pkg/util"
)

// mapRepoError turns repository sentinels into caller-facing errors. Anything
// else is passed through for the error middleware to report as internal.
func mapRepoError(err error, resource string) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, repository.ErrNotFound):
		return apperrors.NewNotFound(resource, nil)
	case errors.Is(err, repository.ErrDuplicate):
		return apperrors.NewConflict(resource+" already exists", nil)
	case errors.Is(err, repository.ErrUnavailable):
		return apperrors.NewDomainError("FEATURE_UNAVAILABLE", resource+" storage is not configured", http.StatusServiceUnavailable, nil)
	}
	return err
}
