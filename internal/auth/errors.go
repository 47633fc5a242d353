package auth

import (
	"net/http"

	apperrors "github.com/ashtabanjan/restaurant-api/pkg/util"
)

// Rejection codes returned to callers in the error body.
const (
	CodeMissingCredential = "MISSING_CREDENTIAL"
	CodeInvalidCredential = "INVALID_CREDENTIAL"
	CodeUnknownPrincipal  = "UNKNOWN_PRINCIPAL"
	CodeInsufficientRole  = "INSUFFICIENT_ROLE"
	CodeOwnershipMismatch = "OWNERSHIP_MISMATCH"
)

// Pipeline rejections. All of them are terminal for the request.
var (
	ErrMissingCredential = apperrors.NewDomainError(CodeMissingCredential, "missing credential", http.StatusUnauthorized, nil)
	ErrInvalidCredential = apperrors.NewDomainError(CodeInvalidCredential, "invalid or expired credential", http.StatusUnauthorized, nil)
	ErrUnknownPrincipal  = apperrors.NewDomainError(CodeUnknownPrincipal, "unknown principal", http.StatusForbidden, nil)
	ErrInsufficientRole  = apperrors.NewDomainError(CodeInsufficientRole, "insufficient role", http.StatusForbidden, nil)
	ErrOwnershipMismatch = apperrors.NewDomainError(CodeOwnershipMismatch, "resource belongs to another principal", http.StatusForbidden, nil)
)
