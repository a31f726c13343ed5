package failure

import (
	"errors"
	"fmt"
	"net/http"
)

const (
	ReasonValidation         = "validation"
	ReasonForbidden          = "forbidden"
	ReasonNotFound           = "not_found"
	ReasonConflict           = "duplicate_draft"
	ReasonInvalidTransition  = "invalid_transition"
	ReasonStaleState         = "stale_state"
	ReasonPreconditionFailed = "precondition_failed"
)

// Failure is a wrapper for error messages and codes using standard HTTP response codes.
// Reason identifies the failure class independently of the message, Field names the
// offending request field for validation failures.
type Failure struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Reason  string `json:"reason,omitempty"`
	Field   string `json:"field,omitempty"`
}

// Sentinels for errors.Is. They match any Failure carrying the same Reason.
var (
	ErrValidation         = &Failure{Code: http.StatusBadRequest, Reason: ReasonValidation}
	ErrForbidden          = &Failure{Code: http.StatusForbidden, Reason: ReasonForbidden}
	ErrNotFound           = &Failure{Code: http.StatusNotFound, Reason: ReasonNotFound}
	ErrConflict           = &Failure{Code: http.StatusConflict, Reason: ReasonConflict}
	ErrInvalidTransition  = &Failure{Code: http.StatusConflict, Reason: ReasonInvalidTransition}
	ErrStaleState         = &Failure{Code: http.StatusConflict, Reason: ReasonStaleState}
	ErrPreconditionFailed = &Failure{Code: http.StatusConflict, Reason: ReasonPreconditionFailed}
)

var InvalidPageParam = &Failure{Code: http.StatusBadRequest, Message: "invalid page parameter", Reason: ReasonValidation, Field: "page"}
var InvalidLimitParam = &Failure{Code: http.StatusBadRequest, Message: "invalid limit parameter", Reason: ReasonValidation, Field: "limit"}
var ForbiddenError = &Failure{Code: http.StatusForbidden, Message: "You don't have the required permissions", Reason: ReasonForbidden}
var ResourceRestrictedError = &Failure{Code: http.StatusForbidden, Message: "You don't have permission to access this resource", Reason: ReasonForbidden}

// Error returns the error code and message in a formatted string.
func (e *Failure) Error() string {
	return e.Message
}

// Is reports whether target is a Failure of the same reason.
func (e *Failure) Is(target error) bool {
	t, ok := target.(*Failure)
	if !ok || t.Reason == "" {
		return false
	}

	return e.Reason == t.Reason
}

// BadRequest returns a new Failure with code for bad requests.
func BadRequest(err error) error {
	if err != nil {
		return &Failure{
			Code:    http.StatusBadRequest,
			Message: err.Error(),
			Reason:  ReasonValidation,
		}
	}

	return nil
}

// BadRequestFromString returns a new Failure with code for bad requests with message set from string.
func BadRequestFromString(msg string) error {
	return &Failure{
		Code:    http.StatusBadRequest,
		Message: msg,
		Reason:  ReasonValidation,
	}
}

// Validation returns a bad request Failure bound to a single request field.
func Validation(field, msg string) error {
	return &Failure{
		Code:    http.StatusBadRequest,
		Message: msg,
		Reason:  ReasonValidation,
		Field:   field,
	}
}

// Unauthorized returns a new Failure with code for unauthorized requests.
func Unauthorized(msg string) error {
	return &Failure{
		Code:    http.StatusUnauthorized,
		Message: msg,
	}
}

// InternalError returns a new Failure with code for internal error and message derived from an error interface.
func InternalError(err error) error {
	if err != nil {
		return &Failure{
			Code:    http.StatusInternalServerError,
			Message: err.Error(),
		}
	}

	return nil
}

// NotFound returns a new Failure with code for entity not found.
func NotFound(entityName string) error {
	return &Failure{
		Code:    http.StatusNotFound,
		Message: entityName,
		Reason:  ReasonNotFound,
	}
}

// Conflict returns a new Failure with code for conflict situations.
func Conflict(message string) error {
	return &Failure{
		Code:    http.StatusConflict,
		Message: message,
		Reason:  ReasonConflict,
	}
}

func Forbidden(msg string) error {
	return &Failure{
		Code:    http.StatusForbidden,
		Message: msg,
		Reason:  ReasonForbidden,
	}
}

// InvalidTransition reports an edge that is never legal from the current status.
func InvalidTransition(from, to string) error {
	return &Failure{
		Code:    http.StatusConflict,
		Message: fmt.Sprintf("transition from %q to %q is not allowed", from, to),
		Reason:  ReasonInvalidTransition,
	}
}

// StaleState reports a lost compare-and-set. The caller should re-fetch and decide again.
func StaleState(id, expected, actual string) error {
	return &Failure{
		Code:    http.StatusConflict,
		Message: fmt.Sprintf("contract %s is no longer %q (current status %q), refresh and retry", id, expected, actual),
		Reason:  ReasonStaleState,
	}
}

// PreconditionFailed reports a write rejected because the stored record is in the wrong state.
func PreconditionFailed(msg string) error {
	return &Failure{
		Code:    http.StatusConflict,
		Message: msg,
		Reason:  ReasonPreconditionFailed,
	}
}

// GetCode returns the error code of an error interface.
func GetCode(err error) int {
	var fail *Failure
	if errors.As(err, &fail) {
		return fail.Code
	}

	return http.StatusInternalServerError
}

// GetReason returns the reason of a Failure, or an empty string for other errors.
func GetReason(err error) string {
	var fail *Failure
	if errors.As(err, &fail) {
		return fail.Reason
	}

	return ""
}

// GetField returns the offending field of a validation Failure.
func GetField(err error) string {
	var fail *Failure
	if errors.As(err, &fail) {
		return fail.Field
	}

	return ""
}
