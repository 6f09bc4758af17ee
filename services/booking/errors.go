package booking

import "fmt"

// LifecycleError is a typed, user-presentable booking failure.
type LifecycleError struct {
	Code    string
	Message string
}

func (e *LifecycleError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

const (
	CodeDocumentsRequired   = "documentsRequired"
	CodeAssigneeIncomplete  = "assigneeIncomplete"
	CodeInvalidTransition   = "invalidTransition"
	CodePersistFailed       = "persistFailed"
	CodeAssessmentTimePast  = "assessmentTimePast"
	CodeInvalidStatus       = "invalidStatus"
	CodeSessionNotFound     = "sessionNotFound"
	CodePropertyNotOwned    = "propertyNotOwned"
	CodeContactSalesPending = "contactSalesPending"
)

func NewDocumentsRequiredError() error {
	return &LifecycleError{
		Code:    CodeDocumentsRequired,
		Message: "Please upload at least one completion document before marking this booking as completed",
	}
}

func NewAssigneeIncompleteError(missing []string) error {
	return &LifecycleError{
		Code:    CodeAssigneeIncomplete,
		Message: fmt.Sprintf("Missing required fields: %v", missing),
	}
}

func NewInvalidTransitionError(from, to string) error {
	return &LifecycleError{
		Code:    CodeInvalidTransition,
		Message: fmt.Sprintf("Cannot change booking status from %q to %q", from, to),
	}
}

func NewPersistFailedError() error {
	return &LifecycleError{
		Code:    CodePersistFailed,
		Message: "Failed to update booking. Please try again.",
	}
}
