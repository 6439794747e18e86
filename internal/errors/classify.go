package errors

import (
	"errors"
)

// ErrorSeverity indicates the severity of an error for UI presentation.
type ErrorSeverity int

const (
	SeverityInfo    ErrorSeverity = iota // User should know, not blocking
	SeverityWarning                      // Degraded functionality
	SeverityError                        // Operation failed, can retry
	SeverityFatal                        // Precondition violated, caller must fix input
)

// UIError wraps an error with UI-friendly presentation metadata.
type UIError struct {
	Err      error
	Severity ErrorSeverity
	Title    string   // Short user-facing title
	Message  string   // Detailed user-facing message
	Recovery []string // Suggested actions (bullet points)
	Details  string   // Technical details (collapsed by default)
}

func (e UIError) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return e.Title
}

// Unwrap returns the underlying error.
func (e UIError) Unwrap() error {
	return e.Err
}

// ClassifyError converts a standard error into a UIError with appropriate
// severity, title, message, and recovery suggestions.
func ClassifyError(err error) *UIError {
	if err == nil {
		return nil
	}

	// Check if already a UIError
	var uiErr *UIError
	if errors.As(err, &uiErr) {
		return uiErr
	}

	var geomErr GeometryError
	if errors.As(err, &geomErr) {
		return &UIError{
			Err:      err,
			Severity: SeverityFatal,
			Title:    "Cannot Fold Cell",
			Message:  "The content view is too short for the configured panels.",
			Recovery: []string{
				"Make the content at least twice as tall as the title",
				"Raise the additional flips count",
			},
			Details: geomErr.Error(),
		}
	}

	var validationErr ValidationError
	if errors.As(err, &validationErr) {
		return &UIError{
			Err:      err,
			Severity: SeverityError,
			Title:    "Invalid Setting",
			Message:  validationErr.Message,
			Recovery: []string{"Correct the setting and try again"},
			Details:  validationErr.Error(),
		}
	}

	switch {
	case errors.Is(err, ErrInvalidGeometry):
		return &UIError{
			Err:      err,
			Severity: SeverityFatal,
			Title:    "Cannot Fold Cell",
			Message:  "The content view is too short for the configured panels.",
			Recovery: []string{"Check the title and content sizes"},
			Details:  err.Error(),
		}

	case errors.Is(err, ErrInvalidInput):
		return &UIError{
			Err:      err,
			Severity: SeverityFatal,
			Title:    "Internal Error",
			Message:  "The fold animation received inconsistent input.",
			Details:  err.Error(),
		}
	}

	// Default fallback for unknown errors
	return &UIError{
		Err:      err,
		Severity: SeverityError,
		Title:    "Unexpected Error",
		Message:  "An unexpected error occurred.",
		Recovery: []string{"Try again"},
		Details:  err.Error(),
	}
}
