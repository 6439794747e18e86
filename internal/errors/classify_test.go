package errors

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGeometryError_IsInvalidGeometry(t *testing.T) {
	err := fmt.Errorf("unfold: %w", GeometryError{Title: 50, Content: 80, Reason: "content too short"})

	assert.ErrorIs(t, err, ErrInvalidGeometry)
	assert.NotErrorIs(t, err, ErrInvalidInput)
	assert.Contains(t, err.Error(), "title=50 content=80")
}

func TestValidationError_IsInvalidInput(t *testing.T) {
	err := ValidationError{Field: "camera_height", Message: "must be positive"}

	assert.ErrorIs(t, err, ErrInvalidInput)
	assert.Equal(t, "camera_height: must be positive", err.Error())
	assert.Equal(t, "must be positive", ValidationError{Message: "must be positive"}.Error())
}

func TestClassifyError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		severity ErrorSeverity
		title    string
	}{
		{
			name:     "geometry",
			err:      GeometryError{Title: 50, Content: 201, Flips: 2, Reason: "panel taller than title"},
			severity: SeverityFatal,
			title:    "Cannot Fold Cell",
		},
		{
			name:     "wrapped sentinel geometry",
			err:      fmt.Errorf("fold: %w", ErrInvalidGeometry),
			severity: SeverityFatal,
			title:    "Cannot Fold Cell",
		},
		{
			name:     "validation",
			err:      ValidationError{Field: "animation_duration", Message: "must be positive"},
			severity: SeverityError,
			title:    "Invalid Setting",
		},
		{
			name:     "invalid input",
			err:      fmt.Errorf("slice: %w", ErrInvalidInput),
			severity: SeverityFatal,
			title:    "Internal Error",
		},
		{
			name:     "unknown",
			err:      fmt.Errorf("boom"),
			severity: SeverityError,
			title:    "Unexpected Error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uiErr := ClassifyError(tt.err)
			require.NotNil(t, uiErr)
			assert.Equal(t, tt.severity, uiErr.Severity)
			assert.Equal(t, tt.title, uiErr.Title)
			assert.ErrorIs(t, uiErr, tt.err)
		})
	}
}

func TestClassifyError_Nil(t *testing.T) {
	assert.Nil(t, ClassifyError(nil))
}

func TestClassifyError_PassesThroughUIError(t *testing.T) {
	original := &UIError{Title: "Already Classified", Severity: SeverityWarning}

	assert.Same(t, original, ClassifyError(fmt.Errorf("wrapped: %w", original)))
}
