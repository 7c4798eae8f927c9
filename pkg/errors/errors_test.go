package errors

import (
	"errors"
	"fmt"
	"testing"
)

func TestNotFoundError(t *testing.T) {
	err := NewNotFoundError("template", "42")

	expected := "template with ID 42 not found"
	if err.Error() != expected {
		t.Errorf("Expected %q, got %q", expected, err.Error())
	}

	if !errors.Is(err, ErrNotFound) {
		t.Error("Expected NotFoundError to match ErrNotFound")
	}
	if !IsNotFound(err) {
		t.Error("Expected IsNotFound to return true")
	}
}

func TestValidationError(t *testing.T) {
	err := NewValidationError("name", "", "must not be empty")

	expected := "validation failed for field name: must not be empty"
	if err.Error() != expected {
		t.Errorf("Expected %q, got %q", expected, err.Error())
	}

	if !IsValidationError(err) {
		t.Error("Expected IsValidationError to return true")
	}

	// No field set
	bare := &ValidationError{Message: "bad catalog"}
	if bare.Error() != "validation failed: bad catalog" {
		t.Errorf("Unexpected message: %q", bare.Error())
	}
}

func TestAPIError(t *testing.T) {
	err := NewAPIError("/templates", 503, "service unavailable")

	expected := "API error from /templates (status 503): service unavailable"
	if err.Error() != expected {
		t.Errorf("Expected %q, got %q", expected, err.Error())
	}
}

func TestWrapHelpers(t *testing.T) {
	underlying := errors.New("disk full")

	tests := []struct {
		name string
		err  error
		want string
	}{
		{
			name: "wrap io",
			err:  WrapIO("write", "/tmp/catalog.json", underlying),
			want: "IO error during write of /tmp/catalog.json: disk full",
		},
		{
			name: "wrap parse",
			err:  WrapParse("json", "catalog.json", underlying),
			want: "parse error in json file catalog.json: disk full",
		},
		{
			name: "wrap resource",
			err:  WrapResource("save", "catalog", "", underlying),
			want: "failed to save catalog: disk full",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.err.Error() != tt.want {
				t.Errorf("Expected %q, got %q", tt.want, tt.err.Error())
			}
			if !errors.Is(tt.err, underlying) {
				t.Error("Expected wrapped error to unwrap to underlying error")
			}
		})
	}
}

func TestWrapNil(t *testing.T) {
	if WrapIO("write", "p", nil) != nil {
		t.Error("WrapIO(nil) should return nil")
	}
	if WrapParse("json", "f", nil) != nil {
		t.Error("WrapParse(nil) should return nil")
	}
	if WrapResource("save", "catalog", "", nil) != nil {
		t.Error("WrapResource(nil) should return nil")
	}
	if WrapValidation("field", nil) != nil {
		t.Error("WrapValidation(nil) should return nil")
	}
}

func TestUnresolvedSentinel(t *testing.T) {
	err := fmt.Errorf("template lease: %w", ErrUnresolved)
	if !IsUnresolved(err) {
		t.Error("Expected IsUnresolved to match wrapped ErrUnresolved")
	}
}
