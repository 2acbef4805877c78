package parsing

import "fmt"

// APICallError represents an error from the text-understanding service
type APICallError struct {
	Message string
	Cause   error
}

func (e *APICallError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("API call failed: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("API call failed: %s", e.Message)
}

func (e *APICallError) Unwrap() error {
	return e.Cause
}

// ParseError represents an error parsing the service response
type ParseError struct {
	Message string
	Cause   error
}

func (e *ParseError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("parse error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("parse error: %s", e.Message)
}

func (e *ParseError) Unwrap() error {
	return e.Cause
}

// InsufficientInputError indicates the pasted text is too short to parse.
// It is returned before either extraction strategy runs.
type InsufficientInputError struct {
	Length int
}

func (e *InsufficientInputError) Error() string {
	return fmt.Sprintf("insufficient input: need at least %d characters, got %d", MinInputLength, e.Length)
}
