package board

import "fmt"

// ConfigError describes a structural defect in a board or its properties.
// It is detected at construction time and is fatal to the run.
type ConfigError struct {
	Code    string
	Message string
}

func (e ConfigError) Error() string {
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Error codes for ConfigError.
const (
	CodeNonPositiveWidth = "NON_POSITIVE_WIDTH"
	CodeEmptyBoard       = "EMPTY_BOARD"
	CodeRowWidthMismatch = "ROW_WIDTH_MISMATCH"
	CodeInvalidColor     = "INVALID_COLOR"
)
