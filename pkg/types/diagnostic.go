package types

import (
	"fmt"

	"github.com/arthur-debert/modconflict/pkg/errors"
)

// Diagnostic is a non-fatal condition absorbed by a pipeline stage.
// The run continues; the caller decides whether to show it.
type Diagnostic struct {
	Code    errors.ErrorCode `json:"code"`
	Subject string           `json:"subject"`
	Message string           `json:"message"`
}

// String renders the diagnostic for display
func (d Diagnostic) String() string {
	return fmt.Sprintf("[%s] %s: %s", d.Code, d.Subject, d.Message)
}

// NewDiagnostic creates a diagnostic for subject
func NewDiagnostic(code errors.ErrorCode, subject, format string, args ...interface{}) Diagnostic {
	return Diagnostic{
		Code:    code,
		Subject: subject,
		Message: fmt.Sprintf(format, args...),
	}
}
