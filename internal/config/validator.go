package config

import (
	"fmt"
	"strings"
)

// ValidationResult collects every configuration problem so the user sees all
// of them at once instead of fixing them one run at a time.
type ValidationResult struct {
	Errors []string
}

// AddError adds an error to the validation result
func (vr *ValidationResult) AddError(format string, args ...interface{}) {
	vr.Errors = append(vr.Errors, fmt.Sprintf(format, args...))
}

// HasErrors returns true if there are any errors
func (vr *ValidationResult) HasErrors() bool {
	return len(vr.Errors) > 0
}

// Error returns a formatted error message
func (vr *ValidationResult) Error() string {
	if !vr.HasErrors() {
		return ""
	}

	var sb strings.Builder
	sb.WriteString("configuration validation failed:")
	for _, err := range vr.Errors {
		sb.WriteString("\n  - " + err)
	}
	return sb.String()
}

// Validate checks that everything the generate flow needs is present, before
// any repository is touched.
func (cfg *Config) Validate(repos []string) *ValidationResult {
	vr := &ValidationResult{}

	if cfg.Author == "" {
		vr.AddError("author is required (--author or GITSHEET_AUTHOR)")
	}
	if cfg.Output == "" {
		vr.AddError("output path is required (--output or GITSHEET_OUTPUT)")
	}
	if len(repos) == 0 {
		vr.AddError("at least one repository path is required")
	}
	if cfg.StartUpTime <= 0 {
		vr.AddError("start-up time must be positive, got %v", cfg.StartUpTime)
	}

	return vr
}
