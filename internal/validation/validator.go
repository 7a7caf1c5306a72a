package validation

import (
	"strconv"
)

// Validator provides common validation utilities
type Validator struct{}

// NewValidator creates a new validator instance
func NewValidator() *Validator {
	return &Validator{}
}

// IsValidTaskID checks if a task ID can address a row
func (v *Validator) IsValidTaskID(id int64) bool {
	return id >= 0
}

// ParseTaskID parses a path segment as a task ID. Only unsigned decimal
// digits are accepted; anything else does not identify a task.
func (v *Validator) ParseTaskID(raw string) (int64, bool) {
	if raw == "" {
		return 0, false
	}
	for _, r := range raw {
		if r < '0' || r > '9' {
			return 0, false
		}
	}

	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || !v.IsValidTaskID(id) {
		return 0, false
	}
	return id, true
}
