package chord

import "errors"

var (
	ErrConflictingModifier = errors.New("conflicting modifier")
	ErrNoMatchingQuality   = errors.New("no defined quality for this modifier set")
)
