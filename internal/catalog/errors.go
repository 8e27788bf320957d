package catalog

import "errors"

// Domain errors for the catalog store
var (
	// Validation errors
	ErrInvalidProjectID   = errors.New("project ID must be positive")
	ErrDuplicateProjectID = errors.New("duplicate project ID")
	ErrSkillLevelRange    = errors.New("skill level must be between 0 and 100")
	ErrSkillPosition      = errors.New("skill position must be between 0 and 100")
	ErrReservedCategory   = errors.New("category is reserved for the match-all filter")

	// Lookup errors
	ErrProjectNotFound = errors.New("project not found")
)
