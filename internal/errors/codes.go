// Package errors provides structured error handling for LexSearch.
//
// Error codes follow the pattern ERR_XXX_DESCRIPTION where:
//   - 1XX: Configuration errors
//   - 2XX: Validation errors (bad input, fatal to the request)
//   - 3XX: Collaborator errors (sources, text completion; degradable)
//   - 4XX: Cache errors (treated as a miss)
//   - 5XX: Internal pipeline errors
package errors

// Category defines error categories for classification.
type Category string

const (
	// CategoryConfig indicates configuration-related errors.
	CategoryConfig Category = "CONFIG"
	// CategoryValidation indicates request validation errors.
	CategoryValidation Category = "VALIDATION"
	// CategoryCollaborator indicates failures in external collaborators
	// (jurisdiction sources, text completion, usage recording).
	CategoryCollaborator Category = "COLLABORATOR"
	// CategoryCache indicates cache store failures.
	CategoryCache Category = "CACHE"
	// CategoryInternal indicates unexpected pipeline errors.
	CategoryInternal Category = "INTERNAL"
)

// Severity defines error severity levels.
type Severity string

const (
	// SeverityFatal indicates unrecoverable error, must abort the request.
	SeverityFatal Severity = "FATAL"
	// SeverityError indicates operation failed but the request can continue.
	SeverityError Severity = "ERROR"
	// SeverityWarning indicates degraded operation, continuing.
	SeverityWarning Severity = "WARNING"
)

// Error codes organized by category.
const (
	// Config errors (100-199)
	ErrCodeConfigNotFound = "ERR_101_CONFIG_NOT_FOUND"
	ErrCodeConfigInvalid  = "ERR_102_CONFIG_INVALID"

	// Validation errors (200-299)
	ErrCodeInvalidQuery        = "ERR_201_INVALID_QUERY"
	ErrCodeInvalidJurisdiction = "ERR_202_INVALID_JURISDICTION"
	ErrCodeInvalidLegalArea    = "ERR_203_INVALID_LEGAL_AREA"
	ErrCodeInvalidDocumentType = "ERR_204_INVALID_DOCUMENT_TYPE"
	ErrCodeInvalidMaxResults   = "ERR_205_INVALID_MAX_RESULTS"
	ErrCodeInvalidField        = "ERR_206_INVALID_FIELD"

	// Collaborator errors (300-399)
	ErrCodeSourceUnavailable   = "ERR_301_SOURCE_UNAVAILABLE"
	ErrCodeCompletionFailed    = "ERR_302_COMPLETION_FAILED"
	ErrCodeUsageRecordFailed   = "ERR_303_USAGE_RECORD_FAILED"
	ErrCodeCollaboratorTimeout = "ERR_304_COLLABORATOR_TIMEOUT"

	// Cache errors (400-499)
	ErrCodeCacheGet = "ERR_401_CACHE_GET"
	ErrCodeCachePut = "ERR_402_CACHE_PUT"

	// Internal errors (500-599)
	ErrCodeInternal = "ERR_501_INTERNAL"
	ErrCodePipeline = "ERR_502_PIPELINE"
)

// categoryFromCode derives the category from the numeric code range.
func categoryFromCode(code string) Category {
	if len(code) < 5 {
		return CategoryInternal
	}
	switch code[4] {
	case '1':
		return CategoryConfig
	case '2':
		return CategoryValidation
	case '3':
		return CategoryCollaborator
	case '4':
		return CategoryCache
	default:
		return CategoryInternal
	}
}

// severityFromCode derives severity from the category. Validation and
// internal errors abort the request; collaborator and cache errors are
// degradable by policy.
func severityFromCode(code string) Severity {
	switch categoryFromCode(code) {
	case CategoryValidation, CategoryInternal, CategoryConfig:
		return SeverityFatal
	case CategoryCache:
		return SeverityWarning
	default:
		return SeverityError
	}
}

// isRetryableCode reports whether operations failing with this code may
// be retried. Only collaborator calls are retryable; retrying bad input
// or a pipeline defect cannot help.
func isRetryableCode(code string) bool {
	return categoryFromCode(code) == CategoryCollaborator
}
