package dto

// Error code constants organized by category
// Format: ERR_<CATEGORY>_<DESCRIPTION>

// General error codes
const (
	// ErrCodeUnknown is used when the error type is unknown
	ErrCodeUnknown = "ERR_UNKNOWN"
	// ErrCodeInternal is used for internal server errors
	ErrCodeInternal = "ERR_INTERNAL"
)

// Validation error codes
const (
	// ErrCodeValidation is the base code for validation errors
	ErrCodeValidation = "ERR_VALIDATION"
	// ErrCodeBadRequest is used for malformed requests
	ErrCodeBadRequest = "ERR_BAD_REQUEST"
)

// Export error codes, one per failure class of an export attempt
const (
	// ErrCodeNotFound is used when the local entity does not exist
	ErrCodeNotFound = "ERR_NOT_FOUND"
	// ErrCodeAlreadyExported is used when the entity was exported before
	ErrCodeAlreadyExported = "ERR_ALREADY_EXPORTED"
	// ErrCodePrerequisiteMissing is used when a required prior export is absent
	ErrCodePrerequisiteMissing = "ERR_PREREQUISITE_MISSING"
	// ErrCodeDependencyExport is used when an inline dependency export failed
	ErrCodeDependencyExport = "ERR_DEPENDENCY_EXPORT"
	// ErrCodeBusinessRejection is used when the ERP declined the request
	ErrCodeBusinessRejection = "ERR_BUSINESS_REJECTION"
	// ErrCodeTransport is used when the remote call failed below the business level
	ErrCodeTransport = "ERR_TRANSPORT"
	// ErrCodeNoExporter is used when no exporter handles the entity kind
	ErrCodeNoExporter = "ERR_NO_EXPORTER"
)
