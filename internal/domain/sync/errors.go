package sync

import (
	"errors"
	"fmt"
)

// ErrorKind classifies why an export attempt failed.
type ErrorKind string

const (
	// ErrorKindNotFound indicates the referenced local entity does not exist.
	ErrorKindNotFound ErrorKind = "NOT_FOUND"
	// ErrorKindAlreadyExported indicates the idempotency guard tripped.
	ErrorKindAlreadyExported ErrorKind = "ALREADY_EXPORTED"
	// ErrorKindPrerequisiteMissing indicates a required predecessor export has not happened.
	ErrorKindPrerequisiteMissing ErrorKind = "PREREQUISITE_MISSING"
	// ErrorKindDependencyExport indicates an inline dependency export failed
	// or the dependency was still unresolved after the single retry.
	ErrorKindDependencyExport ErrorKind = "DEPENDENCY_EXPORT"
	// ErrorKindBusinessRejection indicates the ERP processed the request but declined it.
	ErrorKindBusinessRejection ErrorKind = "BUSINESS_REJECTION"
	// ErrorKindTransport indicates the remote call itself failed at the
	// network or protocol level. This is the only retryable kind.
	ErrorKindTransport ErrorKind = "TRANSPORT"
)

// String returns the string representation of ErrorKind.
func (k ErrorKind) String() string {
	return string(k)
}

// ExportError is the failure type surfaced by every export adapter.
// It carries the entity kind and local identifier of the failed attempt so
// the orchestrator can decide whether to retry, skip, or alert an operator.
type ExportError struct {
	Kind    ErrorKind
	Entity  EntityKind
	LocalID string
	Reason  string
	Err     error
}

// Error implements the error interface.
func (e *ExportError) Error() string {
	msg := fmt.Sprintf("sync: export of %s %q failed (%s)", e.Entity, e.LocalID, e.Kind)
	if e.Reason != "" {
		msg += ": " + e.Reason
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

// Unwrap returns the wrapped cause, if any.
func (e *ExportError) Unwrap() error {
	return e.Err
}

// Retryable reports whether the failure may succeed on a plain retry
// without any upstream state change. Only transport failures qualify;
// every other kind requires either a dependency to be exported first or
// operator intervention.
func (e *ExportError) Retryable() bool {
	return e.Kind == ErrorKindTransport
}

// NewNotFoundError builds an ExportError for an absent local entity.
func NewNotFoundError(entity EntityKind, localID string) *ExportError {
	return &ExportError{Kind: ErrorKindNotFound, Entity: entity, LocalID: localID}
}

// NewAlreadyExportedError builds an ExportError for a tripped idempotency guard.
func NewAlreadyExportedError(entity EntityKind, localID string) *ExportError {
	return &ExportError{Kind: ErrorKindAlreadyExported, Entity: entity, LocalID: localID}
}

// NewPrerequisiteMissingError builds an ExportError for a missing predecessor export.
func NewPrerequisiteMissingError(entity EntityKind, localID string, reason string) *ExportError {
	return &ExportError{Kind: ErrorKindPrerequisiteMissing, Entity: entity, LocalID: localID, Reason: reason}
}

// NewDependencyExportError builds an ExportError naming the dependency that
// could not be resolved. The dependency kind and local id go into the reason
// so the orchestrator log pinpoints the blocking entity.
func NewDependencyExportError(entity EntityKind, localID string, depKind EntityKind, depLocalID string, cause error) *ExportError {
	return &ExportError{
		Kind:    ErrorKindDependencyExport,
		Entity:  entity,
		LocalID: localID,
		Reason:  fmt.Sprintf("dependency %s %q unresolved", depKind, depLocalID),
		Err:     cause,
	}
}

// NewBusinessRejectionError builds an ExportError for an explicit ERP rejection.
func NewBusinessRejectionError(entity EntityKind, localID string, reason string) *ExportError {
	return &ExportError{Kind: ErrorKindBusinessRejection, Entity: entity, LocalID: localID, Reason: reason}
}

// NewTransportError builds an ExportError wrapping a transport-level failure.
func NewTransportError(entity EntityKind, localID string, cause error) *ExportError {
	return &ExportError{Kind: ErrorKindTransport, Entity: entity, LocalID: localID, Err: cause}
}

// KindOf returns the ErrorKind of err when it is (or wraps) an ExportError,
// and an empty kind otherwise.
func KindOf(err error) ErrorKind {
	var exportErr *ExportError
	if errors.As(err, &exportErr) {
		return exportErr.Kind
	}
	return ""
}

// IsRetryable reports whether err is an export failure the orchestrator may
// retry without external intervention.
func IsRetryable(err error) bool {
	var exportErr *ExportError
	if errors.As(err, &exportErr) {
		return exportErr.Retryable()
	}
	return false
}
