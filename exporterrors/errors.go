// Package exporterrors defines the closed error taxonomy shared by every
// export-core component. A generator, the cache, or the registry never
// returns a bare fmt.Errorf for an expected condition; it returns an *Error
// carrying a Kind the HTTP layer can map to a status code.
package exporterrors

import "fmt"

// Kind is the closed set of error conditions the export core can surface.
type Kind string

const (
	KindInvalidIdentifier            Kind = "invalid_identifier"
	KindEmptyIdentifier              Kind = "empty_identifier"
	KindInvalidMetadataSpecification Kind = "invalid_metadata_specification"
	KindEntityNotFound                Kind = "entity_not_found"
	KindIncompleteMetadataRecord      Kind = "incomplete_metadata_record"
	KindUnsupportedFileFormat         Kind = "unsupported_file_format"
	KindInvalidUUID                   Kind = "invalid_uuid"
	KindDatabaseConstraint             Kind = "database_constraint"
	KindDatabase                       Kind = "database"
	KindUnauthorised                   Kind = "unauthorised"
	KindInvalidToken                   Kind = "invalid_token"
	KindInternal                       Kind = "internal"
)

// Error is the single error type returned by export-core components.
// Fields beyond Kind/Message are populated on a best-effort basis by the
// producing component and are meant for logging, not branching.
type Error struct {
	Kind    Kind
	Message string

	// Which names the identifier kind for KindInvalidIdentifier/KindEmptyIdentifier.
	Which string
	// Spec names the specification id for KindIncompleteMetadataRecord.
	Spec string
	// Reason elaborates KindIncompleteMetadataRecord.
	Reason string
}

func (e *Error) Error() string {
	if e.Message != "" {
		return e.Message
	}
	switch e.Kind {
	case KindInvalidIdentifier:
		return fmt.Sprintf("invalid %s identifier", e.Which)
	case KindEmptyIdentifier:
		return fmt.Sprintf("empty %s identifier", e.Which)
	case KindInvalidMetadataSpecification:
		return "invalid metadata specification"
	case KindIncompleteMetadataRecord:
		return fmt.Sprintf("incomplete metadata record for %s: %s", e.Spec, e.Reason)
	default:
		return string(e.Kind)
	}
}

// Is reports whether target names the same Kind, so callers can write
// errors.Is(err, exporterrors.New(exporterrors.KindEntityNotFound, "")).
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Kind == t.Kind
}

func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

func InvalidIdentifier(which, input string) *Error {
	return &Error{Kind: KindInvalidIdentifier, Which: which, Message: fmt.Sprintf("invalid %s: %q", which, input)}
}

func EmptyIdentifier(which string) *Error {
	return &Error{Kind: KindEmptyIdentifier, Which: which, Message: fmt.Sprintf("empty %s", which)}
}

func InvalidMetadataSpecification(id string) *Error {
	return &Error{Kind: KindInvalidMetadataSpecification, Message: fmt.Sprintf("unknown specification %q", id)}
}

func EntityNotFound(kind, id string) *Error {
	return &Error{Kind: KindEntityNotFound, Message: fmt.Sprintf("%s %q not found", kind, id)}
}

func IncompleteMetadataRecord(spec, reason string) *Error {
	return &Error{Kind: KindIncompleteMetadataRecord, Spec: spec, Reason: reason,
		Message: fmt.Sprintf("incomplete metadata record for %s: %s", spec, reason)}
}

func UnsupportedFileFormat(message string) *Error {
	return &Error{Kind: KindUnsupportedFileFormat, Message: message}
}

func InvalidUUID(input string) *Error {
	return &Error{Kind: KindInvalidUUID, Message: fmt.Sprintf("invalid uuid: %q", input)}
}

func Database(message string) *Error {
	return &Error{Kind: KindDatabase, Message: message}
}

func Internal(message string) *Error {
	return &Error{Kind: KindInternal, Message: message}
}
