package domain

import "errors"

// ErrIO is returned when a story document cannot be opened or read.
var ErrIO = errors.New("story io failure")

// ErrDocumentSyntax is returned when the document parser rejects the text.
var ErrDocumentSyntax = errors.New("document syntax error")

// ErrMalformedDocument is returned when the document root is not a mapping.
var ErrMalformedDocument = errors.New("malformed document")

// ErrNoStartingNode is returned when a story lacks a usable "start" key.
var ErrNoStartingNode = errors.New("no starting node found")

// ErrChoiceNotFound is returned when the input matches no choice of the current node.
var ErrChoiceNotFound = errors.New("choice not found")

// ErrCurrentNodeInvalid is returned when the session cursor names a node absent
// from the graph. It indicates a dangling choice target or a corrupted cursor.
var ErrCurrentNodeInvalid = errors.New("current node invalid")

// ErrDanglingTarget is returned by strict loads when a choice targets an undeclared node.
var ErrDanglingTarget = errors.New("dangling choice target")

// Kind is a coarse classification of session errors, suitable for labels.
type Kind string

const (
	KindIO                 Kind = "io"
	KindDocumentSyntax     Kind = "document_syntax"
	KindMalformedDocument  Kind = "malformed_document"
	KindNoStartingNode     Kind = "no_starting_node"
	KindChoiceNotFound     Kind = "choice_not_found"
	KindCurrentNodeInvalid Kind = "current_node_invalid"
	KindDanglingTarget     Kind = "dangling_target"
	KindUnknown            Kind = "unknown"
)

var kinds = []struct {
	err  error
	kind Kind
}{
	{ErrIO, KindIO},
	{ErrDocumentSyntax, KindDocumentSyntax},
	{ErrMalformedDocument, KindMalformedDocument},
	{ErrNoStartingNode, KindNoStartingNode},
	{ErrChoiceNotFound, KindChoiceNotFound},
	{ErrCurrentNodeInvalid, KindCurrentNodeInvalid},
	{ErrDanglingTarget, KindDanglingTarget},
}

// KindOf classifies err. It returns the empty Kind for a nil error.
func KindOf(err error) Kind {
	if err == nil {
		return ""
	}
	for _, k := range kinds {
		if errors.Is(err, k.err) {
			return k.kind
		}
	}
	return KindUnknown
}

// IsLoadFailure reports whether err is a recoverable load-time failure.
func IsLoadFailure(err error) bool {
	switch KindOf(err) {
	case KindIO, KindDocumentSyntax, KindMalformedDocument, KindNoStartingNode, KindDanglingTarget:
		return true
	default:
		return false
	}
}
