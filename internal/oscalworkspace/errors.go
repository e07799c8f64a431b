// Package oscalworkspace implements the dissect/merge protocol: the
// file-system-mediated split of a document into named, editable block
// fragments, and its later reassembly with optional identity refresh.
// Grounded on upbound-up's persisted-metadata export pattern
// (spf13/afero plus sigs.k8s.io/yaml for every on-disk structured
// file) and on roscal_cli's dissect/merge command implementations for
// the manifest shape and block-selection state machine.
package oscalworkspace

import "fmt"

// ErrorKind tags one of the six error categories surfaced unchanged
// to the user.
type ErrorKind int

const (
	ErrLexical ErrorKind = iota
	ErrParse
	ErrBlockSelection
	ErrIntegrity
	ErrIO
	ErrOption
)

func (k ErrorKind) String() string {
	switch k {
	case ErrLexical:
		return "lexical"
	case ErrParse:
		return "parse"
	case ErrBlockSelection:
		return "block-selection"
	case ErrIntegrity:
		return "integrity"
	case ErrIO:
		return "io"
	case ErrOption:
		return "option"
	default:
		return "unknown"
	}
}

// Error is a single terminal, human-readable failure tagged with its
// taxonomy kind.
type Error struct {
	Kind ErrorKind
	Msg  string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Kind, e.Msg)
}

func errf(kind ErrorKind, format string, args ...any) error {
	return &Error{Kind: kind, Msg: fmt.Sprintf(format, args...)}
}
