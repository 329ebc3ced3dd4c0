package preflight

import (
	"errors"
	"fmt"
)

// Kind classifies a preflight finding.
type Kind int

const (
	ConfigurationMissing Kind = iota + 1
	FileSyncFailure
	DependencyNotFound
	VersionMismatch
	UnbundledReactMismatch
	ToolchainNotInstalled
	NoEntryFile
	PluginLoadCountError
	ManifestUnreadable
	RegistryFailure
)

// template holds the fixed parts of each kind's diagnostic.
type template struct {
	Code  string
	Name  string
	Title string
}

var templates = map[Kind]template{
	ConfigurationMissing:   {"FP001", "ConfigurationMissing", "App config file is missing"},
	FileSyncFailure:        {"FP002", "FileSyncFailure", "Could not write a project file"},
	DependencyNotFound:     {"FP003", "DependencyNotFound", "Expected dependency not found"},
	VersionMismatch:        {"FP004", "VersionMismatch", "Dependency version mismatch"},
	UnbundledReactMismatch: {"FP005", "UnbundledReactMismatch", "Unbundled React is not supported by this Flex UI"},
	ToolchainNotInstalled:  {"FP006", "ToolchainNotInstalled", "TypeScript is not installed"},
	NoEntryFile:            {"FP007", "NoEntryFile", "No entry file found"},
	PluginLoadCountError:   {"FP008", "PluginLoadCountError", "Wrong number of loadPlugin calls"},
	ManifestUnreadable:     {"FP009", "ManifestUnreadable", "Could not read a package manifest"},
	RegistryFailure:        {"FP010", "RegistryFailure", "Could not update the local plugin registry"},
}

// String returns the kind's name, e.g. "VersionMismatch".
func (k Kind) String() string {
	if t, ok := templates[k]; ok {
		return t.Name
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Code returns the stable diagnostic code, e.g. "FP004".
func (k Kind) Code() string {
	return templates[k].Code
}

// Title returns the one-line headline for the kind.
func (k Kind) Title() string {
	return templates[k].Title
}

// Error is a preflight finding. Fatal findings stop the pipeline; the rest
// are printed as warnings.
type Error struct {
	Kind       Kind
	Message    string
	Detail     string
	Suggestion string
	Fatal      bool

	// Count is the number of loadPlugin calls for PluginLoadCountError.
	Count int

	Wrapped error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if code := e.Kind.Code(); code != "" {
		return fmt.Sprintf("%s: %s", code, e.Message)
	}
	return e.Message
}

// Unwrap returns the wrapped error for errors.Is/As support.
func (e *Error) Unwrap() error {
	return e.Wrapped
}

func fatal(kind Kind, format string, args ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...), Fatal: true}
}

func (e *Error) withDetail(format string, args ...any) *Error {
	e.Detail = fmt.Sprintf(format, args...)
	return e
}

func (e *Error) withSuggestion(format string, args ...any) *Error {
	e.Suggestion = fmt.Sprintf(format, args...)
	return e
}

func (e *Error) wrap(err error) *Error {
	e.Wrapped = err
	return e
}

// IsKind reports whether err is, or wraps, a preflight *Error of kind k.
func IsKind(err error, k Kind) bool {
	var pe *Error
	return errors.As(err, &pe) && pe.Kind == k
}

// AsError extracts the preflight *Error from err, if any.
func AsError(err error) (*Error, bool) {
	var pe *Error
	ok := errors.As(err, &pe)
	return pe, ok
}
