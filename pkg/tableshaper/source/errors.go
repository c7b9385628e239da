package source

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNotFound indicates the dataset or record does not exist.
var ErrNotFound = errors.New("not found")

// ErrOutsideDir indicates a dataset name that resolves outside the data directory.
var ErrOutsideDir = errors.New("path outside data directory")

// ErrColumnNotFound indicates a search column that is neither a header name
// nor a valid column index.
var ErrColumnNotFound = errors.New("column not found")

// ErrMissingParameter indicates a required lookup parameter was empty.
var ErrMissingParameter = errors.New("missing parameter")

// Error kinds reported to users, in the form the data server uses.
const (
	KindFileNotFound = "error_file_not_found"
	KindBadRequest   = "error_bad_request"
	KindDatasource   = "error_datasource"
)

// RetrievalError represents a failure to retrieve a dataset.
type RetrievalError struct {
	Dataset string
	Kind    string // one of the Kind constants
	Err     error
}

func (e *RetrievalError) Error() string {
	return fmt.Sprintf("retrieval error for dataset %q (%s): %v", e.Dataset, e.Kind, e.Err)
}

func (e *RetrievalError) Unwrap() error {
	return e.Err
}

// Message returns the user-facing form of the error kind.
func (e *RetrievalError) Message() string {
	return FormatErrorMessage(e.Kind)
}

// NewRetrievalError creates a RetrievalError, deriving its kind from err.
func NewRetrievalError(dataset string, err error) *RetrievalError {
	kind := KindDatasource
	switch {
	case errors.Is(err, ErrNotFound):
		kind = KindFileNotFound
	case errors.Is(err, ErrOutsideDir), errors.Is(err, ErrColumnNotFound), errors.Is(err, ErrMissingParameter):
		kind = KindBadRequest
	}
	return &RetrievalError{
		Dataset: dataset,
		Kind:    kind,
		Err:     err,
	}
}

// FormatErrorMessage turns an error kind such as "error_file_not_found"
// into "Error File Not Found".
func FormatErrorMessage(kind string) string {
	words := strings.Split(kind, "_")
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
