package refstore

import "fmt"

// Load error codes.
const (
	// ErrCodeNotFound indicates the file does not exist or cannot be read.
	ErrCodeNotFound = "FILE_NOT_FOUND"

	// ErrCodeMalformed indicates the file is not valid YAML.
	ErrCodeMalformed = "YAML_MALFORMED"

	// ErrCodeBadShape indicates valid YAML with the wrong structure
	// (e.g. a scalar where a mapping is required, or a missing field).
	ErrCodeBadShape = "BAD_SHAPE"

	// ErrCodeBadDate indicates an expires_at value that is not a date.
	ErrCodeBadDate = "BAD_DATE"
)

// LoadError reports a failure to read or parse an input file. The operation
// that triggered the load aborts before any write.
type LoadError struct {
	Code    string // One of the ErrCode* constants.
	Path    string // File being loaded.
	Message string // Human-readable description.
	Err     error  // Underlying error, if any.
}

func (e *LoadError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %s: %v", e.Code, e.Path, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s: %s", e.Code, e.Path, e.Message)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// NewLoadError creates a LoadError with the given code and message.
func NewLoadError(code, path, message string, err error) *LoadError {
	return &LoadError{Code: code, Path: path, Message: message, Err: err}
}

// WriteError reports a failure to persist an output file. A partial write is
// an error like any other; it is never treated as success.
type WriteError struct {
	Path string
	Err  error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("write %s: %v", e.Path, e.Err)
}

func (e *WriteError) Unwrap() error {
	return e.Err
}
