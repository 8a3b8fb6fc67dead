package errors

import "fmt"

// LayoutMismatch reports a table row whose cell count differs from the header.
func LayoutMismatch(row, got, want int) *Error {
	return New(CodeLayoutMismatch,
		fmt.Sprintf("row %d has %d cells, expected %d", row, got, want)).
		WithDetail("row", row).
		WithDetail("cells", got).
		WithDetail("columns", want)
}

// IndexOutOfRange reports an index outside [0, length).
func IndexOutOfRange(index, length int) *Error {
	return New(CodeIndexOutOfRange,
		fmt.Sprintf("index %d out of range [0, %d)", index, length)).
		WithDetail("index", index).
		WithDetail("length", length)
}

// InputAborted reports that the user abandoned an input form.
func InputAborted(cause error) *Error {
	return Wrap(cause, CodeInputAborted, "input operation aborted")
}

// InvalidInput reports a value that could not be parsed or is out of bounds.
func InvalidInput(field, reason string) *Error {
	return New(CodeInvalidInput, fmt.Sprintf("invalid %s: %s", field, reason)).
		WithDetail("field", field)
}

// NotFound reports a missing record.
func NotFound(kind string, key any) *Error {
	return New(CodeNotFound, fmt.Sprintf("%s %v not found", kind, key)).
		WithDetail("kind", kind).
		WithDetail("key", key)
}

// Duplicate reports a record that already exists.
func Duplicate(kind string, key any) *Error {
	return New(CodeDuplicate, fmt.Sprintf("%s %v already exists", kind, key)).
		WithDetail("kind", kind).
		WithDetail("key", key)
}

// StoreFailed wraps a data file I/O failure.
func StoreFailed(path string, err error) *Error {
	return Wrap(err, CodeStoreFailed, fmt.Sprintf("data file %s", path)).
		WithDetail("path", path)
}

// ConfigInvalid creates an invalid configuration error
func ConfigInvalid(reason string) *Error {
	return New(CodeConfigInvalid, fmt.Sprintf("invalid configuration: %s", reason))
}
