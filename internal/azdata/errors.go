package azdata

import "fmt"

// NotFoundError reports that the azdata binary is missing at the path the
// handle points to (or was never discovered at all).
type NotFoundError struct {
	Path string
}

func (e *NotFoundError) Error() string {
	if e.Path == "" {
		return "azdata not found"
	}
	return fmt.Sprintf("azdata not found at %s", e.Path)
}

// ParseError reports malformed JSON from the tool or a remote descriptor.
// Source names the command or URL that produced the text; Raw carries the
// text itself for diagnosis.
type ParseError struct {
	Source string
	Raw    string
	Err    error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parsing output of %s: %v", e.Source, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// NetworkError reports a failed fetch of a remote resource.
type NetworkError struct {
	URL string
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("fetching %s: %v", e.URL, e.Err)
}

func (e *NetworkError) Unwrap() error { return e.Err }
