package core

import "errors"

// Error kinds surfaced by scene, camera and file handling code.
// Wrap them with fmt.Errorf("%w: ...") and test with errors.Is.
var (
	// ErrInvalidConfiguration reports an unusable camera or scene setup
	ErrInvalidConfiguration = errors.New("invalid configuration")
	// ErrInvalidGeometry reports a degenerate primitive
	ErrInvalidGeometry = errors.New("invalid geometry")
	// ErrIO reports unreadable or malformed files
	ErrIO = errors.New("i/o error")
)
