package window

import "fmt"

// CreationError reports that the display layer refused to create a
// window. It is recoverable: the App is left unchanged and the caller
// may retry.
type CreationError struct {
	Err error
}

func (e *CreationError) Error() string {
	return fmt.Sprintf("window creation failed: %v", e.Err)
}

func (e *CreationError) Unwrap() error {
	return e.Err
}

// ProtocolError reports a failed round trip to the display layer for
// an operation on an existing window.
type ProtocolError struct {
	Op  string
	Err error
}

func (e *ProtocolError) Error() string {
	return fmt.Sprintf("window %s: %v", e.Op, e.Err)
}

func (e *ProtocolError) Unwrap() error {
	return e.Err
}
