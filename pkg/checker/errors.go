package checker

import "fmt"

// InvocationError reports that the checker could not be started or did not complete.
type InvocationError struct {
	Command string
	Path    string
	Err     error
}

func (e *InvocationError) Error() string {
	return fmt.Sprintf("run %s on %s: %v", e.Command, e.Path, e.Err)
}

func (e *InvocationError) Unwrap() error {
	return e.Err
}
