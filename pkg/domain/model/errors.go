package model

import "fmt"

// DelegateExitError reports a non-zero exit of the delegated engine.
// The exit code is preserved so one-shot mode can propagate it as the
// process exit status.
type DelegateExitError struct {
	Code int
}

func (e *DelegateExitError) Error() string {
	return fmt.Sprintf("delegated engine exited with code %d", e.Code)
}
