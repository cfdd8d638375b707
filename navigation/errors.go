package navigation

import (
	"errors"
	"fmt"
)

// ErrNotAttached means a presenter never reached a display surface within the
// configured wait.
var ErrNotAttached = errors.New("presenter not attached")

// PresentationError reports a presentation that was abandoned. It is handed
// to the Observer and logged; it never aborts a sync.
type PresentationError struct {
	Op   string
	Item any
	Err  error
}

func (e *PresentationError) Error() string {
	return fmt.Sprintf("navigation: %s %v: %v", e.Op, e.Item, e.Err)
}

func (e *PresentationError) Unwrap() error {
	return e.Err
}
