package indent

import "fmt"

// InternalError marks an invariant violation inside the classifier or
// census: an unknown rule or shape class, a jog checked with no
// chess-sidedness, a jogging node with no list of jogs among its
// children. Spec §5/§7: these are not recoverable and terminate the
// process; they are never returned as part of a diagnostic stream.
type InternalError struct {
	Location string
	Message  string
}

func (e *InternalError) Error() string {
	return fmt.Sprintf("internal error at %s: %s", e.Location, e.Message)
}

func panicInternal(location, format string, args ...any) {
	panic(&InternalError{Location: location, Message: fmt.Sprintf(format, args...)})
}
