package timer

import "errors"

// ErrShutdownTimeout is returned by Scheduler.Shutdown if the
// dispatcher goroutine has not exited within the requested timeout.
var ErrShutdownTimeout = errors.New("timer: shutdown timed out waiting for dispatcher")
