package coordinator

import "errors"

// ErrTimeout is returned by WaitUntilComplete when the pending set is
// still non-empty after the requested timeout.
var ErrTimeout = errors.New("coordinator: wait_until_complete timed out")
