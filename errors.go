package eddy

import "errors"

// ErrClosed is returned by Send when the channel has been closed.
// Sending on a closed channel is a programmer error: graphs have a fixed,
// bounded lifetime and inputs must not outlive them. Callers should treat
// this as fatal rather than retry.
var ErrClosed = errors.New("eddy: send on closed channel")
