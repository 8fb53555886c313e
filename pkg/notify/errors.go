package notify

import "errors"

var (
	// ErrAllSendersFailed is joined with every underlying sender error when a
	// broadcast reaches no channel at all. Use errors.Is to detect the total
	// failure and errors.As / errors.Is on the same value to recover the
	// originating sender errors.
	ErrAllSendersFailed = errors.New("notify: all senders failed")

	// ErrSenderTimeout marks a synthetic failure produced when a sender did
	// not return within the configured per-sender timeout.
	ErrSenderTimeout = errors.New("notify: sender timed out")

	// ErrDispatcherClosed is returned by Send and SendAsync after Close.
	ErrDispatcherClosed = errors.New("notify: dispatcher is closed")
)
