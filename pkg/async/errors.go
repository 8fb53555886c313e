package async

import "errors"

var (
	ErrAwaitTimeout = errors.New("async: timed out waiting for future completion")
	ErrPoolClosed   = errors.New("async: pool is closed")
)
