package push

import "errors"

var (
	ErrInvalidConfig = errors.New("push: invalid sender configuration")
	ErrSendFailed    = errors.New("push: failed to send")
)
