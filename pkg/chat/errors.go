package chat

import "errors"

var (
	ErrInvalidConfig = errors.New("chat: invalid sender configuration")
	ErrSendFailed    = errors.New("chat: failed to send")
)
