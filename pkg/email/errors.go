package email

import "errors"

var (
	ErrInvalidConfig = errors.New("email: invalid sender configuration")
	ErrNoRecipients  = errors.New("email: no recipients configured")
	ErrSendFailed    = errors.New("email: failed to send")
)
