package sms

import "errors"

var (
	ErrInvalidConfig = errors.New("sms: invalid sender configuration")
	ErrNoRecipients  = errors.New("sms: no phone numbers configured")
	ErrSendFailed    = errors.New("sms: failed to send")
)
