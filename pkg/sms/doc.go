// Package sms implements the SMS delivery channel on top of AWS SNS.
package sms
