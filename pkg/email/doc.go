// Package email provides notify.Sender implementations for the email
// channel: SMTPSender speaks plain SMTP, PostmarkSender uses Postmark's
// transactional API (optionally through a server-side template).
//
// Recipient lists and credentials are validated at construction so broken
// configuration surfaces at startup, not on the first alert.
package email
