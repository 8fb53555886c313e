package email

import "regexp"

// SMTPConfig holds the connection settings for the SMTP-backed sender.
type SMTPConfig struct {
	Host     string `env:"SMTP_HOST,required"`
	Port     int    `env:"SMTP_PORT" envDefault:"587"`
	Username string `env:"SMTP_USER,required"`
	Password string `env:"SMTP_PASS,required"`
	From     string `env:"SMTP_FROM,required"`
}

// PostmarkConfig holds the settings for the Postmark-backed sender.
// TemplateAlias is optional: when set, messages are sent through the
// named Postmark template instead of as plain HTML email.
type PostmarkConfig struct {
	ServerToken   string `env:"POSTMARK_SERVER_TOKEN,required"`
	AccountToken  string `env:"POSTMARK_ACCOUNT_TOKEN,required"`
	SenderEmail   string `env:"POSTMARK_SENDER_EMAIL,required"`
	TemplateAlias string `env:"POSTMARK_TEMPLATE_ALIAS"`
}

// emailRegex provides basic format validation at construction time.
// Deliverability is the provider's problem, not ours.
var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

func validRecipients(recipients []string) error {
	if len(recipients) == 0 {
		return ErrNoRecipients
	}
	for _, r := range recipients {
		if !emailRegex.MatchString(r) {
			return ErrInvalidConfig
		}
	}
	return nil
}
