package adapter

import (
	"context"
)

// SendEmailInput represents the input for sending an email.
type SendEmailInput struct {
	To      string
	Name    string
	Subject string
	HTML    string
	Text    string
}

// SendEmailResult represents the result of sending an email.
type SendEmailResult struct {
	ResendID string
}

// EmailSender defines the interface for sending emails via an external provider.
type EmailSender interface {
	Send(ctx context.Context, input SendEmailInput) (*SendEmailResult, error)
}

// EmailService defines the interface for queueing emails.
type EmailService interface {
	// QueueReportDigestEmail queues a report digest and returns the job ID.
	QueueReportDigestEmail(ctx context.Context, input QueueReportDigestInput) (string, error)
}

// QueueReportDigestInput carries a rendered report summary for the digest template.
type QueueReportDigestInput struct {
	RecipientEmail string
	RecipientName  string
	BusinessName   string
	PeriodLabel    string
	Data           map[string]interface{}
}
