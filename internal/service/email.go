package service

import (
	"context"
	"fmt"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

type emailService struct {
	apiKey     string
	fromEmail  string
	fromName   string
	adminEmail string
}

func NewEmailService(apiKey, fromEmail, fromName, adminEmail string) EmailService {
	return &emailService{
		apiKey:     apiKey,
		fromEmail:  fromEmail,
		fromName:   fromName,
		adminEmail: adminEmail,
	}
}

func (s *emailService) SendAdminNotification(ctx context.Context, subject, message string) error {
	from := mail.NewEmail(s.fromName, s.fromEmail)
	recipient := mail.NewEmail("Marketplace Operations", s.adminEmail)

	m := mail.NewSingleEmail(from, subject, recipient, message, "")

	client := sendgrid.NewSendClient(s.apiKey)
	response, err := client.Send(m)
	if err != nil {
		return fmt.Errorf("failed to send admin notification: %w", err)
	}
	if response.StatusCode >= 400 {
		return fmt.Errorf("sendgrid error: status %d, body: %s", response.StatusCode, response.Body)
	}
	return nil
}
