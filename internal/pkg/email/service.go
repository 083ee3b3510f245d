// internal/pkg/email/service.go
package email

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"net/http"
	"time"

	"github.com/logicbyfred/gallery-store/internal/config"
	"github.com/sirupsen/logrus"
)

const defaultResendURL = "https://api.resend.com/emails"

const contactNotificationTemplate = `<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <title>{{.SiteName}}</title>
</head>
<body style="font-family: Arial, sans-serif; margin: 0; padding: 20px; background-color: #f4f4f4;">
    <div style="max-width: 600px; margin: 0 auto; background-color: white; padding: 20px;">
        <h1 style="color: #111; font-weight: 300;">New message via {{.SiteName}}</h1>
        <p><strong>From:</strong> {{.Name}} &lt;{{.Email}}&gt;</p>
        {{if .Subject}}<p><strong>Subject:</strong> {{.Subject}}</p>{{end}}
        <p><strong>Received:</strong> {{.SubmittedAt}}</p>
        <hr>
        <p style="white-space: pre-wrap;">{{.Message}}</p>
        <hr>
        <p style="font-size: 12px; color: #666;">&copy; {{.Year}} {{.SiteName}}</p>
    </div>
</body>
</html>`

const contactReceiptTemplate = `<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <title>{{.SiteName}}</title>
</head>
<body style="font-family: Arial, sans-serif; margin: 0; padding: 20px; background-color: #f4f4f4;">
    <div style="max-width: 600px; margin: 0 auto; background-color: white; padding: 20px;">
        <p>Hello {{.Name}},</p>
        <p>Thanks for reaching out. Your message reached the studio and we will reply within a few days.</p>
        <p>{{.SiteName}}<br><a href="{{.SiteURL}}">{{.SiteURL}}</a></p>
    </div>
</body>
</html>`

// EmailService handles all email operations
type EmailService struct {
	config    *config.Config
	templates map[EmailType]*template.Template
	client    *http.Client
	logger    *logrus.Logger
	resendURL string
}

// NewEmailService creates a new email service
func NewEmailService(cfg *config.Config, logger *logrus.Logger) *EmailService {
	return &EmailService{
		config: cfg,
		templates: map[EmailType]*template.Template{
			EmailTypeContactNotification: template.Must(template.New(string(EmailTypeContactNotification)).Parse(contactNotificationTemplate)),
			EmailTypeContactReceipt:      template.Must(template.New(string(EmailTypeContactReceipt)).Parse(contactReceiptTemplate)),
		},
		client: &http.Client{
			Timeout: 30 * time.Second,
		},
		logger:    logger,
		resendURL: defaultResendURL,
	}
}

// SendEmail sends an email using the configured provider
func (s *EmailService) SendEmail(ctx context.Context, email *Email) error {
	if len(email.To) == 0 {
		return fmt.Errorf("email has no recipients")
	}

	switch s.config.Email.Provider {
	case "smtp":
		return s.sendSMTPEmail(email)
	case "resend":
		return s.sendResendEmail(ctx, email)
	case "log", "":
		s.logger.WithFields(logrus.Fields{
			"to":      email.To,
			"subject": email.Subject,
			"type":    email.Type,
		}).Info("Email delivery skipped, log provider configured")
		return nil
	default:
		return fmt.Errorf("unsupported email provider: %s", s.config.Email.Provider)
	}
}

// SendContactNotification forwards a contact form submission to the studio
func (s *EmailService) SendContactNotification(ctx context.Context, data ContactData) error {
	if s.config.Email.NotifyEmail == "" {
		return fmt.Errorf("notification address not configured")
	}
	data.EmailTemplateData = GetBaseTemplateData(s.config.App.Name, s.config.App.BaseURL)

	htmlContent, err := s.renderTemplate(EmailTypeContactNotification, data)
	if err != nil {
		return fmt.Errorf("failed to render contact notification template: %w", err)
	}

	subject := data.Subject
	if subject == "" {
		subject = "New contact message"
	}

	return s.SendEmail(ctx, &Email{
		To:          []string{s.config.Email.NotifyEmail},
		ReplyTo:     data.Email,
		Subject:     fmt.Sprintf("[%s] %s", s.config.App.Name, subject),
		HTMLContent: htmlContent,
		Type:        EmailTypeContactNotification,
		Data:        map[string]interface{}{"name": data.Name},
	})
}

// SendContactReceipt confirms receipt to the visitor
func (s *EmailService) SendContactReceipt(ctx context.Context, data ContactData) error {
	data.EmailTemplateData = GetBaseTemplateData(s.config.App.Name, s.config.App.BaseURL)

	htmlContent, err := s.renderTemplate(EmailTypeContactReceipt, data)
	if err != nil {
		return fmt.Errorf("failed to render contact receipt template: %w", err)
	}

	return s.SendEmail(ctx, &Email{
		To:          []string{data.Email},
		Subject:     fmt.Sprintf("We received your message - %s", s.config.App.Name),
		HTMLContent: htmlContent,
		Type:        EmailTypeContactReceipt,
	})
}

// renderTemplate renders an email template with data
func (s *EmailService) renderTemplate(name EmailType, data interface{}) (string, error) {
	tmpl, exists := s.templates[name]
	if !exists {
		return "", fmt.Errorf("template %s not found", name)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to execute template %s: %w", name, err)
	}

	return buf.String(), nil
}

// fromAddress formats the configured sender
func (s *EmailService) fromAddress() string {
	if s.config.Email.FromName != "" {
		return fmt.Sprintf("%s <%s>", s.config.Email.FromName, s.config.Email.FromEmail)
	}
	return s.config.Email.FromEmail
}
