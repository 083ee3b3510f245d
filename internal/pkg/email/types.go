// internal/pkg/email/types.go
package email

import (
	"time"
)

// EmailType represents the type of email being sent
type EmailType string

const (
	EmailTypeContactNotification EmailType = "contact_notification"
	EmailTypeContactReceipt      EmailType = "contact_receipt"
)

// Email represents an email message
type Email struct {
	To          []string               `json:"to"`
	ReplyTo     string                 `json:"reply_to,omitempty"`
	Subject     string                 `json:"subject"`
	HTMLContent string                 `json:"html_content"`
	TextContent string                 `json:"text_content,omitempty"`
	Type        EmailType              `json:"type"`
	Data        map[string]interface{} `json:"data,omitempty"`
}

// EmailTemplateData contains common data for all email templates
type EmailTemplateData struct {
	SiteName string `json:"site_name"`
	SiteURL  string `json:"site_url"`
	Year     int    `json:"year"`
}

// ContactData carries a submitted contact form
type ContactData struct {
	EmailTemplateData
	Name        string `json:"name"`
	Email       string `json:"email"`
	Subject     string `json:"subject"`
	Message     string `json:"message"`
	SubmittedAt string `json:"submitted_at"`
}

// GetBaseTemplateData returns common template data
func GetBaseTemplateData(siteName, siteURL string) EmailTemplateData {
	return EmailTemplateData{
		SiteName: siteName,
		SiteURL:  siteURL,
		Year:     time.Now().Year(),
	}
}
