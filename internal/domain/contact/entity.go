// internal/domain/contact/entity.go
package contact

import (
	"time"
)

// Message is a contact form submission
type Message struct {
	ID         uint       `json:"id" gorm:"primaryKey"`
	Name       string     `json:"name" gorm:"size:120;not null"`
	Email      string     `json:"email" gorm:"size:255;not null;index"`
	Subject    string     `json:"subject,omitempty" gorm:"size:200"`
	Body       string     `json:"message" gorm:"column:message;type:text;not null"`
	SessionID  string     `json:"-" gorm:"size:64;index"`
	IPAddress  string     `json:"-" gorm:"size:45"`
	UserAgent  string     `json:"-" gorm:"size:500"`
	NotifiedAt *time.Time `json:"notified_at,omitempty"`
	CreatedAt  time.Time  `json:"created_at"`
}

func (Message) TableName() string {
	return "contact_messages"
}

// SubmitRequest represents a contact form post
type SubmitRequest struct {
	Name    string `json:"name" binding:"required,max=120"`
	Email   string `json:"email" binding:"required,email,max=255"`
	Subject string `json:"subject" binding:"max=200"`
	Message string `json:"message" binding:"required,max=5000"`
}

// Meta describes where a submission came from
type Meta struct {
	SessionID string
	IPAddress string
	UserAgent string
}
