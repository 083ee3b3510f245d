// internal/domain/contact/service.go
package contact

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/logicbyfred/gallery-store/internal/pkg/email"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// ErrEmptyMessage is returned when a field is blank after trimming
var ErrEmptyMessage = errors.New("name, email and message are required")

// Repository persists contact messages
type Repository interface {
	Create(ctx context.Context, m *Message) error
	MarkNotified(ctx context.Context, id uint, at time.Time) error
}

// Notifier forwards submissions to the studio and confirms them to the visitor
type Notifier interface {
	SendContactNotification(ctx context.Context, data email.ContactData) error
	SendContactReceipt(ctx context.Context, data email.ContactData) error
}

// GormRepository stores messages with gorm
type GormRepository struct {
	db *gorm.DB
}

func NewGormRepository(db *gorm.DB) *GormRepository {
	return &GormRepository{db: db}
}

func (r *GormRepository) Create(ctx context.Context, m *Message) error {
	return r.db.WithContext(ctx).Create(m).Error
}

func (r *GormRepository) MarkNotified(ctx context.Context, id uint, at time.Time) error {
	return r.db.WithContext(ctx).Model(&Message{}).Where("id = ?", id).Update("notified_at", at).Error
}

// Service handles contact form submissions
type Service struct {
	repo     Repository
	notifier Notifier
	logger   *logrus.Logger
}

// NewService creates a new contact service
func NewService(repo Repository, notifier Notifier, logger *logrus.Logger) *Service {
	return &Service{
		repo:     repo,
		notifier: notifier,
		logger:   logger,
	}
}

// Submit stores the message, confirms it to the visitor and notifies the
// studio. Failed mail is logged and does not fail the submission.
func (s *Service) Submit(ctx context.Context, req *SubmitRequest, meta Meta) (*Message, error) {
	msg := &Message{
		Name:      strings.TrimSpace(req.Name),
		Email:     strings.ToLower(strings.TrimSpace(req.Email)),
		Subject:   strings.TrimSpace(req.Subject),
		Body:      strings.TrimSpace(req.Message),
		SessionID: meta.SessionID,
		IPAddress: meta.IPAddress,
		UserAgent: meta.UserAgent,
	}
	if msg.Name == "" || msg.Email == "" || msg.Body == "" {
		return nil, ErrEmptyMessage
	}

	if err := s.repo.Create(ctx, msg); err != nil {
		return nil, fmt.Errorf("failed to save contact message: %w", err)
	}

	entry := s.logger.WithFields(logrus.Fields{
		"message_id": msg.ID,
		"session_id": meta.SessionID,
	})

	data := email.ContactData{
		Name:        msg.Name,
		Email:       msg.Email,
		Subject:     msg.Subject,
		Message:     msg.Body,
		SubmittedAt: msg.CreatedAt.UTC().Format(time.RFC1123),
	}

	if err := s.notifier.SendContactReceipt(ctx, data); err != nil {
		entry.WithError(err).Warn("Failed to send contact receipt")
	}

	if err := s.notifier.SendContactNotification(ctx, data); err != nil {
		entry.WithError(err).Error("Failed to send contact notification")
		return msg, nil
	}

	now := time.Now().UTC()
	if err := s.repo.MarkNotified(ctx, msg.ID, now); err != nil {
		entry.WithError(err).Warn("Failed to mark contact message as notified")
		return msg, nil
	}
	msg.NotifiedAt = &now

	entry.Info("Contact message received")
	return msg, nil
}
