package contact

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/logicbyfred/gallery-store/internal/pkg/email"
	"github.com/logicbyfred/gallery-store/internal/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memoryRepo struct {
	messages  []*Message
	notified  map[uint]time.Time
	createErr error
}

func (r *memoryRepo) Create(_ context.Context, m *Message) error {
	if r.createErr != nil {
		return r.createErr
	}
	m.ID = uint(len(r.messages) + 1)
	m.CreatedAt = time.Now()
	r.messages = append(r.messages, m)
	return nil
}

func (r *memoryRepo) MarkNotified(_ context.Context, id uint, at time.Time) error {
	if r.notified == nil {
		r.notified = map[uint]time.Time{}
	}
	r.notified[id] = at
	return nil
}

type stubNotifier struct {
	sent     []email.ContactData
	receipts []email.ContactData
	err      error
}

func (n *stubNotifier) SendContactNotification(_ context.Context, data email.ContactData) error {
	n.sent = append(n.sent, data)
	return n.err
}

func (n *stubNotifier) SendContactReceipt(_ context.Context, data email.ContactData) error {
	n.receipts = append(n.receipts, data)
	return n.err
}

func TestSubmit(t *testing.T) {
	repo := &memoryRepo{}
	notifier := &stubNotifier{}
	svc := NewService(repo, notifier, logger.Discard())

	msg, err := svc.Submit(context.Background(), &SubmitRequest{
		Name: "  Ada ", Email: "Ada@Example.com", Message: "Do you ship to Lisbon?",
	}, Meta{SessionID: "s1", IPAddress: "127.0.0.1"})
	require.NoError(t, err)

	assert.Equal(t, uint(1), msg.ID)
	assert.Equal(t, "Ada", msg.Name)
	assert.Equal(t, "ada@example.com", msg.Email)
	assert.NotNil(t, msg.NotifiedAt)
	require.Len(t, notifier.sent, 1)
	assert.Equal(t, "Do you ship to Lisbon?", notifier.sent[0].Message)
	require.Len(t, notifier.receipts, 1)
	assert.Equal(t, "ada@example.com", notifier.receipts[0].Email)
	assert.Contains(t, repo.notified, uint(1))
}

func TestSubmit_NotificationFailureStillSucceeds(t *testing.T) {
	repo := &memoryRepo{}
	svc := NewService(repo, &stubNotifier{err: errors.New("smtp down")}, logger.Discard())

	msg, err := svc.Submit(context.Background(), &SubmitRequest{
		Name: "Ada", Email: "ada@example.com", Message: "Hello",
	}, Meta{})
	require.NoError(t, err)

	assert.Nil(t, msg.NotifiedAt)
	assert.Len(t, repo.messages, 1)
	assert.Empty(t, repo.notified)
}

func TestSubmit_BlankFields(t *testing.T) {
	svc := NewService(&memoryRepo{}, &stubNotifier{}, logger.Discard())

	_, err := svc.Submit(context.Background(), &SubmitRequest{Name: "  ", Email: "ada@example.com", Message: "hi"}, Meta{})
	assert.ErrorIs(t, err, ErrEmptyMessage)
}

func TestSubmit_StoreFailure(t *testing.T) {
	notifier := &stubNotifier{}
	svc := NewService(&memoryRepo{createErr: errors.New("db down")}, notifier, logger.Discard())

	_, err := svc.Submit(context.Background(), &SubmitRequest{Name: "Ada", Email: "ada@example.com", Message: "hi"}, Meta{})
	assert.Error(t, err)
	assert.Empty(t, notifier.sent)
	assert.Empty(t, notifier.receipts)
}
