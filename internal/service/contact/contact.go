package contact

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/yosapark/yomogi_backend/internal/repo"
	"github.com/yosapark/yomogi_backend/internal/service/notification"
	"github.com/yosapark/yomogi_backend/pkg/reqctx"
)

const (
	defaultListLimit = 50
	maxListLimit     = 200
)

// ---------------------------------------------------------------------------
// DTOs
// ---------------------------------------------------------------------------

type CreateRequest struct {
	Name    string `json:"name" form:"name"`
	Email   string `json:"email" form:"email"`
	Subject string `json:"subject" form:"subject"`
	Message string `json:"message" form:"message"`
}

type ListRequest struct {
	Status string
	Limit  int
}

type Store interface {
	Create(ctx context.Context, m *repo.ContactMessage) error
	List(ctx context.Context, f repo.ContactFilter) ([]*repo.ContactMessage, error)
}

// ---------------------------------------------------------------------------
// Interface
// ---------------------------------------------------------------------------

type Service interface {
	Submit(ctx context.Context, req CreateRequest) (*repo.ContactMessage, error)
	List(ctx context.Context, req ListRequest) ([]*repo.ContactMessage, error)
}

// ---------------------------------------------------------------------------
// Implementation
// ---------------------------------------------------------------------------

type contactService struct {
	store    Store
	notifier notification.Notifier
	logger   *slog.Logger
}

func New(store Store, notifier notification.Notifier, logger *slog.Logger) Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &contactService{store: store, notifier: notifier, logger: logger}
}

func (s *contactService) Submit(ctx context.Context, req CreateRequest) (*repo.ContactMessage, error) {
	msg := &repo.ContactMessage{
		Name:    strings.TrimSpace(req.Name),
		Email:   strings.TrimSpace(req.Email),
		Subject: strings.TrimSpace(req.Subject),
		Message: strings.TrimSpace(req.Message),
		Status:  repo.ContactStatusUnread,
	}
	if msg.Name == "" || msg.Email == "" || msg.Subject == "" || msg.Message == "" {
		return nil, ErrInvalidInput
	}

	if err := s.store.Create(ctx, msg); err != nil {
		reqctx.Logger(ctx, s.logger).Error("contact message not saved", "error", err)
		return nil, ErrInternal
	}

	if s.notifier != nil {
		s.notifier.ContactReceived(ctx, msg)
	}
	return msg, nil
}

func (s *contactService) List(ctx context.Context, req ListRequest) ([]*repo.ContactMessage, error) {
	limit := req.Limit
	switch {
	case limit <= 0:
		limit = defaultListLimit
	case limit > maxListLimit:
		limit = maxListLimit
	}

	items, err := s.store.List(ctx, repo.ContactFilter{Status: req.Status, Limit: limit})
	if err != nil {
		return nil, fmt.Errorf("list contact messages: %w", err)
	}
	return items, nil
}
