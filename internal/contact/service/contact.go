package service

import (
	"context"

	"roomly/internal/contact/repository"
	"roomly/pkg/config"
	apperrors "roomly/pkg/errors"
	"roomly/pkg/model"
	"roomly/pkg/sanitizer"

	"github.com/go-playground/validator/v10"
)

type ContactService interface {
	Submit(ctx context.Context, contact *model.Contact) error
}

type contactService struct {
	repo     repository.ContactRepository
	validate *validator.Validate
	cfg      *config.Config
}

func NewContactService(repo repository.ContactRepository, cfg *config.Config) ContactService {
	return &contactService{
		repo:     repo,
		validate: validator.New(),
		cfg:      cfg,
	}
}

func (s *contactService) Submit(ctx context.Context, contact *model.Contact) error {
	contact.Name = sanitizer.NormalizeName(contact.Name)
	contact.Email = sanitizer.NormalizeEmail(contact.Email)
	contact.Message = sanitizer.NormalizeMessage(contact.Message)

	if err := s.validate.Struct(contact); err != nil {
		s.cfg.Log.Warn("Contact validation failed", "error", err)
		return apperrors.Validation("Contact validation failed", map[string]any{"error": err.Error()})
	}

	if err := s.repo.Create(ctx, contact); err != nil {
		s.cfg.Log.Error("Failed to store contact message", "error", err)
		return apperrors.Internal("Failed to store contact message", err)
	}

	s.cfg.Log.Info("Contact message stored", "id", contact.ID)
	return nil
}
