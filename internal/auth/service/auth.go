package service

import (
	"context"
	"errors"

	autherrors "roomly/internal/auth/errors"
	"roomly/internal/auth/repository"
	"roomly/pkg/config"
	apperrors "roomly/pkg/errors"
	"roomly/pkg/model"
	"roomly/pkg/sanitizer"

	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/crypto/bcrypt"
)

type AuthService interface {
	Signup(ctx context.Context, req *model.SignupRequest) error
	Login(ctx context.Context, req *model.LoginRequest) error
}

type authService struct {
	repo     repository.UserRepository
	validate *validator.Validate
	cfg      *config.Config
}

func NewAuthService(repo repository.UserRepository, cfg *config.Config) AuthService {
	return &authService{
		repo:     repo,
		validate: validator.New(),
		cfg:      cfg,
	}
}

func (s *authService) Signup(ctx context.Context, req *model.SignupRequest) error {
	req.Name = sanitizer.NormalizeName(req.Name)
	req.Email = sanitizer.NormalizeEmail(req.Email)

	if err := s.validate.Struct(req); err != nil {
		s.cfg.Log.Warn("Signup validation failed", "error", err)
		return apperrors.Validation("Signup validation failed", map[string]any{"error": err.Error()})
	}

	if _, err := s.repo.FindByEmail(ctx, req.Email); err == nil {
		return apperrors.DuplicateUser(req.Email)
	} else if !errors.Is(err, autherrors.ErrUserNotFound) {
		return apperrors.Internal("Failed to check existing user", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return apperrors.Internal("Failed to hash password", err)
	}

	user := &model.User{
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: string(hash),
	}

	if err := s.repo.Create(ctx, user); err != nil {
		// The unique email index catches the race where two signups pass
		// the existence check concurrently.
		if mongo.IsDuplicateKeyError(err) {
			return apperrors.DuplicateUser(req.Email)
		}
		return apperrors.Internal("Failed to create user", err)
	}

	s.cfg.Log.Info("User registered successfully", "id", user.ID)
	return nil
}

// Login returns the same InvalidCredentials error for an unknown email and
// for a wrong password, so responses cannot be used to enumerate users.
func (s *authService) Login(ctx context.Context, req *model.LoginRequest) error {
	req.Email = sanitizer.NormalizeEmail(req.Email)

	if err := s.validate.Struct(req); err != nil {
		s.cfg.Log.Warn("Login validation failed", "error", err)
		return apperrors.Validation("Login validation failed", map[string]any{"error": err.Error()})
	}

	user, err := s.repo.FindByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, autherrors.ErrUserNotFound) {
			return apperrors.InvalidCredentials()
		}
		return apperrors.Internal("Failed to look up user", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return apperrors.InvalidCredentials()
	}

	s.cfg.Log.Info("User logged in", "id", user.ID)
	return nil
}
