package service

import (
	"context"
	"errors"
	"io"

	roomserrors "roomly/internal/rooms/errors"
	"roomly/internal/rooms/repository"
	"roomly/internal/rooms/storage"
	"roomly/pkg/config"
	apperrors "roomly/pkg/errors"
	"roomly/pkg/model"
	"roomly/pkg/sanitizer"

	"github.com/go-playground/validator/v10"
)

// ImageUpload is the optional image accompanying a room creation request.
type ImageUpload struct {
	Filename string
	Reader   io.Reader
}

type RoomService interface {
	Create(ctx context.Context, room *model.Room, image *ImageUpload) error
	GetAll(ctx context.Context) ([]*model.Room, error)
	GetByNumber(ctx context.Context, roomNumber string) (*model.Room, error)
}

type roomService struct {
	repo     repository.RoomRepository
	images   storage.ImageStore
	validate *validator.Validate
	cfg      *config.Config
}

func NewRoomService(repo repository.RoomRepository, images storage.ImageStore, cfg *config.Config) RoomService {
	return &roomService{
		repo:     repo,
		images:   images,
		validate: validator.New(),
		cfg:      cfg,
	}
}

// Create stores the image first so a storage failure never leaves a room
// record pointing at a missing file. The reverse (an orphaned file after a
// failed insert) is tolerated.
func (s *roomService) Create(ctx context.Context, room *model.Room, image *ImageUpload) error {
	room.RoomNumber = sanitizer.NormalizeRoomNumber(room.RoomNumber)
	room.RoomType = sanitizer.TrimAndNormalize(room.RoomType)

	if image != nil {
		url, err := s.images.Save(image.Filename, image.Reader)
		if err != nil {
			s.cfg.Log.Error("Failed to store room image", "room_number", room.RoomNumber, "error", err)
			return apperrors.Internal("Failed to store room image", err)
		}
		room.ImageURL = url
	}

	if err := s.validate.Struct(room); err != nil {
		s.cfg.Log.Warn("Room validation failed", "error", err)
		return apperrors.Validation("Room validation failed", map[string]any{"error": err.Error()})
	}

	if err := s.repo.Create(ctx, room); err != nil {
		s.cfg.Log.Error("Failed to create room", "room_number", room.RoomNumber, "error", err)
		return apperrors.Internal("Failed to create room", err)
	}

	s.cfg.Log.Info("Room created successfully",
		"id", room.ID,
		"room_number", room.RoomNumber,
		"room_type", room.RoomType,
		"has_image", room.ImageURL != "",
	)
	return nil
}

func (s *roomService) GetAll(ctx context.Context) ([]*model.Room, error) {
	rooms, err := s.repo.FindAll(ctx)
	if err != nil {
		s.cfg.Log.Error("Failed to list rooms", "error", err)
		return nil, apperrors.Internal("Failed to retrieve rooms", err)
	}
	return rooms, nil
}

func (s *roomService) GetByNumber(ctx context.Context, roomNumber string) (*model.Room, error) {
	roomNumber = sanitizer.NormalizeRoomNumber(roomNumber)
	if roomNumber == "" {
		return nil, apperrors.InvalidInput("Room number cannot be empty")
	}

	room, err := s.repo.FindByNumber(ctx, roomNumber)
	if err != nil {
		if errors.Is(err, roomserrors.ErrNotFound) {
			return nil, apperrors.NotFoundWithID("Room", roomNumber)
		}
		return nil, apperrors.Internal("Failed to retrieve room", err)
	}

	return room, nil
}
