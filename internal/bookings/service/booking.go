package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	bookingserrors "roomly/internal/bookings/errors"
	"roomly/internal/bookings/events"
	"roomly/internal/bookings/repository"
	"roomly/internal/bookings/validator"
	roomserrors "roomly/internal/rooms/errors"
	roomsrepo "roomly/internal/rooms/repository"
	"roomly/pkg/config"
	apperrors "roomly/pkg/errors"
	"roomly/pkg/model"
	"roomly/pkg/sanitizer"

	"go.mongodb.org/mongo-driver/mongo"
)

type BookingService interface {
	Create(ctx context.Context, booking *model.Booking) error
	GetByID(ctx context.Context, id string) (*model.Booking, error)
	GetAll(ctx context.Context, limit int, offset int64) ([]*model.BookingWithRoom, int64, error)
	Update(ctx context.Context, id string, updates *model.BookingUpdate) (*model.Booking, error)
	Delete(ctx context.Context, id string) error
}

type bookingService struct {
	repo      repository.BookingRepository
	lockRepo  repository.BookingLockRepository
	roomRepo  roomsrepo.RoomRepository
	validator *validator.BookingValidator
	publisher *events.Publisher
	cfg       *config.Config
}

func NewBookingService(
	repo repository.BookingRepository,
	lockRepo repository.BookingLockRepository,
	roomRepo roomsrepo.RoomRepository,
	bookingValidator *validator.BookingValidator,
	publisher *events.Publisher,
	cfg *config.Config,
) BookingService {
	return &bookingService{
		repo:      repo,
		lockRepo:  lockRepo,
		roomRepo:  roomRepo,
		validator: bookingValidator,
		publisher: publisher,
		cfg:       cfg,
	}
}

// Create persists a booking after the same room-existence and availability
// checks the update path runs. The advisory room lock serializes concurrent
// mutations for one room: two inserts for overlapping ranges touch distinct
// documents, so a transaction alone would let both commit.
func (s *bookingService) Create(ctx context.Context, booking *model.Booking) error {
	s.sanitize(booking)
	if err := s.validate(booking); err != nil {
		return err
	}

	lockID, err := s.acquireRoomLock(ctx, booking.RoomNumber)
	if err != nil {
		return err
	}
	defer func() {
		if releaseErr := s.releaseRoomLock(ctx, lockID); releaseErr != nil {
			s.cfg.Log.Warn("Failed to release booking lock", "lock_id", lockID, "error", releaseErr)
		}
	}()

	err = s.repo.ExecuteTransaction(ctx, func(sessCtx mongo.SessionContext) error {
		if err := s.verifyRoomExists(sessCtx, booking.RoomNumber); err != nil {
			return err
		}
		if err := s.verifyAvailability(sessCtx, booking, ""); err != nil {
			return err
		}
		if err := s.repo.Create(sessCtx, booking); err != nil {
			return apperrors.Internal("Failed to create booking", err)
		}
		return nil
	})
	if err != nil {
		s.cfg.Log.Error("Failed to create booking", "room_number", booking.RoomNumber, "error", err)
		return err
	}

	s.publisher.Created(ctx, booking)
	s.cfg.Log.Info("Booking created successfully",
		"id", booking.ID,
		"room_number", booking.RoomNumber,
		"start_time", booking.StartTime,
		"end_time", booking.EndTime,
	)
	return nil
}

func (s *bookingService) GetByID(ctx context.Context, id string) (*model.Booking, error) {
	if id == "" {
		return nil, apperrors.InvalidInput("Booking ID cannot be empty")
	}

	booking, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, s.translateLookupError(err, id)
	}

	return booking, nil
}

// GetAll lists bookings with their room reference expanded. The join is
// best-effort on the room_number business key: bookings whose room no longer
// resolves come back with a nil room rather than being dropped.
func (s *bookingService) GetAll(ctx context.Context, limit int, offset int64) ([]*model.BookingWithRoom, int64, error) {
	var count int64
	var bookings []*model.Booking
	var errCount, errFind error
	var wg sync.WaitGroup
	wg.Add(2)

	go func() {
		defer wg.Done()
		count, errCount = s.repo.Count(ctx)
		if errCount != nil {
			s.cfg.Log.Error("Failed to count bookings", "error", errCount)
			errCount = apperrors.Internal("Failed to count bookings", errCount)
		}
	}()

	go func() {
		defer wg.Done()
		bookings, errFind = s.repo.FindAll(ctx, limit, offset)
		if errFind != nil {
			s.cfg.Log.Error("Failed to list bookings", "error", errFind)
			errFind = apperrors.Internal("Failed to retrieve bookings", errFind)
		}
	}()

	wg.Wait()
	if errCount != nil {
		return nil, 0, errCount
	}
	if errFind != nil {
		return nil, 0, errFind
	}

	expanded, err := s.expandRooms(ctx, bookings)
	if err != nil {
		s.cfg.Log.Error("Failed to expand room references", "error", err)
		return nil, 0, apperrors.Internal("Failed to retrieve bookings", err)
	}

	return expanded, count, nil
}

func (s *bookingService) Update(ctx context.Context, id string, updates *model.BookingUpdate) (*model.Booking, error) {
	if id == "" {
		return nil, apperrors.InvalidInput("Booking ID cannot be empty")
	}

	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, s.translateLookupError(err, id)
	}

	if err := s.validator.ValidateUpdate(updates); err != nil {
		s.cfg.Log.Warn("Booking update validation failed", "id", id, "error", err)
		return nil, apperrors.Validation("Invalid update input", map[string]any{"error": err.Error()})
	}

	merged := s.mergeBookingUpdates(existing, updates)
	s.sanitize(merged)
	if err := s.validate(merged); err != nil {
		return nil, err
	}

	lockID, err := s.acquireRoomLock(ctx, merged.RoomNumber)
	if err != nil {
		return nil, err
	}
	defer func() {
		if releaseErr := s.releaseRoomLock(ctx, lockID); releaseErr != nil {
			s.cfg.Log.Warn("Failed to release booking lock", "lock_id", lockID, "error", releaseErr)
		}
	}()

	err = s.repo.ExecuteTransaction(ctx, func(sessCtx mongo.SessionContext) error {
		if err := s.verifyRoomExists(sessCtx, merged.RoomNumber); err != nil {
			return err
		}
		if err := s.verifyAvailability(sessCtx, merged, id); err != nil {
			return err
		}
		if _, err := s.repo.Update(sessCtx, id, merged); err != nil {
			// The booking can disappear between FindByID and the write.
			if errors.Is(err, bookingserrors.ErrNotFound) {
				return apperrors.NotFoundWithID("Booking", id)
			}
			return apperrors.Internal("Failed to update booking", err)
		}
		return nil
	})
	if err != nil {
		s.cfg.Log.Error("Failed to update booking", "id", id, "error", err)
		return nil, err
	}

	s.publisher.Updated(ctx, merged)
	s.cfg.Log.Info("Booking updated successfully", "id", id)
	return merged, nil
}

func (s *bookingService) Delete(ctx context.Context, id string) error {
	if id == "" {
		return apperrors.InvalidInput("Booking ID cannot be empty")
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, bookingserrors.ErrNotFound) {
			return apperrors.NotFoundWithID("Booking", id)
		}
		if errors.Is(err, bookingserrors.ErrInvalidID) {
			return apperrors.InvalidInput("Invalid booking ID format")
		}
		return apperrors.Internal("Failed to delete booking", err)
	}

	s.publisher.Deleted(ctx, id)
	s.cfg.Log.Info("Booking deleted successfully", "id", id)
	return nil
}

// --- Helpers ---

func (s *bookingService) sanitize(b *model.Booking) {
	b.UserEmail = sanitizer.NormalizeEmail(b.UserEmail)
	b.UserName = sanitizer.NormalizeName(b.UserName)
	b.RoomNumber = sanitizer.NormalizeRoomNumber(b.RoomNumber)
	b.PaymentType = sanitizer.TrimAndNormalize(b.PaymentType)
}

func (s *bookingService) validate(booking *model.Booking) error {
	if err := s.validator.Validate(booking); err != nil {
		s.cfg.Log.Warn("Booking validation failed", "error", err)
		return apperrors.Validation("Booking validation failed", map[string]any{"error": err.Error()})
	}
	return nil
}

func (s *bookingService) translateLookupError(err error, id string) error {
	if errors.Is(err, bookingserrors.ErrNotFound) {
		return apperrors.NotFoundWithID("Booking", id)
	}
	if errors.Is(err, bookingserrors.ErrInvalidID) {
		return apperrors.InvalidInput("Invalid booking ID format")
	}
	return apperrors.Internal("Failed to retrieve booking", err)
}

func (s *bookingService) mergeBookingUpdates(existing *model.Booking, updates *model.BookingUpdate) *model.Booking {
	merged := *existing

	if updates.UserEmail != "" {
		merged.UserEmail = updates.UserEmail
	}
	if updates.UserName != "" {
		merged.UserName = updates.UserName
	}
	if updates.RoomNumber != "" {
		merged.RoomNumber = updates.RoomNumber
	}
	if updates.StartTime != nil {
		merged.StartTime = *updates.StartTime
	}
	if updates.EndTime != nil {
		merged.EndTime = *updates.EndTime
	}
	if updates.Price != nil {
		merged.Price = *updates.Price
	}
	if updates.PaymentType != "" {
		merged.PaymentType = updates.PaymentType
	}
	if updates.Tip != nil {
		merged.Tip = *updates.Tip
	}

	return &merged
}

// acquireRoomLock takes the per-room advisory lock before the availability
// check. The lock document's unique _id is what actually serializes
// concurrent mutations; the TTL index on expires_at reaps locks a crashed
// request never released.
func (s *bookingService) acquireRoomLock(ctx context.Context, roomNumber string) (string, error) {
	lockID := fmt.Sprintf("booking_lock_%s", roomNumber)

	lock := &model.BookingLock{
		ID:        lockID,
		ExpiresAt: time.Now().Add(10 * time.Second),
	}

	if _, err := s.lockRepo.Create(ctx, lock); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return "", apperrors.Conflict("This room is currently being booked by another request. Please try again.")
		}
		return "", apperrors.Internal("Failed to acquire booking lock", err)
	}

	return lockID, nil
}

func (s *bookingService) releaseRoomLock(ctx context.Context, lockID string) error {
	return s.lockRepo.Delete(ctx, lockID)
}

func (s *bookingService) verifyRoomExists(ctx context.Context, roomNumber string) error {
	_, err := s.roomRepo.FindByNumber(ctx, roomNumber)
	if err != nil {
		if errors.Is(err, roomserrors.ErrNotFound) {
			return apperrors.RoomMissing(roomNumber)
		}
		return apperrors.Internal("Failed to check room existence", err)
	}
	return nil
}

// verifyAvailability rejects when any other booking on the room overlaps the
// candidate interval. excludeID removes the booking being updated from the
// query: its own stored interval always overlaps an unchanged candidate
// range and must never count as a conflict.
func (s *bookingService) verifyAvailability(ctx context.Context, booking *model.Booking, excludeID string) error {
	existing, err := s.repo.FindOverlapping(ctx, booking.RoomNumber, booking.StartTime, booking.EndTime, excludeID)
	if err != nil {
		return apperrors.Internal("Failed to check existing bookings", err)
	}

	for _, b := range existing {
		if validator.Overlaps(b.StartTime, b.EndTime, booking.StartTime, booking.EndTime) {
			return apperrors.RoomUnavailable(fmt.Sprintf(
				"Room is already booked (%s - %s)",
				b.StartTime.Format(time.RFC3339),
				b.EndTime.Format(time.RFC3339),
			))
		}
	}
	return nil
}

func (s *bookingService) expandRooms(ctx context.Context, bookings []*model.Booking) ([]*model.BookingWithRoom, error) {
	numbers := make([]string, 0, len(bookings))
	seen := make(map[string]struct{}, len(bookings))
	for _, b := range bookings {
		if _, ok := seen[b.RoomNumber]; !ok {
			seen[b.RoomNumber] = struct{}{}
			numbers = append(numbers, b.RoomNumber)
		}
	}

	rooms, err := s.roomRepo.FindByNumbers(ctx, numbers)
	if err != nil {
		return nil, err
	}

	expanded := make([]*model.BookingWithRoom, 0, len(bookings))
	for _, b := range bookings {
		expanded = append(expanded, &model.BookingWithRoom{
			Booking: *b,
			Room:    rooms[b.RoomNumber],
		})
	}
	return expanded, nil
}
