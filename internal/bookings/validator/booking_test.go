package validator

import (
	"testing"
	"time"

	"roomly/pkg/logger"
	"roomly/pkg/model"
)

func testLogger() *logger.Logger {
	return logger.New(logger.Config{
		Level:   logger.ERROR,
		Format:  logger.JSON,
		Service: "test",
	})
}

func TestOverlaps(t *testing.T) {
	base := time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)
	hour := time.Hour

	tests := []struct {
		name           string
		start1, end1   time.Time
		start2, end2   time.Time
		expectsOverlap bool
	}{
		{
			name:   "identical intervals",
			start1: base, end1: base.Add(hour),
			start2: base, end2: base.Add(hour),
			expectsOverlap: true,
		},
		{
			name:   "second nested inside first",
			start1: base, end1: base.Add(4 * hour),
			start2: base.Add(hour), end2: base.Add(2 * hour),
			expectsOverlap: true,
		},
		{
			name:   "partial overlap at the end",
			start1: base, end1: base.Add(2 * hour),
			start2: base.Add(hour), end2: base.Add(3 * hour),
			expectsOverlap: true,
		},
		{
			name:   "back to back is not a conflict",
			start1: base, end1: base.Add(hour),
			start2: base.Add(hour), end2: base.Add(2 * hour),
			expectsOverlap: false,
		},
		{
			name:   "fully disjoint",
			start1: base, end1: base.Add(hour),
			start2: base.Add(3 * hour), end2: base.Add(4 * hour),
			expectsOverlap: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Overlaps(tt.start1, tt.end1, tt.start2, tt.end2)
			if got != tt.expectsOverlap {
				t.Errorf("Overlaps() = %v, want %v", got, tt.expectsOverlap)
			}

			// Overlap is symmetric.
			if Overlaps(tt.start2, tt.end2, tt.start1, tt.end1) != got {
				t.Error("Overlaps() is not symmetric")
			}
		})
	}
}

func TestValidate(t *testing.T) {
	v := NewBookingValidator(testLogger())
	base := time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)

	valid := func() *model.Booking {
		return &model.Booking{
			UserEmail:  "guest@example.com",
			UserName:   "Guest",
			RoomNumber: "101",
			StartTime:  base,
			EndTime:    base.Add(time.Hour),
			Price:      50,
		}
	}

	t.Run("valid booking passes", func(t *testing.T) {
		if err := v.Validate(valid()); err != nil {
			t.Errorf("unexpected error: %v", err)
		}
	})

	t.Run("end before start fails", func(t *testing.T) {
		b := valid()
		b.EndTime = b.StartTime.Add(-time.Hour)
		if err := v.Validate(b); err == nil {
			t.Error("expected error for inverted interval")
		}
	})

	t.Run("zero-length interval fails", func(t *testing.T) {
		b := valid()
		b.EndTime = b.StartTime
		if err := v.Validate(b); err == nil {
			t.Error("expected error for zero-length interval")
		}
	})

	t.Run("invalid email fails", func(t *testing.T) {
		b := valid()
		b.UserEmail = "not-an-email"
		if err := v.Validate(b); err == nil {
			t.Error("expected error for invalid email")
		}
	})

	t.Run("zero price fails", func(t *testing.T) {
		b := valid()
		b.Price = 0
		if err := v.Validate(b); err == nil {
			t.Error("expected error for zero price")
		}
	})

	t.Run("negative tip fails", func(t *testing.T) {
		b := valid()
		b.Tip = -1
		if err := v.Validate(b); err == nil {
			t.Error("expected error for negative tip")
		}
	})
}

func TestValidateUpdate(t *testing.T) {
	v := NewBookingValidator(testLogger())
	base := time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)

	t.Run("empty update passes", func(t *testing.T) {
		if err := v.ValidateUpdate(&model.BookingUpdate{}); err != nil {
			t.Errorf("unexpected error: %v", err)
		}
	})

	t.Run("single time bound passes", func(t *testing.T) {
		start := base
		if err := v.ValidateUpdate(&model.BookingUpdate{StartTime: &start}); err != nil {
			t.Errorf("unexpected error: %v", err)
		}
	})

	t.Run("inverted pair fails", func(t *testing.T) {
		start := base
		end := base.Add(-time.Hour)
		if err := v.ValidateUpdate(&model.BookingUpdate{StartTime: &start, EndTime: &end}); err == nil {
			t.Error("expected error for inverted interval")
		}
	})

	t.Run("zero price fails", func(t *testing.T) {
		price := 0.0
		if err := v.ValidateUpdate(&model.BookingUpdate{Price: &price}); err == nil {
			t.Error("expected error for zero price")
		}
	})
}
