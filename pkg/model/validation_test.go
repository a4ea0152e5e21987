package model

import (
	"strings"
	"testing"
	"time"

	"github.com/go-playground/validator/v10"
)

func TestRoom_RequiredFields(t *testing.T) {
	validate := validator.New()

	tests := []struct {
		name        string
		room        *Room
		expectValid bool
	}{
		{
			name: "valid room",
			room: &Room{
				RoomNumber:   "101",
				RoomType:     "standard",
				PricePerHour: 25,
			},
			expectValid: true,
		},
		{
			name: "valid room with image",
			room: &Room{
				RoomNumber:   "101",
				RoomType:     "standard",
				PricePerHour: 25,
				ImageURL:     "http://localhost:8080/images/1-room.jpg",
			},
			expectValid: true,
		},
		{
			name: "missing room number",
			room: &Room{
				RoomType:     "standard",
				PricePerHour: 25,
			},
			expectValid: false,
		},
		{
			name: "zero price",
			room: &Room{
				RoomNumber: "101",
				RoomType:   "standard",
			},
			expectValid: false,
		},
		{
			name: "negative price",
			room: &Room{
				RoomNumber:   "101",
				RoomType:     "standard",
				PricePerHour: -5,
			},
			expectValid: false,
		},
		{
			name: "malformed image URL",
			room: &Room{
				RoomNumber:   "101",
				RoomType:     "standard",
				PricePerHour: 25,
				ImageURL:     "not a url",
			},
			expectValid: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validate.Struct(tt.room)
			if tt.expectValid && err != nil {
				t.Errorf("expected valid, got error: %v", err)
			}
			if !tt.expectValid && err == nil {
				t.Error("expected validation error, got nil")
			}
		})
	}
}

func TestBooking_TimeOrdering(t *testing.T) {
	validate := validator.New()
	base := time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)

	booking := &Booking{
		UserEmail:  "guest@example.com",
		UserName:   "Guest",
		RoomNumber: "101",
		StartTime:  base,
		EndTime:    base.Add(time.Hour),
		Price:      50,
	}
	if err := validate.Struct(booking); err != nil {
		t.Errorf("expected valid booking, got: %v", err)
	}

	booking.EndTime = base.Add(-time.Hour)
	if err := validate.Struct(booking); err == nil {
		t.Error("expected error when end time precedes start time")
	}
}

func TestSignupRequest_PasswordBounds(t *testing.T) {
	validate := validator.New()

	tests := []struct {
		name        string
		password    string
		expectValid bool
	}{
		{"minimum length", "123456", true},
		{"too short", "12345", false},
		{"bcrypt upper bound", strings.Repeat("a", 73), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := &SignupRequest{
				Name:     "Alice",
				Email:    "alice@example.com",
				Password: tt.password,
			}
			err := validate.Struct(req)
			if tt.expectValid && err != nil {
				t.Errorf("expected valid, got error: %v", err)
			}
			if !tt.expectValid && err == nil {
				t.Error("expected validation error, got nil")
			}
		})
	}
}
