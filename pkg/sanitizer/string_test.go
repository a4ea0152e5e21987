package sanitizer

import "testing"

func TestTrimAndNormalize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "trim spaces",
			input: "  Deluxe Suite  ",
			want:  "Deluxe Suite",
		},
		{
			name:  "multiple spaces between words",
			input: "Deluxe    Suite",
			want:  "Deluxe Suite",
		},
		{
			name:  "tabs and newlines",
			input: "Deluxe\t\nSuite",
			want:  "Deluxe Suite",
		},
		{
			name:  "empty string",
			input: "",
			want:  "",
		},
		{
			name:  "only whitespace",
			input: "   \t\n  ",
			want:  "",
		},
		{
			name:  "preserve special characters",
			input: " Café & Spa™ ",
			want:  "Café & Spa™",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := TrimAndNormalize(tt.input)
			if got != tt.want {
				t.Errorf("TrimAndNormalize(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestNormalizeEmail(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "lowercase and trim",
			input: "  Guest@Example.COM ",
			want:  "guest@example.com",
		},
		{
			name:  "already normalized",
			input: "guest@example.com",
			want:  "guest@example.com",
		},
		{
			name:  "empty string",
			input: "",
			want:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NormalizeEmail(tt.input)
			if got != tt.want {
				t.Errorf("NormalizeEmail(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestNormalizeRoomNumber(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "uppercase and trim",
			input: " a101 ",
			want:  "A101",
		},
		{
			name:  "internal whitespace collapsed",
			input: "suite  2b",
			want:  "SUITE 2B",
		},
		{
			name:  "digits only",
			input: "101",
			want:  "101",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NormalizeRoomNumber(tt.input)
			if got != tt.want {
				t.Errorf("NormalizeRoomNumber(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestNormalizeMessage(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "line breaks preserved",
			input: "Hello,\nIs the pool open?\n",
			want:  "Hello,\nIs the pool open?",
		},
		{
			name:  "carriage returns stripped",
			input: "Hello\r\nthere",
			want:  "Hello\nthere",
		},
		{
			name:  "only whitespace",
			input: " \n \r\n ",
			want:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NormalizeMessage(tt.input)
			if got != tt.want {
				t.Errorf("NormalizeMessage(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}
