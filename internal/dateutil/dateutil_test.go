package dateutil

import (
	"errors"
	"strings"
	"testing"
	"time"
)

// ---------------------------------------------------------------------------
// TestParseDateFormat - Token Translation
// ---------------------------------------------------------------------------

func TestParseDateFormat(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		format string
		want   string
	}{
		{"iso date", "YYYY-MM-DD", "2006-01-02"},
		{"european", "DD/MM/YYYY", "02/01/2006"},
		{"long month", "MMMM D, YYYY", "January 2, 2006"},
		{"short month", "MMM YY", "Jan 06"},
		{"single digits", "M/D/YY", "1/2/06"},
		{"bracket literal", "[Date:] YYYY", "Date: 2006"},
		{"literal passthrough", "YYYY年MM月", "2006年01月"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := ParseDateFormat(tt.format)
			if err != nil {
				t.Fatalf("ParseDateFormat(%q) error = %v", tt.format, err)
			}
			if got != tt.want {
				t.Errorf("ParseDateFormat(%q) = %q, want %q", tt.format, got, tt.want)
			}
		})
	}
}

func TestParseDateFormat_Invalid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		format string
	}{
		{"empty", ""},
		{"too long", strings.Repeat("Y", MaxDateFormatLength+1)},
		{"unclosed bracket", "[Date YYYY"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if _, err := ParseDateFormat(tt.format); !errors.Is(err, ErrInvalidDateFormat) {
				t.Errorf("ParseDateFormat(%q) error = %v, want ErrInvalidDateFormat", tt.format, err)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestFormat - Rendering
// ---------------------------------------------------------------------------

func TestFormat(t *testing.T) {
	t.Parallel()

	day := time.Date(2026, 1, 7, 15, 30, 0, 0, time.UTC)

	tests := []struct {
		name   string
		format string
		want   string
	}{
		{"default when empty", "", "2026-01-07"},
		{"iso preset", "iso", "2026-01-07"},
		{"us preset", "us", "01/07/2026"},
		{"long preset", "long", "January 7, 2026"},
		{"explicit tokens", "DD.MM.YYYY", "07.01.2026"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := Format(day, tt.format)
			if err != nil {
				t.Fatalf("Format(%q) error = %v", tt.format, err)
			}
			if got != tt.want {
				t.Errorf("Format(%q) = %q, want %q", tt.format, got, tt.want)
			}
		})
	}
}
