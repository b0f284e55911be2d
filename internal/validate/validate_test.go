package validate

import (
	"errors"
	"testing"
	"time"
)

func TestName(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{"John Smith", "John Smith", false},
		{"  Mary Jane  ", "Mary Jane", false},
		{"O Connor", "O Connor", false},
		{"John3", "", true},
		{"Anne-Marie", "", true},
		{"J.Smith", "", true},
		{"", "", true},
	}
	for _, tt := range tests {
		got, err := Name(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("Name(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if err == nil && got != tt.want {
			t.Errorf("Name(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestNameErrorType(t *testing.T) {
	_, err := Name("123")
	var ve *Error
	if !errors.As(err, &ve) {
		t.Fatalf("expected *Error, got %T", err)
	}
	if ve.Reason != "Name can only contain letters and spaces" {
		t.Errorf("unexpected reason: %q", ve.Reason)
	}
}

func TestEmail(t *testing.T) {
	tests := []struct {
		in      string
		wantErr bool
	}{
		{"", false},
		{"a@b.co", false},
		{"john.smith+tag@example.org", false},
		{"a@b.c", true}, // top-level label must be at least 2 letters
		{"no-at-sign", true},
		{"@example.com", true},
	}
	for _, tt := range tests {
		got, err := Email(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("Email(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
		}
		if err == nil && got != tt.in {
			t.Errorf("Email(%q) = %q, want input unchanged", tt.in, got)
		}
	}
}

func TestPhone(t *testing.T) {
	tests := []struct {
		in      string
		wantErr bool
	}{
		{"1234567890", false},
		{"+441234567890", false},
		{"123456789012345", false},
		{"12345", true},
		{"12345678901234567", true},
		{"+12 34567890", true},
		{"abcdefghij", true},
	}
	for _, tt := range tests {
		got, err := Phone(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("Phone(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
		}
		if err == nil && got != tt.in {
			t.Errorf("Phone(%q) = %q, want input unchanged", tt.in, got)
		}
	}
}

func TestDate(t *testing.T) {
	got, err := Date("2024-02-29")
	if err != nil {
		t.Fatalf("leap day should parse: %v", err)
	}
	if got != time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC) {
		t.Errorf("unexpected date: %v", got)
	}
	if _, err := Date("2024-02-30"); err == nil {
		t.Error("expected error for impossible calendar date")
	}
	if _, err := Date("30/02/2024"); err == nil {
		t.Error("expected error for wrong layout")
	}
}

func TestDateTime(t *testing.T) {
	got, err := DateTime("2024-06-01 14:30")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Hour() != 14 || got.Minute() != 30 {
		t.Errorf("unexpected time: %v", got)
	}
	if _, err := DateTime("2024-06-01"); err == nil {
		t.Error("expected error for date without time")
	}
	if _, err := DateTime("2024-06-01 25:00"); err == nil {
		t.Error("expected error for impossible hour")
	}
}

func TestGender(t *testing.T) {
	for _, ok := range []string{"Male", "Female", "Other"} {
		if _, err := Gender(ok); err != nil {
			t.Errorf("Gender(%q) unexpected error: %v", ok, err)
		}
	}
	for _, bad := range []string{"male", "FEMALE", "other ", "Unknown", ""} {
		if _, err := Gender(bad); err == nil {
			t.Errorf("Gender(%q) expected error", bad)
		}
	}
}

func TestPositiveNumber(t *testing.T) {
	got, err := PositiveNumber("12.5", "Amount")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != 12.5 {
		t.Errorf("got %v, want 12.5", got)
	}

	if _, err := PositiveNumber("0", "Amount"); err == nil {
		t.Error("expected error for zero")
	}
	if _, err := PositiveNumber("-5", "Amount"); err == nil {
		t.Error("expected error for negative")
	}
	_, err = PositiveNumber("twelve", "Amount")
	if err == nil {
		t.Fatal("expected error for non-numeric input")
	}
	if err.Error() != "Amount must be a valid number" {
		t.Errorf("error should name the field: %q", err.Error())
	}
}
