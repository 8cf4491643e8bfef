package telegram

import (
	"errors"
	"testing"
)

func TestParseAddArgs(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		wantErr bool
		id      string
		display string
		month   int
		day     int
	}{
		{name: "single word name", args: []string{"42", "Ana", "7", "1"}, id: "42", display: "Ana", month: 7, day: 1},
		{name: "multi word name", args: []string{"42", "Ana", "Maria", "Lopez", "07", "01"}, id: "42", display: "Ana Maria Lopez", month: 7, day: 1},
		{name: "missing day", args: []string{"42", "Ana", "7"}, wantErr: true},
		{name: "month not a number", args: []string{"42", "Ana", "July", "1"}, wantErr: true},
		{name: "day not a number", args: []string{"42", "Ana", "7", "first"}, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseAddArgs(tt.args)
			if tt.wantErr {
				if !errors.Is(err, errUsage) {
					t.Errorf("parseAddArgs() error = %v, want errUsage", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("parseAddArgs() error = %v", err)
			}
			if got.ExternalID != tt.id || got.DisplayName != tt.display || got.Month != tt.month || got.Day != tt.day {
				t.Errorf("parseAddArgs() = %+v", got)
			}
		})
	}
}

func TestParseDeleteArgs(t *testing.T) {
	if id, err := parseDeleteArgs([]string{"42"}); err != nil || id != "42" {
		t.Errorf("parseDeleteArgs(42) = %q, %v", id, err)
	}
	if _, err := parseDeleteArgs(nil); !errors.Is(err, errUsage) {
		t.Errorf("parseDeleteArgs(nil) error = %v", err)
	}
}

func TestParseCount(t *testing.T) {
	tests := []struct {
		args    []string
		want    int
		wantErr bool
	}{
		{args: nil, want: 0},
		{args: []string{"5"}, want: 5},
		{args: []string{"0"}, wantErr: true},
		{args: []string{"26"}, wantErr: true},
		{args: []string{"x"}, wantErr: true},
	}
	for _, tt := range tests {
		got, err := parseCount(tt.args)
		if (err != nil) != tt.wantErr || got != tt.want {
			t.Errorf("parseCount(%v) = %d, %v", tt.args, got, err)
		}
	}
}
