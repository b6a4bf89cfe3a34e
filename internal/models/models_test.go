package models

import (
	"errors"
	"testing"

	"github.com/desertthunder/wlx/internal/shared"
)

func TestParseStatus(t *testing.T) {
	tc := []struct {
		name    string
		input   string
		want    Status
		wantErr bool
	}{
		{name: "exact match", input: "watched", want: StatusWatched},
		{name: "mixed case", input: "Planning", want: StatusPlanning},
		{name: "surrounding whitespace", input: "  DROPPED  ", want: StatusDropped},
		{name: "unknown value", input: "paused", wantErr: true},
		{name: "empty string", input: "", wantErr: true},
	}

	for _, tt := range tc {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseStatus(tt.input)
			if tt.wantErr {
				if !errors.Is(err, shared.ErrInvalidStatus) {
					t.Errorf("expected ErrInvalidStatus, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("ParseStatus(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseTitleType(t *testing.T) {
	tc := []struct {
		name    string
		input   string
		want    TitleType
		wantErr bool
	}{
		{name: "movie", input: "movie", want: TypeMovie},
		{name: "show folds case", input: "Show", want: TypeShow},
		{name: "anime with whitespace", input: " ANIME ", want: TypeAnime},
		{name: "unknown value", input: "film", wantErr: true},
	}

	for _, tt := range tc {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseTitleType(tt.input)
			if tt.wantErr {
				if !errors.Is(err, shared.ErrInvalidTitleType) {
					t.Errorf("expected ErrInvalidTitleType, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("ParseTitleType(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestUpdateEmpty(t *testing.T) {
	name := "x"
	rating := 5

	if !(UserUpdate{}).Empty() || !(TitleUpdate{}).Empty() || !(EntryUpdate{}).Empty() {
		t.Error("zero-value updates should be empty")
	}
	if (UserUpdate{Name: &name}).Empty() {
		t.Error("update with a name should not be empty")
	}
	if (EntryUpdate{Rating: &rating}).Empty() {
		t.Error("update with a rating should not be empty")
	}
}
