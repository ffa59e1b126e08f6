package theme

import (
	"testing"

	"github.com/matzehuels/gridframe/pkg/errors"
)

func TestSpaceSize(t *testing.T) {
	tests := []struct {
		token   string
		want    string
		wantErr bool
	}{
		{"0", "0", false},
		{"1", "0.25rem", false},
		{"4", "1rem", false},
		{"6", "1.5rem", false},
		{"12", "3rem", false},
		{"1.5rem", "1.5rem", false}, // raw length passthrough
		{"24px", "24px", false},
		{"-4", "", true},
		{"", "", true},
		{"huge", "", true},
		{"1 rem", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.token, func(t *testing.T) {
			got, err := SpaceSize(tt.token)
			if (err != nil) != tt.wantErr {
				t.Fatalf("SpaceSize(%q) error = %v, wantErr %v", tt.token, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("SpaceSize(%q) = %q, want %q", tt.token, got, tt.want)
			}
		})
	}
}

func TestMaxSize(t *testing.T) {
	tests := []struct {
		token   string
		want    string
		wantErr bool
	}{
		{"sm", "24rem", false},
		{"7xl", "80rem", false},
		{"full", "100%", false},
		{"90rem", "90rem", false},
		{"huge", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.token, func(t *testing.T) {
			got, err := MaxSize(tt.token)
			if (err != nil) != tt.wantErr {
				t.Fatalf("MaxSize(%q) error = %v, wantErr %v", tt.token, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("MaxSize(%q) = %q, want %q", tt.token, got, tt.want)
			}
			if tt.wantErr && !errors.Is(err, errors.ErrCodeInvalidToken) {
				t.Errorf("MaxSize(%q) error code = %v, want INVALID_TOKEN", tt.token, errors.GetCode(err))
			}
		})
	}
}
