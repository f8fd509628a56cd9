package audio

import (
	"errors"
	"fmt"
	"testing"
)

func TestSentinelErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		msg  string
	}{
		{"ErrInvalidDstSize", ErrInvalidDstSize, "dst size must be multiple of channels"},
		{"ErrNoSamples", ErrNoSamples, "source produced no samples"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if tt.err.Error() != tt.msg {
				t.Errorf("%s.Error() = %q, want %q", tt.name, tt.err.Error(), tt.msg)
			}

			wrapped := fmt.Errorf("reading stream: %w", tt.err)
			if !errors.Is(wrapped, tt.err) {
				t.Errorf("errors.Is() failed to unwrap %s", tt.name)
			}
		})
	}

	if errors.Is(ErrInvalidDstSize, ErrNoSamples) {
		t.Error("sentinels must be distinct")
	}
}
