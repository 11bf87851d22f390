package utils

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorChain(t *testing.T) {
	root := errors.New("connection refused")
	wrapped := fmt.Errorf("fetching history of -1001: %w", root)

	tests := []struct {
		name string
		err  error
		want string
	}{
		{name: "nil", err: nil, want: ""},
		{name: "single", err: root, want: "error: connection refused"},
		{
			name: "wrapped twice",
			err:  fmt.Errorf("copy: %w", wrapped),
			want: "error: copy: fetching history of -1001: connection refused\n" +
				"  caused by: fetching history of -1001: connection refused\n" +
				"    caused by: connection refused",
		},
		{
			name: "joined",
			err:  errors.Join(errors.New("a"), wrapped),
			want: "error: a\nfetching history of -1001: connection refused\n" +
				"  caused by: a\n" +
				"  caused by: fetching history of -1001: connection refused\n" +
				"    caused by: connection refused",
		},
		{
			name: "multi-line cause printed once",
			err:  fmt.Errorf("connecting: %w", errors.New("panicked: boom\n\ngoroutine 7 [running]:")),
			want: "error: connecting: panicked: boom\n\ngoroutine 7 [running]:\n" +
				"  caused by: panicked: boom",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ErrorChain(tt.err))
		})
	}
}
