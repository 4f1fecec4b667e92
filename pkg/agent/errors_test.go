package agent

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsAuthError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"nil", nil, false},
		{"oauth expired", errors.New("OAuth token expired"), true},
		{"unauthorized", errors.New("401 Unauthorized"), true},
		{"auth substring", errors.New("authentication failed"), true},
		{"uppercase token", errors.New("Invalid TOKEN supplied"), true},
		{"wrapped", fmt.Errorf("running harness: %w", errors.New("credentials expired")), true},
		{"transient", errors.New("connection reset by peer"), false},
		{"timeout", errors.New("harness timed out after 5m0s"), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsAuthError(tt.err))
		})
	}
}
