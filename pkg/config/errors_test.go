package config

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidationError(t *testing.T) {
	t.Run("with field", func(t *testing.T) {
		err := NewValidationError("skill", "research", "tools", fmt.Errorf("tool name must not be empty"))
		assert.Equal(t, "skill 'research': field 'tools': tool name must not be empty", err.Error())
	})

	t.Run("without field", func(t *testing.T) {
		err := NewValidationError("mcp_server", "gmail", "", fmt.Errorf("command required"))
		assert.Equal(t, "mcp_server 'gmail': command required", err.Error())
	})

	t.Run("unwraps sentinel", func(t *testing.T) {
		err := NewValidationError("worker", "worker", "max_retries", ErrInvalidValue)
		assert.ErrorIs(t, err, ErrInvalidValue)
	})
}

func TestLoadError(t *testing.T) {
	inner := fmt.Errorf("%w: /etc/majordomo/majordomo.yaml", ErrConfigNotFound)
	err := NewLoadError("majordomo.yaml", inner)

	assert.Contains(t, err.Error(), "failed to load majordomo.yaml")
	assert.ErrorIs(t, err, ErrConfigNotFound)

	var loadErr *LoadError
	assert.True(t, errors.As(err, &loadErr))
	assert.Equal(t, "majordomo.yaml", loadErr.File)
}
