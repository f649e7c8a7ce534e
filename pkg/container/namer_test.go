package container

import (
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateName(t *testing.T) {
	t.Run("prefix and sanitized reference", func(t *testing.T) {
		name := generateName("alpine:latest")

		assert.True(t, strings.HasPrefix(name, "container-alpine-latest-"))
		assert.NotContains(t, name, ":")
	})

	t.Run("unique across calls", func(t *testing.T) {
		first := generateName("alpine:latest")
		second := generateName("alpine:latest")

		assert.NotEqual(t, first, second)
	})

	t.Run("token is a uuid", func(t *testing.T) {
		name := generateName("redis:7")

		token := strings.TrimPrefix(name, "container-redis-7-")
		_, err := uuid.Parse(token)
		require.NoError(t, err)
	})
}
