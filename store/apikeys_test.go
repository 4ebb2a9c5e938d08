package store_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnsureAPIKey(t *testing.T) {
	s := newTestStore(t)

	key, created, err := s.EnsureAPIKey("default")
	require.NoError(t, err)
	assert.True(t, created)
	assert.NotEmpty(t, key)

	// Second call is a no-op while an active key exists
	second, created, err := s.EnsureAPIKey("default")
	require.NoError(t, err)
	assert.False(t, created)
	assert.Empty(t, second)

	ok, err := s.ValidateAPIKey(key)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = s.ValidateAPIKey("not-a-key")
	require.NoError(t, err)
	assert.False(t, ok)
}
