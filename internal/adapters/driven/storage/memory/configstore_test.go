package memory

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigStore_GetMissing(t *testing.T) {
	store := NewConfigStore()

	_, ok := store.Get("missing")
	assert.False(t, ok)
	assert.Equal(t, "", store.GetString("missing"))
	assert.False(t, store.GetBool("missing"))
}

func TestConfigStore_SetAndGet(t *testing.T) {
	store := NewConfigStore()

	require.NoError(t, store.Set("editor.view_mode", "split"))
	require.NoError(t, store.Set("editor.sync_scroll", true))

	assert.Equal(t, "split", store.GetString("editor.view_mode"))
	assert.True(t, store.GetBool("editor.sync_scroll"))
}

func TestConfigStore_TypeMismatch(t *testing.T) {
	store := NewConfigStore()

	require.NoError(t, store.Set("key", 42))

	assert.Equal(t, "", store.GetString("key"))
	assert.False(t, store.GetBool("key"))
}
