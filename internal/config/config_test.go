package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quillang/quill/internal/config"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "quill> ", cfg.Prompt)
	assert.False(t, cfg.GCTrace)
	assert.Empty(t, cfg.HistoryFile)
	assert.Zero(t, cfg.MaxHeapEntries)
	assert.False(t, cfg.NoColor)
}

func TestLoadReadsEnvironmentOverrides(t *testing.T) {
	t.Setenv("QUILL_PROMPT", "> ")
	t.Setenv("QUILL_GC_TRACE", "true")
	t.Setenv("QUILL_MAX_HEAP_ENTRIES", "1000")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "> ", cfg.Prompt)
	assert.True(t, cfg.GCTrace)
	assert.Equal(t, 1000, cfg.MaxHeapEntries)
}
