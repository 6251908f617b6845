package simpledb

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/anvh2/polymarket-btc15/internal/libs/logger"
)

type sample struct {
	Balance int      `json:"balance"`
	Tags    []string `json:"tags"`
}

func TestStorage_SaveLoadRoundTrip(t *testing.T) {
	dir := t.TempDir()
	storage, err := NewStorage(logger.NewDev(), filepath.Join(dir, "state.json"), filepath.Join(dir, "backups"))
	require.NoError(t, err)

	want := sample{Balance: 100, Tags: []string{"a", "b"}}
	require.NoError(t, storage.Save(want))

	var got sample
	require.NoError(t, storage.Load(&got))
	assert.Equal(t, want, got)
}

func TestStorage_LoadMissingFile(t *testing.T) {
	dir := t.TempDir()
	storage, err := NewStorage(logger.NewDev(), filepath.Join(dir, "state.json"), filepath.Join(dir, "backups"))
	require.NoError(t, err)

	var got sample
	assert.Error(t, storage.Load(&got))
}
