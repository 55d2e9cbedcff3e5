package fs

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/soccerdao/dao-cli/internal/domain/config"
	"github.com/soccerdao/dao-cli/internal/domain/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestMetadataStore(t *testing.T) *MetadataStoreAdapter {
	t.Helper()
	return NewMetadataStoreAdapter(&config.RuntimeConfig{DataDir: t.TempDir()})
}

func TestMetadataStore_LoadManifest(t *testing.T) {
	store := newTestMetadataStore(t)
	path := filepath.Join(t.TempDir(), "drop.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
- name: Leo's Jersey
  description: This NFT will give you access to SoccerDAO!
  image: ipfs://jersey.png
- name: Golden Boot
  description: Second edition
  image: ipfs://boot.png
`), 0644))

	items, err := store.LoadManifest(context.Background(), path)
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "Leo's Jersey", items[0].Name)
	assert.Equal(t, "ipfs://boot.png", items[1].Image)
}

func TestMetadataStore_LoadManifestErrors(t *testing.T) {
	store := newTestMetadataStore(t)
	dir := t.TempDir()

	_, err := store.LoadManifest(context.Background(), filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)

	unnamed := filepath.Join(dir, "unnamed.yaml")
	require.NoError(t, os.WriteFile(unnamed, []byte("- description: nameless\n"), 0644))
	_, err = store.LoadManifest(context.Background(), unnamed)
	assert.ErrorContains(t, err, "has no name")

	broken := filepath.Join(dir, "broken.yaml")
	require.NoError(t, os.WriteFile(broken, []byte("name: [unterminated"), 0644))
	_, err = store.LoadManifest(context.Background(), broken)
	assert.Error(t, err)
}

func TestMetadataStore_WriteBatch(t *testing.T) {
	store := newTestMetadataStore(t)
	items := []models.NFTMetadata{
		{Name: "Leo's Jersey", Description: "first", Image: "ipfs://a"},
		{Name: "Golden Boot", Description: "second", Image: "ipfs://b"},
	}

	files, err := store.WriteBatch(context.Background(), items)
	require.NoError(t, err)
	require.Len(t, files, 2)
	assert.Equal(t, filepath.Join(store.OutputDir(), "0.json"), files[0])
	assert.Equal(t, filepath.Join(store.OutputDir(), "1.json"), files[1])

	data, err := os.ReadFile(files[1])
	require.NoError(t, err)
	var doc map[string]string
	require.NoError(t, json.Unmarshal(data, &doc))
	assert.Equal(t, map[string]string{"name": "Golden Boot", "description": "second", "image": "ipfs://b"}, doc)
}
