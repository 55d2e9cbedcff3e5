package fs

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/soccerdao/dao-cli/internal/domain/config"
	"github.com/soccerdao/dao-cli/internal/domain/models"
	"github.com/soccerdao/dao-cli/internal/usecase"
	"gopkg.in/yaml.v3"
)

// MetadataStoreAdapter reads the NFT manifest and writes one ERC-1155
// metadata document per item into .dao/metadata
type MetadataStoreAdapter struct {
	outputDir string
}

// NewMetadataStoreAdapter creates a new metadata store
func NewMetadataStoreAdapter(cfg *config.RuntimeConfig) *MetadataStoreAdapter {
	return &MetadataStoreAdapter{
		outputDir: filepath.Join(cfg.DataDir, "metadata"),
	}
}

// LoadManifest reads a yaml list of {name, description, image}
func (s *MetadataStoreAdapter) LoadManifest(ctx context.Context, path string) ([]models.NFTMetadata, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read manifest: %w", err)
	}

	var items []models.NFTMetadata
	if err := yaml.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf("failed to parse manifest %s: %w", path, err)
	}

	for i, item := range items {
		if item.Name == "" {
			return nil, fmt.Errorf("manifest item %d has no name", i)
		}
	}
	return items, nil
}

// WriteBatch writes items as 0.json, 1.json, ... and returns the paths.
// The file index matches the token id offset within the lazy-minted batch.
func (s *MetadataStoreAdapter) WriteBatch(ctx context.Context, items []models.NFTMetadata) ([]string, error) {
	if err := os.MkdirAll(s.outputDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create metadata directory: %w", err)
	}

	files := make([]string, 0, len(items))
	for i, item := range items {
		data, err := json.MarshalIndent(item, "", "  ")
		if err != nil {
			return files, fmt.Errorf("failed to marshal metadata %q: %w", item.Name, err)
		}

		path := filepath.Join(s.outputDir, strconv.Itoa(i)+".json")
		if err := os.WriteFile(path, data, 0644); err != nil {
			return files, fmt.Errorf("failed to write %s: %w", path, err)
		}
		files = append(files, path)
	}
	return files, nil
}

// OutputDir returns where metadata documents are written
func (s *MetadataStoreAdapter) OutputDir() string {
	return s.outputDir
}

var _ usecase.MetadataStore = (*MetadataStoreAdapter)(nil)
