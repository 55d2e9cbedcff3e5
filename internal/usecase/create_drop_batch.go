package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/soccerdao/dao-cli/internal/domain/models"
)

// CreateDropBatchParams contains parameters for creating drop items
type CreateDropBatchParams struct {
	Session *models.Session

	// ManifestPath is a yaml list of {name, description, image}
	ManifestPath string

	// BaseURI is where the written metadata documents will be served from,
	// e.g. ipfs://<cid>/
	BaseURI string
}

// CreateDropBatchResult contains the result of creating drop items
type CreateDropBatchResult struct {
	Items       []models.NFTMetadata
	Files       []string
	Transaction *models.Transaction
}

// CreateDropBatch lazy-mints a batch of membership NFT definitions
type CreateDropBatch struct {
	drop  MembershipDrop
	store MetadataStore
	sink  ProgressSink
	log   *slog.Logger
}

// NewCreateDropBatch creates a new CreateDropBatch use case
func NewCreateDropBatch(drop MembershipDrop, store MetadataStore, sink ProgressSink, log *slog.Logger) *CreateDropBatch {
	return &CreateDropBatch{
		drop:  drop,
		store: store,
		sink:  sink,
		log:   log,
	}
}

// Run writes the metadata documents and registers them on the drop
func (uc *CreateDropBatch) Run(ctx context.Context, params CreateDropBatchParams) (*CreateDropBatchResult, error) {
	if params.BaseURI == "" {
		return nil, fmt.Errorf("base URI is required")
	}

	items, err := uc.store.LoadManifest(ctx, params.ManifestPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load metadata manifest: %w", err)
	}
	if len(items) == 0 {
		return nil, fmt.Errorf("metadata manifest %s has no items", params.ManifestPath)
	}

	files, err := uc.store.WriteBatch(ctx, items)
	if err != nil {
		return nil, fmt.Errorf("failed to write metadata: %w", err)
	}

	uc.sink.OnProgress(ctx, ProgressEvent{Stage: "lazy-mint", Message: "Creating NFTs in the drop...", Spinner: true})
	tx, err := uc.drop.LazyMint(ctx, params.Session, int64(len(items)), params.BaseURI)
	uc.sink.OnProgress(ctx, ProgressEvent{Stage: "complete"})
	if err != nil {
		uc.log.Error("failed to create the new NFT", "error", err)
		return nil, fmt.Errorf("failed to create the new NFT: %w", err)
	}

	uc.log.Info("✅ Successfully created a new NFT in the drop!", "count", len(items), "tx", tx.Hash.Hex())
	return &CreateDropBatchResult{
		Items:       items,
		Files:       files,
		Transaction: tx,
	}, nil
}
