package repository

import (
	"context"

	"assetnotifier/internal/domain/entity"
)

type PublicLinkRepository interface {
	// Create persists a new link entity and returns its id. Every call
	// creates a fresh link, even for an (asset, rendition) pair that
	// already has one.
	Create(ctx context.Context, link *entity.PublicLink) (string, error)

	GetByID(ctx context.Context, id string) (*entity.PublicLink, error)
}
