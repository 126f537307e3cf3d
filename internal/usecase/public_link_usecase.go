package usecase

import (
	"context"
	"fmt"

	"assetnotifier/internal/domain/entity"
	"assetnotifier/internal/domain/repository"
	"assetnotifier/pkg/errors"
	"assetnotifier/pkg/logger"
)

type PublicLinkUseCase struct {
	linkRepo repository.PublicLinkRepository
}

func NewPublicLinkUseCase(linkRepo repository.PublicLinkRepository) *PublicLinkUseCase {
	return &PublicLinkUseCase{
		linkRepo: linkRepo,
	}
}

// Create provisions a fresh public link for the asset's rendition. There is
// deliberately no (asset, rendition) reuse: each invocation gets its own link.
func (u *PublicLinkUseCase) Create(ctx context.Context, assetID, rendition string) (string, error) {
	link := &entity.PublicLink{
		AssetID:   assetID,
		Rendition: rendition,
	}

	id, err := u.linkRepo.Create(ctx, link)
	if err != nil {
		return "", err
	}

	logger.Info("Public link created: asset=%s rendition=%s link=%s", assetID, rendition, id)
	return id, nil
}

// Fetch reloads the link and composes its external URL. The link may not be
// materialized immediately after creation in every backing store, so missing
// derived fields are an error here, not a silent empty URL.
func (u *PublicLinkUseCase) Fetch(ctx context.Context, host, linkID string) (string, error) {
	if host == "" {
		return "", errors.BadRequest("Host is required to compose a public link URL", nil)
	}

	link, err := u.linkRepo.GetByID(ctx, linkID)
	if err != nil {
		return "", err
	}

	if link.RelativeURL == "" || link.VersionHash == "" {
		return "", errors.Internal("Public link "+linkID+" is not materialized yet", nil)
	}

	return fmt.Sprintf("https://%s/api/public/content/%s?v=%s", host, link.RelativeURL, link.VersionHash), nil
}
