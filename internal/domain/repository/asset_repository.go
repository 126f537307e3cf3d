package repository

import (
	"context"

	"assetnotifier/internal/domain/entity"
)

type AssetRepository interface {
	GetByID(ctx context.Context, id string) (*entity.Asset, error)
}
