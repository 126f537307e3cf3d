package repository

import (
	"context"

	"cloud.google.com/go/firestore"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"assetnotifier/internal/domain/entity"
	"assetnotifier/internal/domain/repository"
	"assetnotifier/pkg/errors"
)

type firestoreAssetRepository struct {
	client *firestore.Client
}

func NewFirestoreAssetRepository(client *firestore.Client) repository.AssetRepository {
	return &firestoreAssetRepository{
		client: client,
	}
}

func (r *firestoreAssetRepository) GetByID(ctx context.Context, id string) (*entity.Asset, error) {
	doc, err := r.client.Collection("assets").Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, errors.NotFound("Asset", err)
		}
		return nil, errors.Internal("Failed to get asset", err)
	}

	var asset entity.Asset
	if err := doc.DataTo(&asset); err != nil {
		return nil, errors.Internal("Failed to parse asset", err)
	}

	return &asset, nil
}
