package repository

import (
	"context"
	"fmt"

	"cloud.google.com/go/firestore"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"assetnotifier/internal/domain/repository"
	"assetnotifier/pkg/errors"
)

type firestoreSettingsRepository struct {
	client *firestore.Client
}

func NewFirestoreSettingsRepository(client *firestore.Client) repository.SettingsRepository {
	return &firestoreSettingsRepository{
		client: client,
	}
}

// Settings are stored one document per (scope, key), with the structured
// value under a "value" field.
func (r *firestoreSettingsRepository) GetSetting(ctx context.Context, scope, key string) (map[string]interface{}, error) {
	docID := fmt.Sprintf("%s.%s", scope, key)
	doc, err := r.client.Collection("settings").Doc(docID).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, errors.NotFound("Setting "+docID, err)
		}
		return nil, errors.Internal("Failed to get setting "+docID, err)
	}

	value, ok := doc.Data()["value"].(map[string]interface{})
	if !ok {
		return nil, errors.Internal("Setting "+docID+" has no structured value", nil)
	}

	return value, nil
}
