package repository

import (
	"context"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"

	"assetnotifier/internal/domain/entity"
	"assetnotifier/internal/domain/repository"
	"assetnotifier/pkg/errors"
	"assetnotifier/pkg/logger"
)

type firestoreLocaleRepository struct {
	client *firestore.Client
}

func NewFirestoreLocaleRepository(client *firestore.Client) repository.LocaleRepository {
	return &firestoreLocaleRepository{
		client: client,
	}
}

func (r *firestoreLocaleRepository) List(ctx context.Context) ([]entity.Locale, error) {
	iter := r.client.Collection("locales").Documents(ctx)
	defer iter.Stop()

	var locales []entity.Locale
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, errors.Internal("Failed to iterate locales", err)
		}

		var locale entity.Locale
		if err := doc.DataTo(&locale); err != nil {
			logger.Error("Failed to parse locale: %v", err)
			continue
		}
		locales = append(locales, locale)
	}

	return locales, nil
}
