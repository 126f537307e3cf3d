package repository

import (
	"context"

	"assetnotifier/internal/domain/entity"
)

type LocaleRepository interface {
	// List returns every locale registered in the repository.
	List(ctx context.Context) ([]entity.Locale, error)
}
