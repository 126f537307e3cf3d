package repository

import (
	"context"

	"assetnotifier/internal/domain/entity"
)

type MailTemplateRepository interface {
	// GetByName fetches a template by its unique name. The locale is an
	// existence filter, not a content restriction.
	GetByName(ctx context.Context, name, locale string) (*entity.MailTemplate, error)

	// Create persists a new template and returns its id. Creation is keyed
	// by name: a concurrent create of the same name yields the existing id.
	Create(ctx context.Context, template *entity.MailTemplate) (string, error)
}
