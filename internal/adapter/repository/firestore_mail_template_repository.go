package repository

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/google/uuid"
	"google.golang.org/api/iterator"

	"assetnotifier/internal/domain/entity"
	"assetnotifier/internal/domain/repository"
	"assetnotifier/pkg/errors"
	"assetnotifier/pkg/logger"
)

type firestoreMailTemplateRepository struct {
	client *firestore.Client
}

func NewFirestoreMailTemplateRepository(client *firestore.Client) repository.MailTemplateRepository {
	return &firestoreMailTemplateRepository{
		client: client,
	}
}

func (r *firestoreMailTemplateRepository) GetByName(ctx context.Context, name, locale string) (*entity.MailTemplate, error) {
	// Template names are unique; the locale argument is only an existence
	// probe, content maps load whole either way.
	iter := r.client.Collection("mail_templates").Where("name", "==", name).Limit(1).Documents(ctx)
	doc, err := iter.Next()
	if err != nil {
		if err == iterator.Done {
			return nil, errors.NotFound("Mail template", nil)
		}
		return nil, errors.Internal("Failed to query mail template", err)
	}

	var template entity.MailTemplate
	if err := doc.DataTo(&template); err != nil {
		return nil, errors.Internal("Failed to parse mail template", err)
	}

	return &template, nil
}

func (r *firestoreMailTemplateRepository) Create(ctx context.Context, template *entity.MailTemplate) (string, error) {
	// Re-read by name before insert so a lost create race resolves to the
	// winner's template instead of a duplicate name.
	existing, err := r.GetByName(ctx, template.Name, "")
	if err == nil {
		logger.Warn("Mail template %s already exists, reusing %s", template.Name, existing.ID)
		return existing.ID, nil
	}
	if !errors.Is(err, "NOT_FOUND") {
		return "", err
	}

	template.ID = uuid.New().String()
	template.CreatedAt = time.Now()
	template.UpdatedAt = template.CreatedAt

	_, err = r.client.Collection("mail_templates").Doc(template.ID).Set(ctx, template)
	if err != nil {
		return "", errors.Internal("Failed to create mail template", err)
	}

	return template.ID, nil
}
