package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/sethvargo/go-retry"

	"assetnotifier/internal/domain/entity"
	"assetnotifier/internal/domain/repository"
	"assetnotifier/pkg/errors"
	"assetnotifier/pkg/logger"
)

// referenceLocale is the locale used to probe template existence. It only
// tests presence, it does not restrict which locales get content.
const referenceLocale = "en-US"

type TemplateUseCase struct {
	templateRepo repository.MailTemplateRepository
	localeRepo   repository.LocaleRepository
	maxRetries   uint64
	baseBackoff  time.Duration
}

func NewTemplateUseCase(
	templateRepo repository.MailTemplateRepository,
	localeRepo repository.LocaleRepository,
	maxRetries int64,
) *TemplateUseCase {
	if maxRetries <= 0 {
		maxRetries = 5
	}
	return &TemplateUseCase{
		templateRepo: templateRepo,
		localeRepo:   localeRepo,
		maxRetries:   uint64(maxRetries),
		baseBackoff:  200 * time.Millisecond,
	}
}

// Ensure guarantees the named template exists before the send path runs.
// A missing template is created and then re-read, so the caller only ever
// proceeds on a template that survived a round trip. Lookup and creation
// faults other than "not found" are retried with exponential backoff up to
// the configured cap; exhaustion returns the last error.
func (u *TemplateUseCase) Ensure(ctx context.Context, def TemplateDefinition) error {
	backoff := retry.WithMaxRetries(u.maxRetries, retry.NewExponential(u.baseBackoff))
	return retry.Do(ctx, backoff, func(ctx context.Context) error {
		_, err := u.templateRepo.GetByName(ctx, def.Name, referenceLocale)
		if err == nil {
			return nil
		}
		if !errors.Is(err, "NOT_FOUND") {
			logger.Warn("Template lookup failed for %s: %v", def.Name, err)
			return retry.RetryableError(err)
		}

		if createErr := u.create(ctx, def); createErr != nil {
			logger.Error("Template creation failed for %s: %v", def.Name, createErr)
			return retry.RetryableError(createErr)
		}

		// Created; re-read on the next attempt to verify durability.
		return retry.RetryableError(err)
	})
}

func (u *TemplateUseCase) create(ctx context.Context, def TemplateDefinition) error {
	logger.Info("Creating mail template %s", def.Name)

	locales, err := u.localeRepo.List(ctx)
	if err != nil {
		return err
	}

	template := &entity.MailTemplate{
		Name:         def.Name,
		Subjects:     map[string]string{},
		Descriptions: map[string]string{},
		Bodies:       map[string]string{},
		Labels:       map[string]string{},
		Variables:    def.Variables,
	}

	// Copy is installed only for registered locales whose display name
	// matches a supported culture; other locales stay empty until edited
	// in the portal.
	for _, locale := range locales {
		for keyword, content := range def.Content {
			if !strings.Contains(locale.DisplayName, keyword) {
				continue
			}
			template.Subjects[locale.Code] = content.Subject
			template.Descriptions[locale.Code] = content.Description
			template.Bodies[locale.Code] = content.Body
			template.Labels[locale.Code] = content.Label
		}
	}

	id, err := u.templateRepo.Create(ctx, template)
	if err != nil {
		return err
	}

	logger.Info("Mail template created: name=%s id=%s", def.Name, id)
	return nil
}
