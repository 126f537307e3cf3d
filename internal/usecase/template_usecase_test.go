package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"assetnotifier/internal/domain/entity"
	"assetnotifier/pkg/errors"
)

func testLocales() []entity.Locale {
	return []entity.Locale{
		{Code: "en-US", DisplayName: "English (United States)"},
		{Code: "nl-NL", DisplayName: "Dutch (Netherlands)"},
		{Code: "fr-FR", DisplayName: "French (France)"},
	}
}

func newTestTemplateUseCase(repo *fakeTemplateRepo) *TemplateUseCase {
	uc := NewTemplateUseCase(repo, &fakeLocaleRepo{locales: testLocales()}, 5)
	uc.baseBackoff = time.Millisecond
	return uc
}

func TestEnsureCreatesMissingTemplate(t *testing.T) {
	repo := newFakeTemplateRepo()
	uc := newTestTemplateUseCase(repo)

	err := uc.Ensure(context.Background(), ApprovedTemplate())

	require.NoError(t, err)
	assert.Equal(t, 1, repo.creates)

	template, err := repo.GetByName(context.Background(), ApprovedTemplateName, referenceLocale)
	require.NoError(t, err)
	assert.Equal(t, ApprovedTemplateName, template.Name)
	assert.Len(t, template.Variables, len(ApprovedTemplate().Variables))
}

func TestEnsureIsIdempotent(t *testing.T) {
	repo := newFakeTemplateRepo()
	uc := newTestTemplateUseCase(repo)

	require.NoError(t, uc.Ensure(context.Background(), RejectedTemplate()))
	require.NoError(t, uc.Ensure(context.Background(), RejectedTemplate()))

	assert.Equal(t, 1, repo.creates)
	assert.Len(t, repo.templates, 1)
}

func TestEnsureLocalizesSupportedCulturesOnly(t *testing.T) {
	repo := newFakeTemplateRepo()
	uc := newTestTemplateUseCase(repo)

	require.NoError(t, uc.Ensure(context.Background(), CreatorTemplate()))

	template := repo.templates[CreatorTemplateName]
	require.NotNil(t, template)
	assert.Contains(t, template.Subjects, "en-US")
	assert.Contains(t, template.Subjects, "nl-NL")
	assert.NotContains(t, template.Subjects, "fr-FR")
	assert.NotEmpty(t, template.Bodies["en-US"])
	assert.NotEmpty(t, template.Labels["nl-NL"])
}

func TestEnsureBoundedOnPersistentFault(t *testing.T) {
	repo := newFakeTemplateRepo()
	repo.getErr = errors.Internal("Repository unreachable", nil)

	uc := NewTemplateUseCase(repo, &fakeLocaleRepo{locales: testLocales()}, 2)
	uc.baseBackoff = time.Millisecond

	err := uc.Ensure(context.Background(), ApprovedTemplate())

	require.Error(t, err)
	assert.True(t, errors.Is(err, "INTERNAL_ERROR"))
	assert.Zero(t, repo.creates)
}

func TestEnsureRetriesAfterFailedCreate(t *testing.T) {
	repo := newFakeTemplateRepo()
	repo.createErr = errors.Internal("Write rejected", nil)

	uc := NewTemplateUseCase(repo, &fakeLocaleRepo{locales: testLocales()}, 2)
	uc.baseBackoff = time.Millisecond

	err := uc.Ensure(context.Background(), ApprovedTemplate())

	require.Error(t, err)
	assert.Empty(t, repo.templates)
}
