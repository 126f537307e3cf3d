package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"assetnotifier/internal/domain/entity"
	"assetnotifier/pkg/errors"
)

func TestFetchComposesPublicLinkURL(t *testing.T) {
	repo := newFakeLinkRepo(false)
	repo.links["pl-1"] = &entity.PublicLink{
		ID:          "pl-1",
		AssetID:     "asset-1",
		Rendition:   "thumbnail",
		RelativeURL: "abc/def",
		VersionHash: "v9",
	}
	uc := NewPublicLinkUseCase(repo)

	url, err := uc.Fetch(context.Background(), "assets.example.com", "pl-1")

	require.NoError(t, err)
	assert.Equal(t, "https://assets.example.com/api/public/content/abc/def?v=v9", url)
}

func TestFetchRequiresHost(t *testing.T) {
	uc := NewPublicLinkUseCase(newFakeLinkRepo(true))

	_, err := uc.Fetch(context.Background(), "", "pl-1")

	require.Error(t, err)
	assert.True(t, errors.Is(err, "BAD_REQUEST"))
}

func TestFetchFailsOnUnmaterializedLink(t *testing.T) {
	repo := newFakeLinkRepo(false)
	uc := NewPublicLinkUseCase(repo)

	id, err := uc.Create(context.Background(), "asset-1", "thumbnail")
	require.NoError(t, err)

	_, err = uc.Fetch(context.Background(), "assets.example.com", id)

	require.Error(t, err)
	assert.True(t, errors.Is(err, "INTERNAL_ERROR"))
}

func TestCreateAlwaysProvisionsFreshLink(t *testing.T) {
	repo := newFakeLinkRepo(true)
	uc := NewPublicLinkUseCase(repo)

	first, err := uc.Create(context.Background(), "asset-1", "thumbnail")
	require.NoError(t, err)
	second, err := uc.Create(context.Background(), "asset-1", "thumbnail")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
	assert.Len(t, repo.links, 2)
}
