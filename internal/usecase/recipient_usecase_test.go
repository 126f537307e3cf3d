package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"assetnotifier/internal/domain/entity"
	"assetnotifier/pkg/errors"
)

func TestShortID(t *testing.T) {
	assert.Equal(t, "jdoe", ShortID("jdoe@example.com"))
	assert.Equal(t, "plain", ShortID("plain"))
}

func TestResolveCreator(t *testing.T) {
	repo := &fakeUserRepo{
		users: map[string]*entity.User{
			"u1": {ID: "u1", Username: "jdoe@example.com"},
		},
	}
	uc := NewRecipientUseCase(repo)

	username, err := uc.ResolveCreator(context.Background(), "u1")

	require.NoError(t, err)
	assert.Equal(t, "jdoe@example.com", username)
}

func TestResolveCreatorMissingUsername(t *testing.T) {
	repo := &fakeUserRepo{
		users: map[string]*entity.User{
			"u1": {ID: "u1"},
		},
	}
	uc := NewRecipientUseCase(repo)

	_, err := uc.ResolveCreator(context.Background(), "u1")

	require.Error(t, err)
	assert.True(t, errors.Is(err, "INTERNAL_ERROR"))
}

func TestResolveGroupFiltersNonMembers(t *testing.T) {
	u1 := &entity.User{ID: "a1", Username: "anna@example.com", GroupIDs: []string{"g1"}}
	u2 := &entity.User{ID: "a2", Username: "bart@example.com", GroupIDs: []string{"g1", "g2"}}
	outsider := &entity.User{ID: "o1", Username: "carl@example.com", GroupIDs: []string{"g2"}}

	repo := &fakeUserRepo{
		users:  map[string]*entity.User{"a1": u1, "a2": u2, "o1": outsider},
		groups: map[string]*entity.UserGroup{ApproversGroupName: {ID: "g1", Name: ApproversGroupName}},
		// The relation query is broader than the group on purpose.
		groupQuery: []*entity.User{u1, u2, outsider},
	}
	uc := NewRecipientUseCase(repo)

	usernames, err := uc.ResolveGroup(context.Background(), ApproversGroupName)

	require.NoError(t, err)
	assert.Equal(t, []string{"anna@example.com", "bart@example.com"}, usernames)
}

func TestResolveGroupEmpty(t *testing.T) {
	repo := &fakeUserRepo{
		users:  map[string]*entity.User{},
		groups: map[string]*entity.UserGroup{ApproversGroupName: {ID: "g1", Name: ApproversGroupName}},
	}
	uc := NewRecipientUseCase(repo)

	usernames, err := uc.ResolveGroup(context.Background(), ApproversGroupName)

	require.NoError(t, err)
	assert.Empty(t, usernames)
}

func TestResolveGroupUnknownGroup(t *testing.T) {
	repo := &fakeUserRepo{groups: map[string]*entity.UserGroup{}}
	uc := NewRecipientUseCase(repo)

	_, err := uc.ResolveGroup(context.Background(), "Nobody")

	require.Error(t, err)
	assert.True(t, errors.Is(err, "NOT_FOUND"))
}
