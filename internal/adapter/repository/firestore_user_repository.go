package repository

import (
	"context"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"assetnotifier/internal/domain/entity"
	"assetnotifier/internal/domain/repository"
	"assetnotifier/pkg/errors"
	"assetnotifier/pkg/logger"
)

type firestoreUserRepository struct {
	client *firestore.Client
}

func NewFirestoreUserRepository(client *firestore.Client) repository.UserRepository {
	return &firestoreUserRepository{
		client: client,
	}
}

func (r *firestoreUserRepository) GetByID(ctx context.Context, id string) (*entity.User, error) {
	doc, err := r.client.Collection("users").Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, errors.NotFound("User", err)
		}
		return nil, errors.Internal("Failed to get user", err)
	}

	var user entity.User
	if err := doc.DataTo(&user); err != nil {
		return nil, errors.Internal("Failed to parse user", err)
	}

	return &user, nil
}

func (r *firestoreUserRepository) GetGroupByName(ctx context.Context, name string) (*entity.UserGroup, error) {
	iter := r.client.Collection("user_groups").Where("name", "==", name).Limit(1).Documents(ctx)
	doc, err := iter.Next()
	if err != nil {
		if err == iterator.Done {
			return nil, errors.NotFound("User group", nil)
		}
		return nil, errors.Internal("Failed to query user group", err)
	}

	var group entity.UserGroup
	if err := doc.DataTo(&group); err != nil {
		return nil, errors.Internal("Failed to parse user group", err)
	}

	return &group, nil
}

func (r *firestoreUserRepository) GetUsersByGroupID(ctx context.Context, groupID string) ([]*entity.User, error) {
	iter := r.client.Collection("users").Where("groupIds", "array-contains", groupID).Documents(ctx)
	defer iter.Stop()

	var users []*entity.User
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, errors.Internal("Failed to iterate group users", err)
		}

		var user entity.User
		if err := doc.DataTo(&user); err != nil {
			logger.Error("Failed to parse user: %v", err)
			continue
		}
		users = append(users, &user)
	}

	return users, nil
}

func (r *firestoreUserRepository) GetUsernamesByIDs(ctx context.Context, ids []string) ([]string, error) {
	var usernames []string
	for _, id := range ids {
		user, err := r.GetByID(ctx, id)
		if err != nil {
			if errors.Is(err, "NOT_FOUND") {
				logger.Warn("Username lookup skipped missing user %s", id)
				continue
			}
			return nil, err
		}
		if user.Username == "" {
			logger.Warn("User %s has no username, skipped", id)
			continue
		}
		usernames = append(usernames, user.Username)
	}

	return usernames, nil
}
