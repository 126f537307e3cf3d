package repository

import (
	"context"

	"assetnotifier/internal/domain/entity"
)

type UserRepository interface {
	GetByID(ctx context.Context, id string) (*entity.User, error)

	GetGroupByName(ctx context.Context, name string) (*entity.UserGroup, error)

	// GetUsersByGroupID queries User entities related to the group through
	// the membership relation. The result may be broader than the group;
	// callers re-check membership.
	GetUsersByGroupID(ctx context.Context, groupID string) ([]*entity.User, error)

	// GetUsernamesByIDs batch-resolves user ids to usernames. Ids that fail
	// to resolve are skipped; result order follows the input ids.
	GetUsernamesByIDs(ctx context.Context, ids []string) ([]string, error)
}
