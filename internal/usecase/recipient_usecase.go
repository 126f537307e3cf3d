package usecase

import (
	"context"
	"strings"

	"assetnotifier/internal/domain/repository"
	"assetnotifier/pkg/errors"
	"assetnotifier/pkg/logger"
)

type RecipientUseCase struct {
	userRepo repository.UserRepository
}

func NewRecipientUseCase(userRepo repository.UserRepository) *RecipientUseCase {
	return &RecipientUseCase{
		userRepo: userRepo,
	}
}

// ResolveCreator resolves an asset's creator reference to its username.
func (u *RecipientUseCase) ResolveCreator(ctx context.Context, userID string) (string, error) {
	user, err := u.userRepo.GetByID(ctx, userID)
	if err != nil {
		return "", err
	}
	if user.Username == "" {
		return "", errors.Internal("User "+userID+" has no username", nil)
	}
	return user.Username, nil
}

// ResolveGroup resolves a named group to the usernames of its members, in
// the order the batch username lookup returns them. A group with no
// resolvable members yields an empty list; rejecting that is the
// dispatcher's job.
func (u *RecipientUseCase) ResolveGroup(ctx context.Context, groupName string) ([]string, error) {
	group, err := u.userRepo.GetGroupByName(ctx, groupName)
	if err != nil {
		return nil, err
	}

	users, err := u.userRepo.GetUsersByGroupID(ctx, group.ID)
	if err != nil {
		return nil, err
	}

	// The relation query can return more than the group's members; trust
	// only memberships that name this group's id.
	var memberIDs []string
	for _, user := range users {
		if !user.MemberOf(group.ID) {
			logger.Debug("Skipping user %s: membership does not include group %s", user.ID, group.ID)
			continue
		}
		memberIDs = append(memberIDs, user.ID)
	}

	if len(memberIDs) == 0 {
		logger.Warn("Group %s resolved to zero members", groupName)
		return nil, nil
	}

	return u.userRepo.GetUsernamesByIDs(ctx, memberIDs)
}

// ShortID derives a display token from a username by keeping the local part
// before the "@". It is not used for addressing.
func ShortID(username string) string {
	return strings.SplitN(username, "@", 2)[0]
}
