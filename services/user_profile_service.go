package services

import (
	"context"
	"fmt"
	"strings"

	"wingman_server/models"

	"github.com/google/uuid"
)

type UserProfileService struct {
	Store ProfileStore
}

// Top-level profile fields a partial update may touch. Matchmaking state
// (friends, swipingPools, matches) is only writable through its own
// operations.
var updatableProfileFields = map[string]bool{
	"name":        true,
	"phoneNumber": true,
	"userType":    true,
	"gender":      true,
	"sexuality":   true,
}

// RegisterUser creates a user document. An ID is assigned when the client
// supplies none, gender/sexuality are normalized to lower case, and the
// swipingPools/matches maps are materialized empty.
func (ups *UserProfileService) RegisterUser(ctx context.Context, user models.User) (*models.User, error) {
	if user.UserID == "" {
		user.UserID = uuid.NewString()
	}
	user.Gender = strings.ToLower(user.Gender)
	user.Sexuality = strings.ToLower(user.Sexuality)
	if user.SwipingPools == nil {
		user.SwipingPools = map[string]models.SwipePool{}
	}
	if user.Matches == nil {
		user.Matches = map[string]models.MatchEntry{}
	}

	if err := ups.Store.PutUser(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to register user: %w", err)
	}
	return &user, nil
}

// GetUser retrieves a user by ID.
func (ups *UserProfileService) GetUser(ctx context.Context, userID string) (*models.User, error) {
	return ups.Store.GetUser(ctx, userID)
}

// GetUserByPhone looks a user up by phone number, the app's contact-based
// login path.
func (ups *UserProfileService) GetUserByPhone(ctx context.Context, phoneNumber string) (*models.User, error) {
	users, err := ups.Store.QueryUsersByPhone(ctx, phoneNumber)
	if err != nil {
		return nil, err
	}
	if len(users) == 0 {
		return nil, fmt.Errorf("%w: phone %s", ErrUserNotFound, phoneNumber)
	}
	return &users[0], nil
}

// UpdateUser applies a partial update to the allowed profile fields.
func (ups *UserProfileService) UpdateUser(ctx context.Context, userID string, updates map[string]string) (*models.User, error) {
	patch := FieldPatch{}
	for field, value := range updates {
		if !updatableProfileFields[field] {
			return nil, fmt.Errorf("field '%s' is not updatable", field)
		}
		if field == "gender" || field == "sexuality" {
			value = strings.ToLower(value)
		}
		patch[field] = value
	}

	if err := ups.Store.MergeFields(ctx, userID, patch); err != nil {
		return nil, err
	}
	return ups.Store.GetUser(ctx, userID)
}

// AddFriend links two users. The connection is undirected in intent but
// stored per-side, so both friends lists are written; the second write is
// independent of the first. Linking an existing friend is a no-op on that
// side.
func (ups *UserProfileService) AddFriend(ctx context.Context, userID, friendID string) error {
	if userID == friendID {
		return fmt.Errorf("user '%s' cannot befriend themselves", userID)
	}

	user, err := ups.Store.GetUser(ctx, userID)
	if err != nil {
		return fmt.Errorf("failed to fetch user '%s': %w", userID, err)
	}
	friend, err := ups.Store.GetUser(ctx, friendID)
	if err != nil {
		return fmt.Errorf("failed to fetch friend '%s': %w", friendID, err)
	}

	if !user.HasFriend(friendID) {
		patch := FieldPatch{"friends": append(user.Friends, friendID)}
		if err := ups.Store.MergeFields(ctx, userID, patch); err != nil {
			return fmt.Errorf("failed to add friend to '%s': %w", userID, err)
		}
	}
	if !friend.HasFriend(userID) {
		patch := FieldPatch{"friends": append(friend.Friends, userID)}
		if err := ups.Store.MergeFields(ctx, friendID, patch); err != nil {
			return fmt.Errorf("failed to add friend to '%s': %w", friendID, err)
		}
	}
	return nil
}

// DeleteUser removes a user document. Administrative operation; references
// to the user in other documents are not cleaned up here.
func (ups *UserProfileService) DeleteUser(ctx context.Context, userID string) error {
	return ups.Store.DeleteUser(ctx, userID)
}
