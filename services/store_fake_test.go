package services

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"wingman_server/models"
)

// fakeProfileStore is an in-memory ProfileStore for engine tests. Documents
// are cloned on read and MergeFields applies path-level writes, mimicking
// the remote store's partial-update semantics so tests catch accidental
// whole-document overwrites.
type fakeProfileStore struct {
	users     map[string]*models.User
	failMerge map[string]bool // user IDs whose MergeFields calls fail
}

func newFakeStore(users ...models.User) *fakeProfileStore {
	store := &fakeProfileStore{
		users:     map[string]*models.User{},
		failMerge: map[string]bool{},
	}
	for i := range users {
		store.users[users[i].UserID] = cloneUser(&users[i])
	}
	return store
}

func cloneUser(u *models.User) *models.User {
	clone := *u
	clone.Friends = append([]string(nil), u.Friends...)
	clone.SwipingPools = map[string]models.SwipePool{}
	for id, pool := range u.SwipingPools {
		clone.SwipingPools[id] = clonePool(pool)
	}
	clone.Matches = map[string]models.MatchEntry{}
	for id, entry := range u.Matches {
		clone.Matches[id] = entry
	}
	return &clone
}

func clonePool(p models.SwipePool) models.SwipePool {
	clone := models.SwipePool{}
	if p.Pool != nil {
		clone.Pool = append([]string{}, p.Pool...)
	}
	if p.SwipedPool != nil {
		clone.SwipedPool = append([]string{}, p.SwipedPool...)
	}
	return clone
}

func (s *fakeProfileStore) GetUser(_ context.Context, userID string) (*models.User, error) {
	user, ok := s.users[userID]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUserNotFound, userID)
	}
	return cloneUser(user), nil
}

func (s *fakeProfileStore) QueryUsersByPhone(_ context.Context, phoneNumber string) ([]models.User, error) {
	var found []models.User
	for _, user := range s.users {
		if user.PhoneNumber == phoneNumber {
			found = append(found, *cloneUser(user))
		}
	}
	return found, nil
}

func (s *fakeProfileStore) MergeFields(_ context.Context, userID string, patch FieldPatch) error {
	if s.failMerge[userID] {
		return fmt.Errorf("simulated write failure for '%s'", userID)
	}
	user, ok := s.users[userID]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUserNotFound, userID)
	}

	for path, value := range patch {
		segments := strings.Split(path, ".")
		switch segments[0] {
		case "friends":
			user.Friends = append([]string(nil), value.([]string)...)
		case "swipingPools":
			if len(segments) != 2 {
				return fmt.Errorf("fake store cannot merge path '%s'", path)
			}
			user.SwipingPools[segments[1]] = clonePool(value.(models.SwipePool))
		case "matches":
			if len(segments) != 2 {
				return fmt.Errorf("fake store cannot merge path '%s'", path)
			}
			user.Matches[segments[1]] = value.(models.MatchEntry)
		case "name":
			user.Name = value.(string)
		case "phoneNumber":
			user.PhoneNumber = value.(string)
		case "userType":
			user.UserType = value.(string)
		case "gender":
			user.Gender = value.(string)
		case "sexuality":
			user.Sexuality = value.(string)
		default:
			return fmt.Errorf("fake store cannot merge path '%s'", path)
		}
	}
	return nil
}

func (s *fakeProfileStore) ListAllUsers(_ context.Context) ([]models.User, error) {
	all := make([]models.User, 0, len(s.users))
	for _, user := range s.users {
		all = append(all, *cloneUser(user))
	}
	sort.Slice(all, func(i, j int) bool { return all[i].UserID < all[j].UserID })
	return all, nil
}

func (s *fakeProfileStore) PutUser(_ context.Context, user models.User) error {
	if user.SwipingPools == nil {
		user.SwipingPools = map[string]models.SwipePool{}
	}
	if user.Matches == nil {
		user.Matches = map[string]models.MatchEntry{}
	}
	s.users[user.UserID] = cloneUser(&user)
	return nil
}

func (s *fakeProfileStore) DeleteUser(_ context.Context, userID string) error {
	delete(s.users, userID)
	return nil
}
