package services

import (
	"context"
	"errors"
	"fmt"
	"os"

	"wingman_server/models"
	"wingman_server/utils"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// ErrUserNotFound is returned when a user ID does not resolve to a document.
var ErrUserNotFound = errors.New("user not found")

// FieldPatch maps dot-separated attribute paths to new values, e.g.
// {"matches.<candidateId>": entry}. Only the named paths are written.
type FieldPatch map[string]interface{}

// ProfileStore is the engine's view of the backing document store.
//
// Matchmaking writes into other users' documents (a matchmaker updates the
// friend's and the candidate's records), so every mutation goes through
// MergeFields on a target user ID rather than handing callers a mutable
// reference to stored state.
type ProfileStore interface {
	GetUser(ctx context.Context, userID string) (*models.User, error)
	QueryUsersByPhone(ctx context.Context, phoneNumber string) ([]models.User, error)
	MergeFields(ctx context.Context, userID string, patch FieldPatch) error
	ListAllUsers(ctx context.Context) ([]models.User, error)
	PutUser(ctx context.Context, user models.User) error
	DeleteUser(ctx context.Context, userID string) error
}

// DynamoProfileStore implements ProfileStore on a DynamoDB table keyed by
// userId, with a phoneNumber GSI for contact lookups.
type DynamoProfileStore struct {
	Dynamo *DynamoService
	Table  string
}

const phoneNumberIndex = "phoneNumber-index"

// NewDynamoProfileStore builds a store against the configured users table.
func NewDynamoProfileStore(dynamo *DynamoService) *DynamoProfileStore {
	table := os.Getenv("USERS_TABLE")
	if table == "" {
		table = models.UsersTable
	}
	return &DynamoProfileStore{Dynamo: dynamo, Table: table}
}

func userKey(userID string) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		"userId": &types.AttributeValueMemberS{Value: userID},
	}
}

// GetUser retrieves a single user document by ID.
func (ps *DynamoProfileStore) GetUser(ctx context.Context, userID string) (*models.User, error) {
	item, err := ps.Dynamo.GetItem(ctx, ps.Table, userKey(userID))
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, fmt.Errorf("%w: %s", ErrUserNotFound, userID)
	}

	var user models.User
	if err := attributevalue.UnmarshalMap(item, &user); err != nil {
		return nil, fmt.Errorf("failed to unmarshal user '%s': %w", userID, err)
	}
	return &user, nil
}

// QueryUsersByPhone looks up users by phone number through the GSI.
func (ps *DynamoProfileStore) QueryUsersByPhone(ctx context.Context, phoneNumber string) ([]models.User, error) {
	items, err := ps.Dynamo.QueryItemsWithIndex(ctx, ps.Table, phoneNumberIndex,
		"phoneNumber = :phoneNumber",
		map[string]types.AttributeValue{
			":phoneNumber": &types.AttributeValueMemberS{Value: phoneNumber},
		}, 10)
	if err != nil {
		return nil, fmt.Errorf("failed to query users by phone: %w", err)
	}

	var users []models.User
	if err := attributevalue.UnmarshalListOfMaps(items, &users); err != nil {
		return nil, fmt.Errorf("failed to unmarshal users: %w", err)
	}
	return users, nil
}

// MergeFields applies a partial update to one user document. Fields not
// named in the patch are left untouched, so concurrent writers to sibling
// paths do not clobber each other; two writers to the same path are
// last-write-wins.
func (ps *DynamoProfileStore) MergeFields(ctx context.Context, userID string, patch FieldPatch) error {
	if len(patch) == 0 {
		return nil
	}

	expression, names, values, err := utils.BuildMergeExpression(patch)
	if err != nil {
		return err
	}

	_, err = ps.Dynamo.UpdateItem(ctx, ps.Table, expression, userKey(userID), values, names)
	if err != nil {
		return fmt.Errorf("failed to merge fields for user '%s': %w", userID, err)
	}
	return nil
}

// ListAllUsers returns every user document. The candidate pool is built from
// a full scan so the observable candidate set is exactly
// scan-then-filter-in-process.
func (ps *DynamoProfileStore) ListAllUsers(ctx context.Context) ([]models.User, error) {
	var users []models.User
	if err := ps.Dynamo.ScanAll(ctx, ps.Table, &users); err != nil {
		return nil, err
	}
	return users, nil
}

// PutUser writes a full user document. Top-level swipingPools and matches
// maps are materialized empty so nested merge paths always have a parent.
func (ps *DynamoProfileStore) PutUser(ctx context.Context, user models.User) error {
	if user.SwipingPools == nil {
		user.SwipingPools = map[string]models.SwipePool{}
	}
	if user.Matches == nil {
		user.Matches = map[string]models.MatchEntry{}
	}
	return ps.Dynamo.PutItem(ctx, ps.Table, user)
}

// DeleteUser removes a user document.
func (ps *DynamoProfileStore) DeleteUser(ctx context.Context, userID string) error {
	return ps.Dynamo.DeleteItem(ctx, ps.Table, userKey(userID))
}
