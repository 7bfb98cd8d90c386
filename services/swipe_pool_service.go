package services

import (
	"context"
	"fmt"

	"wingman_server/models"
)

type SwipePoolService struct {
	Store ProfileStore
}

// RefreshPool recomputes the undecided candidate list for one
// (friend, matchmaker) pair and persists it.
//
// Every call re-derives the pool from the store: read the friend, list all
// users, filter for eligibility, drop the matchmaker themself and everything
// the matchmaker has already swiped, then merge the result back onto the
// friend's document. No in-memory state survives across calls, so concurrent
// matchmakers each see a pool derived from what the store held when they
// refreshed.
func (sps *SwipePoolService) RefreshPool(ctx context.Context, friendID, matchmakerID string) (*models.SwipePool, error) {
	friend, err := sps.Store.GetUser(ctx, friendID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch friend '%s': %w", friendID, err)
	}

	allUsers, err := sps.Store.ListAllUsers(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}

	current := friend.SwipingPools[matchmakerID]
	swiped := make(map[string]struct{}, len(current.SwipedPool))
	for _, id := range current.SwipedPool {
		swiped[id] = struct{}{}
	}

	pool := make([]string, 0)
	for _, candidate := range EligibleCandidates(friend, allUsers) {
		if candidate.UserID == matchmakerID {
			continue
		}
		if _, decided := swiped[candidate.UserID]; decided {
			continue
		}
		pool = append(pool, candidate.UserID)
	}

	updated := models.SwipePool{Pool: pool, SwipedPool: current.SwipedPool}
	if updated.SwipedPool == nil {
		updated.SwipedPool = make([]string, 0)
	}

	patch := FieldPatch{"swipingPools." + matchmakerID: updated}
	if err := sps.Store.MergeFields(ctx, friendID, patch); err != nil {
		return nil, fmt.Errorf("failed to persist swiping pool for '%s': %w", friendID, err)
	}

	return &updated, nil
}
