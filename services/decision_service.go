package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"wingman_server/models"
)

// MatchNotifier receives confirmed matches as they are minted.
type MatchNotifier interface {
	NotifyMatch(userA, userB, matchID string)
}

// DecisionService records approve/reject swipes made by a matchmaker on
// behalf of a friend and promotes reciprocal pairs to confirmed matches.
type DecisionService struct {
	Store    ProfileStore
	Pools    *SwipePoolService
	Notifier MatchNotifier

	// Now overrides the clock; nil means time.Now. Match IDs embed the
	// creation time, so tests pin this.
	Now func() time.Time
}

// RecordDecision applies one matchmaker's decision about one candidate for
// one friend.
//
// On approve, the friend's ledger entry for the candidate gains
// 1/len(matchmaker.Friends); an approval from someone with two friends is
// worth half an approval from someone with one. The rate is not clamped, so
// small friend groups can push it past 1.0. If anyone on the candidate's
// side has already approved the friend, matchBack flips on both ledgers, and
// once the rate strictly exceeds the threshold a match ID is minted and
// written to both documents.
//
// The friend's document and the candidate's document are written
// independently; a failed candidate write is logged and reported through
// DecisionResult.CandidateSaved rather than rolled back.
func (ds *DecisionService) RecordDecision(ctx context.Context, friendID, candidateID, matchmakerID, decision string) (*models.DecisionResult, error) {
	if friendID == candidateID {
		return nil, errors.New("a user cannot be a candidate for themselves")
	}

	friend, err := ds.Store.GetUser(ctx, friendID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch friend '%s': %w", friendID, err)
	}
	candidate, err := ds.Store.GetUser(ctx, candidateID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch candidate '%s': %w", candidateID, err)
	}
	matchmaker, err := ds.Store.GetUser(ctx, matchmakerID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch matchmaker '%s': %w", matchmakerID, err)
	}
	if !matchmaker.IsMatchMaker() {
		return nil, fmt.Errorf("user '%s' cannot swipe on behalf of others", matchmakerID)
	}

	if friend.Matches == nil {
		friend.Matches = map[string]models.MatchEntry{}
	}
	entry := friend.Matches[candidateID]

	pool := friend.SwipingPools[matchmakerID]
	pool.MarkSwiped(candidateID)

	result := &models.DecisionResult{CandidateSaved: true}

	switch decision {
	case models.DecisionReject:
		// A zero-valued ledger entry is written even on reject so repeated
		// swipes stay idempotent. Rejection is per-matchmaker and does not
		// veto later approvals from others.

	case models.DecisionApprove:
		increment := 1.0
		if n := len(matchmaker.Friends); n > 0 {
			increment = 1.0 / float64(n)
		}
		entry.ApprovalRate += increment

		// Reciprocity: someone has already approved the friend from the
		// candidate's side.
		_, reciprocal := candidate.Matches[friendID]
		if reciprocal {
			entry.MatchBack = true
			if entry.ApprovalRate > models.MatchThreshold && entry.MatchID == "" {
				matchID := models.MintMatchID(friendID, candidateID, ds.now())
				entry.MatchID = matchID
				result.MatchCreated = true
				result.MatchID = matchID
			}
		}

	default:
		return nil, fmt.Errorf("invalid decision '%s'", decision)
	}

	friend.Matches[candidateID] = entry
	result.ApprovalRate = entry.ApprovalRate

	patch := FieldPatch{
		"matches." + candidateID:       entry,
		"swipingPools." + matchmakerID: pool,
	}
	if err := ds.Store.MergeFields(ctx, friendID, patch); err != nil {
		return nil, fmt.Errorf("failed to persist decision for '%s': %w", friendID, err)
	}

	if entry.MatchBack {
		// Mirror onto the candidate's ledger. No transaction spans the two
		// documents; a failure here leaves the matchBack state asymmetric.
		candidateEntry := candidate.Matches[friendID]
		candidateEntry.MatchBack = true
		if result.MatchCreated {
			candidateEntry.MatchID = result.MatchID
		}
		mirror := FieldPatch{"matches." + friendID: candidateEntry}
		if err := ds.Store.MergeFields(ctx, candidateID, mirror); err != nil {
			log.Printf("Failed to mirror decision onto candidate '%s': %v", candidateID, err)
			result.CandidateSaved = false
		}
	}

	// Recompute the pool so the just-decided candidate drops out and newly
	// eligible users are admitted.
	if _, err := ds.Pools.RefreshPool(ctx, friendID, matchmakerID); err != nil {
		log.Printf("Failed to refresh swiping pool for '%s'/'%s': %v", friendID, matchmakerID, err)
	}

	if result.MatchCreated && ds.Notifier != nil {
		ds.Notifier.NotifyMatch(friendID, candidateID, result.MatchID)
	}

	return result, nil
}

func (ds *DecisionService) now() time.Time {
	if ds.Now != nil {
		return ds.Now()
	}
	return time.Now().UTC()
}
