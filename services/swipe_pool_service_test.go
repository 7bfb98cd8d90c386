package services

import (
	"context"
	"testing"

	"wingman_server/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRefreshPool_BuildsAndPersistsPool(t *testing.T) {
	friend := dater("friend", models.GenderFemale, models.SexualityStraight)
	store := newFakeStore(
		friend,
		dater("candidate-b", models.GenderMale, models.SexualityStraight),
		dater("candidate-a", models.GenderMale, models.SexualityStraight),
		dater("ineligible", models.GenderFemale, models.SexualityStraight),
		dater("matchmaker", models.GenderMale, models.SexualityStraight),
	)
	sps := &SwipePoolService{Store: store}

	pool, err := sps.RefreshPool(context.Background(), "friend", "matchmaker")
	require.NoError(t, err)

	assert.Equal(t, []string{"candidate-a", "candidate-b"}, pool.Pool)

	// The pool must be persisted on the friend's document.
	persisted, err := store.GetUser(context.Background(), "friend")
	require.NoError(t, err)
	assert.Equal(t, *pool, persisted.SwipingPools["matchmaker"])
}

func TestRefreshPool_ExcludesSwipedCandidates(t *testing.T) {
	friend := dater("friend", models.GenderFemale, models.SexualityStraight)
	friend.SwipingPools = map[string]models.SwipePool{
		"matchmaker": {Pool: []string{}, SwipedPool: []string{"candidate-a"}},
	}
	store := newFakeStore(
		friend,
		dater("candidate-a", models.GenderMale, models.SexualityStraight),
		dater("candidate-b", models.GenderMale, models.SexualityStraight),
		dater("matchmaker", models.GenderMale, models.SexualityStraight),
	)
	sps := &SwipePoolService{Store: store}

	pool, err := sps.RefreshPool(context.Background(), "friend", "matchmaker")
	require.NoError(t, err)

	assert.Equal(t, []string{"candidate-b"}, pool.Pool)
	assert.Equal(t, []string{"candidate-a"}, pool.SwipedPool)
}

func TestRefreshPool_PoolAndSwipedPoolDisjoint(t *testing.T) {
	friend := dater("friend", models.GenderFemale, models.SexualityBisexual)
	friend.SwipingPools = map[string]models.SwipePool{
		"matchmaker": {SwipedPool: []string{"a", "c"}},
	}
	store := newFakeStore(
		friend,
		dater("a", models.GenderMale, models.SexualityStraight),
		dater("b", models.GenderMale, models.SexualityStraight),
		dater("c", models.GenderMale, models.SexualityStraight),
		dater("matchmaker", models.GenderMale, models.SexualityStraight),
	)
	sps := &SwipePoolService{Store: store}

	pool, err := sps.RefreshPool(context.Background(), "friend", "matchmaker")
	require.NoError(t, err)

	for _, swiped := range pool.SwipedPool {
		assert.NotContains(t, pool.Pool, swiped)
	}
}

func TestRefreshPool_ExcludesFriendAndMatchmaker(t *testing.T) {
	friend := dater("friend", models.GenderFemale, models.SexualityBisexual)
	store := newFakeStore(
		friend,
		dater("matchmaker", models.GenderMale, models.SexualityStraight),
		dater("candidate", models.GenderMale, models.SexualityStraight),
	)
	sps := &SwipePoolService{Store: store}

	pool, err := sps.RefreshPool(context.Background(), "friend", "matchmaker")
	require.NoError(t, err)

	assert.NotContains(t, pool.Pool, "friend")
	assert.NotContains(t, pool.Pool, "matchmaker")
	assert.Equal(t, []string{"candidate"}, pool.Pool)
}

func TestRefreshPool_Idempotent(t *testing.T) {
	store := newFakeStore(
		dater("friend", models.GenderFemale, models.SexualityStraight),
		dater("candidate", models.GenderMale, models.SexualityStraight),
	)
	sps := &SwipePoolService{Store: store}

	first, err := sps.RefreshPool(context.Background(), "friend", "matchmaker")
	require.NoError(t, err)
	second, err := sps.RefreshPool(context.Background(), "friend", "matchmaker")
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestRefreshPool_UnknownFriend(t *testing.T) {
	sps := &SwipePoolService{Store: newFakeStore()}

	_, err := sps.RefreshPool(context.Background(), "missing", "matchmaker")

	require.ErrorIs(t, err, ErrUserNotFound)
}
