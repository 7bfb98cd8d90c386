package services

import (
	"testing"

	"wingman_server/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dater(id, gender, sexuality string) models.User {
	return models.User{
		UserID:    id,
		UserType:  models.UserTypeDaterAndMatchMaker,
		Gender:    gender,
		Sexuality: sexuality,
	}
}

func candidateIDs(users []models.User) []string {
	ids := make([]string, 0, len(users))
	for _, u := range users {
		ids = append(ids, u.UserID)
	}
	return ids
}

func TestEligibleCandidates_StraightMale(t *testing.T) {
	subject := dater("subject", models.GenderMale, models.SexualityStraight)
	all := []models.User{
		subject,
		dater("straight-female", models.GenderFemale, models.SexualityStraight),
		dater("gay-female", models.GenderFemale, models.SexualityGay),
		dater("straight-male", models.GenderMale, models.SexualityStraight),
		dater("bi-female", models.GenderFemale, models.SexualityBisexual),
	}

	eligible := EligibleCandidates(&subject, all)

	assert.Equal(t, []string{"bi-female", "straight-female"}, candidateIDs(eligible))
}

func TestEligibleCandidates_StraightFemale(t *testing.T) {
	subject := dater("subject", models.GenderFemale, models.SexualityStraight)
	all := []models.User{
		dater("straight-male", models.GenderMale, models.SexualityStraight),
		dater("gay-male", models.GenderMale, models.SexualityGay),
		dater("straight-female", models.GenderFemale, models.SexualityStraight),
	}

	eligible := EligibleCandidates(&subject, all)

	assert.Equal(t, []string{"straight-male"}, candidateIDs(eligible))
}

func TestEligibleCandidates_GayRules(t *testing.T) {
	gayMale := dater("gay-male", models.GenderMale, models.SexualityGay)
	gayFemale := dater("gay-female", models.GenderFemale, models.SexualityGay)
	all := []models.User{
		gayMale,
		gayFemale,
		dater("straight-male", models.GenderMale, models.SexualityStraight),
		dater("bi-male", models.GenderMale, models.SexualityBisexual),
		dater("bi-female", models.GenderFemale, models.SexualityBisexual),
	}

	assert.Equal(t, []string{"bi-male"}, candidateIDs(EligibleCandidates(&gayMale, all)))
	assert.Equal(t, []string{"bi-female"}, candidateIDs(EligibleCandidates(&gayFemale, all)))
}

func TestEligibleCandidates_BisexualMatchesAllDaters(t *testing.T) {
	subject := dater("subject", models.GenderFemale, models.SexualityBisexual)
	all := []models.User{
		subject,
		dater("a", models.GenderMale, models.SexualityStraight),
		dater("b", models.GenderFemale, models.SexualityGay),
		dater("c", models.GenderMale, models.SexualityPansexual),
	}

	assert.Equal(t, []string{"a", "b", "c"}, candidateIDs(EligibleCandidates(&subject, all)))
}

func TestEligibleCandidates_PermissiveWhenUnset(t *testing.T) {
	subject := models.User{UserID: "subject", UserType: models.UserTypeDater}
	all := []models.User{
		dater("a", models.GenderMale, models.SexualityStraight),
		dater("b", models.GenderFemale, models.SexualityGay),
	}

	assert.Equal(t, []string{"a", "b"}, candidateIDs(EligibleCandidates(&subject, all)))
}

func TestEligibleCandidates_ExcludesNonDaters(t *testing.T) {
	subject := dater("subject", models.GenderMale, models.SexualityStraight)
	matchmakerOnly := models.User{
		UserID:    "matchmaker-only",
		UserType:  models.UserTypeMatchMaker,
		Gender:    models.GenderFemale,
		Sexuality: models.SexualityStraight,
	}
	all := []models.User{matchmakerOnly, dater("ok", models.GenderFemale, models.SexualityStraight)}

	assert.Equal(t, []string{"ok"}, candidateIDs(EligibleCandidates(&subject, all)))
}

func TestEligibleCandidates_ExcludesSelf(t *testing.T) {
	subject := dater("subject", models.GenderFemale, models.SexualityBisexual)

	eligible := EligibleCandidates(&subject, []models.User{subject})

	assert.Empty(t, eligible)
}

// Two straight users of opposite gender should each be eligible for the
// other's pool.
func TestEligibleCandidates_Symmetry(t *testing.T) {
	a := dater("a", models.GenderMale, models.SexualityStraight)
	b := dater("b", models.GenderFemale, models.SexualityStraight)
	all := []models.User{a, b}

	require.Equal(t, []string{"b"}, candidateIDs(EligibleCandidates(&a, all)))
	require.Equal(t, []string{"a"}, candidateIDs(EligibleCandidates(&b, all)))
}

func TestEligibleCandidates_DeterministicOrder(t *testing.T) {
	subject := dater("subject", models.GenderFemale, models.SexualityBisexual)
	all := []models.User{
		dater("c", models.GenderMale, models.SexualityStraight),
		dater("a", models.GenderMale, models.SexualityStraight),
		dater("b", models.GenderMale, models.SexualityStraight),
	}

	assert.Equal(t, []string{"a", "b", "c"}, candidateIDs(EligibleCandidates(&subject, all)))
}
