package services

import (
	"sort"
	"strings"

	"wingman_server/models"
)

// EligibleCandidates returns the users who can appear in subject's swiping
// pools: everyone except the subject who has the dater capability and passes
// the declared-orientation rules. Candidates come back in a stable order
// (sorted by user ID) so pool recomputation is deterministic.
//
// Pure function: no I/O, no mutation of its inputs.
func EligibleCandidates(subject *models.User, allUsers []models.User) []models.User {
	eligible := make([]models.User, 0)
	for _, candidate := range allUsers {
		if candidate.UserID == subject.UserID {
			continue
		}
		if !candidate.IsDater() {
			continue
		}
		if !orientationCompatible(subject, &candidate) {
			continue
		}
		eligible = append(eligible, candidate)
	}

	sort.Slice(eligible, func(i, j int) bool {
		return eligible[i].UserID < eligible[j].UserID
	})
	return eligible
}

// orientationCompatible applies the declared gender/sexuality rules. A
// subject with unset gender or sexuality (or one outside the known values)
// falls through to the permissive rule and matches every dater.
func orientationCompatible(subject, candidate *models.User) bool {
	gender := strings.ToLower(subject.Gender)
	sexuality := strings.ToLower(subject.Sexuality)
	candidateGender := strings.ToLower(candidate.Gender)
	candidateSexuality := strings.ToLower(candidate.Sexuality)

	switch {
	case sexuality == models.SexualityStraight && gender == models.GenderMale:
		return candidateGender == models.GenderFemale && candidateSexuality != models.SexualityGay
	case sexuality == models.SexualityStraight && gender == models.GenderFemale:
		return candidateGender == models.GenderMale && candidateSexuality != models.SexualityGay
	case sexuality == models.SexualityGay && gender == models.GenderMale:
		return candidateGender == models.GenderMale && candidateSexuality != models.SexualityStraight
	case sexuality == models.SexualityGay && gender == models.GenderFemale:
		return candidateGender == models.GenderFemale && candidateSexuality != models.SexualityStraight
	case sexuality == models.SexualityBisexual || sexuality == models.SexualityPansexual:
		return true
	default:
		// Unknown gender or sexuality: match everyone.
		return true
	}
}
