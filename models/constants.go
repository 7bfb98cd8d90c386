package models

// User types control which matchmaking capabilities apply to a profile
const (
	UserTypeDater              = "Dater"
	UserTypeMatchMaker         = "MatchMaker"
	UserTypeDaterAndMatchMaker = "DaterAndMatchMaker"
)

// Declared gender and sexuality values the compatibility rules understand.
// Values are stored lower-cased; anything else (or empty) falls back to the
// permissive rule.
const (
	GenderMale   = "male"
	GenderFemale = "female"

	SexualityStraight  = "straight"
	SexualityGay       = "gay"
	SexualityBisexual  = "bisexual"
	SexualityPansexual = "pansexual"
)

// Swipe decisions
const (
	DecisionApprove = "approve"
	DecisionReject  = "reject"
)

// MatchThreshold is the cumulative approval rate a candidate must exceed
// (strictly) before a reciprocal pair is promoted to a confirmed match.
const MatchThreshold = 0.5
