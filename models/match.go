package models

import (
	"fmt"
	"time"
)

// MatchEntry is one row of a user's per-candidate decision ledger.
//
// ApprovalRate accumulates 1/len(matchmaker.Friends) per approval and is
// intentionally not clamped: with small friend groups the rate can exceed
// 1.0. MatchID stays empty until reciprocity is detected and the rate
// crosses MatchThreshold; once assigned it is never rewritten.
type MatchEntry struct {
	ApprovalRate float64 `dynamodbav:"approvalRate" json:"approvalRate"`
	MatchBack    bool    `dynamodbav:"matchBack" json:"matchBack"`
	MatchID      string  `dynamodbav:"matchId,omitempty" json:"matchId,omitempty"`
}

// DecisionResult reports what a recorded swipe changed.
//
// CandidateSaved is false when the friend's document was written but the
// mirror write onto the candidate's document failed; no transaction spans
// the two documents, so the matchBack state is asymmetric until a later
// decision repairs it.
type DecisionResult struct {
	MatchCreated   bool    `json:"matchCreated"`
	MatchID        string  `json:"matchId,omitempty"`
	ApprovalRate   float64 `json:"approvalRate"`
	CandidateSaved bool    `json:"candidateSaved"`
}

// ConfirmedMatch is the derived registry view of a mutual pairing. Match
// existence is represented purely by both sides' ledger entries carrying the
// same matchId; there is no separate match store.
type ConfirmedMatch struct {
	MatchID     string `json:"matchId"`
	PartnerID   string `json:"partnerId"`
	PartnerName string `json:"partnerName,omitempty"`
}

// MintMatchID derives a stable match identifier from the unordered user pair
// and the creation time. Sorting the IDs keeps the same pair from colliding
// with an unrelated match, and no central coordinator is needed.
func MintMatchID(userA, userB string, at time.Time) string {
	first, second := userA, userB
	if second < first {
		first, second = second, first
	}
	return fmt.Sprintf("%s_%s_%d", first, second, at.UnixMilli())
}
