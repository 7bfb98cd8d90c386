package services

import (
	"context"
	"fmt"
	"log"
	"sort"

	"wingman_server/models"
)

// MatchRegistryService exposes the derived view of confirmed matches. There
// is no separate match table: a match exists when both users' ledger entries
// carry the same minted matchId.
type MatchRegistryService struct {
	Store ProfileStore
}

// GetConfirmedMatches returns the user's confirmed matches, enriched with
// each partner's display name. A partner whose profile cannot be fetched is
// still listed, just without the name.
func (ms *MatchRegistryService) GetConfirmedMatches(ctx context.Context, userID string) ([]models.ConfirmedMatch, error) {
	user, err := ms.Store.GetUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch user '%s': %w", userID, err)
	}

	confirmed := make([]models.ConfirmedMatch, 0)
	for partnerID, entry := range user.Matches {
		if entry.MatchID == "" {
			continue
		}

		match := models.ConfirmedMatch{MatchID: entry.MatchID, PartnerID: partnerID}
		partner, err := ms.Store.GetUser(ctx, partnerID)
		if err != nil {
			log.Printf("Failed to fetch match partner '%s': %v", partnerID, err)
		} else {
			match.PartnerName = partner.Name
		}
		confirmed = append(confirmed, match)
	}

	sort.Slice(confirmed, func(i, j int) bool {
		return confirmed[i].PartnerID < confirmed[j].PartnerID
	})
	return confirmed, nil
}
