package models

// SwipePool tracks one matchmaker's progress through a friend's candidates.
// A candidate ID lives in Pool (undecided) or SwipedPool (decided), never
// both.
type SwipePool struct {
	Pool       []string `dynamodbav:"pool" json:"pool"`
	SwipedPool []string `dynamodbav:"swipedPool" json:"swipedPool"`
}

// HasSwiped reports whether the matchmaker has already decided on userID.
func (p *SwipePool) HasSwiped(userID string) bool {
	for _, id := range p.SwipedPool {
		if id == userID {
			return true
		}
	}
	return false
}

// MarkSwiped moves userID out of the undecided pool and into the swiped set.
// Marking an already-swiped candidate is a no-op, so repeated swipes stay
// idempotent.
func (p *SwipePool) MarkSwiped(userID string) {
	remaining := make([]string, 0, len(p.Pool))
	for _, id := range p.Pool {
		if id != userID {
			remaining = append(remaining, id)
		}
	}
	p.Pool = remaining

	if !p.HasSwiped(userID) {
		p.SwipedPool = append(p.SwipedPool, userID)
	}
}
