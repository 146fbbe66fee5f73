package models

import (
	"fmt"

	"github.com/pricegrid/catalog-linker/internal/platform"
)

// MatchStatus is supplier item matching state.
type MatchStatus string

// Supplier item matching states.
const (
	MatchUnmatched MatchStatus = "unmatched"
	MatchAuto      MatchStatus = "auto_matched"
	MatchPotential MatchStatus = "potential_match"
	MatchVerified  MatchStatus = "verified_match"
)

// Actor is who performs a state transition.
type Actor string

// Transition actors.
const (
	ActorSystem Actor = "system"
	ActorAdmin  Actor = "admin"
)

// matchTransitions is the closed set of valid match status transitions
// with the actor allowed to perform each one. Anything outside this
// table is rejected.
var matchTransitions = map[MatchStatus]map[MatchStatus]Actor{
	MatchUnmatched: {
		MatchAuto:      ActorSystem,
		MatchPotential: ActorSystem,
		MatchVerified:  ActorAdmin,
	},
	MatchPotential: {
		MatchVerified:  ActorAdmin,
		MatchUnmatched: ActorAdmin,
	},
	MatchAuto: {
		MatchVerified:  ActorAdmin,
		MatchUnmatched: ActorAdmin,
	},
	MatchVerified: {
		MatchUnmatched: ActorAdmin,
	},
}

// ValidateTransition checks if transition from one match status to another
// is allowed for provided actor. It returns ErrInvalidTransition otherwise.
// Admin is allowed to perform system transitions of the table, system is
// never allowed to perform admin ones.
func (s MatchStatus) ValidateTransition(to MatchStatus, actor Actor) error {
	allowed, ok := matchTransitions[s][to]
	if !ok {
		return fmt.Errorf("%w: %s -> %s", platform.ErrInvalidTransition, s, to)
	}

	if allowed == ActorAdmin && actor != ActorAdmin {
		return fmt.Errorf("%w: %s -> %s requires admin", platform.ErrInvalidTransition, s, to)
	}

	return nil
}

// Matchable returns true if the automatic matcher may process an item
// in this status. Verified matches stay untouched until an admin reset.
func (s MatchStatus) Matchable() bool {
	return s == MatchUnmatched
}

// ReviewStatus is review queue entry state.
type ReviewStatus string

// Review queue entry states. Approved, rejected and expired are terminal.
const (
	ReviewPending       ReviewStatus = "pending"
	ReviewApproved      ReviewStatus = "approved"
	ReviewRejected      ReviewStatus = "rejected"
	ReviewExpired       ReviewStatus = "expired"
	ReviewNeedsCategory ReviewStatus = "needs_category"
)

var reviewTransitions = map[ReviewStatus][]ReviewStatus{
	ReviewPending:       {ReviewApproved, ReviewRejected, ReviewExpired},
	ReviewNeedsCategory: {ReviewPending, ReviewExpired},
}

// ValidateTransition checks if transition from one review status to another
// is allowed. It returns ErrInvalidTransition otherwise.
func (s ReviewStatus) ValidateTransition(to ReviewStatus) error {
	for _, allowed := range reviewTransitions[s] {
		if allowed == to {
			return nil
		}
	}

	return fmt.Errorf("%w: %s -> %s", platform.ErrInvalidTransition, s, to)
}
