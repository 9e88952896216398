// Package dedup decides whether a validated result adds anything over the
// subject's latest stored snapshot.
package dedup

import "github.com/Lestat2Lioncourt/discord-bot/internal/domain"

// Equal reports whether the candidate snapshot carries the same measured
// values as the previous one: trophy points, global power, and the six
// playing attributes. Equipment and labels are deliberately ignored; a
// capture that only re-reads the same numbers is a duplicate.
func Equal(previous, candidate *domain.StatSnapshot) bool {
	if previous == nil || candidate == nil {
		return false
	}

	if !intPtrEqual(previous.TrophyPoints, candidate.TrophyPoints) {
		return false
	}
	if !intPtrEqual(previous.GlobalPower, candidate.GlobalPower) {
		return false
	}

	prevAttrs := previous.Attributes()
	candAttrs := candidate.Attributes()
	for i := range prevAttrs {
		if !intPtrEqual(prevAttrs[i], candAttrs[i]) {
			return false
		}
	}
	return true
}

func intPtrEqual(a, b *int) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}
