// Package build derives a human-readable play-style label from a snapshot's
// attribute distribution.
package build

import (
	"sort"
	"strings"

	"github.com/Lestat2Lioncourt/discord-bot/internal/domain"
)

const (
	// balancedTolerance: every attribute within ±15% of the mean.
	balancedTolerance = 0.15
	// dominantThreshold: an attribute at least 20% above the mean stands out.
	dominantThreshold = 0.20

	// LabelBalanced is used when no attribute dominates.
	LabelBalanced = "Balanced"
	// LabelUnknown is used when too few attributes were read to judge.
	LabelUnknown = "Unknown"
)

// minAttributes required before any label is computed.
const minAttributes = 4

// Label classifies the attribute spread. All attributes close to the mean
// gives Balanced; otherwise the two or three most dominant attributes are
// joined into a compound label like "Serve-Forehand".
func Label(attrs [6]*int) string {
	var values []float64
	var names []string
	for i, a := range attrs {
		if a == nil {
			continue
		}
		values = append(values, float64(*a))
		names = append(names, domain.AttributeNames[i])
	}
	if len(values) < minAttributes {
		return LabelUnknown
	}

	var sum float64
	for _, v := range values {
		sum += v
	}
	mean := sum / float64(len(values))
	if mean == 0 {
		return LabelBalanced
	}

	balanced := true
	type dominant struct {
		name  string
		ratio float64
	}
	var dominants []dominant
	for i, v := range values {
		ratio := (v - mean) / mean
		if ratio > balancedTolerance || ratio < -balancedTolerance {
			balanced = false
		}
		if ratio >= dominantThreshold {
			dominants = append(dominants, dominant{name: names[i], ratio: ratio})
		}
	}

	if balanced {
		return LabelBalanced
	}
	if len(dominants) == 0 {
		// Uneven spread without a clear leader: take the single highest.
		best := 0
		for i := 1; i < len(values); i++ {
			if values[i] > values[best] {
				best = i
			}
		}
		return names[best]
	}

	sort.Slice(dominants, func(i, j int) bool { return dominants[i].ratio > dominants[j].ratio })
	if len(dominants) > 3 {
		dominants = dominants[:3]
	}

	parts := make([]string, len(dominants))
	for i, d := range dominants {
		parts[i] = d.name
	}
	return strings.Join(parts, "-")
}
