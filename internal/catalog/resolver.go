// Package catalog resolves noisy equipment card names to their slot and
// canonical display name.
package catalog

import (
	"sort"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Match is a resolved card.
type Match struct {
	Slot int
	Name string
}

// Resolver matches free text against the card catalog.
type Resolver struct {
	// normalized key -> original key, precomputed once.
	normalized map[string]string
	// orderedKeys fixes the scan order: when a token is contained in two
	// catalog keys, the same key must win on every call.
	orderedKeys []string
}

// NewResolver builds a resolver over the built-in card catalog.
func NewResolver() *Resolver {
	r := &Resolver{normalized: make(map[string]string, len(cardSlots))}
	for key := range cardSlots {
		nk := Normalize(key)
		r.normalized[nk] = key
		r.orderedKeys = append(r.orderedKeys, nk)
	}
	sort.Strings(r.orderedKeys)
	return r
}

var stripAccents = transform.Chain(
	norm.NFD,
	runes.Remove(runes.In(unicode.Mn)),
	norm.NFC,
)

// Normalize lowercases the input and folds diacritics so "Énergie" and
// "energie" compare equal.
func Normalize(s string) string {
	folded, _, err := transform.String(stripAccents, strings.ToLower(s))
	if err != nil {
		return strings.ToLower(s)
	}
	return folded
}

// Resolve matches a single candidate word against the catalog. Containment
// runs both ways so a clipped OCR read still matches the full key.
func (r *Resolver) Resolve(candidate string) (Match, bool) {
	word := Normalize(strings.TrimSpace(candidate))
	if len(word) < MinCandidateLength {
		return Match{}, false
	}

	for _, normKey := range r.orderedKeys {
		if strings.Contains(word, normKey) || strings.Contains(normKey, word) {
			key := r.normalized[normKey]
			return Match{Slot: cardSlots[key], Name: displayName(key)}, true
		}
	}
	return Match{}, false
}

// FindAll scans a block of OCR text and returns the first match per slot.
func (r *Resolver) FindAll(text string) map[int]Match {
	normalized := Normalize(text)
	found := make(map[int]Match)
	for _, normKey := range r.orderedKeys {
		key := r.normalized[normKey]
		slot := cardSlots[key]
		if _, ok := found[slot]; ok {
			continue
		}
		if strings.Contains(normalized, normKey) {
			found[slot] = Match{Slot: slot, Name: displayName(key)}
		}
	}
	return found
}

func displayName(key string) string {
	if canonical, ok := canonicalNames[key]; ok {
		return canonical
	}
	return capitalize(key)
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	r := []rune(s)
	r[0] = unicode.ToUpper(r[0])
	return string(r)
}
