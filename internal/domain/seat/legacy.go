package seat

import (
	"slices"
	"strconv"

	"seating-service/internal/domain/layout"
)

// LegacyStride is the block size of the historical numbering scheme
// seatNumber = sectionIndex*LegacyStride + seatWithinSection.
const LegacyStride = 1000

func Label(number int) string {
	return "Seat " + strconv.Itoa(number)
}

// EncodeLegacyNumber returns the first-class number for a seat position in
// the historical scheme. sectionIndex is zero-based, seatWithin one-based.
func EncodeLegacyNumber(sectionIndex, seatWithin int) int {
	return sectionIndex*LegacyStride + seatWithin
}

// DecodeLegacyNumber splits a historical seat number. ok is false for numbers
// the scheme never produced.
func DecodeLegacyNumber(number int) (sectionIndex, seatWithin int, ok bool) {
	if number <= 0 || number%LegacyStride == 0 {
		return 0, 0, false
	}
	return number / LegacyStride, number % LegacyStride, true
}

type membership int

const (
	unresolved membership = iota
	byID
	byLegacyNumber
)

// ResolveSectionOf is the only place seat-to-section membership is decided.
// An explicit section id wins; a seat without one falls back to the legacy
// number decoded against the resolved list.
func ResolveSectionOf(s Seat, defs []layout.SectionDefinition) (string, bool) {
	id, how := resolveSectionOf(s, defs)
	return id, how != unresolved
}

func resolveSectionOf(s Seat, defs []layout.SectionDefinition) (string, membership) {
	if s.SectionID != "" {
		for _, d := range defs {
			if d.SectionID == s.SectionID {
				return d.SectionID, byID
			}
		}
		return "", unresolved
	}

	idx, _, ok := DecodeLegacyNumber(s.Number)
	if !ok || idx >= len(defs) {
		return "", unresolved
	}
	return defs[idx].SectionID, byLegacyNumber
}

// GroupBySection buckets seats by resolved section, each bucket ordered by
// seat number. Seats that resolve to no section are returned as orphans.
func GroupBySection(defs []layout.SectionDefinition, seats []Seat) (map[string][]Seat, []Seat) {
	groups := make(map[string][]Seat, len(defs))
	var orphans []Seat
	for _, s := range seats {
		id, how := resolveSectionOf(s, defs)
		if how == unresolved {
			orphans = append(orphans, s)
			continue
		}
		groups[id] = append(groups[id], s)
	}
	for id := range groups {
		sortByNumber(groups[id])
	}
	sortByNumber(orphans)
	return groups, orphans
}

func sortByNumber(seats []Seat) {
	slices.SortFunc(seats, func(a, b Seat) int {
		if a.Number != b.Number {
			return a.Number - b.Number
		}
		return slices.Compare(a.ID[:], b.ID[:])
	})
}

// FallbackMembers counts the seats that belong to the event's fallback
// section: those keyed to it, and unkeyed seats whose legacy number decodes to
// the first section. Seats of removed sections are not counted, so the
// fallback section never grows to cover them.
func FallbackMembers(eventID string, seats []Seat) int {
	fallbackID := layout.FallbackSectionID(eventID)
	n := 0
	for _, s := range seats {
		if s.SectionID == fallbackID {
			n++
			continue
		}
		if s.SectionID == "" {
			if idx, _, ok := DecodeLegacyNumber(s.Number); ok && idx == 0 {
				n++
			}
		}
	}
	return n
}
