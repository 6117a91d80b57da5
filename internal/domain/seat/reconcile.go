package seat

import (
	"slices"

	"seating-service/internal/domain/layout"

	"github.com/google/uuid"
)

type NewSeat struct {
	SectionID string
	Number    int
}

type Rekey struct {
	SeatID    uuid.UUID
	SectionID string
}

// Mutations is the difference between stored inventory and resolved sections.
// Every Remove and Rekey targets an Available seat.
type Mutations struct {
	Add    []NewSeat
	Remove []uuid.UUID
	Rekey  []Rekey
}

func (m Mutations) IsEmpty() bool {
	return len(m.Add) == 0 && len(m.Remove) == 0 && len(m.Rekey) == 0
}

// Reconcile computes the mutations that make each section hold exactly
// SeatCount seats without touching Occupied seats. Applying the result and
// reconciling again with the same definitions yields no mutations.
//
// Per section, in resolver order:
//   - legacy-decoded Available members gain an explicit section id;
//   - a short section first adopts Available orphans, then appends seats
//     numbered from its highest member number + 1 (or from the legacy block
//     of its position when empty), skipping numbers already used in the event;
//   - an oversized section drops Available members, highest numbers first.
func Reconcile(defs []layout.SectionDefinition, existing []Seat) Mutations {
	var m Mutations

	used := make(map[int]struct{}, len(existing))
	for _, s := range existing {
		used[s.Number] = struct{}{}
	}

	groups, orphans := GroupBySection(defs, existing)
	spare := slices.DeleteFunc(orphans, func(s Seat) bool { return !s.IsAvailable() })

	seen := make(map[string]struct{}, len(defs))
	for idx, def := range defs {
		if _, dup := seen[def.SectionID]; dup {
			continue
		}
		seen[def.SectionID] = struct{}{}

		members := groups[def.SectionID]
		removed := make(map[uuid.UUID]struct{})

		switch total := len(members); {
		case total > def.SeatCount:
			excess := total - def.SeatCount
			for i := len(members) - 1; i >= 0 && excess > 0; i-- {
				if members[i].IsAvailable() {
					m.Remove = append(m.Remove, members[i].ID)
					removed[members[i].ID] = struct{}{}
					excess--
				}
			}

		case total < def.SeatCount:
			need := def.SeatCount - total

			for need > 0 && len(spare) > 0 {
				m.Rekey = append(m.Rekey, Rekey{SeatID: spare[0].ID, SectionID: def.SectionID})
				spare = spare[1:]
				need--
			}

			next := EncodeLegacyNumber(idx, 1)
			if len(members) > 0 {
				next = members[len(members)-1].Number + 1
			}
			for ; need > 0; need-- {
				for {
					if _, taken := used[next]; !taken {
						break
					}
					next++
				}
				m.Add = append(m.Add, NewSeat{SectionID: def.SectionID, Number: next})
				used[next] = struct{}{}
				next++
			}
		}

		for _, s := range members {
			if _, gone := removed[s.ID]; gone {
				continue
			}
			if s.SectionID == "" && s.IsAvailable() {
				m.Rekey = append(m.Rekey, Rekey{SeatID: s.ID, SectionID: def.SectionID})
			}
		}
	}

	return m
}

// Apply returns a copy of existing with m applied. New seats are Available
// and take their ids from newID.
func Apply(eventID string, existing []Seat, m Mutations, newID func() uuid.UUID) []Seat {
	removed := make(map[uuid.UUID]struct{}, len(m.Remove))
	for _, id := range m.Remove {
		removed[id] = struct{}{}
	}
	rekeyed := make(map[uuid.UUID]string, len(m.Rekey))
	for _, r := range m.Rekey {
		rekeyed[r.SeatID] = r.SectionID
	}

	out := make([]Seat, 0, len(existing)+len(m.Add))
	for _, s := range existing {
		if _, gone := removed[s.ID]; gone && s.IsAvailable() {
			continue
		}
		if sid, ok := rekeyed[s.ID]; ok && s.IsAvailable() {
			s.SectionID = sid
		}
		out = append(out, s)
	}
	for _, a := range m.Add {
		out = append(out, Seat{
			ID:        newID(),
			EventID:   eventID,
			SectionID: a.SectionID,
			Number:    a.Number,
			State:     StateAvailable,
		})
	}
	return out
}
