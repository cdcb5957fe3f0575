package ticket

import (
	"sort"
	"time"

	"billu/internal/domain/ticket/valueobjects"
	"billu/internal/shared/biztime"
)

// Filter narrows a ticket listing. Zero values mean "no constraint" for
// every field.
type Filter struct {
	// Category matches case-insensitively with surrounding and repeated
	// whitespace ignored.
	Category string
	// Date matches tickets created on the same calendar day in the
	// business timezone.
	Date *time.Time
	// Priority matches exactly.
	Priority valueobjects.Priority
	// ExcludeResolved hides Resolved tickets.
	ExcludeResolved bool
}

// IsZero reports whether the filter constrains nothing.
func (f Filter) IsZero() bool {
	return f.Category == "" && f.Date == nil && f.Priority == "" && !f.ExcludeResolved
}

// Matches reports whether a single ticket passes the filter.
func (f Filter) Matches(t *Ticket) bool {
	if f.Category != "" {
		want, ok := valueobjects.NormalizeCategory(f.Category)
		if !ok || t.Category() != want {
			return false
		}
	}
	if f.Date != nil && !biztime.SameBizDay(t.CreatedAt(), *f.Date) {
		return false
	}
	if f.Priority != "" && t.Priority() != f.Priority {
		return false
	}
	if f.ExcludeResolved && t.Status().IsResolved() {
		return false
	}
	return true
}

// Apply filters tickets and returns them ordered newest first. The sort is
// stable so tickets sharing a creation timestamp keep their input order. The
// input slice is never mutated.
func (f Filter) Apply(tickets []*Ticket) []*Ticket {
	out := make([]*Ticket, 0, len(tickets))
	for _, t := range tickets {
		if f.Matches(t) {
			out = append(out, t)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt().After(out[j].CreatedAt())
	})
	return out
}
