package ticket

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"billu/internal/domain/ticket/valueobjects"
	"billu/internal/shared/biztime"
)

func makeTicket(t *testing.T, category valueobjects.Category, issueType string, priority valueobjects.Priority, createdAt time.Time) *Ticket {
	t.Helper()
	p := validCenterParams()
	p.Category = category
	p.IssueType = issueType
	p.Priority = priority
	if category.UsesTechnician() {
		p = validTechParams()
		p.Category = category
		p.IssueType = issueType
		p.Priority = priority
	}
	tk, err := NewTicket(p)
	require.NoError(t, err)
	tk.createdAt = createdAt
	return tk
}

func TestFilter_CategoryNormalization(t *testing.T) {
	base := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	tp := makeTicket(t, valueobjects.CategoryThirdParty, "Warranty Claim", valueobjects.PriorityLow, base)
	svc := makeTicket(t, valueobjects.CategoryService, "Repair", valueobjects.PriorityLow, base)

	tests := []struct {
		name  string
		query string
		want  int
	}{
		{"exact", "Third Party", 1},
		{"lowercase", "third party", 1},
		{"padded", "  third party  ", 1},
		{"collapsed spaces", "third   party", 1},
		{"no match", "warranty", 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Filter{Category: tt.query}.Apply([]*Ticket{tp, svc})
			assert.Len(t, got, tt.want)
		})
	}
}

func TestFilter_DateMatchesBusinessCalendarDay(t *testing.T) {
	loc := biztime.Location()

	// Late evening and early morning of the same business day.
	a := time.Date(2026, 3, 10, 23, 30, 0, 0, loc).UTC()
	b := time.Date(2026, 3, 10, 0, 15, 0, 0, loc).UTC()
	c := time.Date(2026, 3, 11, 0, 15, 0, 0, loc).UTC()

	t1 := makeTicket(t, valueobjects.CategoryService, "Repair", valueobjects.PriorityLow, a)
	t2 := makeTicket(t, valueobjects.CategoryService, "Repair", valueobjects.PriorityLow, b)
	t3 := makeTicket(t, valueobjects.CategoryService, "Repair", valueobjects.PriorityLow, c)

	day := time.Date(2026, 3, 10, 12, 0, 0, 0, loc)
	got := Filter{Date: &day}.Apply([]*Ticket{t1, t2, t3})
	assert.Len(t, got, 2)
}

func TestFilter_ExcludeResolved(t *testing.T) {
	base := time.Now().UTC()
	open := makeTicket(t, valueobjects.CategoryService, "Repair", valueobjects.PriorityLow, base)
	resolved := makeTicket(t, valueobjects.CategoryService, "Repair", valueobjects.PriorityLow, base)
	require.NoError(t, resolved.ChangeStatus(valueobjects.StatusResolved, true))

	got := Filter{ExcludeResolved: true}.Apply([]*Ticket{open, resolved})
	require.Len(t, got, 1)
	assert.Equal(t, open, got[0])

	got = Filter{}.Apply([]*Ticket{open, resolved})
	assert.Len(t, got, 2)
}

func TestFilter_PriorityExact(t *testing.T) {
	base := time.Now().UTC()
	high := makeTicket(t, valueobjects.CategoryService, "Repair", valueobjects.PriorityHigh, base)
	low := makeTicket(t, valueobjects.CategoryService, "Repair", valueobjects.PriorityLow, base)

	got := Filter{Priority: valueobjects.PriorityHigh}.Apply([]*Ticket{low, high})
	require.Len(t, got, 1)
	assert.Equal(t, high, got[0])
}

func TestFilter_CombinedConjunction(t *testing.T) {
	loc := biztime.Location()
	day := time.Date(2026, 3, 10, 10, 0, 0, 0, loc)

	match := makeTicket(t, valueobjects.CategoryInStore, "Quick Fix", valueobjects.PriorityHigh, day.UTC())
	wrongDay := makeTicket(t, valueobjects.CategoryInStore, "Quick Fix", valueobjects.PriorityHigh, day.AddDate(0, 0, 1).UTC())
	wrongPriority := makeTicket(t, valueobjects.CategoryInStore, "Quick Fix", valueobjects.PriorityLow, day.UTC())

	f := Filter{Category: "in store", Date: &day, Priority: valueobjects.PriorityHigh, ExcludeResolved: true}
	got := f.Apply([]*Ticket{match, wrongDay, wrongPriority})
	require.Len(t, got, 1)
	assert.Equal(t, match, got[0])
}

func TestFilter_SortNewestFirstStable(t *testing.T) {
	base := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	older := makeTicket(t, valueobjects.CategoryService, "Repair", valueobjects.PriorityLow, base.Add(-time.Hour))
	tieA := makeTicket(t, valueobjects.CategoryService, "Repair", valueobjects.PriorityLow, base)
	tieB := makeTicket(t, valueobjects.CategoryService, "Repair", valueobjects.PriorityLow, base)
	newest := makeTicket(t, valueobjects.CategoryService, "Repair", valueobjects.PriorityLow, base.Add(time.Hour))

	in := []*Ticket{older, tieA, tieB, newest}
	got := Filter{}.Apply(in)

	require.Len(t, got, 4)
	assert.Equal(t, newest, got[0])
	assert.Equal(t, tieA, got[1])
	assert.Equal(t, tieB, got[2])
	assert.Equal(t, older, got[3])

	// Input order untouched.
	assert.Equal(t, older, in[0])
}

func TestFilter_IsZero(t *testing.T) {
	assert.True(t, Filter{}.IsZero())
	assert.False(t, Filter{Category: "demo"}.IsZero())
	assert.False(t, Filter{ExcludeResolved: true}.IsZero())
}
