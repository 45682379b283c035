package mapping

import (
	"fmt"
	"sort"
	"strings"
)

// Stats tallies what an import did, per entity type. The zero value is
// ready to use.
type Stats struct {
	Stored  map[string]int `json:"stored,omitempty"`
	Skipped map[string]int `json:"skipped,omitempty"`
}

// Store counts one newly stored entity.
func (st *Stats) Store(entityType string) {
	if st.Stored == nil {
		st.Stored = map[string]int{}
	}
	st.Stored[entityType]++
}

// Skip counts one entity skipped as a duplicate.
func (st *Stats) Skip(entityType string) {
	if st.Skipped == nil {
		st.Skipped = map[string]int{}
	}
	st.Skipped[entityType]++
}

// TotalStored sums stored entities across entity types.
func (st *Stats) TotalStored() int {
	return total(st.Stored)
}

// TotalSkipped sums skipped duplicates across entity types.
func (st *Stats) TotalSkipped() int {
	return total(st.Skipped)
}

func total(m map[string]int) int {
	n := 0
	for _, v := range m {
		n += v
	}
	return n
}

// Summary renders the tallies as a user-facing sentence, e.g.
// "read 3 records (2 fermentables, 1 hop), skipped 1 duplicate".
func (st *Stats) Summary() string {
	var b strings.Builder
	stored := st.TotalStored()
	fmt.Fprintf(&b, "read %d %s", stored, plural("record", stored))
	if breakdown := describe(st.Stored); breakdown != "" {
		fmt.Fprintf(&b, " (%s)", breakdown)
	}
	if skipped := st.TotalSkipped(); skipped > 0 {
		fmt.Fprintf(&b, ", skipped %d %s", skipped, plural("duplicate", skipped))
	}
	return b.String()
}

// describe renders per-type counts in a stable order, pluralising the
// type names naively ("2 fermentables, 1 hop").
func describe(m map[string]int) string {
	if len(m) == 0 {
		return ""
	}
	types := make([]string, 0, len(m))
	for t := range m {
		types = append(types, t)
	}
	sort.Strings(types)
	parts := make([]string, 0, len(types))
	for _, t := range types {
		parts = append(parts, fmt.Sprintf("%d %s", m[t], plural(t, m[t])))
	}
	return strings.Join(parts, ", ")
}

func plural(noun string, n int) string {
	if n == 1 {
		return noun
	}
	for _, suffix := range []string{"s", "sh", "ch", "x"} {
		if strings.HasSuffix(noun, suffix) {
			return noun + "es"
		}
	}
	return noun + "s"
}
