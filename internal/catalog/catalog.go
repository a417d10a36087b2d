// Package catalog holds the static set of standard production tasks. The
// table is defined at build time and never mutated; the injector
// materializes it into concrete tasks per event.
package catalog

import (
	"sort"

	"github.com/showdesk/showdesk/internal/task"
)

// Definition is a standard task template with a fixed day offset from the
// event date.
type Definition struct {
	CatalogID        string
	Title            string
	Description      string
	Category         task.Category
	Priority         task.Priority
	Assignee         task.Assignee
	DaysBeforeEvent  int
	GuidingQuestions []string
	IsCritical       bool
}

// Entries returns the catalog ordered by descending DaysBeforeEvent, the
// order the planning timeline renders it in. The returned slice is a copy.
func Entries() []Definition {
	entries := make([]Definition, len(definitions))
	copy(entries, definitions)
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].DaysBeforeEvent > entries[j].DaysBeforeEvent
	})
	return entries
}

// ByID looks up a single definition.
func ByID(catalogID string) (Definition, bool) {
	for _, def := range definitions {
		if def.CatalogID == catalogID {
			return def, true
		}
	}
	return Definition{}, false
}

// ByCategory groups the catalog by category, each group in timeline order.
func ByCategory() map[task.Category][]Definition {
	grouped := make(map[task.Category][]Definition)
	for _, def := range Entries() {
		grouped[def.Category] = append(grouped[def.Category], def)
	}
	return grouped
}

// Critical returns the entries flagged as critical, in timeline order.
func Critical() []Definition {
	var critical []Definition
	for _, def := range Entries() {
		if def.IsCritical {
			critical = append(critical, def)
		}
	}
	return critical
}

// WithinDays returns the entries whose offset is at most n days before the
// event, in timeline order.
func WithinDays(n int) []Definition {
	var within []Definition
	for _, def := range Entries() {
		if def.DaysBeforeEvent <= n {
			within = append(within, def)
		}
	}
	return within
}

// Size is the number of standard task definitions.
func Size() int {
	return len(definitions)
}
