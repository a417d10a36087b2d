// Package venue maps venue names to countries and decides whether an event
// needs customs handling. The table is an allow-list of known venues
// outside the home country; any venue not on it is treated as domestic.
package venue

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"sync"
)

// Entry maps one venue name (or alias) to its country.
type Entry struct {
	Name            string `yaml:"name"`
	Country         string `yaml:"country"`
	RequiresCustoms bool   `yaml:"requires_customs"`
}

type Resolution struct {
	Country         string `json:"country"`
	RequiresCustoms bool   `json:"requiresCustoms"`
}

// Resolver answers venue→country lookups. Lookup is a case-sensitive exact
// match; an unmapped venue resolves to the home country with no customs
// requirement. That default is a policy choice, not an error, so it is
// logged at debug level only.
type Resolver struct {
	mu          sync.RWMutex
	homeCountry string
	entries     map[string]Entry
}

func NewResolver(homeCountry string, entries []Entry) *Resolver {
	r := &Resolver{homeCountry: homeCountry}
	r.Replace(entries)
	return r
}

// Replace swaps the whole table. Used by the watcher on hot reload.
func (r *Resolver) Replace(entries []Entry) {
	table := make(map[string]Entry, len(entries))
	for _, e := range entries {
		table[e.Name] = e
	}
	r.mu.Lock()
	r.entries = table
	r.mu.Unlock()
}

func (r *Resolver) Resolve(ctx context.Context, venueName string) Resolution {
	r.mu.RLock()
	entry, ok := r.entries[venueName]
	r.mu.RUnlock()
	if !ok {
		slog.DebugContext(ctx, "unknown venue treated as domestic", "venue", venueName, "country", r.homeCountry)
		return Resolution{Country: r.homeCountry, RequiresCustoms: false}
	}
	return Resolution{Country: entry.Country, RequiresCustoms: entry.RequiresCustoms}
}

func (r *Resolver) RequiresCustoms(ctx context.Context, venueName string) bool {
	return r.Resolve(ctx, venueName).RequiresCustoms
}

func (r *Resolver) CountryOf(ctx context.Context, venueName string) string {
	return r.Resolve(ctx, venueName).Country
}

// Snapshot returns the current table sorted by venue name.
func (r *Resolver) Snapshot() []Entry {
	r.mu.RLock()
	entries := make([]Entry, 0, len(r.entries))
	for _, e := range r.entries {
		entries = append(entries, e)
	}
	r.mu.RUnlock()
	sort.Slice(entries, func(i, j int) bool { return entries[i].Name < entries[j].Name })
	return entries
}

func (e Entry) String() string {
	return fmt.Sprintf("%s -> %s (customs=%t)", e.Name, e.Country, e.RequiresCustoms)
}
