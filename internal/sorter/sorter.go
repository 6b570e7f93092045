// Package sorter implements the build-time tier sort: it resolves scraped
// quest titles to stable ids and arranges the quests into dependency tiers,
// rejecting any source whose dependency graph contains a cycle.
package sorter

import (
	"fmt"
	"log/slog"
	"sort"
	"strings"

	"github.com/SureDisappointment/arc-raiders-quest-tracker/internal/catalog"
)

// StuckQuest is a quest that could not be placed in any tier because some
// of its dependencies were never placed. A set of mutually stuck quests
// forms a dependency cycle.
type StuckQuest struct {
	ID    string   `json:"id"`
	Title string   `json:"title"`
	Unmet []string `json:"unmet"` // dependency ids still unplaced
}

// CycleError reports a dependency cycle in the catalog source.
// No catalog is emitted when this is returned.
type CycleError struct {
	Stuck []StuckQuest
}

func (e *CycleError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "dependency cycle: %d quest(s) could not be placed:", len(e.Stuck))
	for _, s := range e.Stuck {
		fmt.Fprintf(&b, "\n  %s waits on %s", s.ID, strings.Join(s.Unmet, ", "))
	}
	return b.String()
}

// Sort turns a raw title-keyed source into a tiered catalog.
//
// Titles are slugified into ids; a slug collision is logged and the
// lexically later title overwrites the mapping (last write wins).
// Dependency titles that resolve to no quest are dropped from that
// quest's dependency list.
//
// Tiering places, on each pass, every unplaced quest whose dependencies
// are all already placed; tier 0 is the quests with no dependencies.
// If a pass places nothing while quests remain, those quests form a
// cycle and Sort returns a *CycleError instead of a catalog.
//
// Output tiers are sorted by id so the artifact is byte-stable, but the
// order within a tier is not part of the contract.
func Sort(src catalog.RawSource) (catalog.Catalog, error) {
	// Process titles in lexical order so collisions resolve
	// deterministically.
	titles := make([]string, 0, len(src))
	for title := range src {
		titles = append(titles, title)
	}
	sort.Strings(titles)

	idByTitle := make(map[string]string, len(titles))
	titleByID := make(map[string]string, len(titles))
	for _, title := range titles {
		id := catalog.Slugify(title)
		if prev, dup := titleByID[id]; dup {
			slog.Warn("duplicate quest id, later title wins",
				"id", id, "title", title, "previous", prev)
		}
		idByTitle[title] = id
		titleByID[id] = title
	}

	quests := make(map[string]catalog.Quest, len(titleByID))
	for id, title := range titleByID {
		entry := src[title]
		deps := resolveDependencies(id, entry.Dependencies, idByTitle)
		quests[id] = catalog.Quest{
			ID:           id,
			Title:        title,
			URL:          entry.URL,
			Dependencies: deps,
		}
	}

	return tierize(quests)
}

// resolveDependencies rewrites dependency titles to ids, dropping titles
// that match no quest. A dropped dependency makes the quest more
// available than the source claims; that is accepted data cleaning.
func resolveDependencies(id string, titles []string, idByTitle map[string]string) []string {
	deps := make([]string, 0, len(titles))
	for _, title := range titles {
		depID, ok := idByTitle[title]
		if !ok {
			slog.Debug("dropping unresolvable dependency",
				"quest", id, "dependency", title)
			continue
		}
		deps = append(deps, depID)
	}
	return deps
}

// tierize runs the placement passes over the resolved quest map.
func tierize(quests map[string]catalog.Quest) (catalog.Catalog, error) {
	var tiers catalog.Catalog
	placed := make(map[string]bool, len(quests))
	remaining := make(map[string]catalog.Quest, len(quests))
	for id, q := range quests {
		remaining[id] = q
	}

	for len(remaining) > 0 {
		var tier catalog.Tier
		for _, q := range remaining {
			if allPlaced(q.Dependencies, placed) {
				tier = append(tier, q)
			}
		}

		if len(tier) == 0 {
			return nil, stuck(remaining, placed)
		}

		sort.Slice(tier, func(i, j int) bool { return tier[i].ID < tier[j].ID })
		for _, q := range tier {
			placed[q.ID] = true
			delete(remaining, q.ID)
		}
		tiers = append(tiers, tier)
	}

	return tiers, nil
}

func allPlaced(deps []string, placed map[string]bool) bool {
	for _, dep := range deps {
		if !placed[dep] {
			return false
		}
	}
	return true
}

// stuck builds the cycle report for quests that can never be placed.
func stuck(remaining map[string]catalog.Quest, placed map[string]bool) *CycleError {
	report := make([]StuckQuest, 0, len(remaining))
	for _, q := range remaining {
		var unmet []string
		for _, dep := range q.Dependencies {
			if !placed[dep] {
				unmet = append(unmet, dep)
			}
		}
		sort.Strings(unmet)
		report = append(report, StuckQuest{ID: q.ID, Title: q.Title, Unmet: unmet})
	}
	sort.Slice(report, func(i, j int) bool { return report[i].ID < report[j].ID })
	return &CycleError{Stuck: report}
}
