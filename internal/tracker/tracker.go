// Package tracker is the runtime heart of the quest tracker: it combines
// the static catalog with the mutable completed set and exposes the
// operations a UI consumes — toggling, completion propagation, and the
// derived per-node and per-edge predicates.
package tracker

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/SureDisappointment/arc-raiders-quest-tracker/internal/catalog"
	"github.com/SureDisappointment/arc-raiders-quest-tracker/internal/progress"
	"github.com/SureDisappointment/arc-raiders-quest-tracker/internal/storage"
)

// UnknownQuestError reports a quest id that is not in the catalog.
type UnknownQuestError struct {
	ID string
}

func (e *UnknownQuestError) Error() string {
	return fmt.Sprintf("unknown quest %q", e.ID)
}

// Journal records progress mutations for inspection. Journal failures
// never fail the mutation; they are logged and dropped.
type Journal interface {
	RecordMutation(ctx context.Context, op, questID string) error
}

// Tracker wires the catalog's dependency graph to the progress store.
// Derived state (availability, completed edges) is recomputed from the
// completed set on demand, never cached across mutations.
type Tracker struct {
	cat        catalog.Catalog
	quests     map[string]catalog.Quest
	deps       map[string][]string
	dependants map[string][]string
	store      *progress.Store
	journal    Journal
}

// New builds a tracker over cat and store. journal may be nil.
func New(cat catalog.Catalog, store *progress.Store, journal Journal) *Tracker {
	quests := make(map[string]catalog.Quest, cat.Len())
	for _, q := range cat.Quests() {
		quests[q.ID] = q
	}
	return &Tracker{
		cat:        cat,
		quests:     quests,
		deps:       cat.Dependencies(),
		dependants: cat.Dependants(),
		store:      store,
		journal:    journal,
	}
}

// Catalog returns the static catalog the tracker was built over.
func (t *Tracker) Catalog() catalog.Catalog {
	return t.cat
}

// Progress returns the underlying progress store.
func (t *Tracker) Progress() *progress.Store {
	return t.store
}

// Toggle flips completion of id unconditionally and persists.
// The caller decides whether toggling an unavailable quest makes sense.
func (t *Tracker) Toggle(ctx context.Context, id string) error {
	if _, ok := t.quests[id]; !ok {
		return &UnknownQuestError{ID: id}
	}
	if err := t.store.Toggle(ctx, id); err != nil {
		return err
	}
	t.record(ctx, storage.OpToggle, id)
	return nil
}

// Reset clears all progress.
func (t *Tracker) Reset(ctx context.Context) error {
	if err := t.store.Reset(ctx); err != nil {
		return err
	}
	t.record(ctx, storage.OpReset, "")
	return nil
}

// CompleteAncestors marks every transitive prerequisite of id completed.
// The origin itself is NOT completed: fast-forwarding brings the player
// to just before the quest, it does not finish it for them. Idempotent.
func (t *Tracker) CompleteAncestors(ctx context.Context, id string) error {
	if _, ok := t.quests[id]; !ok {
		return &UnknownQuestError{ID: id}
	}

	closure := t.closure(id, t.deps)
	delete(closure, id)

	if err := t.store.Add(ctx, keys(closure)); err != nil {
		return err
	}
	t.record(ctx, storage.OpCompleteAncestors, id)
	return nil
}

// UncompleteDescendants un-completes id and every quest that transitively
// depends on it. Unlike CompleteAncestors this includes the origin:
// rewinding a quest also rewinds the quest itself.
func (t *Tracker) UncompleteDescendants(ctx context.Context, id string) error {
	if _, ok := t.quests[id]; !ok {
		return &UnknownQuestError{ID: id}
	}

	closure := t.closure(id, t.dependants)

	if err := t.store.Remove(ctx, keys(closure)); err != nil {
		return err
	}
	t.record(ctx, storage.OpUncompleteDescendants, id)
	return nil
}

// Completed reports whether id is in the completed set.
func (t *Tracker) Completed(id string) bool {
	return t.store.Completed(id)
}

// Available reports whether id can be started: not yet completed, and
// every dependency completed. Vacuously true for quests with no
// dependencies.
func (t *Tracker) Available(id string) bool {
	if t.store.Completed(id) {
		return false
	}
	for _, dep := range t.deps[id] {
		if !t.store.Completed(dep) {
			return false
		}
	}
	return true
}

// HasCompletedDependant reports whether any quest directly listing id as
// a dependency is completed. Direct children only - the check is not
// transitive.
func (t *Tracker) HasCompletedDependant(id string) bool {
	for _, child := range t.dependants[id] {
		if t.store.Completed(child) {
			return true
		}
	}
	return false
}

// EdgeCompleted reports whether an edge should render as satisfied:
// true iff the edge's source (the prerequisite) is completed.
func (t *Tracker) EdgeCompleted(e catalog.Edge) bool {
	return t.store.Completed(e.From)
}

// closure walks the adjacency map from origin with a worklist, returning
// every reachable id including the origin. The visited set keeps the
// walk terminating and single-visit on diamonds.
func (t *Tracker) closure(origin string, adjacency map[string][]string) map[string]struct{} {
	visited := map[string]struct{}{origin: {}}
	work := []string{origin}

	for len(work) > 0 {
		curr := work[len(work)-1]
		work = work[:len(work)-1]
		for _, next := range adjacency[curr] {
			if _, seen := visited[next]; seen {
				continue
			}
			visited[next] = struct{}{}
			work = append(work, next)
		}
	}

	return visited
}

func (t *Tracker) record(ctx context.Context, op, questID string) {
	if t.journal == nil {
		return
	}
	if err := t.journal.RecordMutation(ctx, op, questID); err != nil {
		slog.Warn("journal write failed", "op", op, "quest", questID, "error", err)
	}
}

func keys(set map[string]struct{}) []string {
	ids := make([]string, 0, len(set))
	for id := range set {
		ids = append(ids, id)
	}
	return ids
}
