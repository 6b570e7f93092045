// Package progress owns the completed set — the only mutable runtime state
// in the tracker. The set is hydrated once from a key-value collaborator at
// startup and re-serialized in full after every mutation.
package progress

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sort"
)

// Key under which the completed set is persisted.
const Key = "progress"

// KeyValue is the persistence collaborator. Get returns ok=false for a
// missing key.
type KeyValue interface {
	Get(ctx context.Context, key string) (value []byte, ok bool, err error)
	Set(ctx context.Context, key string, value []byte) error
}

// Store holds the completed set and is its single owner: every mutation
// goes through a Store method and is followed by a persistence write.
//
// Store is not safe for concurrent use; the tracker has exactly one
// writer context.
type Store struct {
	kv        KeyValue
	hydrated  bool
	completed map[string]struct{}
}

// NewStore creates an empty, not-yet-hydrated store.
func NewStore(kv KeyValue) *Store {
	return &Store{kv: kv, completed: make(map[string]struct{})}
}

// Hydrate loads persisted progress. It runs at most once per Store:
// later calls are no-ops so a repeated startup trigger cannot clobber
// edits made after the first load.
//
// A missing key, unreadable store, non-JSON value, or JSON value that is
// not an array all count as "no saved progress" and leave the set empty.
func (s *Store) Hydrate(ctx context.Context) {
	if s.hydrated {
		return
	}
	s.hydrated = true

	data, ok, err := s.kv.Get(ctx, Key)
	if err != nil {
		slog.Warn("reading saved progress failed, starting empty", "error", err)
		return
	}
	if !ok {
		return
	}

	var ids []string
	if err := json.Unmarshal(data, &ids); err != nil {
		slog.Warn("saved progress is malformed, starting empty", "error", err)
		return
	}
	for _, id := range ids {
		s.completed[id] = struct{}{}
	}
}

// Hydrated reports whether Hydrate has run.
func (s *Store) Hydrated() bool {
	return s.hydrated
}

// Completed reports membership of id in the completed set.
func (s *Store) Completed(id string) bool {
	_, ok := s.completed[id]
	return ok
}

// IDs returns the completed ids in sorted order.
func (s *Store) IDs() []string {
	ids := make([]string, 0, len(s.completed))
	for id := range s.completed {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Len returns the number of completed quests.
func (s *Store) Len() int {
	return len(s.completed)
}

// Toggle flips membership of id unconditionally. Availability gating is
// the caller's job, not the store's.
func (s *Store) Toggle(ctx context.Context, id string) error {
	if _, ok := s.completed[id]; ok {
		delete(s.completed, id)
	} else {
		s.completed[id] = struct{}{}
	}
	return s.persist(ctx)
}

// Add unions ids into the completed set and persists once.
func (s *Store) Add(ctx context.Context, ids []string) error {
	for _, id := range ids {
		s.completed[id] = struct{}{}
	}
	return s.persist(ctx)
}

// Remove subtracts ids from the completed set and persists once.
func (s *Store) Remove(ctx context.Context, ids []string) error {
	for _, id := range ids {
		delete(s.completed, id)
	}
	return s.persist(ctx)
}

// Reset clears the completed set entirely.
func (s *Store) Reset(ctx context.Context) error {
	s.completed = make(map[string]struct{})
	return s.persist(ctx)
}

// persist serializes the full set as a sorted JSON array of ids.
func (s *Store) persist(ctx context.Context) error {
	data, err := json.Marshal(s.IDs())
	if err != nil {
		return fmt.Errorf("encode progress: %w", err)
	}
	if err := s.kv.Set(ctx, Key, data); err != nil {
		return fmt.Errorf("save progress: %w", err)
	}
	return nil
}
