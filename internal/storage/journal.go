package storage

import (
	"context"
	"fmt"

	"github.com/google/uuid"
)

// Journal operation names, one per tracker mutation.
const (
	OpToggle                = "toggle"
	OpCompleteAncestors     = "complete_ancestors"
	OpUncompleteDescendants = "uncomplete_descendants"
	OpReset                 = "reset"
)

// JournalEntry is one recorded progress mutation.
type JournalEntry struct {
	ID        string `json:"id"`
	Op        string `json:"op"`
	QuestID   string `json:"quest_id,omitempty"`
	CreatedAt string `json:"created_at"`
}

// RecordMutation appends a journal row for one progress mutation.
// Entry ids are UUIDv7, so the primary key sorts by creation time.
// QuestID is empty for reset.
func (s *Store) RecordMutation(ctx context.Context, op, questID string) error {
	id := uuid.Must(uuid.NewV7()).String()
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO journal (id, op, quest_id) VALUES (?, ?, ?)
	`, id, op, questID)
	if err != nil {
		return fmt.Errorf("record mutation: %w", err)
	}
	return nil
}

// History returns the most recent journal entries, newest first.
// limit <= 0 returns everything.
func (s *Store) History(ctx context.Context, limit int) ([]JournalEntry, error) {
	query := `SELECT id, op, quest_id, created_at FROM journal ORDER BY id DESC`
	args := []any{}
	if limit > 0 {
		query += ` LIMIT ?`
		args = append(args, limit)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query journal: %w", err)
	}
	defer rows.Close()

	entries := []JournalEntry{}
	for rows.Next() {
		var e JournalEntry
		if err := rows.Scan(&e.ID, &e.Op, &e.QuestID, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan journal entry: %w", err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate journal: %w", err)
	}

	return entries, nil
}
