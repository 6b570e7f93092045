package tracker

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SureDisappointment/arc-raiders-quest-tracker/internal/catalog"
	"github.com/SureDisappointment/arc-raiders-quest-tracker/internal/progress"
	"github.com/SureDisappointment/arc-raiders-quest-tracker/internal/storage"
)

// diamond is the canonical test graph: a at the top, b and c in the
// middle, d depending on both.
func diamond() catalog.Catalog {
	return catalog.Catalog{
		{{ID: "a", Title: "A"}},
		{
			{ID: "b", Title: "B", Dependencies: []string{"a"}},
			{ID: "c", Title: "C", Dependencies: []string{"a"}},
		},
		{{ID: "d", Title: "D", Dependencies: []string{"b", "c"}}},
	}
}

func newTracker(t *testing.T, cat catalog.Catalog) *Tracker {
	t.Helper()
	store := progress.NewStore(storage.NewMemoryKV())
	store.Hydrate(context.Background())
	return New(cat, store, nil)
}

func TestToggle(t *testing.T) {
	tr := newTracker(t, diamond())
	ctx := context.Background()

	require.NoError(t, tr.Toggle(ctx, "a"))
	assert.True(t, tr.Completed("a"))

	require.NoError(t, tr.Toggle(ctx, "a"))
	assert.False(t, tr.Completed("a"))
}

func TestToggle_UnknownQuest(t *testing.T) {
	tr := newTracker(t, diamond())

	err := tr.Toggle(context.Background(), "zz")
	var unknownErr *UnknownQuestError
	require.ErrorAs(t, err, &unknownErr)
	assert.Equal(t, "zz", unknownErr.ID)
}

// TestCompleteAncestors_Diamond is the spec's diamond case: fast-forward
// to d completes a, b, c and leaves d itself untouched.
func TestCompleteAncestors_Diamond(t *testing.T) {
	tr := newTracker(t, diamond())
	ctx := context.Background()

	require.NoError(t, tr.CompleteAncestors(ctx, "d"))

	assert.Equal(t, []string{"a", "b", "c"}, tr.Progress().IDs())
	assert.False(t, tr.Completed("d"), "origin must never be auto-completed")
}

func TestCompleteAncestors_Idempotent(t *testing.T) {
	tr := newTracker(t, diamond())
	ctx := context.Background()

	require.NoError(t, tr.CompleteAncestors(ctx, "d"))
	first := tr.Progress().IDs()

	require.NoError(t, tr.CompleteAncestors(ctx, "d"))
	assert.Equal(t, first, tr.Progress().IDs())
}

// TestCompleteAncestors_NoDependencies on a root is a no-op: the origin
// is excluded and there is nothing above it.
func TestCompleteAncestors_NoDependencies(t *testing.T) {
	tr := newTracker(t, diamond())

	require.NoError(t, tr.CompleteAncestors(context.Background(), "a"))
	assert.Empty(t, tr.Progress().IDs())
}

// TestUncompleteDescendants_Diamond is the spec's rewind case: rewinding
// a from a fully completed diamond empties the set.
func TestUncompleteDescendants_Diamond(t *testing.T) {
	tr := newTracker(t, diamond())
	ctx := context.Background()

	require.NoError(t, tr.Progress().Add(ctx, []string{"a", "b", "c", "d"}))
	require.NoError(t, tr.UncompleteDescendants(ctx, "a"))
	assert.Empty(t, tr.Progress().IDs())
}

// TestUncompleteDescendants_IncludesOrigin pins the asymmetry with
// CompleteAncestors: rewinding a quest also un-completes the quest.
func TestUncompleteDescendants_IncludesOrigin(t *testing.T) {
	tr := newTracker(t, diamond())
	ctx := context.Background()

	require.NoError(t, tr.Progress().Add(ctx, []string{"a", "b", "c", "d"}))
	require.NoError(t, tr.UncompleteDescendants(ctx, "b"))

	assert.Equal(t, []string{"a", "c"}, tr.Progress().IDs(),
		"b and its dependant d removed, a and c untouched")
}

func TestAvailable(t *testing.T) {
	tr := newTracker(t, diamond())
	ctx := context.Background()

	assert.True(t, tr.Available("a"), "no dependencies is vacuously available")
	assert.False(t, tr.Available("b"))
	assert.False(t, tr.Available("d"))

	require.NoError(t, tr.Toggle(ctx, "a"))
	assert.False(t, tr.Available("a"), "completed quests are never available")
	assert.True(t, tr.Available("b"))
	assert.False(t, tr.Available("d"))

	require.NoError(t, tr.Progress().Add(ctx, []string{"b", "c"}))
	assert.True(t, tr.Available("d"))
}

// TestHasCompletedDependant_DirectOnly pins that only immediate
// dependants are inspected, never the transitive closure.
func TestHasCompletedDependant_DirectOnly(t *testing.T) {
	tr := newTracker(t, diamond())
	ctx := context.Background()

	require.NoError(t, tr.Toggle(ctx, "d"))

	assert.True(t, tr.HasCompletedDependant("b"))
	assert.True(t, tr.HasCompletedDependant("c"))
	assert.False(t, tr.HasCompletedDependant("a"),
		"d depends on a only transitively; the check is direct-children only")
	assert.False(t, tr.HasCompletedDependant("d"))
}

func TestEdgeCompleted(t *testing.T) {
	tr := newTracker(t, diamond())
	ctx := context.Background()

	edge := catalog.Edge{From: "a", To: "b"}
	assert.False(t, tr.EdgeCompleted(edge))

	require.NoError(t, tr.Toggle(ctx, "a"))
	assert.True(t, tr.EdgeCompleted(edge), "edge follows its source quest")
}

func TestReset(t *testing.T) {
	tr := newTracker(t, diamond())
	ctx := context.Background()

	require.NoError(t, tr.Progress().Add(ctx, []string{"a", "b"}))
	require.NoError(t, tr.Reset(ctx))
	assert.Empty(t, tr.Progress().IDs())
}

// TestJournal_RecordsMutations verifies each operation lands one row.
func TestJournal_RecordsMutations(t *testing.T) {
	st, err := storage.Open(t.TempDir() + "/test.db")
	require.NoError(t, err)
	defer st.Close()

	store := progress.NewStore(st)
	ctx := context.Background()
	store.Hydrate(ctx)
	tr := New(diamond(), store, st)

	require.NoError(t, tr.Toggle(ctx, "a"))
	require.NoError(t, tr.CompleteAncestors(ctx, "d"))
	require.NoError(t, tr.UncompleteDescendants(ctx, "a"))
	require.NoError(t, tr.Reset(ctx))

	entries, err := st.History(ctx, 0)
	require.NoError(t, err)
	require.Len(t, entries, 4)
	assert.Equal(t, storage.OpReset, entries[0].Op)
	assert.Equal(t, storage.OpToggle, entries[3].Op)
	assert.Equal(t, "a", entries[3].QuestID)
}

// TestDeepChain exercises propagation over a longer linear chain.
func TestDeepChain(t *testing.T) {
	chain := catalog.Catalog{
		{{ID: "q0", Title: "Q0"}},
		{{ID: "q1", Title: "Q1", Dependencies: []string{"q0"}}},
		{{ID: "q2", Title: "Q2", Dependencies: []string{"q1"}}},
		{{ID: "q3", Title: "Q3", Dependencies: []string{"q2"}}},
	}
	tr := newTracker(t, chain)
	ctx := context.Background()

	require.NoError(t, tr.CompleteAncestors(ctx, "q3"))
	assert.Equal(t, []string{"q0", "q1", "q2"}, tr.Progress().IDs())

	require.NoError(t, tr.Toggle(ctx, "q3"))
	require.NoError(t, tr.UncompleteDescendants(ctx, "q1"))
	assert.Equal(t, []string{"q0"}, tr.Progress().IDs())
}
