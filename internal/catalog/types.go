package catalog

// Quest is a single quest in the generated catalog.
// Immutable after generation. Dependencies hold quest ids, not titles.
type Quest struct {
	ID           string   `json:"id"`
	Title        string   `json:"title"`
	URL          string   `json:"url"`
	Dependencies []string `json:"dependencies"`
}

// Tier groups quests whose every dependency lives in an earlier tier.
// Order within a tier carries no meaning; consumers must not rely on it.
type Tier []Quest

// Catalog is the ordered sequence of tiers emitted by the tier sorter.
// Tier index t is minimal: a quest in tier t could not have been placed
// in any tier < t.
type Catalog []Tier

// Edge is a dependency edge: From must be completed before To becomes
// available. From and To are quest ids.
type Edge struct {
	From string `json:"from"`
	To   string `json:"to"`
}

// Quests returns all quests flattened in tier order.
func (c Catalog) Quests() []Quest {
	var quests []Quest
	for _, tier := range c {
		quests = append(quests, tier...)
	}
	return quests
}

// Len returns the total number of quests across all tiers.
func (c Catalog) Len() int {
	n := 0
	for _, tier := range c {
		n += len(tier)
	}
	return n
}

// Quest looks up a quest by id. The second return is false if the id is
// not in the catalog.
func (c Catalog) Quest(id string) (Quest, bool) {
	for _, tier := range c {
		for _, q := range tier {
			if q.ID == id {
				return q, true
			}
		}
	}
	return Quest{}, false
}

// Edges returns every dependency edge in the catalog.
func (c Catalog) Edges() []Edge {
	var edges []Edge
	for _, tier := range c {
		for _, q := range tier {
			for _, dep := range q.Dependencies {
				edges = append(edges, Edge{From: dep, To: q.ID})
			}
		}
	}
	return edges
}

// Dependencies returns the quest-id → dependency-ids adjacency map.
func (c Catalog) Dependencies() map[string][]string {
	deps := make(map[string][]string, c.Len())
	for _, tier := range c {
		for _, q := range tier {
			deps[q.ID] = q.Dependencies
		}
	}
	return deps
}

// Dependants returns the reverse adjacency map: quest-id → ids of quests
// that list it as a direct dependency.
func (c Catalog) Dependants() map[string][]string {
	dependants := make(map[string][]string, c.Len())
	for _, tier := range c {
		for _, q := range tier {
			for _, dep := range q.Dependencies {
				dependants[dep] = append(dependants[dep], q.ID)
			}
		}
	}
	return dependants
}
