// challenge/selector.go - Session assembly with fallback and dedup
package challenge

import (
	"errors"
	"fmt"
	"math/rand"
	"time"
)

// ErrNoChallenges is returned only when the entire catalog is empty. That is a
// build/configuration error, not a runtime-recoverable one.
var ErrNoChallenges = errors.New("no challenges available")

// DefaultSessionSize is the number of exercises in a standard session.
const DefaultSessionSize = 4

// SessionTimeLimitSeconds is stamped onto every selected instance, overriding
// format-specific limits. Sessions run on a uniform per-exercise budget.
const SessionTimeLimitSeconds = 180

// Selector assembles fixed-size sessions of distinct challenge instances.
type Selector struct {
	catalog Catalog
	rng     *rand.Rand
	now     func() time.Time
}

// NewSelector returns a selector over the given catalog. The random source and
// clock are injected so selection and id minting are reproducible under test.
func NewSelector(catalog Catalog, rng *rand.Rand, now func() time.Time) *Selector {
	if now == nil {
		now = time.Now
	}
	return &Selector{catalog: catalog, rng: rng, now: now}
}

// SelectSession returns count distinct instances for the given skill area and
// difficulty. Difficulty is advisory: an unknown or empty difficulty widens to
// every tier of the same skill area. An unknown skill area falls back to the
// first non-empty catalog bucket. Id-uniqueness within the returned session is
// a hard invariant; content-uniqueness is best-effort.
func (s *Selector) SelectSession(skill SkillArea, difficulty Difficulty, count int) ([]Instance, error) {
	if count <= 0 {
		count = DefaultSessionSize
	}

	candidates := s.catalog.Lookup(skill, difficulty)

	if len(candidates) == 0 {
		candidates = s.widenDifficulty(skill)
	}
	if len(candidates) == 0 {
		candidates = s.firstNonEmptyBucket()
	}
	if len(candidates) == 0 {
		return nil, ErrNoChallenges
	}

	pool := make([]Template, len(candidates))
	copy(pool, candidates)
	s.rng.Shuffle(len(pool), func(i, j int) {
		pool[i], pool[j] = pool[j], pool[i]
	})

	selected := make([]Instance, 0, count)
	seen := make(map[string]bool, count)
	for _, tpl := range pool {
		if len(selected) >= count {
			break
		}
		// The first pick is always accepted to guarantee forward progress.
		if seen[tpl.ID] && len(selected) > 0 {
			continue
		}
		seen[tpl.ID] = true
		selected = append(selected, tpl.Instantiate(tpl.ID))
	}

	// Pool exhausted: wrap around, re-minting ids so the session never holds
	// two instances with the same id even when content repeats.
	repeat := 0
	for len(selected) < count {
		tpl := pool[repeat%len(pool)]
		repeat++
		inst := tpl.Instantiate(fmt.Sprintf("%s-repeat-%d", tpl.ID, repeat))
		selected = append(selected, inst)
	}

	// Session-scoped restamp: uniform time budget and a final unique id.
	ts := s.now().UnixMilli()
	for i := range selected {
		selected[i].TimeLimitSeconds = SessionTimeLimitSeconds
		selected[i].ID = fmt.Sprintf("%s-%d-%d-%04x", selected[i].ID, ts, i, s.rng.Intn(0x10000))
		ensureRenderable(&selected[i])
	}

	return selected, nil
}

// widenDifficulty merges every tier under the same skill area, in tier order.
// Skill-area integrity is preserved in this fallback.
func (s *Selector) widenDifficulty(skill SkillArea) []Template {
	var merged []Template
	for _, d := range Difficulties {
		merged = append(merged, s.catalog.Lookup(skill, d)...)
	}
	return merged
}

// firstNonEmptyBucket walks the catalog in its fixed iteration order and
// returns the first (skillArea, difficulty) pool with content. Last-resort
// fallback; succeeds whenever the catalog is non-empty.
func (s *Selector) firstNonEmptyBucket() []Template {
	for _, sa := range SkillAreas {
		for _, d := range Difficulties {
			if pool := s.catalog.Lookup(sa, d); len(pool) > 0 {
				return pool
			}
		}
	}
	return nil
}
