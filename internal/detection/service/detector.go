package service

import (
	"math/rand/v2"
	"sort"
	"sync"

	detectionDomain "github.com/PrakritiSharma17/pii-guardian-pro-67/internal/detection/domain"
)

// Detector scans text with the active pattern subset and produces match
// records. It holds no per-call state and is safe for concurrent use.
type Detector struct {
	registry *Registry

	// rng, when set, replaces the process-wide random source for synthetic
	// confidence values so tests can be made reproducible. Guarded by mu
	// because *rand.Rand is not safe for concurrent use.
	rng *rand.Rand
	mu  sync.Mutex
}

// NewDetector creates a detector backed by the given registry.
func NewDetector(registry *Registry) *Detector {
	return &Detector{registry: registry}
}

// NewDetectorWithSource creates a detector that draws synthetic confidence
// values from the provided seeded generator instead of the global one.
func NewDetectorWithSource(registry *Registry, rng *rand.Rand) *Detector {
	return &Detector{registry: registry, rng: rng}
}

// Detect runs every active rule for the tier over text and returns the kept
// matches in left-to-right text order.
//
// Each recognizer reports its own non-overlapping occurrences; across rules,
// a match that overlaps one found by an earlier rule is discarded. Given the
// same text and tier the kept ranges and categories are identical on every
// call; only the confidence values vary, and those stay within [0.6, 1.0).
func (d *Detector) Detect(text string, tier detectionDomain.Tier) []detectionDomain.Match {
	var kept []detectionDomain.Match

	for _, rule := range d.registry.Rules(tier) {
		locations := rule.Recognizer.FindAllStringIndex(text, -1)
		for _, loc := range locations {
			match := detectionDomain.Match{
				Category: rule.Category,
				Text:     text[loc[0]:loc[1]],
				Start:    loc[0],
				End:      loc[1],
			}
			if overlapsAny(kept, match) {
				continue
			}
			match.Confidence = d.confidence()
			kept = append(kept, match)
		}
	}

	sort.Slice(kept, func(i, j int) bool { return kept[i].Start < kept[j].Start })
	return kept
}

// confidence returns a synthetic confidence in [0.6, 1.0).
func (d *Detector) confidence() float64 {
	if d.rng != nil {
		d.mu.Lock()
		defer d.mu.Unlock()
		return 0.6 + d.rng.Float64()*0.4
	}
	return 0.6 + rand.Float64()*0.4
}

// overlapsAny reports whether candidate shares any byte offset with a kept match.
func overlapsAny(kept []detectionDomain.Match, candidate detectionDomain.Match) bool {
	for _, m := range kept {
		if m.Overlaps(candidate) {
			return true
		}
	}
	return false
}
