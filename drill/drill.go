// Package drill turns the kata corpus into something runnable: a registry
// of named drills grouped by topic, and an instrumented runner that times
// them, logs them, and records results.
package drill

import (
	"fmt"
	"io"
	"sort"
)

// Difficulty buckets, as the corpus labels its problems.
const (
	Easy   = "easy"
	Medium = "medium"
	Hard   = "hard"
)

// A Drill is one exercise: a demonstration that checks its own output and
// fails loudly when the algorithm under drill misbehaves.
type Drill struct {
	// Name uniquely identifies the drill, e.g. "list/merge-sorted".
	Name string

	// Topic groups drills the way the corpus groups its directories.
	Topic string

	// Difficulty is one of Easy, Medium, Hard.
	Difficulty string

	// Minutes is the interview time budget.
	Minutes int

	// Summary is a one-line description for listings.
	Summary string

	// Run executes the drill, writing its walkthrough to w. A non-nil
	// error means the demonstrated property did not hold.
	Run func(w io.Writer) error
}

// Registry holds drills by name.
type Registry struct {
	drills map[string]Drill
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{drills: make(map[string]Drill)}
}

// Register adds a drill. Duplicate names and incomplete drills panic, since
// registration happens at package wiring time.
func (r *Registry) Register(d Drill) {
	if d.Name == "" || d.Topic == "" || d.Run == nil {
		panic("drill: drill needs a name, a topic, and a run function")
	}

	if _, ok := r.drills[d.Name]; ok {
		panic(fmt.Sprintf("drill: duplicate drill %q", d.Name))
	}

	r.drills[d.Name] = d
}

// Lookup returns the named drill.
func (r *Registry) Lookup(name string) (Drill, bool) {
	d, ok := r.drills[name]
	return d, ok
}

// Len returns the number of registered drills.
func (r *Registry) Len() int { return len(r.drills) }

// Topics returns the distinct topics, sorted.
func (r *Registry) Topics() []string {
	seen := make(map[string]bool)
	var topics []string

	for _, d := range r.drills {
		if !seen[d.Topic] {
			seen[d.Topic] = true
			topics = append(topics, d.Topic)
		}
	}

	sort.Strings(topics)

	return topics
}

// ByTopic returns the drills of one topic, sorted by name.
func (r *Registry) ByTopic(topic string) []Drill {
	var out []Drill
	for _, d := range r.drills {
		if d.Topic == topic {
			out = append(out, d)
		}
	}

	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })

	return out
}

// All returns every drill, sorted by name.
func (r *Registry) All() []Drill {
	out := make([]Drill, 0, len(r.drills))
	for _, d := range r.drills {
		out = append(out, d)
	}

	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })

	return out
}
