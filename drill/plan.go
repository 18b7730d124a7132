package drill

import (
	"fmt"
	"math/rand"
	"os"

	"gopkg.in/yaml.v3"
)

// Plan is a practice session loaded from YAML: which topics to drill, how
// many drills of each, and whether to shuffle them.
//
//	name: morning warmup
//	seed: 42
//	topics:
//	  - topic: linked-list
//	    count: 3
//	    shuffle: true
//	  - topic: bits
type Plan struct {
	Name   string      `yaml:"name"`
	Seed   int64       `yaml:"seed"`
	Topics []PlanTopic `yaml:"topics"`
}

// PlanTopic selects drills from one topic. A zero Count means all of them.
type PlanTopic struct {
	Topic   string `yaml:"topic"`
	Count   int    `yaml:"count"`
	Shuffle bool   `yaml:"shuffle"`
}

// LoadPlan reads and validates a plan file.
func LoadPlan(path string) (Plan, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Plan{}, fmt.Errorf("drill: reading plan: %w", err)
	}

	return ParsePlan(raw)
}

// ParsePlan parses plan YAML.
func ParsePlan(raw []byte) (Plan, error) {
	var p Plan
	if err := yaml.Unmarshal(raw, &p); err != nil {
		return Plan{}, fmt.Errorf("drill: parsing plan: %w", err)
	}

	if len(p.Topics) == 0 {
		return Plan{}, fmt.Errorf("drill: plan selects no topics")
	}

	for _, t := range p.Topics {
		if t.Topic == "" {
			return Plan{}, fmt.Errorf("drill: plan entry without a topic")
		}

		if t.Count < 0 {
			return Plan{}, fmt.Errorf("drill: negative count for topic %q", t.Topic)
		}
	}

	return p, nil
}

// RunPlan executes a plan: for each entry, the topic's drills (shuffled
// with the plan seed if requested, truncated to count) in order.
func (r *Runner) RunPlan(p Plan) ([]Result, error) {
	rng := rand.New(rand.NewSource(p.Seed))

	var results []Result
	for _, entry := range p.Topics {
		drills := r.registry.ByTopic(entry.Topic)
		if len(drills) == 0 {
			return results, fmt.Errorf("drill: no drills for topic %q", entry.Topic)
		}

		if entry.Shuffle {
			rng.Shuffle(len(drills), func(i, j int) {
				drills[i], drills[j] = drills[j], drills[i]
			})
		}

		if entry.Count > 0 && entry.Count < len(drills) {
			drills = drills[:entry.Count]
		}

		for _, d := range drills {
			results = append(results, r.run(d))
		}
	}

	return results, nil
}
