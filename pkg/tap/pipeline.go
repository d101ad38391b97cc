package tap

import (
	"context"
	"fmt"

	"github.com/gammazero/toposort"
)

// StepID identifies a single step within one path's pipeline.
type StepID string

// Step is one unit of work for a path: create the parent chain, create the
// target, apply permissions, apply a timestamp.
type Step struct {
	id   StepID
	deps []StepID
	run  func(ctx context.Context) error
}

// NewStep creates a step that depends on the given step IDs having run first.
func NewStep(id StepID, run func(ctx context.Context) error, deps ...StepID) *Step {
	return &Step{id: id, deps: deps, run: run}
}

// ID returns the step's ID.
func (s *Step) ID() StepID {
	return s.id
}

// Dependencies returns the IDs of the steps this one depends on.
func (s *Step) Dependencies() []StepID {
	return s.deps
}

// Pipeline orders and executes the steps for one path. Steps declare
// dependencies; Resolve puts them in dependency order and Execute then runs
// them strictly one at a time.
type Pipeline struct {
	steps    []*Step
	idIndex  map[StepID]int
	resolved bool
}

// NewPipeline creates an empty pipeline.
func NewPipeline() *Pipeline {
	return &Pipeline{
		steps:   make([]*Step, 0),
		idIndex: make(map[StepID]int),
	}
}

// Add appends steps to the pipeline. Adding a duplicate ID is an error.
func (p *Pipeline) Add(steps ...*Step) error {
	for _, step := range steps {
		if _, exists := p.idIndex[step.id]; exists {
			return fmt.Errorf("step with ID '%s' already exists in pipeline", step.id)
		}
		p.idIndex[step.id] = len(p.steps)
		p.steps = append(p.steps, step)
		p.resolved = false
	}
	return nil
}

// Steps returns the pipeline's steps. After Resolve() this is the
// dependency-resolved order.
func (p *Pipeline) Steps() []*Step {
	return p.steps
}

// Resolve performs dependency resolution using topological sorting.
func (p *Pipeline) Resolve() error {
	if len(p.steps) == 0 || p.resolved {
		p.resolved = true
		return nil
	}

	for _, step := range p.steps {
		for _, depID := range step.deps {
			if _, exists := p.idIndex[depID]; !exists {
				return fmt.Errorf("step '%s' depends on unknown step '%s'", step.id, depID)
			}
		}
	}

	// Edge element 0 comes before element 1, so dependency -> step.
	edges := make([]toposort.Edge, 0)
	for _, step := range p.steps {
		for _, depID := range step.deps {
			edges = append(edges, toposort.Edge{string(depID), string(step.id)})
		}
	}

	Logger().Debug().
		Int("steps", len(p.steps)).
		Int("dependency_edges", len(edges)).
		Msg("resolving step order")

	sortedIDs, err := toposort.Toposort(edges)
	if err != nil {
		Logger().Debug().
			Err(err).
			Msg("topological sort failed")
		return fmt.Errorf("circular step dependency detected: %w", err)
	}

	// Rebuild the step slice in sorted order; steps that took part in no
	// edge keep their insertion order at the end.
	resolved := make([]*Step, 0, len(p.steps))
	newIndex := make(map[StepID]int)
	for _, idInterface := range sortedIDs {
		idStr, ok := idInterface.(string)
		if !ok {
			return fmt.Errorf("unexpected type in topological sort result: %T", idInterface)
		}
		id := StepID(idStr)
		if oldIndex, exists := p.idIndex[id]; exists {
			newIndex[id] = len(resolved)
			resolved = append(resolved, p.steps[oldIndex])
		}
	}
	for _, step := range p.steps {
		if _, alreadyAdded := newIndex[step.id]; !alreadyAdded {
			newIndex[step.id] = len(resolved)
			resolved = append(resolved, step)
		}
	}

	p.steps = resolved
	p.idIndex = newIndex
	p.resolved = true
	return nil
}

// Execute resolves the pipeline if needed and runs each step in order. The
// first failure stops execution and is returned.
func (p *Pipeline) Execute(ctx context.Context) error {
	if err := p.Resolve(); err != nil {
		return err
	}
	for _, step := range p.Steps() {
		if err := ctx.Err(); err != nil {
			return err
		}
		Logger().Debug().
			Str("step", string(step.id)).
			Msg("executing step")
		if err := step.run(ctx); err != nil {
			Logger().Debug().
				Str("step", string(step.id)).
				Err(err).
				Msg("step failed")
			return err
		}
	}
	return nil
}
