package cpm

import (
	"slices"
	"strconv"
	"strings"

	"github.com/matzehuels/critpath/pkg/dag"
	"github.com/matzehuels/critpath/pkg/dag/transform"
	"github.com/matzehuels/critpath/pkg/errors"
)

// Plan is a validated, acyclic scheduling request. It owns its graph and
// topological order; [Plan.Schedule] only reads them, so a Plan can be
// scheduled any number of times from any number of goroutines.
type Plan struct {
	s     strategy
	order []int
}

// Prepare validates in, builds its graph and rejects it if the graph has a
// directed cycle. No timing is computed. The input is never modified.
func Prepare(in Input) (*Plan, error) {
	if in == nil {
		return nil, errors.New(errors.ErrCodeInvalidInput, "no input")
	}
	s, err := in.strategy()
	if err != nil {
		return nil, err
	}

	g := s.graph()
	if cycle := transform.FindCycle(g); cycle != nil {
		return nil, errors.New(errors.ErrCodeCycleDetected,
			"dependency graph contains a cycle: %s; no valid schedule exists", formatCycle(cycle))
	}

	order := g.TopoOrder()
	if len(order) != g.Size() {
		return nil, errors.New(errors.ErrCodeInternal,
			"topological order covers %d of %d nodes", len(order), g.Size())
	}
	return &Plan{s: s, order: order}, nil
}

// Mode returns the encoding the plan schedules in.
func (p *Plan) Mode() Mode { return p.s.mode() }

// Graph returns the plan's graph. Callers must not modify it.
func (p *Plan) Graph() *dag.Graph { return p.s.graph() }

// Order returns a copy of the topological order the passes run in.
func (p *Plan) Order() []int { return slices.Clone(p.order) }

// Schedule runs the forward pass, the backward pass and classification.
// Each call allocates its own working state and returns a fresh Result.
func (p *Plan) Schedule() *Result {
	t := p.s.forward(p.order)
	p.s.backward(p.order, &t)
	return p.s.classify(t)
}

// Compute is Prepare followed by Schedule.
func Compute(in Input) (*Result, error) {
	p, err := Prepare(in)
	if err != nil {
		return nil, err
	}
	return p.Schedule(), nil
}

func formatCycle(ids []int) string {
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = strconv.Itoa(id)
	}
	return strings.Join(parts, " -> ")
}
