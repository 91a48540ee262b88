package cpm

import (
	"math"

	"github.com/matzehuels/critpath/pkg/dag"
	"github.com/matzehuels/critpath/pkg/errors"
)

// NoEdge is the conventional "no activity" marker in an MPM weight matrix.
const NoEdge = -1.0

// Input is a validated-on-use scheduling request. The concrete types are
// [AON], [AOA], and [Matrix]; the set is closed.
type Input interface {
	// Mode returns the encoding the request will be scheduled in.
	Mode() Mode

	strategy() (strategy, error)
}

// AON is an activity-on-node request: Size tasks numbered 1..Size, one
// duration per task, and precedence pairs between them.
type AON struct {
	Size         int
	Durations    []float64 // Durations[i] is the duration of task i+1
	Dependencies []Dependency
	Labels       []string // optional, one per task
}

// AOA is an activity-on-arc request: Size events numbered 1..Size and the
// activities between them.
type AOA struct {
	Size       int
	Activities []Activity
	Labels     []string // optional, one per event
}

// Matrix is an MPM adjacency matrix: Weights[i][j] is the duration of the
// activity from event i+1 to event j+1, or Sentinel when there is none.
// Diagonal entries are ignored.
//
// Matrix is an alternate presentation of [AOA] and is converted to an
// activity list before any computation; the sentinel never reaches the graph.
// Note that the zero value of Sentinel is 0, which makes zero-duration
// activities unrepresentable; use [NewMatrix] for the conventional -1.
type Matrix struct {
	Size     int
	Weights  [][]float64
	Sentinel float64
	Labels   []string
}

// NewMatrix returns a Matrix using [NoEdge] as the sentinel.
func NewMatrix(weights [][]float64) Matrix {
	return Matrix{Size: len(weights), Weights: weights, Sentinel: NoEdge}
}

// Mode implements [Input].
func (AON) Mode() Mode { return ModeAON }

// Mode implements [Input].
func (AOA) Mode() Mode { return ModeAOA }

// Mode implements [Input].
func (Matrix) Mode() Mode { return ModeAOA }

func (in AON) strategy() (strategy, error) {
	if err := validateSize(in.Size); err != nil {
		return nil, err
	}
	if len(in.Durations) != in.Size {
		return nil, errors.New(errors.ErrCodeDurationCountMismatch,
			"expected %d durations, got %d", in.Size, len(in.Durations))
	}
	if err := validateLabels(in.Labels, in.Size); err != nil {
		return nil, err
	}

	durations := make([]float64, in.Size+1)
	for i, d := range in.Durations {
		if math.IsNaN(d) || math.IsInf(d, 0) || d < 0 {
			return nil, errors.New(errors.ErrCodeInvalidDuration,
				"task %d: duration must be a finite non-negative number, got %v", i+1, d)
		}
		durations[i+1] = d
	}

	g, err := dag.New(in.Size)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidSize, err, "size %d", in.Size)
	}
	for i, dep := range in.Dependencies {
		if err := g.AddEdge(dep.From, dep.To, 0); err != nil {
			return nil, errors.Wrap(errors.ErrCodeOutOfRangeReference, err,
				"dependency %d (%d -> %d) must reference tasks 1..%d", i+1, dep.From, dep.To, in.Size)
		}
	}

	return &aonStrategy{
		g:         g,
		durations: durations,
		deps:      cloneOrNil(in.Dependencies),
		labels:    cloneOrNil(in.Labels),
	}, nil
}

func (in AOA) strategy() (strategy, error) {
	if err := validateSize(in.Size); err != nil {
		return nil, err
	}
	if len(in.Activities) == 0 {
		return nil, errors.New(errors.ErrCodeMissingActivities,
			"at least one activity is required for %d events", in.Size)
	}
	if err := validateLabels(in.Labels, in.Size); err != nil {
		return nil, err
	}

	g, err := dag.New(in.Size)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidSize, err, "size %d", in.Size)
	}
	for i, a := range in.Activities {
		if err := g.AddEdge(a.From, a.To, a.Duration); err != nil {
			return nil, errors.Wrap(errors.ErrCodeOutOfRangeReference, err,
				"activity %d (%d -> %d) must reference events 1..%d", i+1, a.From, a.To, in.Size)
		}
		if math.IsNaN(a.Duration) || math.IsInf(a.Duration, 0) {
			return nil, errors.New(errors.ErrCodeMalformedActivity,
				"activity %d (%d -> %d): duration must be a finite number, got %v", i+1, a.From, a.To, a.Duration)
		}
	}

	return &aoaStrategy{
		g:          g,
		activities: cloneOrNil(in.Activities),
		labels:     cloneOrNil(in.Labels),
	}, nil
}

func (in Matrix) strategy() (strategy, error) {
	aoa, err := in.ToAOA()
	if err != nil {
		return nil, err
	}
	return aoa.strategy()
}

// ToAOA converts the matrix to an activity list by scanning every (i, j)
// with i != j in row-major order and keeping the non-sentinel entries.
func (in Matrix) ToAOA() (AOA, error) {
	if err := validateSize(in.Size); err != nil {
		return AOA{}, err
	}
	if len(in.Weights) != in.Size {
		return AOA{}, errors.New(errors.ErrCodeInvalidMatrix,
			"expected %d rows, got %d", in.Size, len(in.Weights))
	}

	var activities []Activity
	for i, row := range in.Weights {
		if len(row) != in.Size {
			return AOA{}, errors.New(errors.ErrCodeInvalidMatrix,
				"row %d: expected %d columns, got %d", i+1, in.Size, len(row))
		}
		for j, w := range row {
			if i == j || w == in.Sentinel {
				continue
			}
			activities = append(activities, Activity{From: i + 1, To: j + 1, Duration: w})
		}
	}
	return AOA{Size: in.Size, Activities: activities, Labels: in.Labels}, nil
}

func validateSize(n int) error {
	if n < 1 {
		return errors.New(errors.ErrCodeInvalidSize, "size must be at least 1, got %d", n)
	}
	return nil
}

func validateLabels(labels []string, n int) error {
	if len(labels) != 0 && len(labels) != n {
		return errors.New(errors.ErrCodeInvalidInput, "expected %d labels, got %d", n, len(labels))
	}
	return nil
}

func cloneOrNil[T any](s []T) []T {
	if len(s) == 0 {
		return nil
	}
	return append([]T(nil), s...)
}
