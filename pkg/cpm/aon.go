package cpm

import (
	"math"

	"github.com/matzehuels/critpath/pkg/dag"
)

// aonStrategy schedules activity-on-node graphs: durations sit on the
// tasks and edges are pure precedence.
type aonStrategy struct {
	g         *dag.Graph
	durations []float64 // indexed 1..n
	deps      []Dependency
	labels    []string
}

func (s *aonStrategy) mode() Mode        { return ModeAON }
func (s *aonStrategy) graph() *dag.Graph { return s.g }

// forward computes ES for every task in topological order.
// ES of a task with no predecessor is 0; every other task starts at the
// latest EF among its predecessors.
func (s *aonStrategy) forward(order []int) times {
	n := s.g.Size()
	es := make([]float64, n+1)
	duration := 0.0

	for _, u := range order {
		ef := es[u] + s.durations[u]
		duration = max(duration, ef)
		for _, e := range s.g.Out(u) {
			v := s.g.Edge(e).To
			if ef > es[v] {
				es[v] = ef
			}
		}
	}
	return times{early: es, duration: duration}
}

// backward computes LF for every task in reverse topological order.
// Sinks finish at the project duration; every other task must finish by
// the earliest LS among its successors.
func (s *aonStrategy) backward(order []int, t *times) {
	lf := seedLate(s.g, t.duration)

	for i := len(order) - 1; i >= 0; i-- {
		u := order[i]
		for _, e := range s.g.Out(u) {
			v := s.g.Edge(e).To
			if ls := lf[v] - s.durations[v]; ls < lf[u] {
				lf[u] = ls
			}
		}
		if math.IsInf(lf[u], 1) {
			lf[u] = t.duration
		}
	}
	t.late = lf
}

func (s *aonStrategy) classify(t times) *Result {
	n := s.g.Size()
	res := &Result{
		Mode:         ModeAON,
		Size:         n,
		Duration:     t.duration,
		Tasks:        make([]TaskTiming, n),
		Dependencies: cloneOrNil(s.deps),
	}

	for id := 1; id <= n; id++ {
		d := s.durations[id]
		es, lf := t.early[id], t.late[id]
		ls := lf - d
		slack := snap(ls - es)
		if slack == 0 {
			// Report the exact zero-slack times rather than a float residue.
			ls = es
			lf = es + d
		}
		res.Tasks[id-1] = TaskTiming{
			ID:       id,
			Label:    label(s.labels, id),
			Duration: d,
			ES:       es,
			EF:       es + d,
			LS:       ls,
			LF:       lf,
			Slack:    slack,
			Critical: slack == 0,
		}
		if slack == 0 {
			res.CriticalPath = append(res.CriticalPath, id)
		}
	}

	for _, dep := range s.deps {
		src, dst := res.Tasks[dep.From-1], res.Tasks[dep.To-1]
		if src.Critical && dst.Critical && snap(dst.ES-src.EF) == 0 {
			res.CriticalEdges = append(res.CriticalEdges, dep)
		}
	}

	res.Waves = computeWaves(res)
	return res
}
