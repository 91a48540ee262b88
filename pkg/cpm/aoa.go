package cpm

import (
	"math"

	"github.com/matzehuels/critpath/pkg/dag"
)

// aoaStrategy schedules activity-on-arc graphs: nodes are events and each
// edge weight is the duration of an activity.
type aoaStrategy struct {
	g          *dag.Graph
	activities []Activity
	labels     []string
}

func (s *aoaStrategy) mode() Mode        { return ModeAOA }
func (s *aoaStrategy) graph() *dag.Graph { return s.g }

// forward computes ve for every event: 0 for events with no predecessor and
// the longest incoming path otherwise.
func (s *aoaStrategy) forward(order []int) times {
	n := s.g.Size()
	ve := make([]float64, n+1)

	for _, u := range order {
		for _, e := range s.g.Out(u) {
			edge := s.g.Edge(e)
			if t := ve[u] + edge.Weight; t > ve[edge.To] {
				ve[edge.To] = t
			}
		}
	}

	duration := 0.0
	for id := 1; id <= n; id++ {
		duration = max(duration, ve[id])
	}
	return times{early: ve, duration: duration}
}

// backward computes vl for every event: the project duration for events with
// no successor, and the tightest vl[v] - d over outgoing activities otherwise.
func (s *aoaStrategy) backward(order []int, t *times) {
	vl := seedLate(s.g, t.duration)

	for i := len(order) - 1; i >= 0; i-- {
		u := order[i]
		for _, e := range s.g.Out(u) {
			edge := s.g.Edge(e)
			if l := vl[edge.To] - edge.Weight; l < vl[u] {
				vl[u] = l
			}
		}
		if math.IsInf(vl[u], 1) {
			vl[u] = t.duration
		}
	}
	t.late = vl
}

func (s *aoaStrategy) classify(t times) *Result {
	n := s.g.Size()
	res := &Result{
		Mode:       ModeAOA,
		Size:       n,
		Duration:   t.duration,
		Events:     make([]EventTiming, n),
		Activities: make([]ActivityTiming, len(s.activities)),
	}

	for id := 1; id <= n; id++ {
		slack := snap(t.late[id] - t.early[id])
		late := t.late[id]
		if slack == 0 {
			late = t.early[id]
		}
		res.Events[id-1] = EventTiming{
			ID:       id,
			Label:    label(s.labels, id),
			Earliest: t.early[id],
			Latest:   late,
			Slack:    slack,
			Critical: slack == 0,
		}
	}

	for i, a := range s.activities {
		// Critical iff ve[u] == vl[v] - d.
		slack := snap(t.late[a.To] - a.Duration - t.early[a.From])
		res.Activities[i] = ActivityTiming{Activity: a, Slack: slack, Critical: slack == 0}
		if slack == 0 {
			res.CriticalActivities = append(res.CriticalActivities, a)
		}
	}
	return res
}
