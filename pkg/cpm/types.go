package cpm

// Mode identifies the project encoding a schedule was computed from.
type Mode string

const (
	// ModeAON is activity-on-node: durations belong to tasks.
	ModeAON Mode = "aon"
	// ModeAOA is activity-on-arc: durations belong to the edges between events.
	ModeAOA Mode = "aoa"
)

// Epsilon is the tolerance under which a slack value is treated as zero.
// Durations are floating point, so sums such as 0.1+0.2 must still classify
// a zero-slack task as critical.
const Epsilon = 1e-9

// Dependency is an activity-on-node precedence: task From must finish before
// task To can start. Ids are 1-based.
type Dependency struct {
	From int `json:"from"`
	To   int `json:"to"`
}

// Activity is an activity-on-arc edge from event From to event To that takes
// Duration time units.
type Activity struct {
	From     int     `json:"from"`
	To       int     `json:"to"`
	Duration float64 `json:"duration"`
}

// TaskTiming is the computed schedule of one activity-on-node task.
type TaskTiming struct {
	ID       int     `json:"id"`
	Label    string  `json:"label,omitempty"`
	Duration float64 `json:"duration"`
	ES       float64 `json:"es"` // earliest start
	EF       float64 `json:"ef"` // earliest finish
	LS       float64 `json:"ls"` // latest start
	LF       float64 `json:"lf"` // latest finish
	Slack    float64 `json:"slack"`
	Critical bool    `json:"critical"`
	Wave     int     `json:"wave"` // index into Result.Waves
}

// EventTiming is the computed schedule of one activity-on-arc event.
type EventTiming struct {
	ID       int     `json:"id"`
	Label    string  `json:"label,omitempty"`
	Earliest float64 `json:"earliest"` // ve
	Latest   float64 `json:"latest"`   // vl
	Slack    float64 `json:"slack"`
	Critical bool    `json:"critical"`
}

// ActivityTiming is an activity together with its float: how far it can slip
// without delaying the project.
type ActivityTiming struct {
	Activity
	Slack    float64 `json:"slack"`
	Critical bool    `json:"critical"`
}

// Wave groups tasks that share an earliest start time and can therefore be
// started together.
type Wave struct {
	Index    int     `json:"index"`
	Start    float64 `json:"start"`
	TaskIDs  []int   `json:"task_ids"` // critical tasks first, then ascending id
	Critical bool    `json:"critical"` // true if the wave contains a critical task
}

// Result is the immutable outcome of a schedule computation.
//
// Only the fields for the result's [Mode] are populated. A Result holds no
// reference to the graph it was computed from and may be retained, copied,
// and serialized freely.
type Result struct {
	Mode     Mode    `json:"mode"`
	Size     int     `json:"size"`
	Duration float64 `json:"duration"`

	// Activity-on-node results. Tasks[i] describes task i+1.
	Tasks         []TaskTiming `json:"tasks,omitempty"`
	Dependencies  []Dependency `json:"dependencies,omitempty"`
	CriticalPath  []int        `json:"critical_path,omitempty"`  // ascending task ids
	CriticalEdges []Dependency `json:"critical_edges,omitempty"` // input order
	Waves         []Wave       `json:"waves,omitempty"`

	// Activity-on-arc results. Events[i] describes event i+1.
	Events             []EventTiming    `json:"events,omitempty"`
	Activities         []ActivityTiming `json:"activities,omitempty"`          // input order
	CriticalActivities []Activity       `json:"critical_activities,omitempty"` // input order
}

// Task returns the timing of task id and whether it exists.
func (r *Result) Task(id int) (TaskTiming, bool) {
	if id < 1 || id > len(r.Tasks) {
		return TaskTiming{}, false
	}
	return r.Tasks[id-1], true
}

// Event returns the timing of event id and whether it exists.
func (r *Result) Event(id int) (EventTiming, bool) {
	if id < 1 || id > len(r.Events) {
		return EventTiming{}, false
	}
	return r.Events[id-1], true
}

// CriticalCount returns the number of critical tasks (AON) or critical
// activities (AOA).
func (r *Result) CriticalCount() int {
	if r.Mode == ModeAOA {
		return len(r.CriticalActivities)
	}
	return len(r.CriticalPath)
}
