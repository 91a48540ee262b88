package io

import (
	"github.com/matzehuels/critpath/pkg/cpm"
	"github.com/matzehuels/critpath/pkg/errors"
)

// Project modes accepted in project files.
const (
	ModeAON = "aon"
	ModeAOA = "aoa"
	ModeMPM = "mpm"
)

// Project is the on-disk form of a scheduling request. The same document
// shape is used for every file format; Mode selects which fields apply.
type Project struct {
	Name         string       `json:"name,omitempty" yaml:"name,omitempty" toml:"name,omitempty" hcl:"name,optional"`
	Mode         string       `json:"mode" yaml:"mode" toml:"mode" hcl:"mode"`
	Size         int          `json:"size" yaml:"size" toml:"size" hcl:"size"`
	Durations    []float64    `json:"durations,omitempty" yaml:"durations,omitempty" toml:"durations,omitempty" hcl:"durations,optional"`
	Labels       []string     `json:"labels,omitempty" yaml:"labels,omitempty" toml:"labels,omitempty" hcl:"labels,optional"`
	Dependencies []Dependency `json:"dependencies,omitempty" yaml:"dependencies,omitempty" toml:"dependencies,omitempty" hcl:"dependency,block"`
	Activities   []Activity   `json:"activities,omitempty" yaml:"activities,omitempty" toml:"activities,omitempty" hcl:"activity,block"`
	Matrix       [][]float64  `json:"matrix,omitempty" yaml:"matrix,omitempty" toml:"matrix,omitempty" hcl:"matrix,optional"`
	Sentinel     *float64     `json:"sentinel,omitempty" yaml:"sentinel,omitempty" toml:"sentinel,omitempty" hcl:"sentinel,optional"`
}

// Dependency is a precedence pair in an AON project file.
type Dependency struct {
	From int `json:"from" yaml:"from" toml:"from" hcl:"from"`
	To   int `json:"to" yaml:"to" toml:"to" hcl:"to"`
}

// Activity is a weighted edge in an AOA project file.
type Activity struct {
	From     int     `json:"from" yaml:"from" toml:"from" hcl:"from"`
	To       int     `json:"to" yaml:"to" toml:"to" hcl:"to"`
	Duration float64 `json:"duration" yaml:"duration" toml:"duration" hcl:"duration"`
}

// Input converts the project to an engine input. Shape validation is left to
// the engine; Input only fails for an unknown mode.
func (p *Project) Input() (cpm.Input, error) {
	switch p.Mode {
	case ModeAON:
		deps := make([]cpm.Dependency, len(p.Dependencies))
		for i, d := range p.Dependencies {
			deps[i] = cpm.Dependency{From: d.From, To: d.To}
		}
		return cpm.AON{Size: p.Size, Durations: p.Durations, Dependencies: deps, Labels: p.Labels}, nil
	case ModeAOA:
		acts := make([]cpm.Activity, len(p.Activities))
		for i, a := range p.Activities {
			acts[i] = cpm.Activity{From: a.From, To: a.To, Duration: a.Duration}
		}
		return cpm.AOA{Size: p.Size, Activities: acts, Labels: p.Labels}, nil
	case ModeMPM:
		sentinel := cpm.NoEdge
		if p.Sentinel != nil {
			sentinel = *p.Sentinel
		}
		return cpm.Matrix{Size: p.Size, Weights: p.Matrix, Sentinel: sentinel, Labels: p.Labels}, nil
	case "":
		return nil, errors.New(errors.ErrCodeInvalidFormat, "project mode is required (aon, aoa, or mpm)")
	default:
		return nil, errors.New(errors.ErrCodeInvalidFormat, "unknown project mode %q (want aon, aoa, or mpm)", p.Mode)
	}
}

// DisplayName returns the project name, or fallback if the project is unnamed.
func (p *Project) DisplayName(fallback string) string {
	if p.Name != "" {
		return p.Name
	}
	return fallback
}
