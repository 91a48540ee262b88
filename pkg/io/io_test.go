package io

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/matzehuels/critpath/pkg/cpm"
	"github.com/matzehuels/critpath/pkg/errors"
)

const aonJSON = `{
  "name": "release",
  "mode": "aon",
  "size": 3,
  "durations": [2, 3, 1],
  "labels": ["design", "build", "ship"],
  "dependencies": [{"from": 1, "to": 2}, {"from": 2, "to": 3}]
}`

const aonYAML = `
name: release
mode: aon
size: 3
durations: [2, 3, 1]
labels: [design, build, ship]
dependencies:
  - {from: 1, to: 2}
  - {from: 2, to: 3}
`

const aonTOML = `
name = "release"
mode = "aon"
size = 3
durations = [2.0, 3.0, 1.0]
labels = ["design", "build", "ship"]

[[dependencies]]
from = 1
to = 2

[[dependencies]]
from = 2
to = 3
`

const aonHCL = `
name      = "release"
mode      = "aon"
size      = 3
durations = [2, 3, 1]
labels    = ["design", "build", "ship"]

dependency {
  from = 1
  to   = 2
}

dependency {
  from = 2
  to   = 3
}
`

func wantRelease() *Project {
	return &Project{
		Name:         "release",
		Mode:         ModeAON,
		Size:         3,
		Durations:    []float64{2, 3, 1},
		Labels:       []string{"design", "build", "ship"},
		Dependencies: []Dependency{{From: 1, To: 2}, {From: 2, To: 3}},
	}
}

func TestReadProject_Formats(t *testing.T) {
	tests := []struct {
		name   string
		format Format
		src    string
	}{
		{"JSON", FormatJSON, aonJSON},
		{"YAML", FormatYAML, aonYAML},
		{"TOML", FormatTOML, aonTOML},
		{"HCL", FormatHCL, aonHCL},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := ReadProject(strings.NewReader(tt.src), tt.format)
			if err != nil {
				t.Fatalf("ReadProject: %v", err)
			}
			if !reflect.DeepEqual(p, wantRelease()) {
				t.Errorf("got %+v, want %+v", p, wantRelease())
			}
		})
	}
}

func TestReadProject_AOAHCL(t *testing.T) {
	src := `
mode = "aoa"
size = 3

activity {
  from     = 1
  to       = 2
  duration = 4.5
}

activity {
  from     = 2
  to       = 3
  duration = 1
}
`
	p, err := ReadProject(strings.NewReader(src), FormatHCL)
	if err != nil {
		t.Fatalf("ReadProject: %v", err)
	}
	want := []Activity{{From: 1, To: 2, Duration: 4.5}, {From: 2, To: 3, Duration: 1}}
	if !reflect.DeepEqual(p.Activities, want) {
		t.Errorf("Activities = %+v, want %+v", p.Activities, want)
	}
}

func TestReadProject_Errors(t *testing.T) {
	tests := []struct {
		name   string
		format Format
		src    string
	}{
		{"MalformedJSON", FormatJSON, `{"mode": "aon",`},
		{"UnknownJSONField", FormatJSON, `{"mode": "aon", "size": 1, "duration": [1]}`},
		{"TrailingJSONDocument", FormatJSON, `{"mode": "aon", "size": 1, "durations": [1]}{"mode": "aon"}`},
		{"TrailingJSONGarbage", FormatJSON, `{"mode": "aon", "size": 1, "durations": [1]} junk`},
		{"UnknownYAMLField", FormatYAML, "mode: aon\nsize: 1\nnodes: 3\n"},
		{"UnknownTOMLField", FormatTOML, "mode = \"aon\"\nsize = 1\nextra = true\n"},
		{"MissingHCLMode", FormatHCL, "size = 1\n"},
		{"UnsupportedFormat", Format("xml"), "<project/>"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ReadProject(strings.NewReader(tt.src), tt.format)
			if !errors.Is(err, errors.ErrCodeInvalidFormat) {
				t.Errorf("expected INVALID_FORMAT, got %v", err)
			}
		})
	}
}

func TestReadProject_TrailingWhitespace(t *testing.T) {
	p, err := ReadProject(strings.NewReader("{\"mode\": \"aon\", \"size\": 1, \"durations\": [1]}\n\n"), FormatJSON)
	if err != nil {
		t.Fatalf("ReadProject: %v", err)
	}
	if p.Size != 1 {
		t.Errorf("Size = %d, want 1", p.Size)
	}
}

func TestProject_Input(t *testing.T) {
	sentinel := 0.0

	tests := []struct {
		name    string
		project Project
		want    cpm.Input
	}{
		{
			name:    "AON",
			project: *wantRelease(),
			want: cpm.AON{
				Size:         3,
				Durations:    []float64{2, 3, 1},
				Dependencies: []cpm.Dependency{{From: 1, To: 2}, {From: 2, To: 3}},
				Labels:       []string{"design", "build", "ship"},
			},
		},
		{
			name:    "AOA",
			project: Project{Mode: ModeAOA, Size: 2, Activities: []Activity{{From: 1, To: 2, Duration: 3}}},
			want:    cpm.AOA{Size: 2, Activities: []cpm.Activity{{From: 1, To: 2, Duration: 3}}},
		},
		{
			name:    "MPMDefaultSentinel",
			project: Project{Mode: ModeMPM, Size: 2, Matrix: [][]float64{{-1, 2}, {-1, -1}}},
			want:    cpm.Matrix{Size: 2, Weights: [][]float64{{-1, 2}, {-1, -1}}, Sentinel: -1},
		},
		{
			name:    "MPMExplicitSentinel",
			project: Project{Mode: ModeMPM, Size: 2, Matrix: [][]float64{{0, 2}, {0, 0}}, Sentinel: &sentinel},
			want:    cpm.Matrix{Size: 2, Weights: [][]float64{{0, 2}, {0, 0}}, Sentinel: 0},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.project.Input()
			if err != nil {
				t.Fatalf("Input: %v", err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Input() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestProject_InputUnknownMode(t *testing.T) {
	for _, mode := range []string{"", "pert"} {
		p := Project{Mode: mode, Size: 1}
		if _, err := p.Input(); !errors.Is(err, errors.ErrCodeInvalidFormat) {
			t.Errorf("mode %q: expected INVALID_FORMAT, got %v", mode, err)
		}
	}
}

func TestImportProject(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "release.yml")
	if err := os.WriteFile(path, []byte(aonYAML), 0o644); err != nil {
		t.Fatal(err)
	}

	p, err := ImportProject(path)
	if err != nil {
		t.Fatalf("ImportProject: %v", err)
	}
	if p.DisplayName("fallback") != "release" {
		t.Errorf("DisplayName = %q, want release", p.DisplayName("fallback"))
	}

	if _, err := ImportProject(filepath.Join(dir, "missing.json")); !errors.Is(err, errors.ErrCodeFileNotFound) {
		t.Errorf("expected FILE_NOT_FOUND, got %v", err)
	}
	if _, err := ImportProject(filepath.Join(dir, "project.txt")); !errors.Is(err, errors.ErrCodeInvalidFormat) {
		t.Errorf("expected INVALID_FORMAT, got %v", err)
	}
}

func computeRelease(t *testing.T) *cpm.Result {
	t.Helper()
	in, err := wantRelease().Input()
	if err != nil {
		t.Fatal(err)
	}
	res, err := cpm.Compute(in)
	if err != nil {
		t.Fatal(err)
	}
	return res
}

func TestWriteJSON(t *testing.T) {
	res := computeRelease(t)

	var buf bytes.Buffer
	if err := WriteJSON(res, &buf); err != nil {
		t.Fatalf("WriteJSON: %v", err)
	}

	var got cpm.Result
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if got.Duration != 6 || len(got.Tasks) != 3 {
		t.Errorf("got duration %v with %d tasks", got.Duration, len(got.Tasks))
	}
	if got.Tasks[1].Label != "build" {
		t.Errorf("task 2 label = %q", got.Tasks[1].Label)
	}
}

func TestWriteCSV_AON(t *testing.T) {
	res := computeRelease(t)

	var buf bytes.Buffer
	if err := WriteCSV(res, &buf); err != nil {
		t.Fatalf("WriteCSV: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 4 {
		t.Fatalf("expected header + 3 rows, got %d lines:\n%s", len(lines), buf.String())
	}
	if lines[0] != "id,label,duration,es,ef,ls,lf,slack,critical,wave" {
		t.Errorf("header = %q", lines[0])
	}
	if want := "2,build,3,2,5,2,5,0,true,1"; lines[2] != want {
		t.Errorf("row 2 = %q, want %q", lines[2], want)
	}
}

func TestWriteCSV_AOA(t *testing.T) {
	res, err := cpm.Compute(cpm.AOA{
		Size:       3,
		Activities: []cpm.Activity{{From: 1, To: 2, Duration: 2}, {From: 1, To: 3, Duration: 1}, {From: 2, To: 3, Duration: 2}},
	})
	if err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	if err := WriteCSV(res, &buf); err != nil {
		t.Fatalf("WriteCSV: %v", err)
	}

	want := "from,to,duration,earliest_start,latest_finish,slack,critical\n" +
		"1,2,2,0,2,0,true\n" +
		"1,3,1,0,4,3,false\n" +
		"2,3,2,2,4,0,true\n"
	if buf.String() != want {
		t.Errorf("got:\n%s\nwant:\n%s", buf.String(), want)
	}
}

func TestExportResult(t *testing.T) {
	res := computeRelease(t)
	dir := t.TempDir()

	for _, name := range []string{"out.json", "out.csv"} {
		path := filepath.Join(dir, name)
		if err := ExportResult(res, path); err != nil {
			t.Fatalf("ExportResult(%s): %v", name, err)
		}
		if info, err := os.Stat(path); err != nil || info.Size() == 0 {
			t.Errorf("%s not written: %v", name, err)
		}
	}

	if err := ExportResult(res, filepath.Join(dir, "out.xml")); !errors.Is(err, errors.ErrCodeInvalidFormat) {
		t.Errorf("expected INVALID_FORMAT, got %v", err)
	}
}
