package nodelink

import (
	"strings"
	"testing"

	"github.com/matzehuels/critpath/pkg/cpm"
)

func aonResult(t *testing.T) *cpm.Result {
	t.Helper()
	res, err := cpm.Compute(cpm.AON{
		Size:      4,
		Durations: []float64{3, 2, 4, 1},
		Dependencies: []cpm.Dependency{
			{From: 1, To: 2}, {From: 1, To: 3}, {From: 2, To: 4}, {From: 3, To: 4},
		},
		Labels: []string{"plan", "docs", "build", "ship"},
	})
	if err != nil {
		t.Fatalf("Compute: %v", err)
	}
	return res
}

func TestToDOT_AON(t *testing.T) {
	dot := ToDOT(aonResult(t), Options{})

	if !strings.Contains(dot, "digraph G") {
		t.Error("ToDOT() output missing digraph declaration")
	}
	if !strings.Contains(dot, `"1 plan\nd=3\nslack 0"`) {
		t.Errorf("ToDOT() output missing task 1 label:\n%s", dot)
	}
	if !strings.Contains(dot, `"1" -> "3" [color="#d62728"`) {
		t.Errorf("ToDOT() critical edge 1->3 not highlighted:\n%s", dot)
	}
	if !strings.Contains(dot, `"1" -> "2" [color="#444444"]`) {
		t.Errorf("ToDOT() edge 1->2 should not be highlighted:\n%s", dot)
	}
	if !strings.Contains(dot, `{ rank=same; "3"; "2"; }`) {
		t.Errorf("ToDOT() missing same-rank group for tasks 2 and 3:\n%s", dot)
	}
}

func TestToDOT_Detailed(t *testing.T) {
	dot := ToDOT(aonResult(t), Options{Detailed: true, Title: "release"})

	if !strings.Contains(dot, `ES 3  EF 5\nLS 5  LF 7`) {
		t.Errorf("ToDOT() detailed output missing task 2 times:\n%s", dot)
	}
	if !strings.Contains(dot, `label="release"`) {
		t.Error("ToDOT() output missing title")
	}
}

func TestToDOT_AOA(t *testing.T) {
	res, err := cpm.Compute(cpm.AOA{
		Size: 3,
		Activities: []cpm.Activity{
			{From: 1, To: 2, Duration: 2}, {From: 1, To: 3, Duration: 1}, {From: 2, To: 3, Duration: 2},
		},
	})
	if err != nil {
		t.Fatalf("Compute: %v", err)
	}

	dot := ToDOT(res, Options{Detailed: true})

	if !strings.Contains(dot, "shape=circle") {
		t.Error("ToDOT() AOA output should draw events as circles")
	}
	if !strings.Contains(dot, `"2\n2 | 2"`) {
		t.Errorf("ToDOT() missing event 2 times:\n%s", dot)
	}
	if !strings.Contains(dot, `"1" -> "3" [label="1 (slack 3)"`) {
		t.Errorf("ToDOT() missing slack on non-critical activity:\n%s", dot)
	}
	if !strings.Contains(dot, `"2" -> "3" [label="2", color="#d62728"`) {
		t.Errorf("ToDOT() critical activity not highlighted:\n%s", dot)
	}
}

func TestNormalizeViewBox(t *testing.T) {
	in := []byte(`<svg width="100pt" height="50pt" viewBox="0.00 0.00 100.00 50.00" xmlns="http://www.w3.org/2000/svg"><g/></svg>`)
	got := string(normalizeViewBox(in))

	if !strings.Contains(got, `width="100" height="50"`) {
		t.Errorf("normalizeViewBox() = %s", got)
	}
	if !strings.Contains(got, "<g/>") {
		t.Error("normalizeViewBox() dropped content")
	}
}
