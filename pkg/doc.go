// Package pkg provides the core libraries for critpath project scheduling.
//
// # Overview
//
// critpath computes critical-path schedules for projects given either as
// tasks with durations and dependencies (activity-on-node) or as events
// joined by activities (activity-on-arrow, including the square duration
// matrix form). The pkg directory is organized into these areas:
//
//  1. [cpm] - The scheduling engine (forward and backward passes, slack, waves, chains)
//  2. [dag] - Graph structure shared by both encodings
//  3. [io] - Project files in and schedules out
//  4. [render] - Diagrams and format conversion
//  5. [pipeline] - Orchestration (load → schedule → render)
//
// # Architecture
//
// The typical data flow through critpath:
//
//	Project file (JSON, YAML, TOML, HCL)
//	         ↓
//	    [io] package (decode + validate shape)
//	         ↓
//	    [cpm] package (prepare graph, run the passes)
//	         ↓
//	    [render/nodelink] package (Graphviz diagram)
//	         ↓
//	    JSON/CSV/DOT/SVG/PDF/PNG output
//
// # Quick Start
//
// Schedule a small project:
//
//	import "github.com/matzehuels/critpath/pkg/cpm"
//
//	res, err := cpm.Compute(cpm.AON{
//	    Size:      3,
//	    Durations: []float64{2, 3, 1},
//	    Dependencies: []cpm.Dependency{
//	        {From: 1, To: 2},
//	        {From: 2, To: 3},
//	    },
//	})
//	fmt.Println(res.Duration, res.CriticalPath)
//
// # Main Packages
//
// [cpm] - Critical path method for both encodings. [cpm.Prepare] validates
// the input once and returns a [cpm.Plan] that can be scheduled repeatedly.
//
// [dag] - Directed acyclic graph with 1-based node ids and weighted edges.
//
// [dag/transform] - Cycle detection, topological order, levels, and
// transitive reduction used to flag redundant dependencies.
//
// [io] - Project decoding from JSON, YAML, TOML, and HCL, and schedule
// export as JSON or CSV.
//
// [render/nodelink] - Schedule diagrams using Graphviz, critical elements
// highlighted.
//
// [render] - Format conversion (SVG to PDF/PNG).
//
// [pipeline] - Complete pipeline used by the CLI and the HTTP API. Ensures
// consistent behavior across entry points.
//
// [cache] - Artifact cache for rendered diagrams backed by files, SQLite, or
// Redis.
//
// [observability] - Hooks for pipeline stages and HTTP requests, and the
// in-process counters served at /api/v1/stats.
//
// [errors] - Coded errors shared by every layer.
//
// # Testing
//
// Run tests:
//
//	go test ./pkg/...          # All tests
//	go test ./pkg/cpm/...      # Specific package
//	go test -run Example       # Examples only
//
// [cpm]: https://pkg.go.dev/github.com/matzehuels/critpath/pkg/cpm
// [dag]: https://pkg.go.dev/github.com/matzehuels/critpath/pkg/dag
// [dag/transform]: https://pkg.go.dev/github.com/matzehuels/critpath/pkg/dag/transform
// [io]: https://pkg.go.dev/github.com/matzehuels/critpath/pkg/io
// [render]: https://pkg.go.dev/github.com/matzehuels/critpath/pkg/render
// [render/nodelink]: https://pkg.go.dev/github.com/matzehuels/critpath/pkg/render/nodelink
// [pipeline]: https://pkg.go.dev/github.com/matzehuels/critpath/pkg/pipeline
// [cache]: https://pkg.go.dev/github.com/matzehuels/critpath/pkg/cache
// [observability]: https://pkg.go.dev/github.com/matzehuels/critpath/pkg/observability
// [errors]: https://pkg.go.dev/github.com/matzehuels/critpath/pkg/errors
package pkg
