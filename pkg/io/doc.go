// Package io reads project files and writes schedule results.
//
// # Project Files
//
// A project file describes one scheduling request. The document shape is the
// same in every format; the "mode" field selects which fields apply:
//
//	{
//	  "name": "release",
//	  "mode": "aon",
//	  "size": 3,
//	  "durations": [2, 3, 1],
//	  "labels": ["design", "build", "ship"],
//	  "dependencies": [{"from": 1, "to": 2}, {"from": 2, "to": 3}]
//	}
//
// Modes:
//
//   - aon: size, durations (one per task), dependencies
//   - aoa: size, activities ({"from", "to", "duration"})
//   - mpm: size, matrix (size x size), optional sentinel (default -1)
//
// Node ids are 1-based. Labels are optional and must have one entry per node
// when present.
//
// # Formats
//
// [ImportProject] infers the format from the file extension:
//
//   - .json: encoding/json
//   - .yaml, .yml: YAML
//   - .toml: TOML, with [[dependencies]] and [[activities]] tables
//   - .hcl: HCL, with repeated dependency and activity blocks
//
// Unknown fields are rejected in every format so that typos surface as
// INVALID_FORMAT errors instead of silently empty graphs.
//
// [ReadProject] decodes from any io.Reader. Decoding checks syntax and field
// types only; call [Project.Input] and hand the result to the engine for
// graph validation.
//
// # Export
//
// [WriteJSON] and [WriteCSV] write a schedule result to any io.Writer;
// [ExportResult] picks the format from the output path.
package io
