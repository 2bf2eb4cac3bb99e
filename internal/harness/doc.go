// Package harness provides conformance testing for the QSGAL compiler.
//
// The harness runs scenarios through the same parse, analyze and emit path
// the CLI uses and checks the outcome against the scenario's expectations.
//
// # Scenario Format
//
// Scenarios are defined in YAML files with the following structure:
//
//	name: scenario_name
//	description: "What this scenario validates"
//	source: |
//	  rule grow
//	  primitive seed
//	command: emit          # compile | validate | emit
//	target: obj            # emit only, defaults to manifest
//	expect:
//	  error: E020          # expected error code; omit for success
//	  commands:            # manifest commands, in order
//	    - { op: scale, value: 1.618 }
//	  vertex_count: 16     # number of OBJ vertex lines
//	  obj_prefix:          # leading OBJ vertex lines
//	    - v -1 -1 -1
//	  lines:               # exact output lines
//	    - "✓ syntax: ok"
//
// At least one expectation must be given.
//
// # Snapshots
//
// Result.Snapshot is the text compared against golden files: the command
// output on success, or "error: " followed by the error message on failure.
// Use RunWithGolden in Go tests; the CLI test command manages golden files
// next to the scenario files.
package harness
