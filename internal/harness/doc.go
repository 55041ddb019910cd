// Package harness provides conformance testing for unit catalogs.
//
// The harness loads a catalog (built-in or compiled from CUE), executes
// parse/convert scenarios, and compares the resulting records against
// golden snapshots.
//
// # Scenario Format
//
// Scenarios are defined in YAML files with the following structure:
//
//	name: scenario_name
//	description: "What this scenario validates"
//	catalog: path/to/catalog   # optional; empty means built-in catalog
//	steps:
//	  - parse: "1500 m"
//	    to: km                 # optional target unit
//	    expect: "1.5 km"       # optional expected rendering
//	  - parse: "2500000 Wh"    # no target: best-unit display
//
// Each step parses its quantity string, optionally converts it, and
// records the structured result. The catalog path is resolved relative
// to the scenario file.
//
// # Deterministic Testing
//
// Conversion arithmetic is pure IEEE 754 with no ambient state, so a
// scenario's records are identical across runs and platforms; golden
// files compare byte-for-byte.
//
// # Usage
//
// Load and run a scenario:
//
//	scenario, err := harness.LoadScenario("testdata/scenarios/conversion.yaml")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	result, err := harness.Run(scenario)
//
// Or compare against the golden snapshot in one call:
//
//	harness.RunWithGolden(t, scenario)
package harness
