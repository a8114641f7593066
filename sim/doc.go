// Package sim provides the core discrete-event simulation engine for
// precinct-sim: one election day at one polling place, replayed from a seed.
//
// # Reading Guide
//
// Start with these three files to understand the simulation kernel:
//   - voter.go: the Voter record (arrival, service duration, booth timestamps)
//   - booths.go: BoothPool, the bounded min-heap of booth free-times
//   - simulator.go: voter generation from the seeded stream, then booth assignment
//
// # Architecture
//
// The sim package is the deterministic kernel; statistics and presentation
// live in sub-packages:
//   - sim/experiment/: repeated seeded trials, median average waits, and the
//     split-ticket threshold search
//   - sim/report/: console and CSV rendering of simulated days and searches
//   - sim/fixture/: fabricated precincts and election files for demos and tests
//
// Determinism is the load-bearing property: a run is a pure function of the
// precinct configuration and a single int64 seed. Each candidate voter
// consumes draws from one seeded stream in a fixed order (see Simulate), so
// identical seeds replay identical days, and repeated-trial statistics in
// sim/experiment derive their streams from consecutive seeds.
package sim
