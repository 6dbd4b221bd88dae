// Package pipeline provides a framework for executing analysis steps in
// sequence.
//
// A single run processes one input file through three stages: loading the
// raw lines, normalizing them, and computing statistics. Each stage is
// implemented as a Step that receives the accumulating report and fills
// in its output. Control flow is a fixed sequential composition; no step
// branches into another and no step is reentered.
//
// Design decision: We use a pipeline pattern instead of direct function
// calls because:
// 1. It allows easy addition/removal of steps without modifying core logic
// 2. It provides consistent error handling and logging across steps
// 3. It supports cancellation via context for batch invocations
//
// The package also supports batch processing of multiple independent
// input files with concurrency control using errgroup; every individual
// run stays strictly sequential.
package pipeline
