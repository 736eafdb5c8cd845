// Package lint contains the rule-pipeline core: the ordered rule registry,
// per-rule option handling, the in-document disable directive scanner, the
// pipeline orchestrator, and the concurrent batch runner.
//
// A rule is an independently toggleable, pure text transformation with a
// stable alias. Most rules run in registry order; a handful have special
// execution order and are invoked by the orchestrator at fixed stages
// because front-matter validity and timestamp causality create ordering
// dependencies a flat list cannot express.
package lint
