// Package analysis is the entry point of lvreduce: it turns plain edge lists
// into graphs and runs one analysis on them.
//
// What
//
//   - ColorGraph: DSatur coloring.
//   - ReduceByFriendPairs / ReduceToFixpoint: friend-pair contraction, one step
//     or until no pair remains.
//   - CheckPerfect, CheckChordal: cycle-basis structural verdicts.
//   - CheckPlanar: delegated to a caller-supplied planarity.Tester.
//   - Session: a step-wise reduction with its history, for interactive drivers.
//
// The free functions use default settings. An Analyzer carries a
// config.Config, an optional metrics.Recorder and an optional Tester.
//
// Inputs are never shared between calls: every analysis builds its own graph.
package analysis
