// Package parser recovers structured records from the hand-edited markdown
// artifacts of a jeff project: story maps, opportunity solution trees,
// hypotheses and tasks.
//
// Parsing is tolerant. Missing sections, short table rows and absent
// optional fields produce empty values, never errors. The only failure the
// package reports is a hypothesis lookup by id that matches nothing.
package parser
