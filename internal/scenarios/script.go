// Package scenarios defines the demonstration graphs and YAML-driven scripts
// used to exercise the engine end-to-end: a letter-grade lookup and an
// early-exit chain.
package scenarios

import "go.trai.ch/delta/internal/core/script"

// Script is a sequence of steps to run against the letter-grade
// demonstration graph. Exactly one field of each Step must be set.
type Script = script.Script

// Step is a single action in a Script. Union-style: exactly one of the
// pointer fields is populated per step, matching the YAML document's
// top-level key for that entry.
type Step = script.Step

// SetGradeStep writes one student's grade.
type SetGradeStep = script.SetGradeStep

// DeleteGradeStep removes one student's grade.
type DeleteGradeStep = script.DeleteGradeStep

// QueryLetterStep queries the derived letter grade for one student.
type QueryLetterStep = script.QueryLetterStep
