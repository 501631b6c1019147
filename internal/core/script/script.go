// Package script defines the YAML-driven scenario script format: a
// sequence of steps to run against a demonstration graph. It has no
// dependency on the engine or scenarios packages so that both the core
// ports package and the scenarios package can depend on it without
// introducing an import cycle.
package script

// Script is a sequence of steps to run against the letter-grade
// demonstration graph. Exactly one field of each Step must be set.
type Script struct {
	Name  string `yaml:"name"`
	Steps []Step `yaml:"steps"`
}

// Step is a single action in a Script. Union-style: exactly one of the
// pointer fields is populated per step, matching the YAML document's
// top-level key for that entry.
type Step struct {
	SetGrade    *SetGradeStep    `yaml:"set_grade,omitempty"`
	DeleteGrade *DeleteGradeStep `yaml:"delete_grade,omitempty"`
	QueryLetter *QueryLetterStep `yaml:"query_letter,omitempty"`
}

// SetGradeStep writes one student's grade.
type SetGradeStep struct {
	Name  string  `yaml:"name"`
	Value float64 `yaml:"value"`
}

// DeleteGradeStep removes one student's grade.
type DeleteGradeStep struct {
	Name string `yaml:"name"`
}

// QueryLetterStep queries the derived letter grade for one student.
type QueryLetterStep struct {
	Name string `yaml:"name"`
}
